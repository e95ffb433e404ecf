package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CleanupOldData(c *fiber.Ctx) error {
	retentionDays := 0
	if raw := c.Query("retention_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid retention_days")
		}
		retentionDays = parsed
	}

	result, err := handler.maintenanceService.CleanupOldData(retentionDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clean up old data")
	}
	return c.JSON(result)
}
