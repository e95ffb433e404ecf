package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	overview, err := handler.statsService.BuildOverview()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}
	return c.JSON(overview)
}
