package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/noctiluca/thermia/internal/services"
)

func (handler *Handler) GetGraphSeries(c *fiber.Ctx) error {
	from, err := handler.parseOptionalDayQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	to, err := handler.parseOptionalDayQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	readings, err := handler.repositories.Temperatures.ListRange(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch readings")
	}
	starts, err := handler.repositories.CycleStarts.ListDates()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycle starts")
	}

	return c.JSON(fiber.Map{
		"points": services.BuildGraphSeries(readings, starts),
		"colors": services.PhaseColors,
	})
}
