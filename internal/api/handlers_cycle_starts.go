package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/noctiluca/thermia/internal/models"
)

type createCycleStartInput struct {
	StartDate string `json:"start_date"`
}

func (handler *Handler) GetCycleStarts(c *fiber.Ctx) error {
	starts, err := handler.repositories.CycleStarts.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycle starts")
	}
	return c.JSON(starts)
}

func (handler *Handler) CreateCycleStart(c *fiber.Ctx) error {
	input := createCycleStartInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	day, err := handler.parseDayParam(input.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	start := models.CycleStart{StartDate: day}
	if err := handler.repositories.CycleStarts.Create(&start); err != nil {
		// The date column carries a unique index; a second insert for the
		// same day is a duplicate declaration, not a server fault.
		return apiError(c, fiber.StatusConflict, "cycle start already recorded for this date")
	}
	return c.Status(fiber.StatusCreated).JSON(start)
}

func (handler *Handler) DeleteCycleStart(c *fiber.Ctx) error {
	startID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	deleted, err := handler.repositories.CycleStarts.DeleteByID(startID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle start")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "cycle start not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
