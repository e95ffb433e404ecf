package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/noctiluca/thermia/internal/models"
)

type createReadingInput struct {
	Timestamp          string  `json:"timestamp"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
}

func (handler *Handler) GetReadings(c *fiber.Ctx) error {
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
	return c.JSON(readings)
}

func (handler *Handler) CreateReading(c *fiber.Ctx) error {
	input := createReadingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	timestamp, err := handler.parseTimestamp(input.Timestamp)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if !models.IsPlausibleCelsius(input.TemperatureCelsius) {
		message := fmt.Sprintf("temperature must be between %.1f and %.1f Celsius",
			models.MinPlausibleCelsius, models.MaxPlausibleCelsius)
		return apiError(c, fiber.StatusBadRequest, message)
	}

	reading := models.TemperatureReading{
		Timestamp:          timestamp,
		TemperatureCelsius: input.TemperatureCelsius,
	}
	if err := handler.repositories.Temperatures.Create(&reading); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save reading")
	}
	return c.Status(fiber.StatusCreated).JSON(reading)
}

func (handler *Handler) DeleteReading(c *fiber.Ctx) error {
	readingID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	deleted, err := handler.repositories.Temperatures.DeleteByID(readingID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete reading")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "reading not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
