package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

func (handler *Handler) parseDayParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
	if err != nil {
		return time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}
	return parsed, nil
}

// parseOptionalDayQuery reads a YYYY-MM-DD query value; absent means nil.
func (handler *Handler) parseOptionalDayQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := handler.parseDayParam(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimestamp accepts the ISO-8601 shapes the upstream store exchanged.
func (handler *Handler) parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("timestamp is required")
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, handler.location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid timestamp, expected ISO-8601")
}
