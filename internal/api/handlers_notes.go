package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/noctiluca/thermia/internal/models"
)

type createNoteInput struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

func (handler *Handler) GetNotes(c *fiber.Ctx) error {
	from, err := handler.parseOptionalDayQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	to, err := handler.parseOptionalDayQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	notes, err := handler.repositories.Notes.ListRange(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch notes")
	}
	return c.JSON(notes)
}

func (handler *Handler) CreateNote(c *fiber.Ctx) error {
	input := createNoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	day, err := handler.parseDayParam(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	if !models.IsValidNoteCategory(input.Category) {
		return apiError(c, fiber.StatusBadRequest, "unknown note category")
	}
	if strings.TrimSpace(input.Text) == "" {
		return apiError(c, fiber.StatusBadRequest, "text is required")
	}

	note := models.Note{
		Date:     day,
		Category: input.Category,
		Text:     strings.TrimSpace(input.Text),
	}
	if err := handler.repositories.Notes.Create(&note); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (handler *Handler) DeleteNote(c *fiber.Ctx) error {
	noteID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	deleted, err := handler.repositories.Notes.DeleteByID(noteID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete note")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "note not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
