package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habithero/internal/models"
	"github.com/terraincognita07/habithero/internal/services"
)

type notePayload struct {
	Text string `json:"text"`
}

func (handler *Handler) AddNote(c *fiber.Ctx) error {
	habitID, err := parseHabitIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	payload := notePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return apiError(c, fiber.StatusBadRequest, "Note text is required")
	}

	_, found, err := handler.repositories.Habits.FindByID(habitID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habit")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "habit not found")
	}

	now := time.Now().In(handler.location)
	note := models.Note{
		HabitID:   habitID,
		Text:      text,
		Date:      services.DateAtLocation(now, handler.location),
		CreatedAt: now,
	}
	if err := handler.repositories.Habits.CreateNote(&note); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create note")
	}

	return c.Status(fiber.StatusCreated).JSON(noteView{
		ID:   note.ID,
		Text: note.Text,
		Date: services.DayKey(note.Date, handler.location),
	})
}
