package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habithero/internal/models"
	"github.com/terraincognita07/habithero/internal/services"
)

type createHabitPayload struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	habits, err := handler.repositories.Habits.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch habits")
	}
	return c.JSON(handler.buildHabitViews(habits))
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	payload := createHabitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input, fieldErrors := services.NormalizeHabitInput(
		payload.Name,
		payload.Frequency,
		payload.Category,
		payload.StartDate,
		handler.location,
	)
	if fieldErrors != nil {
		return apiFieldErrors(c, fieldErrors)
	}

	habit := models.Habit{
		Name:      input.Name,
		Frequency: input.Frequency,
		Category:  input.Category,
		StartDate: input.StartDate,
		CreatedAt: time.Now().In(handler.location),
	}
	if err := handler.repositories.Habits.Create(&habit); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}

	return c.Status(fiber.StatusCreated).JSON(handler.buildHabitView(habit))
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	habitID, err := parseHabitIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	_, found, err := handler.repositories.Habits.FindByID(habitID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habit")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "habit not found")
	}

	if err := handler.repositories.Habits.Delete(habitID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete habit")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
