package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habithero/internal/models"
	"github.com/terraincognita07/habithero/internal/services"
)

type checkInPayload struct {
	Date string `json:"date"`
}

// ToggleCheckIn records a check-in for the given calendar date, or removes
// the existing one when the date is already checked. At most one check-in per
// habit per day survives either way.
func (handler *Handler) ToggleCheckIn(c *fiber.Ctx) error {
	habitID, err := parseHabitIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	payload := checkInPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Date == "" {
		return apiError(c, fiber.StatusBadRequest, "Date is required")
	}

	day, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	_, found, err := handler.repositories.Habits.FindByID(habitID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habit")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "habit not found")
	}

	dayStart, dayEnd := services.DayRange(day, handler.location)
	existing, exists, err := handler.repositories.Habits.FindCheckInByDayRange(habitID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-in")
	}

	if exists {
		if err := handler.repositories.Habits.DeleteCheckIn(existing.ID); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to remove check-in")
		}
		return c.JSON(fiber.Map{"message": "Check-in removed", "checked": false})
	}

	checkIn := models.CheckIn{HabitID: habitID, Date: dayStart}
	if err := handler.repositories.Habits.CreateCheckIn(&checkIn); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create check-in")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"checkin": checkInView{ID: checkIn.ID, Date: services.DayKey(checkIn.Date, handler.location)},
		"checked": true,
	})
}
