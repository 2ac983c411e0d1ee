package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/habithero/internal/models"
	"github.com/terraincognita07/habithero/internal/services"
)

type habitStatsView struct {
	ID       uint                `json:"id"`
	Name     string              `json:"name"`
	Category string              `json:"category"`
	Icon     string              `json:"icon"`
	Stats    services.HabitStats `json:"stats"`
}

type statsOverviewView struct {
	Totals   services.DashboardStats `json:"totals"`
	Habits   []habitStatsView        `json:"habits"`
	Calendar []string                `json:"calendar"`
}

// GetStatsOverview computes the dashboard on demand from the stored check-in
// history. Derived statistics are never persisted.
func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	habits, err := handler.repositories.Habits.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch habits")
	}

	now := time.Now().In(handler.location)
	return c.JSON(handler.buildStatsOverview(habits, now))
}

func (handler *Handler) buildStatsOverview(habits []models.Habit, now time.Time) statsOverviewView {
	habitViews := make([]habitStatsView, 0, len(habits))
	for _, habit := range habits {
		habitViews = append(habitViews, habitStatsView{
			ID:       habit.ID,
			Name:     habit.Name,
			Category: habit.Category,
			Icon:     models.CategoryIcon(habit.Category),
			Stats:    services.BuildHabitStats(habit, now, handler.location),
		})
	}

	window := services.LastWeek(now, handler.location)
	calendar := make([]string, 0, len(window))
	for _, day := range window {
		calendar = append(calendar, day.Format(services.DayKeyLayout))
	}

	return statsOverviewView{
		Totals:   services.BuildDashboardStats(habits, now, handler.location),
		Habits:   habitViews,
		Calendar: calendar,
	}
}
