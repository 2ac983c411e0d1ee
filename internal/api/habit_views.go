package api

import (
	"github.com/terraincognita07/habithero/internal/models"
	"github.com/terraincognita07/habithero/internal/services"
)

type checkInView struct {
	ID   uint   `json:"id"`
	Date string `json:"date"`
}

type noteView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type habitView struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Frequency string        `json:"frequency"`
	Category  string        `json:"category"`
	StartDate string        `json:"start_date"`
	CheckIns  []checkInView `json:"checkins"`
	Notes     []noteView    `json:"notes"`
}

func (handler *Handler) buildHabitView(habit models.Habit) habitView {
	checkIns := make([]checkInView, 0, len(habit.CheckIns))
	for _, checkIn := range habit.CheckIns {
		checkIns = append(checkIns, checkInView{
			ID:   checkIn.ID,
			Date: services.DayKey(checkIn.Date, handler.location),
		})
	}

	notes := make([]noteView, 0, len(habit.Notes))
	for _, note := range habit.Notes {
		notes = append(notes, noteView{
			ID:   note.ID,
			Text: note.Text,
			Date: services.DayKey(note.Date, handler.location),
		})
	}

	return habitView{
		ID:        habit.ID,
		Name:      habit.Name,
		Frequency: habit.Frequency,
		Category:  habit.Category,
		StartDate: services.DayKey(habit.StartDate, handler.location),
		CheckIns:  checkIns,
		Notes:     notes,
	}
}

func (handler *Handler) buildHabitViews(habits []models.Habit) []habitView {
	views := make([]habitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, handler.buildHabitView(habit))
	}
	return views
}
