package services

import (
	"strconv"
	"time"

	"github.com/terraincognita07/habithero/internal/models"
)

var ExportCSVHeaders = []string{
	"Name",
	"Frequency",
	"Category",
	"Start date",
	"Check-ins",
	"Current streak",
	"Success rate",
	"Best day",
	"Checked today",
	"Notes",
}

type ExportHabitReader interface {
	ListAll() ([]models.Habit, error)
}

type ExportService struct {
	habits   ExportHabitReader
	location *time.Location
}

type ExportSummary struct {
	TotalHabits   int    `json:"total_habits"`
	TotalCheckIns int    `json:"total_checkins"`
	TotalNotes    int    `json:"total_notes"`
	HasData       bool   `json:"has_data"`
	EarliestStart string `json:"earliest_start"`
}

type ExportJSONEntry struct {
	Name      string     `json:"name"`
	Frequency string     `json:"frequency"`
	Category  string     `json:"category"`
	StartDate string     `json:"start_date"`
	CheckIns  []string   `json:"checkins"`
	Notes     []string   `json:"notes"`
	Stats     HabitStats `json:"stats"`
}

func NewExportService(habits ExportHabitReader, location *time.Location) *ExportService {
	return &ExportService{
		habits:   habits,
		location: location,
	}
}

func (service *ExportService) BuildJSONEntries(now time.Time) ([]ExportJSONEntry, error) {
	habits, err := service.habits.ListAll()
	if err != nil {
		return nil, err
	}

	entries := make([]ExportJSONEntry, 0, len(habits))
	for _, habit := range habits {
		checkInDays := make([]string, 0, len(habit.CheckIns))
		for _, day := range NewCheckInLedger(habit.CheckIns, service.location).Days() {
			checkInDays = append(checkInDays, day.Format(DayKeyLayout))
		}
		noteTexts := make([]string, 0, len(habit.Notes))
		for _, note := range habit.Notes {
			noteTexts = append(noteTexts, note.Text)
		}

		entries = append(entries, ExportJSONEntry{
			Name:      habit.Name,
			Frequency: habit.Frequency,
			Category:  habit.Category,
			StartDate: DayKey(habit.StartDate, service.location),
			CheckIns:  checkInDays,
			Notes:     noteTexts,
			Stats:     BuildHabitStats(habit, now, service.location),
		})
	}
	return entries, nil
}

func (service *ExportService) BuildCSVRows(now time.Time) ([][]string, error) {
	entries, err := service.BuildJSONEntries(now)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Name,
			entry.Frequency,
			entry.Category,
			entry.StartDate,
			strconv.Itoa(entry.Stats.CheckInCount),
			strconv.Itoa(entry.Stats.Streak),
			strconv.Itoa(entry.Stats.SuccessRate),
			entry.Stats.BestDay,
			csvYesNo(entry.Stats.CheckedToday),
			strconv.Itoa(len(entry.Notes)),
		})
	}
	return rows, nil
}

func (service *ExportService) Summary() (ExportSummary, error) {
	habits, err := service.habits.ListAll()
	if err != nil {
		return ExportSummary{}, err
	}

	summary := ExportSummary{TotalHabits: len(habits)}
	var earliest time.Time
	for _, habit := range habits {
		summary.TotalCheckIns += NewCheckInLedger(habit.CheckIns, service.location).Size()
		summary.TotalNotes += len(habit.Notes)
		start := DateAtLocation(habit.StartDate, service.location)
		if earliest.IsZero() || start.Before(earliest) {
			earliest = start
		}
	}
	summary.HasData = summary.TotalHabits > 0
	if !earliest.IsZero() {
		summary.EarliestStart = earliest.Format(DayKeyLayout)
	}
	return summary, nil
}

func csvYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
