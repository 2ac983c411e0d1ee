package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/habithero/internal/models"
)

const MaxHabitNameLength = 100

type HabitInput struct {
	Name      string
	Frequency string
	Category  string
	StartDate time.Time
}

// NormalizeHabitInput validates a create-habit submission. Field errors are
// keyed by field name so the store can surface them verbatim. Unknown
// categories pass through; they render with the default icon marker.
func NormalizeHabitInput(name string, frequency string, category string, startDate string, location *time.Location) (HabitInput, map[string]string) {
	fieldErrors := make(map[string]string)
	input := HabitInput{}

	input.Name = strings.TrimSpace(name)
	if input.Name == "" {
		fieldErrors["name"] = "This field may not be blank."
	} else if len(input.Name) > MaxHabitNameLength {
		fieldErrors["name"] = "Ensure this field has no more than 100 characters."
	}

	input.Frequency = strings.TrimSpace(frequency)
	if input.Frequency == "" {
		input.Frequency = models.FrequencyDaily
	}
	if !IsValidFrequency(input.Frequency) {
		fieldErrors["frequency"] = "\"" + input.Frequency + "\" is not a valid choice."
	}

	input.Category = strings.TrimSpace(category)
	if input.Category == "" {
		input.Category = models.CategoryHealth
	}

	parsedStart, err := time.ParseInLocation(DayKeyLayout, strings.TrimSpace(startDate), location)
	if err != nil {
		fieldErrors["start_date"] = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	} else {
		input.StartDate = DateAtLocation(parsedStart, location)
	}

	if len(fieldErrors) > 0 {
		return HabitInput{}, fieldErrors
	}
	return input, nil
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case models.FrequencyDaily, models.FrequencyWeekly:
		return true
	default:
		return false
	}
}
