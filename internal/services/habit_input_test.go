package services

import (
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/habithero/internal/models"
)

func TestNormalizeHabitInputAcceptsValidSubmission(t *testing.T) {
	input, fieldErrors := NormalizeHabitInput("  Morning run ", "daily", "fitness", "2026-08-01", time.UTC)
	if fieldErrors != nil {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
	if input.Name != "Morning run" {
		t.Fatalf("expected trimmed name, got %q", input.Name)
	}
	if input.StartDate.Format(DayKeyLayout) != "2026-08-01" {
		t.Fatalf("expected normalized start date, got %s", input.StartDate.Format(DayKeyLayout))
	}
}

func TestNormalizeHabitInputRejectsBlankName(t *testing.T) {
	_, fieldErrors := NormalizeHabitInput("   ", "daily", "health", "2026-08-01", time.UTC)
	if fieldErrors["name"] == "" {
		t.Fatalf("expected a name field error, got %v", fieldErrors)
	}
}

func TestNormalizeHabitInputRejectsOverlongName(t *testing.T) {
	_, fieldErrors := NormalizeHabitInput(strings.Repeat("x", MaxHabitNameLength+1), "daily", "health", "2026-08-01", time.UTC)
	if fieldErrors["name"] == "" {
		t.Fatalf("expected a name length error, got %v", fieldErrors)
	}
}

func TestNormalizeHabitInputRejectsUnknownFrequency(t *testing.T) {
	_, fieldErrors := NormalizeHabitInput("Read", "hourly", "health", "2026-08-01", time.UTC)
	if fieldErrors["frequency"] == "" {
		t.Fatalf("expected a frequency field error, got %v", fieldErrors)
	}
}

func TestNormalizeHabitInputDefaultsFrequencyAndCategory(t *testing.T) {
	input, fieldErrors := NormalizeHabitInput("Read", "", "", "2026-08-01", time.UTC)
	if fieldErrors != nil {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
	if input.Frequency != models.FrequencyDaily {
		t.Fatalf("expected daily default, got %q", input.Frequency)
	}
	if input.Category != models.CategoryHealth {
		t.Fatalf("expected health default, got %q", input.Category)
	}
}

func TestNormalizeHabitInputKeepsUnrecognizedCategory(t *testing.T) {
	input, fieldErrors := NormalizeHabitInput("Stargazing", "weekly", "astronomy", "2026-08-01", time.UTC)
	if fieldErrors != nil {
		t.Fatalf("expected unknown category to pass, got %v", fieldErrors)
	}
	if input.Category != "astronomy" {
		t.Fatalf("expected category preserved, got %q", input.Category)
	}
	if models.CategoryIcon(input.Category) != models.DefaultCategoryIcon {
		t.Fatalf("expected default icon for unknown category")
	}
}

func TestNormalizeHabitInputRejectsMalformedStartDate(t *testing.T) {
	_, fieldErrors := NormalizeHabitInput("Read", "daily", "health", "08/01/2026", time.UTC)
	if fieldErrors["start_date"] == "" {
		t.Fatalf("expected a start_date field error, got %v", fieldErrors)
	}
}
