package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/terraincognita07/habithero/internal/services"
)

func TestStatsOverviewAggregatesHabits(t *testing.T) {
	app, _ := newHabitTestApp(t)

	now := time.Now().In(time.UTC)
	today := now.Format(services.DayKeyLayout)
	yesterday := services.AddDays(services.DateAtLocation(now, time.UTC), -1).Format(services.DayKeyLayout)

	checked := createTestHabit(t, app, "Run", "fitness", yesterday)
	checkInTestHabit(t, app, checked.ID, yesterday)
	checkInTestHabit(t, app, checked.ID, today)
	createTestHabit(t, app, "Read", "learning", today)

	response := performJSONRequest(t, app, http.MethodGet, "/api/stats/overview", nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	overview := statsOverviewView{}
	decodeJSONBody(t, response.Body, &overview)

	if overview.Totals.TotalHabits != 2 {
		t.Fatalf("expected 2 habits, got %d", overview.Totals.TotalHabits)
	}
	if overview.Totals.CompletedToday != 1 {
		t.Fatalf("expected 1 habit completed today, got %d", overview.Totals.CompletedToday)
	}
	if overview.Totals.BestStreak != 2 {
		t.Fatalf("expected best streak 2, got %d", overview.Totals.BestStreak)
	}
	// Rates are 100 (2 of 2 days) and 0: mean rounds to 50.
	if overview.Totals.AverageSuccessRate != 50 {
		t.Fatalf("expected average success rate 50, got %d", overview.Totals.AverageSuccessRate)
	}

	if len(overview.Habits) != 2 {
		t.Fatalf("expected 2 habit entries, got %d", len(overview.Habits))
	}
	first := overview.Habits[0]
	if first.Icon != "🏃" {
		t.Fatalf("expected fitness icon, got %q", first.Icon)
	}
	if !first.Stats.CheckedToday || first.Stats.Streak != 2 {
		t.Fatalf("unexpected stats for checked habit: %+v", first.Stats)
	}
}

func TestStatsOverviewCalendarWindowEndsToday(t *testing.T) {
	app, _ := newHabitTestApp(t)

	response := performJSONRequest(t, app, http.MethodGet, "/api/stats/overview", nil)
	defer response.Body.Close()

	overview := statsOverviewView{}
	decodeJSONBody(t, response.Body, &overview)

	if len(overview.Calendar) != services.DefaultCalendarWindowDays {
		t.Fatalf("expected %d calendar days, got %d", services.DefaultCalendarWindowDays, len(overview.Calendar))
	}
	today := time.Now().In(time.UTC).Format(services.DayKeyLayout)
	if overview.Calendar[len(overview.Calendar)-1] != today {
		t.Fatalf("expected calendar to end at %s, got %s", today, overview.Calendar[len(overview.Calendar)-1])
	}
	if overview.Totals.TotalHabits != 0 {
		t.Fatalf("expected empty dashboard, got %+v", overview.Totals)
	}
}

func TestStatsOverviewMarksUnknownCategoryWithDefaultIcon(t *testing.T) {
	app, _ := newHabitTestApp(t)

	createTestHabit(t, app, "Stargazing", "astronomy", "2026-08-01")

	response := performJSONRequest(t, app, http.MethodGet, "/api/stats/overview", nil)
	defer response.Body.Close()

	overview := statsOverviewView{}
	decodeJSONBody(t, response.Body, &overview)
	if len(overview.Habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(overview.Habits))
	}
	if overview.Habits[0].Icon != "⭐" {
		t.Fatalf("expected default icon for unknown category, got %q", overview.Habits[0].Icon)
	}
}
