package services

import (
	"testing"
	"time"
)

func TestLastNDaysEndsAtTodayOldestFirst(t *testing.T) {
	today := time.Date(2026, time.August, 15, 16, 45, 0, 0, time.UTC)
	days := LastNDays(7, today, time.UTC)

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[len(days)-1].Format(DayKeyLayout) != "2026-08-15" {
		t.Fatalf("expected window to end at today, got %s", days[len(days)-1].Format(DayKeyLayout))
	}
	for index := 1; index < len(days); index++ {
		if DaysBetween(days[index], days[index-1]) != 1 {
			t.Fatalf("expected strictly consecutive days at position %d", index)
		}
	}
}

func TestLastNDaysHandlesNonPositiveWindow(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	if days := LastNDays(0, today, time.UTC); len(days) != 0 {
		t.Fatalf("expected empty window for n=0, got %d days", len(days))
	}
	if days := LastNDays(-3, today, time.UTC); len(days) != 0 {
		t.Fatalf("expected empty window for negative n, got %d days", len(days))
	}
}

func TestLastWeekUsesDefaultWindowSize(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	days := LastWeek(today, time.UTC)

	if len(days) != DefaultCalendarWindowDays {
		t.Fatalf("expected %d days, got %d", DefaultCalendarWindowDays, len(days))
	}
	if days[0].Format(DayKeyLayout) != "2026-08-09" {
		t.Fatalf("expected window to open six days back, got %s", days[0].Format(DayKeyLayout))
	}
}
