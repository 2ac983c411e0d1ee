package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/habithero/internal/models"
)

func ledgerForDays(t *testing.T, days ...time.Time) *CheckInLedger {
	t.Helper()
	checkIns := make([]models.CheckIn, 0, len(days))
	for _, day := range days {
		checkIns = append(checkIns, models.CheckIn{Date: day})
	}
	return NewCheckInLedger(checkIns, time.UTC)
}

func TestCurrentStreakIsZeroWhenTodayIsUnchecked(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	ledger := ledgerForDays(t, AddDays(today, -1), AddDays(today, -2), AddDays(today, -3))

	if got := CurrentStreak(ledger, today); got != 0 {
		t.Fatalf("expected streak 0 when today is missing, got %d", got)
	}
}

func TestCurrentStreakStopsAtFirstGap(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	// today and yesterday checked, two days ago missing.
	ledger := ledgerForDays(t, today, AddDays(today, -1), AddDays(today, -3))

	if got := CurrentStreak(ledger, today); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
}

func TestCurrentStreakCountsFullConsecutiveRun(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	ledger := ledgerForDays(t, today, AddDays(today, -1), AddDays(today, -2), AddDays(today, -3))

	if got := CurrentStreak(ledger, today); got != 4 {
		t.Fatalf("expected streak 4, got %d", got)
	}
}

func TestCurrentStreakNeverExceedsLedgerSize(t *testing.T) {
	today := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	ledgers := []*CheckInLedger{
		ledgerForDays(t),
		ledgerForDays(t, today),
		ledgerForDays(t, today, AddDays(today, -1), AddDays(today, -5)),
		ledgerForDays(t, AddDays(today, -2)),
	}

	for index, ledger := range ledgers {
		if streak := CurrentStreak(ledger, today); streak > ledger.Size() {
			t.Fatalf("case %d: streak %d exceeds ledger size %d", index, streak, ledger.Size())
		}
	}
}
