package services

import (
	"math"
	"time"
)

// SuccessRate returns the rounded percentage of elapsed days with a check-in.
// Elapsed days include both the start date and today; a start date in the
// future yields 0. Distinct days are counted, not raw check-in events.
func SuccessRate(ledger *CheckInLedger, startDate time.Time, today time.Time) int {
	elapsedDays := DaysBetween(today, startDate) + 1
	if elapsedDays <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(ledger.Size()) / float64(elapsedDays)))
}
