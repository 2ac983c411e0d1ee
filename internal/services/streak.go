package services

import "time"

// CurrentStreak counts the consecutive days with a check-in, walking backward
// from today and stopping at the first absent day. A missing check-in today
// means the streak is 0 regardless of any earlier run.
func CurrentStreak(ledger *CheckInLedger, today time.Time) int {
	streak := 0
	for day := today; ledger.Contains(day); day = AddDays(day, -1) {
		streak++
	}
	return streak
}
