package services

import (
	"time"

	"github.com/terraincognita07/habithero/internal/models"
)

// CheckInLedger is a habit's check-in history reduced to distinct calendar
// days. Duplicate check-ins for the same day collapse into one entry; the
// remaining days keep their first-seen insertion order.
type CheckInLedger struct {
	location *time.Location
	days     []time.Time
	present  map[string]struct{}
}

func NewCheckInLedger(checkIns []models.CheckIn, location *time.Location) *CheckInLedger {
	if location == nil {
		location = time.UTC
	}
	ledger := &CheckInLedger{
		location: location,
		days:     make([]time.Time, 0, len(checkIns)),
		present:  make(map[string]struct{}, len(checkIns)),
	}
	for _, checkIn := range checkIns {
		day := DateAtLocation(checkIn.Date, location)
		key := day.Format(DayKeyLayout)
		if _, exists := ledger.present[key]; exists {
			continue
		}
		ledger.present[key] = struct{}{}
		ledger.days = append(ledger.days, day)
	}
	return ledger
}

func (ledger *CheckInLedger) Contains(value time.Time) bool {
	_, exists := ledger.present[DayKey(value, ledger.location)]
	return exists
}

func (ledger *CheckInLedger) Size() int {
	return len(ledger.days)
}

// Days returns the distinct check-in days in first-seen order.
func (ledger *CheckInLedger) Days() []time.Time {
	days := make([]time.Time, len(ledger.days))
	copy(days, ledger.days)
	return days
}
