package services

// BestDayNoData is returned when a habit has no check-ins to aggregate.
const BestDayNoData = "No data"

// BestDay returns the weekday with the most check-ins. Ties resolve to the
// weekday seen first in the ledger's insertion order.
func BestDay(ledger *CheckInLedger) string {
	days := ledger.Days()
	if len(days) == 0 {
		return BestDayNoData
	}

	counts := make(map[string]int, 7)
	order := make([]string, 0, 7)
	for _, day := range days {
		name := WeekdayName(day)
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	bestName := ""
	bestCount := 0
	for _, name := range order {
		if counts[name] > bestCount {
			bestName = name
			bestCount = counts[name]
		}
	}
	return bestName
}
