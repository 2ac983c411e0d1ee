package services

import "time"

const DefaultCalendarWindowDays = 7

// LastNDays returns n consecutive calendar days ending at and including
// today, oldest first.
func LastNDays(n int, today time.Time, location *time.Location) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	days := make([]time.Time, 0, n)
	end := DateAtLocation(today, location)
	for offset := n - 1; offset >= 0; offset-- {
		days = append(days, end.AddDate(0, 0, -offset))
	}
	return days
}

func LastWeek(today time.Time, location *time.Location) []time.Time {
	return LastNDays(DefaultCalendarWindowDays, today, location)
}
