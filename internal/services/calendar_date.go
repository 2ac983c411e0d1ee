package services

import (
	"math"
	"time"
)

// DayKeyLayout is the canonical wire format for calendar dates.
const DayKeyLayout = "2006-01-02"

// DateAtLocation truncates a timestamp to midnight of its calendar day in the
// given location. Two timestamps on the same day normalize to equal values.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(DayKeyLayout)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween returns the whole-day difference between two normalized dates,
// positive when later is after earlier. Rounding absorbs DST hour shifts.
func DaysBetween(later time.Time, earlier time.Time) int {
	return int(math.Round(later.Sub(earlier).Hours() / 24))
}

func AddDays(value time.Time, days int) time.Time {
	return value.AddDate(0, 0, days)
}

func WeekdayName(value time.Time) string {
	return value.Weekday().String()
}
