package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/terraincognita07/habithero/internal/services"
)

func parseHabitIDParam(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid habit id")
	}
	return uint(parsed), nil
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation(services.DayKeyLayout, raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return services.DateAtLocation(parsed, location), nil
}
