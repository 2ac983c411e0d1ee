package services

import (
	"math"
	"time"

	"github.com/terraincognita07/habithero/internal/models"
)

// HabitStats is the display-ready statistics bundle for one habit. It is
// always derived from the check-in history and never persisted.
type HabitStats struct {
	Streak       int    `json:"streak"`
	SuccessRate  int    `json:"success_rate"`
	CheckInCount int    `json:"checkin_count"`
	BestDay      string `json:"best_day"`
	CheckedToday bool   `json:"checked_today"`
}

type DashboardStats struct {
	TotalHabits        int `json:"total_habits"`
	CompletedToday     int `json:"completed_today"`
	AverageSuccessRate int `json:"average_success_rate"`
	BestStreak         int `json:"best_streak"`
}

func BuildHabitStats(habit models.Habit, now time.Time, location *time.Location) HabitStats {
	ledger := NewCheckInLedger(habit.CheckIns, location)
	today := DateAtLocation(now, location)
	startDate := DateAtLocation(habit.StartDate, location)

	return HabitStats{
		Streak:       CurrentStreak(ledger, today),
		SuccessRate:  SuccessRate(ledger, startDate, today),
		CheckInCount: ledger.Size(),
		BestDay:      BestDay(ledger),
		CheckedToday: ledger.Contains(today),
	}
}

func BuildDashboardStats(habits []models.Habit, now time.Time, location *time.Location) DashboardStats {
	stats := DashboardStats{TotalHabits: len(habits)}
	if len(habits) == 0 {
		return stats
	}

	rateSum := 0
	for _, habit := range habits {
		habitStats := BuildHabitStats(habit, now, location)
		if habitStats.CheckedToday {
			stats.CompletedToday++
		}
		rateSum += habitStats.SuccessRate
		if habitStats.Streak > stats.BestStreak {
			stats.BestStreak = habitStats.Streak
		}
	}
	stats.AverageSuccessRate = int(math.Round(float64(rateSum) / float64(len(habits))))
	return stats
}
