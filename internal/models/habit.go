package models

import "time"

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

const (
	CategoryHealth       = "health"
	CategoryWork         = "work"
	CategoryLearning     = "learning"
	CategoryFitness      = "fitness"
	CategoryMentalHealth = "mental health"
	CategoryProductivity = "productivity"
)

type Habit struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Frequency string    `gorm:"not null;default:daily"`
	Category  string    `gorm:"not null;default:health"`
	StartDate time.Time `gorm:"type:date;not null"`
	CheckIns  []CheckIn `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
	Notes     []Note    `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"not null"`
}

type CheckIn struct {
	ID      uint      `gorm:"primaryKey"`
	HabitID uint      `gorm:"not null;index:idx_check_ins_habit_date"`
	Date    time.Time `gorm:"type:date;not null;index:idx_check_ins_habit_date"`
}

type Note struct {
	ID        uint      `gorm:"primaryKey"`
	HabitID   uint      `gorm:"not null;index"`
	Text      string    `gorm:"not null"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func ValidFrequencies() []string {
	return []string{FrequencyDaily, FrequencyWeekly}
}

func ValidCategories() []string {
	return []string{
		CategoryHealth,
		CategoryWork,
		CategoryLearning,
		CategoryFitness,
		CategoryMentalHealth,
		CategoryProductivity,
	}
}
