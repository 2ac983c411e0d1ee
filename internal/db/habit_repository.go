package db

import (
	"time"

	"github.com/terraincognita07/habithero/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListAll() ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Preload("CheckIns", func(query *gorm.DB) *gorm.DB {
			return query.Order("check_ins.id ASC")
		}).
		Preload("Notes", func(query *gorm.DB) *gorm.DB {
			return query.Order("notes.id ASC")
		}).
		Order("id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByID(habitID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Preload("CheckIns", func(query *gorm.DB) *gorm.DB {
			return query.Order("check_ins.id ASC")
		}).
		Preload("Notes", func(query *gorm.DB) *gorm.DB {
			return query.Order("notes.id ASC")
		}).
		Limit(1).
		Find(&habit, "id = ?", habitID)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Delete(habitID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.CheckIn{}).Error; err != nil {
			return err
		}
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, habitID).Error
	})
}

func (repo *HabitRepository) FindCheckInByDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.CheckIn, bool, error) {
	checkIn := models.CheckIn{}
	result := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Order("id ASC").
		Limit(1).
		Find(&checkIn)
	if result.Error != nil {
		return models.CheckIn{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CheckIn{}, false, nil
	}
	return checkIn, true, nil
}

func (repo *HabitRepository) CreateCheckIn(checkIn *models.CheckIn) error {
	return repo.database.Create(checkIn).Error
}

func (repo *HabitRepository) DeleteCheckIn(checkInID uint) error {
	return repo.database.Delete(&models.CheckIn{}, checkInID).Error
}

func (repo *HabitRepository) CreateNote(note *models.Note) error {
	return repo.database.Create(note).Error
}
