package db

import (
	"time"

	"github.com/rizeup/breadlog/internal/models"
	"gorm.io/gorm"
)

type DoughMakeRepository struct {
	database *gorm.DB
}

func NewDoughMakeRepository(database *gorm.DB) *DoughMakeRepository {
	return &DoughMakeRepository{database: database}
}

// dayBounds normalizes a calendar date to its UTC day window. Dates are stored
// as day-start instants; range matching keeps lookups independent of how the
// driver renders the stored value.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func (repo *DoughMakeRepository) Insert(doughMake *models.DoughMake) error {
	dayStart, _ := dayBounds(doughMake.Date)
	doughMake.Date = dayStart
	return repo.database.Create(doughMake).Error
}

func (repo *DoughMakeRepository) FindByIdentity(name string, day time.Time, createdAt time.Time) (models.DoughMake, bool, error) {
	dayStart, dayEnd := dayBounds(day)

	entry := models.DoughMake{}
	result := repo.database.
		Where("name = ? AND date >= ? AND date < ? AND created_at = ?", name, dayStart, dayEnd, createdAt).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DoughMake{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DoughMake{}, false, nil
	}
	return entry, true, nil
}

func (repo *DoughMakeRepository) ListByDate(day time.Time) ([]models.DoughMake, error) {
	dayStart, dayEnd := dayBounds(day)

	makes := make([]models.DoughMake, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Find(&makes).Error; err != nil {
		return nil, err
	}
	return makes, nil
}

func (repo *DoughMakeRepository) UpdateFields(name string, day time.Time, createdAt time.Time, updates map[string]any) (int64, error) {
	dayStart, dayEnd := dayBounds(day)

	result := repo.database.
		Model(&models.DoughMake{}).
		Where("name = ? AND date >= ? AND date < ? AND created_at = ?", name, dayStart, dayEnd, createdAt).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (repo *DoughMakeRepository) Delete(name string, day time.Time, createdAt time.Time) (int64, error) {
	dayStart, dayEnd := dayBounds(day)

	result := repo.database.
		Where("name = ? AND date >= ? AND date < ? AND created_at = ?", name, dayStart, dayEnd, createdAt).
		Delete(&models.DoughMake{})
	return result.RowsAffected, result.Error
}
