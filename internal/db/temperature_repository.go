package db

import (
	"time"

	"github.com/noctiluca/thermia/internal/models"
	"gorm.io/gorm"
)

type TemperatureRepository struct {
	database *gorm.DB
}

func NewTemperatureRepository(database *gorm.DB) *TemperatureRepository {
	return &TemperatureRepository{database: database}
}

func (repo *TemperatureRepository) List() ([]models.TemperatureReading, error) {
	readings := make([]models.TemperatureReading, 0)
	if err := repo.database.Order("timestamp ASC, id ASC").Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

// ListRange returns readings between two days, both inclusive. The bounds
// arrive as midnight of the requested days, so the upper bound covers the
// whole final day.
func (repo *TemperatureRepository) ListRange(from *time.Time, to *time.Time) ([]models.TemperatureReading, error) {
	query := repo.database.Model(&models.TemperatureReading{})
	if from != nil {
		query = query.Where("timestamp >= ?", *from)
	}
	if to != nil {
		query = query.Where("timestamp < ?", to.AddDate(0, 0, 1))
	}

	readings := make([]models.TemperatureReading, 0)
	if err := query.Order("timestamp ASC, id ASC").Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (repo *TemperatureRepository) Create(reading *models.TemperatureReading) error {
	return repo.database.Create(reading).Error
}

func (repo *TemperatureRepository) DeleteByID(readingID uint) (bool, error) {
	result := repo.database.Delete(&models.TemperatureReading{}, readingID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *TemperatureRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := repo.database.Where("timestamp < ?", cutoff).Delete(&models.TemperatureReading{})
	return result.RowsAffected, result.Error
}
