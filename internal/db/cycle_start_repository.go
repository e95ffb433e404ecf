package db

import (
	"time"

	"github.com/noctiluca/thermia/internal/models"
	"gorm.io/gorm"
)

type CycleStartRepository struct {
	database *gorm.DB
}

func NewCycleStartRepository(database *gorm.DB) *CycleStartRepository {
	return &CycleStartRepository{database: database}
}

func (repo *CycleStartRepository) List() ([]models.CycleStart, error) {
	starts := make([]models.CycleStart, 0)
	if err := repo.database.Order("start_date ASC, id ASC").Find(&starts).Error; err != nil {
		return nil, err
	}
	return starts, nil
}

func (repo *CycleStartRepository) ListDates() ([]time.Time, error) {
	starts, err := repo.List()
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(starts))
	for _, start := range starts {
		dates = append(dates, start.StartDate)
	}
	return dates, nil
}

func (repo *CycleStartRepository) Create(start *models.CycleStart) error {
	return repo.database.Create(start).Error
}

func (repo *CycleStartRepository) DeleteByID(startID uint) (bool, error) {
	result := repo.database.Delete(&models.CycleStart{}, startID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *CycleStartRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := repo.database.Where("start_date < ?", cutoff).Delete(&models.CycleStart{})
	return result.RowsAffected, result.Error
}
