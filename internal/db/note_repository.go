package db

import (
	"time"

	"github.com/noctiluca/thermia/internal/models"
	"gorm.io/gorm"
)

type NoteRepository struct {
	database *gorm.DB
}

func NewNoteRepository(database *gorm.DB) *NoteRepository {
	return &NoteRepository{database: database}
}

func (repo *NoteRepository) List() ([]models.Note, error) {
	notes := make([]models.Note, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// ListRange returns notes between two days, both inclusive, mirroring the
// temperature repository's bound handling.
func (repo *NoteRepository) ListRange(from *time.Time, to *time.Time) ([]models.Note, error) {
	query := repo.database.Model(&models.Note{})
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date < ?", to.AddDate(0, 0, 1))
	}

	notes := make([]models.Note, 0)
	if err := query.Order("date ASC, id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *NoteRepository) Create(note *models.Note) error {
	return repo.database.Create(note).Error
}

func (repo *NoteRepository) DeleteByID(noteID uint) (bool, error) {
	result := repo.database.Delete(&models.Note{}, noteID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *NoteRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := repo.database.Where("date < ?", cutoff).Delete(&models.Note{})
	return result.RowsAffected, result.Error
}
