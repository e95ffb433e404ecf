package db

import (
	"github.com/noctiluca/thermia/internal/models"
	"gorm.io/gorm"
)

// Snapshot is the full persisted dataset as one value. It mirrors the
// exchange format of the upstream store: three flat collections. Readings
// and notes keep duplicates; cycle starts are set-like by date.
type Snapshot struct {
	Temperatures []models.TemperatureReading `json:"temperatures"`
	Notes        []models.Note               `json:"notes"`
	CycleStarts  []models.CycleStart         `json:"cycle_starts"`
}

type SnapshotRepository struct {
	database *gorm.DB
}

func NewSnapshotRepository(database *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{database: database}
}

func (repo *SnapshotRepository) Load() (Snapshot, error) {
	snapshot := Snapshot{
		Temperatures: make([]models.TemperatureReading, 0),
		Notes:        make([]models.Note, 0),
		CycleStarts:  make([]models.CycleStart, 0),
	}

	if err := repo.database.Order("timestamp ASC, id ASC").Find(&snapshot.Temperatures).Error; err != nil {
		return Snapshot{}, err
	}
	if err := repo.database.Order("date ASC, id ASC").Find(&snapshot.Notes).Error; err != nil {
		return Snapshot{}, err
	}
	if err := repo.database.Order("start_date ASC, id ASC").Find(&snapshot.CycleStarts).Error; err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// Replace implements full-replace save semantics: every row of the three
// collections is deleted and the snapshot reinserted in one transaction.
func (repo *SnapshotRepository) Replace(snapshot Snapshot) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TemperatureReading{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.CycleStart{}).Error; err != nil {
			return err
		}

		for index := range snapshot.Temperatures {
			reading := snapshot.Temperatures[index]
			reading.ID = 0
			if err := tx.Create(&reading).Error; err != nil {
				return err
			}
		}
		for index := range snapshot.Notes {
			note := snapshot.Notes[index]
			note.ID = 0
			if err := tx.Create(&note).Error; err != nil {
				return err
			}
		}
		// Cycle starts are set-like: the date column carries a unique
		// index, so duplicate declarations in an imported snapshot
		// collapse to one row instead of aborting the transaction.
		seenStartDates := make(map[string]struct{}, len(snapshot.CycleStarts))
		for index := range snapshot.CycleStarts {
			start := snapshot.CycleStarts[index]
			dateKey := start.StartDate.Format("2006-01-02")
			if _, duplicate := seenStartDates[dateKey]; duplicate {
				continue
			}
			seenStartDates[dateKey] = struct{}{}
			start.ID = 0
			if err := tx.Create(&start).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
