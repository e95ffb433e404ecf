package services

import "time"

// DefaultRetentionDays keeps roughly two years of history.
const DefaultRetentionDays = 730

type RetentionStore interface {
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type MaintenanceService struct {
	readings RetentionStore
	notes    RetentionStore
	cycles   RetentionStore
	analyzer *Analyzer
}

func NewMaintenanceService(readings RetentionStore, notes RetentionStore, cycles RetentionStore, analyzer *Analyzer) *MaintenanceService {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}
	return &MaintenanceService{
		readings: readings,
		notes:    notes,
		cycles:   cycles,
		analyzer: analyzer,
	}
}

type CleanupResult struct {
	ReadingsRemoved    int64 `json:"readings_removed"`
	NotesRemoved       int64 `json:"notes_removed"`
	CycleStartsRemoved int64 `json:"cycle_starts_removed"`
}

// CleanupOldData drops rows older than the retention window from all three
// collections.
func (service *MaintenanceService) CleanupOldData(retentionDays int) (CleanupResult, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	cutoff := service.analyzer.Today().AddDate(0, 0, -retentionDays)

	result := CleanupResult{}
	removed, err := service.readings.DeleteOlderThan(cutoff)
	if err != nil {
		return result, err
	}
	result.ReadingsRemoved = removed

	removed, err = service.notes.DeleteOlderThan(cutoff)
	if err != nil {
		return result, err
	}
	result.NotesRemoved = removed

	removed, err = service.cycles.DeleteOlderThan(cutoff)
	if err != nil {
		return result, err
	}
	result.CycleStartsRemoved = removed

	return result, nil
}
