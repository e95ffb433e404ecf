package services

import (
	"testing"
	"time"
)

type recordingRetentionStore struct {
	cutoff  time.Time
	removed int64
}

func (stub *recordingRetentionStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	stub.cutoff = cutoff
	return stub.removed, nil
}

func TestMaintenanceServiceCleanupOldData(t *testing.T) {
	readings := &recordingRetentionStore{removed: 3}
	notes := &recordingRetentionStore{removed: 2}
	cycles := &recordingRetentionStore{removed: 1}
	service := NewMaintenanceService(readings, notes, cycles, newTestAnalyzer("2024-03-20"))

	result, err := service.CleanupOldData(0)
	if err != nil {
		t.Fatalf("CleanupOldData() unexpected error: %v", err)
	}
	if result.ReadingsRemoved != 3 || result.NotesRemoved != 2 || result.CycleStartsRemoved != 1 {
		t.Fatalf("unexpected cleanup result: %#v", result)
	}

	wantCutoff := mustParseDay("2024-03-20").AddDate(0, 0, -DefaultRetentionDays)
	if !readings.cutoff.Equal(wantCutoff) {
		t.Fatalf("expected default retention cutoff %s, got %s",
			wantCutoff.Format("2006-01-02"), readings.cutoff.Format("2006-01-02"))
	}

	if _, err := service.CleanupOldData(30); err != nil {
		t.Fatalf("CleanupOldData(30) unexpected error: %v", err)
	}
	if !readings.cutoff.Equal(mustParseDay("2024-02-19")) {
		t.Fatalf("expected 30-day cutoff 2024-02-19, got %s", readings.cutoff.Format("2006-01-02"))
	}
}
