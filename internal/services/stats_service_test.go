package services

import (
	"errors"
	"testing"
	"time"

	"github.com/noctiluca/thermia/internal/models"
)

type stubStatsTemperatureReader struct {
	readings []models.TemperatureReading
	err      error
}

func (stub *stubStatsTemperatureReader) List() ([]models.TemperatureReading, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.TemperatureReading, len(stub.readings))
	copy(result, stub.readings)
	return result, nil
}

type stubStatsCycleReader struct {
	dates []time.Time
	err   error
}

func (stub *stubStatsCycleReader) ListDates() ([]time.Time, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]time.Time, len(stub.dates))
	copy(result, stub.dates)
	return result, nil
}

func TestStatsServiceBuildOverview(t *testing.T) {
	readings := shiftScenarioReadings()
	starts := []time.Time{
		mustParseDay("2024-01-04"),
		mustParseDay("2024-02-02"),
		mustParseDay("2024-03-01"),
	}

	service := NewStatsService(
		&stubStatsTemperatureReader{readings: readings},
		&stubStatsCycleReader{dates: starts},
		newTestAnalyzer("2024-03-20"),
	)

	overview, err := service.BuildOverview()
	if err != nil {
		t.Fatalf("BuildOverview() unexpected error: %v", err)
	}

	if overview.ReadingCount != 10 || overview.CycleStartCount != 3 {
		t.Fatalf("unexpected counts: %d readings, %d starts", overview.ReadingCount, overview.CycleStartCount)
	}
	if overview.CurrentCycle == nil || overview.CurrentCycle.CycleDay != 20 {
		t.Fatalf("expected current cycle day 20, got %#v", overview.CurrentCycle)
	}
	if overview.TemperatureShift == nil {
		t.Fatalf("expected a temperature shift section")
	}
	if overview.CycleStatistics == nil {
		t.Fatalf("expected cycle statistics")
	}
	if overview.Predictions.Confidence != ConfidenceMedium {
		t.Fatalf("expected medium prediction confidence, got %s", overview.Predictions.Confidence)
	}
	if overview.PhaseDistribution == nil {
		t.Fatalf("expected a phase distribution")
	}
	if overview.Trend == nil {
		t.Fatalf("expected a trend section")
	}
	if overview.Temperatures == nil {
		t.Fatalf("expected temperature statistics")
	}
}

func TestStatsServiceEmptyDatasetYieldsAbsentSections(t *testing.T) {
	service := NewStatsService(
		&stubStatsTemperatureReader{},
		&stubStatsCycleReader{},
		newTestAnalyzer("2024-03-20"),
	)

	overview, err := service.BuildOverview()
	if err != nil {
		t.Fatalf("BuildOverview() unexpected error: %v", err)
	}
	if overview.CurrentCycle != nil || overview.TemperatureShift != nil ||
		overview.CycleStatistics != nil || overview.PhaseDistribution != nil ||
		overview.Trend != nil || overview.Temperatures != nil {
		t.Fatalf("expected every section absent on an empty dataset, got %#v", overview)
	}
	if overview.Predictions.Confidence != ConfidenceLow {
		t.Fatalf("expected low prediction confidence, got %s", overview.Predictions.Confidence)
	}
}

func TestStatsServicePropagatesReaderErrors(t *testing.T) {
	service := NewStatsService(
		&stubStatsTemperatureReader{err: errors.New("load failed")},
		&stubStatsCycleReader{},
		newTestAnalyzer("2024-03-20"),
	)

	if _, err := service.BuildOverview(); err == nil {
		t.Fatalf("expected error when readings cannot be loaded")
	}
}
