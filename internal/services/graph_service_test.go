package services

import (
	"testing"
	"time"

	"github.com/noctiluca/thermia/internal/models"
)

func TestBuildGraphSeries(t *testing.T) {
	starts := []time.Time{mustParseDay("2024-03-01")}
	readings := []models.TemperatureReading{
		makeMorningReading("2024-03-08", 36.5),
		makeMorningReading("2024-02-20", 36.4), // before tracking began
	}

	points := BuildGraphSeries(readings, starts)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	untracked := points[0]
	if untracked.CycleDay != nil || untracked.Color != "" {
		t.Fatalf("expected uncolored point before tracking began, got %#v", untracked)
	}

	tracked := points[1]
	if tracked.CycleDay == nil || *tracked.CycleDay != 8 {
		t.Fatalf("expected cycle day 8, got %#v", tracked.CycleDay)
	}
	if tracked.Phase != PhaseFollicular {
		t.Fatalf("expected follicular phase, got %s", tracked.Phase)
	}
	if tracked.Color != PhaseColors[PhaseFollicular] {
		t.Fatalf("expected follicular color, got %s", tracked.Color)
	}
	if tracked.Fahrenheit != 97.7 {
		t.Fatalf("expected 97.7F for 36.5C, got %f", tracked.Fahrenheit)
	}
}
