package services

import (
	"fmt"
	"testing"

	"github.com/noctiluca/thermia/internal/models"
)

func makeTrendReadings(count int, temperatureAt func(index int) float64) []models.TemperatureReading {
	readings := make([]models.TemperatureReading, 0, count)
	base := mustParseDay("2024-01-01")
	for index := 0; index < count; index++ {
		day := base.AddDate(0, 0, index)
		readings = append(readings, makeReading(day.Format("2006-01-02")+"T07:30", temperatureAt(index)))
	}
	return readings
}

func TestAnalyzeTrendsRequiresSevenReadings(t *testing.T) {
	readings := makeTrendReadings(6, func(int) float64 { return 36.5 })
	if trend := AnalyzeTrends(readings); trend != nil {
		t.Fatalf("expected nil trend with 6 readings, got %#v", trend)
	}
}

func TestAnalyzeTrendsDirections(t *testing.T) {
	increasing := makeTrendReadings(7, func(index int) float64 { return 36.5 + 0.02*float64(index) })
	trend := AnalyzeTrends(increasing)
	if trend == nil || trend.Direction != TrendIncreasing {
		t.Fatalf("expected Increasing for +0.02 per step, got %#v", trend)
	}

	decreasing := makeTrendReadings(7, func(index int) float64 { return 36.5 - 0.02*float64(index) })
	trend = AnalyzeTrends(decreasing)
	if trend == nil || trend.Direction != TrendDecreasing {
		t.Fatalf("expected Decreasing for -0.02 per step, got %#v", trend)
	}

	constant := makeTrendReadings(7, func(int) float64 { return 36.5 })
	trend = AnalyzeTrends(constant)
	if trend == nil || trend.Direction != TrendStable {
		t.Fatalf("expected Stable for a flat series, got %#v", trend)
	}
	if trend.ConsistencyScore != 10 {
		t.Fatalf("expected perfect consistency for a flat series, got %f", trend.ConsistencyScore)
	}
	if trend.AnalysisText != "Your temperature readings show excellent consistency." {
		t.Fatalf("unexpected analysis text: %s", trend.AnalysisText)
	}
}

func TestAnalyzeTrendsLowConsistencyMessage(t *testing.T) {
	noisy := makeTrendReadings(8, func(index int) float64 {
		if index%2 == 0 {
			return 36.0
		}
		return 37.5
	})

	trend := AnalyzeTrends(noisy)
	if trend == nil {
		t.Fatalf("expected a trend result")
	}
	if trend.ConsistencyScore >= 4 {
		t.Fatalf("expected a low consistency score, got %f", trend.ConsistencyScore)
	}
	if trend.AnalysisText != "Consider taking temperature at the same time daily for better consistency." {
		t.Fatalf("unexpected analysis text: %s", trend.AnalysisText)
	}
}

func TestAnalyzeTrendsUsesOnlyLastThirtyReadings(t *testing.T) {
	// Five wild early readings must fall outside the 30-reading window.
	readings := makeTrendReadings(35, func(index int) float64 {
		if index < 5 {
			return 39.0
		}
		return 36.5
	})

	trend := AnalyzeTrends(readings)
	if trend == nil {
		t.Fatalf("expected a trend result")
	}
	if trend.Direction != TrendStable {
		t.Fatalf("expected Stable once early outliers leave the window, got %s", trend.Direction)
	}
	if trend.ConsistencyScore != 10 {
		t.Fatalf("expected perfect consistency in the window, got %f", trend.ConsistencyScore)
	}
}

func TestAnalyzeTrendsIgnoresInputOrder(t *testing.T) {
	ordered := makeTrendReadings(10, func(index int) float64 { return 36.4 + 0.05*float64(index) })
	shuffled := make([]models.TemperatureReading, 0, len(ordered))
	for index := len(ordered) - 1; index >= 0; index-- {
		shuffled = append(shuffled, ordered[index])
	}

	trend := AnalyzeTrends(shuffled)
	if trend == nil || trend.Direction != TrendIncreasing {
		t.Fatalf("expected chronological sort before fitting, got %#v", trend)
	}
}

func TestConsistencyAnalysisTextTiers(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 9, want: "Your temperature readings show excellent consistency."},
		{score: 7, want: "Your temperature readings show good consistency."},
		{score: 5, want: "Your temperature readings show moderate consistency."},
		{score: 2, want: "Consider taking temperature at the same time daily for better consistency."},
	}

	for _, testCase := range tests {
		t.Run(fmt.Sprintf("score_%.0f", testCase.score), func(t *testing.T) {
			if got := consistencyAnalysisText(testCase.score); got != testCase.want {
				t.Fatalf("score %f: expected %q, got %q", testCase.score, testCase.want, got)
			}
		})
	}
}
