package services

import (
	"time"

	"github.com/noctiluca/thermia/internal/models"
)

// GraphPoint is one plotted reading. CycleDay is nil before tracking began;
// such points are drawn uncolored.
type GraphPoint struct {
	Timestamp  string  `json:"timestamp"`
	Celsius    float64 `json:"temperature_celsius"`
	Fahrenheit float64 `json:"temperature_fahrenheit"`
	CycleDay   *int    `json:"cycle_day"`
	Phase      Phase   `json:"phase,omitempty"`
	Color      string  `json:"color,omitempty"`
}

// BuildGraphSeries produces the phase-colored series for the dashboard
// chart. It goes through the same cycle-day indexer as the statistics, so
// the chart and the analysis tab can never disagree on a date's phase.
func BuildGraphSeries(readings []models.TemperatureReading, starts []time.Time) []GraphPoint {
	sorted := sortReadingsChronologically(readings)

	points := make([]GraphPoint, 0, len(sorted))
	for _, reading := range sorted {
		point := GraphPoint{
			Timestamp:  reading.Timestamp.Format(time.RFC3339),
			Celsius:    reading.TemperatureCelsius,
			Fahrenheit: RoundTo2(CelsiusToFahrenheit(reading.TemperatureCelsius)),
		}

		if cycleDay, known := CycleDayForDate(reading.Timestamp, starts); known {
			day := cycleDay
			phase := PhaseForCycleDay(cycleDay)
			point.CycleDay = &day
			point.Phase = phase
			point.Color = PhaseColors[phase]
		}

		points = append(points, point)
	}
	return points
}
