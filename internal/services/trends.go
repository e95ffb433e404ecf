package services

import "github.com/noctiluca/thermia/internal/models"

const (
	minTrendReadings    = 7
	trendWindowReadings = 30
	trendSlopeDeadband  = 0.01
)

const (
	TrendIncreasing = "Increasing"
	TrendDecreasing = "Decreasing"
	TrendStable     = "Stable"
)

type TrendAnalysis struct {
	Direction        string  `json:"trend_direction"`
	ConsistencyScore float64 `json:"consistency_score"`
	AnalysisText     string  `json:"analysis_text"`
}

// AnalyzeTrends fits a least-squares line through the last 30 readings and
// scores how tightly they cluster. The slope unit is degrees Celsius per
// reading step, not per day. Nil with fewer than 7 readings.
func AnalyzeTrends(readings []models.TemperatureReading) *TrendAnalysis {
	if len(readings) < minTrendReadings {
		return nil
	}

	sorted := sortReadingsChronologically(readings)
	if len(sorted) > trendWindowReadings {
		sorted = sorted[len(sorted)-trendWindowReadings:]
	}

	temps := make([]float64, 0, len(sorted))
	for _, reading := range sorted {
		temps = append(temps, reading.TemperatureCelsius)
	}

	slope := leastSquaresSlope(temps)
	direction := TrendStable
	switch {
	case slope > trendSlopeDeadband:
		direction = TrendIncreasing
	case slope < -trendSlopeDeadband:
		direction = TrendDecreasing
	}

	score := 10 - sampleStdDev(temps)*10
	if score < 0 {
		score = 0
	}

	return &TrendAnalysis{
		Direction:        direction,
		ConsistencyScore: score,
		AnalysisText:     consistencyAnalysisText(score),
	}
}

func consistencyAnalysisText(score float64) string {
	switch {
	case score >= 8:
		return "Your temperature readings show excellent consistency."
	case score >= 6:
		return "Your temperature readings show good consistency."
	case score >= 4:
		return "Your temperature readings show moderate consistency."
	default:
		return "Consider taking temperature at the same time daily for better consistency."
	}
}

// leastSquaresSlope fits y = a + b*x over x = 0..n-1 and returns b.
func leastSquaresSlope(values []float64) float64 {
	n := float64(len(values))
	if len(values) < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for index, value := range values {
		x := float64(index)
		sumX += x
		sumY += value
		sumXY += x * value
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denominator
}
