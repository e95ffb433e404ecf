package services

import (
	"time"

	"github.com/noctiluca/thermia/internal/models"
)

// Cycle lengths outside this range are treated as data-entry mistakes
// (duplicate start mis-clicks, typo years) and dropped from statistics.
const (
	MinPlausibleCycleDays = 15
	MaxPlausibleCycleDays = 45
)

// predictionLutealDays is the fixed luteal-phase assumption used to place
// ovulation before a predicted period. Intentionally its own constant:
// CycleStatistics reports StandardLutealDays as a descriptive figure, while
// this one drives the prediction arithmetic.
const predictionLutealDays = 14

const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

const highConfidenceCycleCount = 3

// CycleLengths returns the day counts between consecutive cycle starts, in
// chronological order, with implausible lengths omitted.
func CycleLengths(starts []time.Time) []int {
	days := sortedStartDays(starts)
	if len(days) < 2 {
		return nil
	}

	lengths := make([]int, 0, len(days)-1)
	for index := 1; index < len(days); index++ {
		length := daysBetween(days[index-1], days[index])
		if length < MinPlausibleCycleDays || length > MaxPlausibleCycleDays {
			continue
		}
		lengths = append(lengths, length)
	}
	return lengths
}

type CycleStatistics struct {
	AverageCycleLength float64 `json:"avg_cycle_length"`
	CycleLengthStdDev  float64 `json:"cycle_length_std"`
	MinCycleLength     int     `json:"min_cycle_length"`
	MaxCycleLength     int     `json:"max_cycle_length"`
	AvgFollicularPhase int     `json:"avg_follicular_phase"`
	AvgLutealPhase     int     `json:"avg_luteal_phase"`
	AvgTempShift       float64 `json:"avg_temp_shift"`
}

// CycleStatistics summarizes historical cycle lengths. Requires at least two
// declared starts and one plausible length; otherwise nil. The follicular
// and luteal figures are the standard approximations, not measurements.
func (analyzer *Analyzer) CycleStatistics(readings []models.TemperatureReading, starts []time.Time) *CycleStatistics {
	if len(starts) < 2 {
		return nil
	}

	lengths := CycleLengths(starts)
	if len(lengths) == 0 {
		return nil
	}

	values := make([]float64, 0, len(lengths))
	minLength := lengths[0]
	maxLength := lengths[0]
	for _, length := range lengths {
		values = append(values, float64(length))
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	avgShift := 0.0
	if shift := analyzer.TemperatureShift(readings, starts); shift != nil {
		avgShift = shift.ShiftCelsius
	}

	return &CycleStatistics{
		AverageCycleLength: mean(values),
		CycleLengthStdDev:  sampleStdDev(values),
		MinCycleLength:     minLength,
		MaxCycleLength:     maxLength,
		AvgFollicularPhase: StandardFollicularDays,
		AvgLutealPhase:     StandardLutealDays,
		AvgTempShift:       avgShift,
	}
}

type CyclePredictions struct {
	NextPeriod    *time.Time `json:"next_period"`
	NextOvulation *time.Time `json:"next_ovulation"`
	Confidence    string     `json:"confidence"`
}

// PredictCycleEvents extrapolates the next period from the mean plausible
// cycle length (truncated to whole days) and places ovulation a fixed
// luteal-phase length before it. Fewer than two starts, or no plausible
// lengths, yields empty dates with low confidence.
func (analyzer *Analyzer) PredictCycleEvents(starts []time.Time) CyclePredictions {
	predictions := CyclePredictions{Confidence: ConfidenceLow}

	days := sortedStartDays(starts)
	if len(days) < 2 {
		return predictions
	}

	lengths := CycleLengths(starts)
	if len(lengths) == 0 {
		return predictions
	}

	values := make([]float64, 0, len(lengths))
	for _, length := range lengths {
		values = append(values, float64(length))
	}
	averageLength := int(mean(values))

	lastStart := days[len(days)-1]
	nextPeriod := lastStart.AddDate(0, 0, averageLength)
	nextOvulation := nextPeriod.AddDate(0, 0, -predictionLutealDays)

	predictions.NextPeriod = &nextPeriod
	predictions.NextOvulation = &nextOvulation
	if len(lengths) >= highConfidenceCycleCount {
		predictions.Confidence = ConfidenceHigh
	} else {
		predictions.Confidence = ConfidenceMedium
	}
	return predictions
}
