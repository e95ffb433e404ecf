package services

import (
	"math"
	"sort"
	"time"

	"github.com/noctiluca/thermia/internal/models"
)

// Minimum sample sizes below which the analyzer reports nothing. Absence is
// the normal "need more data" state, never an error.
const (
	minShiftReadings  = 10
	shiftWindowDays   = 35
	minBucketReadings = 3
)

// Analyzer derives cycle information from readings and declared cycle
// starts. It holds no data of its own; the clock is injectable so every
// computation is reproducible in tests.
type Analyzer struct {
	now func() time.Time
}

func NewAnalyzer() *Analyzer {
	return NewAnalyzerAt(time.Now)
}

func NewAnalyzerAt(now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{now: now}
}

func (analyzer *Analyzer) Today() time.Time {
	return DateOnly(analyzer.now())
}

type CurrentCycleInfo struct {
	CycleDay   int       `json:"cycle_day"`
	Phase      Phase     `json:"phase"`
	CycleStart time.Time `json:"cycle_start"`
}

// CurrentCycleInfo locates today inside the most recent cycle. Nil when no
// start has been declared, or every declared start is in the future.
func (analyzer *Analyzer) CurrentCycleInfo(starts []time.Time) *CurrentCycleInfo {
	if len(starts) == 0 {
		return nil
	}

	today := analyzer.Today()
	cycleDay, known := CycleDayForDate(today, starts)
	if !known {
		return nil
	}

	return &CurrentCycleInfo{
		CycleDay:   cycleDay,
		Phase:      PhaseForCycleDay(cycleDay),
		CycleStart: today.AddDate(0, 0, -(cycleDay - 1)),
	}
}

type TemperatureShift struct {
	FollicularAvg   float64 `json:"follicular_avg"`
	LutealAvg       float64 `json:"luteal_avg"`
	ShiftCelsius    float64 `json:"shift_celsius"`
	ShiftFahrenheit float64 `json:"shift_fahrenheit"`
}

// TemperatureShift estimates the post-ovulatory temperature rise from the
// last 35 days of readings. Follicular bucket is cycle day 6-12, luteal is
// day 17 and later; menstrual and ovulatory days are discarded. The sign of
// the shift is informational and never corrected.
func (analyzer *Analyzer) TemperatureShift(readings []models.TemperatureReading, starts []time.Time) *TemperatureShift {
	if len(readings) < minShiftReadings {
		return nil
	}

	windowed := analyzer.recentReadings(readings, shiftWindowDays)
	if len(windowed) < minShiftReadings {
		return nil
	}

	follicular := make([]float64, 0, len(windowed))
	luteal := make([]float64, 0, len(windowed))
	for _, reading := range windowed {
		cycleDay, known := CycleDayForDate(reading.Timestamp, starts)
		if !known {
			continue
		}
		switch {
		case cycleDay > MenstrualMaxDay && cycleDay <= FollicularMaxDay:
			follicular = append(follicular, reading.TemperatureCelsius)
		case cycleDay > OvulatoryMaxDay:
			luteal = append(luteal, reading.TemperatureCelsius)
		}
	}

	if len(follicular) < minBucketReadings || len(luteal) < minBucketReadings {
		return nil
	}

	follicularAvg := mean(follicular)
	lutealAvg := mean(luteal)
	shift := lutealAvg - follicularAvg

	return &TemperatureShift{
		FollicularAvg:   follicularAvg,
		LutealAvg:       lutealAvg,
		ShiftCelsius:    shift,
		ShiftFahrenheit: shift * 9 / 5,
	}
}

// PhaseDistribution counts all readings by the phase their date falls in.
// Readings that predate every cycle start are skipped. Nil when either
// collection is empty.
func (analyzer *Analyzer) PhaseDistribution(readings []models.TemperatureReading, starts []time.Time) map[Phase]int {
	if len(readings) == 0 || len(starts) == 0 {
		return nil
	}

	counts := make(map[Phase]int, 4)
	for _, phase := range AllPhases() {
		counts[phase] = 0
	}

	for _, reading := range readings {
		cycleDay, known := CycleDayForDate(reading.Timestamp, starts)
		if !known {
			continue
		}
		counts[PhaseForCycleDay(cycleDay)]++
	}

	return counts
}

// recentReadings keeps readings whose date falls within the trailing window,
// approximating "the current cycle".
func (analyzer *Analyzer) recentReadings(readings []models.TemperatureReading, windowDays int) []models.TemperatureReading {
	cutoff := analyzer.Today().AddDate(0, 0, -windowDays)

	recent := make([]models.TemperatureReading, 0, len(readings))
	for _, reading := range readings {
		if !DateOnly(reading.Timestamp).Before(cutoff) {
			recent = append(recent, reading)
		}
	}
	return recent
}

func sortReadingsChronologically(readings []models.TemperatureReading) []models.TemperatureReading {
	sorted := make([]models.TemperatureReading, 0, len(readings))
	sorted = append(sorted, readings...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation, 0 when fewer than two values.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	average := mean(values)
	var sumSquares float64
	for _, value := range values {
		delta := value - average
		sumSquares += delta * delta
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}
