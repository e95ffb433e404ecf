package services

import (
	"sort"
	"time"
)

type Phase string

const (
	PhaseMenstrual  Phase = "Menstrual"
	PhaseFollicular Phase = "Follicular"
	PhaseOvulatory  Phase = "Ovulatory"
	PhaseLuteal     Phase = "Luteal"
)

// Fixed phase boundaries in cycle days. These are population heuristics,
// deliberately not derived from the individual's history; a personalization
// feature would override them here, not in the algorithms.
const (
	MenstrualMaxDay  = 5
	FollicularMaxDay = 12
	OvulatoryMaxDay  = 16
)

// Standard textbook phase lengths reported by CycleStatistics. Not measured.
const (
	StandardFollicularDays = 14
	StandardLutealDays     = 14
)

// PhaseColors matches the dashboard's fixed palette.
var PhaseColors = map[Phase]string{
	PhaseMenstrual:  "#FF6B6B",
	PhaseFollicular: "#4ECDC4",
	PhaseOvulatory:  "#45B7D1",
	PhaseLuteal:     "#96CEB4",
}

func AllPhases() []Phase {
	return []Phase{PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal}
}

// PhaseForCycleDay classifies a 1-based cycle day. Total over all integers;
// anything past the ovulatory boundary counts as luteal.
func PhaseForCycleDay(day int) Phase {
	switch {
	case day <= MenstrualMaxDay:
		return PhaseMenstrual
	case day <= FollicularMaxDay:
		return PhaseFollicular
	case day <= OvulatoryMaxDay:
		return PhaseOvulatory
	default:
		return PhaseLuteal
	}
}

// CycleDayForDate maps a calendar date to its 1-based cycle day given the
// recorded cycle starts. Day 1 is the start date itself. Returns false when
// the date predates every recorded start (tracking had not begun yet) or no
// starts exist.
func CycleDayForDate(target time.Time, starts []time.Time) (int, bool) {
	targetDay := DateOnly(target)

	currentStart := time.Time{}
	for _, start := range sortedStartDays(starts) {
		if start.After(targetDay) {
			break
		}
		currentStart = start
	}

	if currentStart.IsZero() {
		return 0, false
	}
	return daysBetween(currentStart, targetDay) + 1, true
}

// sortedStartDays normalizes cycle starts to midnight, sorts ascending and
// drops duplicate days. The external store guarantees neither order nor
// uniqueness, so every caller goes through here.
func sortedStartDays(starts []time.Time) []time.Time {
	days := make([]time.Time, 0, len(starts))
	seen := make(map[string]struct{}, len(starts))
	for _, start := range starts {
		day := DateOnly(start)
		key := day.Format("2006-01-02")
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// daysBetween counts whole calendar days. Both endpoints are re-anchored to
// UTC midnight first so a DST transition (a 23- or 25-hour day) cannot skew
// the count.
func daysBetween(from time.Time, to time.Time) int {
	fromYear, fromMonth, fromDay := from.Date()
	toYear, toMonth, toDay := to.Date()
	fromMidnight := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	toMidnight := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)
	return int(toMidnight.Sub(fromMidnight).Hours() / 24)
}
