package services

import (
	"time"

	"github.com/noctiluca/thermia/internal/models"
)

type StatsTemperatureReader interface {
	List() ([]models.TemperatureReading, error)
}

type StatsCycleReader interface {
	ListDates() ([]time.Time, error)
}

type StatsService struct {
	readings StatsTemperatureReader
	cycles   StatsCycleReader
	analyzer *Analyzer
}

func NewStatsService(readings StatsTemperatureReader, cycles StatsCycleReader, analyzer *Analyzer) *StatsService {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}
	return &StatsService{
		readings: readings,
		cycles:   cycles,
		analyzer: analyzer,
	}
}

// StatsOverview is the single payload behind the stats tab. Nil sections
// mean "need more data" and render as such; they are never errors.
type StatsOverview struct {
	CurrentCycle      *CurrentCycleInfo      `json:"current_cycle"`
	TemperatureShift  *TemperatureShift      `json:"temperature_shift"`
	CycleStatistics   *CycleStatistics       `json:"cycle_statistics"`
	Predictions       CyclePredictions       `json:"predictions"`
	PhaseDistribution map[Phase]int          `json:"phase_distribution"`
	Trend             *TrendAnalysis         `json:"trend"`
	Temperatures      *TemperatureStatistics `json:"temperature_statistics"`
	ReadingCount      int                    `json:"reading_count"`
	CycleStartCount   int                    `json:"cycle_start_count"`
}

func (service *StatsService) BuildOverview() (StatsOverview, error) {
	readings, err := service.readings.List()
	if err != nil {
		return StatsOverview{}, err
	}
	starts, err := service.cycles.ListDates()
	if err != nil {
		return StatsOverview{}, err
	}

	return StatsOverview{
		CurrentCycle:      service.analyzer.CurrentCycleInfo(starts),
		TemperatureShift:  service.analyzer.TemperatureShift(readings, starts),
		CycleStatistics:   service.analyzer.CycleStatistics(readings, starts),
		Predictions:       service.analyzer.PredictCycleEvents(starts),
		PhaseDistribution: service.analyzer.PhaseDistribution(readings, starts),
		Trend:             AnalyzeTrends(readings),
		Temperatures:      BuildTemperatureStatistics(readings),
		ReadingCount:      len(readings),
		CycleStartCount:   len(starts),
	}, nil
}
