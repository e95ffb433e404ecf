package services

import "github.com/noctiluca/thermia/internal/models"

type TemperatureStatistics struct {
	Average float64 `json:"avg_temp"`
	Min     float64 `json:"min_temp"`
	Max     float64 `json:"max_temp"`
	StdDev  float64 `json:"temp_std"`
}

// BuildTemperatureStatistics summarizes all recorded temperatures. Nil when
// no readings exist.
func BuildTemperatureStatistics(readings []models.TemperatureReading) *TemperatureStatistics {
	if len(readings) == 0 {
		return nil
	}

	temps := make([]float64, 0, len(readings))
	minTemp := readings[0].TemperatureCelsius
	maxTemp := readings[0].TemperatureCelsius
	for _, reading := range readings {
		temps = append(temps, reading.TemperatureCelsius)
		if reading.TemperatureCelsius < minTemp {
			minTemp = reading.TemperatureCelsius
		}
		if reading.TemperatureCelsius > maxTemp {
			maxTemp = reading.TemperatureCelsius
		}
	}

	return &TemperatureStatistics{
		Average: mean(temps),
		Min:     minTemp,
		Max:     maxTemp,
		StdDev:  sampleStdDev(temps),
	}
}
