package models

import "time"

// TemperatureReading is a single basal body temperature measurement.
// Readings are never edited in place: a correction is a delete plus a new
// insert. Storage and all analysis stay in Celsius.
type TemperatureReading struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Timestamp          time.Time `gorm:"not null;index" json:"timestamp"`
	TemperatureCelsius float64   `gorm:"not null" json:"temperature_celsius"`
	CreatedAt          time.Time `json:"-"`
}

const (
	MinPlausibleCelsius = 30.0
	MaxPlausibleCelsius = 45.0
)

func IsPlausibleCelsius(value float64) bool {
	return value >= MinPlausibleCelsius && value <= MaxPlausibleCelsius
}
