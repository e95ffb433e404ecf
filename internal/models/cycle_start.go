package models

import "time"

// CycleStart marks day 1 of a cycle (first day of menstrual bleeding).
// Starts are always user-declared, never inferred from readings.
type CycleStart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartDate time.Time `gorm:"type:date;not null;uniqueIndex" json:"start_date"`
	CreatedAt time.Time `json:"-"`
}
