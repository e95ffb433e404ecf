package models

import "time"

const (
	NoteCategorySymptoms      = "Symptoms"
	NoteCategoryMood          = "Mood"
	NoteCategorySex           = "Sex"
	NoteCategoryMedication    = "Medication"
	NoteCategoryCervicalMucus = "Cervical Mucus"
	NoteCategoryMenstrual     = "Menstrual"
	NoteCategoryOther         = "Other"
)

// Note is a dated free-text annotation. Notes feed export and dashboard
// display only; phase and prediction logic never reads them.
type Note struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Category  string    `gorm:"not null;default:Other" json:"category"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"-"`
}

func NoteCategories() []string {
	return []string{
		NoteCategorySymptoms,
		NoteCategoryMood,
		NoteCategorySex,
		NoteCategoryMedication,
		NoteCategoryCervicalMucus,
		NoteCategoryMenstrual,
		NoteCategoryOther,
	}
}

func IsValidNoteCategory(category string) bool {
	for _, known := range NoteCategories() {
		if category == known {
			return true
		}
	}
	return false
}
