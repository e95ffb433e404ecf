package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/noctiluca/thermia/internal/models"
)

const (
	exportDateLayout = "02/01/2006"
	exportTimeLayout = "15:04"
)

var ExportCSVHeaders = []string{
	"Date",
	"Time",
	"Temperature_Celsius",
	"Temperature_Fahrenheit",
	"Cycle_Day",
	"Notes",
	"Sex",
}

type ExportTemperatureReader interface {
	ListRange(from *time.Time, to *time.Time) ([]models.TemperatureReading, error)
}

type ExportNoteReader interface {
	ListRange(from *time.Time, to *time.Time) ([]models.Note, error)
}

type ExportCycleReader interface {
	ListDates() ([]time.Time, error)
}

type ExportService struct {
	readings ExportTemperatureReader
	notes    ExportNoteReader
	cycles   ExportCycleReader
}

func NewExportService(readings ExportTemperatureReader, notes ExportNoteReader, cycles ExportCycleReader) *ExportService {
	return &ExportService{
		readings: readings,
		notes:    notes,
		cycles:   cycles,
	}
}

type ExportRow struct {
	Date       string
	Time       string
	Celsius    float64
	Fahrenheit float64
	CycleDay   string
	Notes      string
	Sex        bool
}

func (row ExportRow) Columns() []string {
	return []string{
		row.Date,
		row.Time,
		fmt.Sprintf("%.2f", row.Celsius),
		fmt.Sprintf("%.2f", row.Fahrenheit),
		row.CycleDay,
		row.Notes,
		csvYesNo(row.Sex),
	}
}

// BuildRows produces one export row per reading in the range: Celsius and
// Fahrenheit values, the reading's cycle day (blank before tracking began),
// all same-day notes joined as "Category: text", and whether any same-day
// note is a Sex note. Notes are range-filtered together with the readings.
func (service *ExportService) BuildRows(from *time.Time, to *time.Time) ([]ExportRow, error) {
	readings, err := service.readings.ListRange(from, to)
	if err != nil {
		return nil, err
	}
	notes, err := service.notes.ListRange(from, to)
	if err != nil {
		return nil, err
	}
	starts, err := service.cycles.ListDates()
	if err != nil {
		return nil, err
	}

	notesByDay := make(map[string][]models.Note, len(notes))
	for _, note := range notes {
		key := DateOnly(note.Date).Format("2006-01-02")
		notesByDay[key] = append(notesByDay[key], note)
	}

	rows := make([]ExportRow, 0, len(readings))
	for _, reading := range sortReadingsChronologically(readings) {
		day := DateOnly(reading.Timestamp)
		dayNotes := notesByDay[day.Format("2006-01-02")]

		cycleDayLabel := ""
		if cycleDay, known := CycleDayForDate(reading.Timestamp, starts); known {
			cycleDayLabel = fmt.Sprintf("%d", cycleDay)
		}

		rows = append(rows, ExportRow{
			Date:       day.Format(exportDateLayout),
			Time:       reading.Timestamp.Format(exportTimeLayout),
			Celsius:    RoundTo2(reading.TemperatureCelsius),
			Fahrenheit: RoundTo2(CelsiusToFahrenheit(reading.TemperatureCelsius)),
			CycleDay:   cycleDayLabel,
			Notes:      joinNoteSummaries(dayNotes),
			Sex:        hasSexNote(dayNotes),
		})
	}
	return rows, nil
}

func joinNoteSummaries(notes []models.Note) string {
	summaries := make([]string, 0, len(notes))
	for _, note := range notes {
		summaries = append(summaries, fmt.Sprintf("%s: %s", note.Category, note.Text))
	}
	return strings.Join(summaries, "; ")
}

func hasSexNote(notes []models.Note) bool {
	for _, note := range notes {
		if note.Category == models.NoteCategorySex {
			return true
		}
	}
	return false
}

func csvYesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
