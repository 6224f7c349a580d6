package weather

import (
	stderrors "errors"
	"fmt"
	"math"
	"time"
)

const (
	// TodayLabel always labels the first forecast day
	TodayLabel = "HOY"
	dateLayout = "2006-01-02"
)

// ErrLengthMismatch is returned when the daily arrays differ in length
var ErrLengthMismatch = stderrors.New("forecast arrays have different lengths")

// indexed by time.Weekday
var dayNames = [7]string{"DOMINGO", "LUNES", "MARTES", "MIÉRCOLES", "JUEVES", "VIERNES", "SÁBADO"}

// ForecastDay is one day of an assembled forecast
type ForecastDay struct {
	Date        string   `json:"date"`
	DayLabel    string   `json:"day_label"`
	MaxTemp     int      `json:"max_temp"`
	MinTemp     int      `json:"min_temp"`
	WeatherCode int      `json:"weather_code"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Round rounds to the nearest integer with halves going up, so 2.5 becomes 3 and -2.5 becomes -2
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// AssembleForecast zips the daily arrays into labeled forecast days in input order
func AssembleForecast(dates []string, maxTemps, minTemps []float64, codes []int) ([]ForecastDay, error) {
	n := len(dates)
	if len(maxTemps) != n || len(minTemps) != n || len(codes) != n {
		return nil, fmt.Errorf("%w: dates=%d max=%d min=%d codes=%d",
			ErrLengthMismatch, len(dates), len(maxTemps), len(minTemps), len(codes))
	}

	days := make([]ForecastDay, 0, n)
	for i, date := range dates {
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse forecast date %q at index %d: %w", date, i, err)
		}

		label := TodayLabel
		if i > 0 {
			label = dayNames[parsed.Weekday()]
		}

		days = append(days, ForecastDay{
			Date:        date,
			DayLabel:    label,
			MaxTemp:     Round(maxTemps[i]),
			MinTemp:     Round(minTemps[i]),
			WeatherCode: codes[i],
			Description: Describe(codes[i]),
			Category:    Categorize(codes[i]),
		})
	}

	return days, nil
}
