package weather

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleForecast_SevenDays(t *testing.T) {
	// 2024-06-03 is a Monday
	dates := []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07", "2024-06-08", "2024-06-09"}
	maxTemps := []float64{24.4, 25.5, 26.6, 22, 19.49, 18.5, -0.5}
	minTemps := []float64{12.1, 13.5, 14, 11.2, 9.9, -2.5, -3.6}
	codes := []int{0, 61, 3, 95, 71, 45, 2}

	days, err := AssembleForecast(dates, maxTemps, minTemps, codes)

	require.NoError(t, err)
	require.Len(t, days, 7)

	labels := make([]string, 0, len(days))
	for _, day := range days {
		labels = append(labels, day.DayLabel)
	}
	assert.Equal(t, []string{"HOY", "MARTES", "MIÉRCOLES", "JUEVES", "VIERNES", "SÁBADO", "DOMINGO"}, labels)

	for i, day := range days {
		assert.Equal(t, dates[i], day.Date)
		assert.Equal(t, codes[i], day.WeatherCode)
	}

	assert.Equal(t, 24, days[0].MaxTemp)
	assert.Equal(t, 12, days[0].MinTemp)
	assert.Equal(t, 26, days[1].MaxTemp)
	assert.Equal(t, 14, days[1].MinTemp)
	assert.Equal(t, 19, days[4].MaxTemp)
	assert.Equal(t, -2, days[5].MinTemp)
	assert.Equal(t, 0, days[6].MaxTemp)
	assert.Equal(t, -4, days[6].MinTemp)

	assert.Equal(t, "Slight rain", days[1].Description)
	assert.Equal(t, CategoryRain, days[1].Category)
	assert.Equal(t, CategoryThunderstorm, days[3].Category)
}

func TestAssembleForecast_FirstDayIsAlwaysToday(t *testing.T) {
	// a Sunday in first position is still labeled HOY
	days, err := AssembleForecast([]string{"2024-06-09", "2024-06-10"}, []float64{1, 2}, []float64{0, 1}, []int{0, 0})

	require.NoError(t, err)
	assert.Equal(t, TodayLabel, days[0].DayLabel)
	assert.Equal(t, "LUNES", days[1].DayLabel)
}

func TestAssembleForecast_KeepsInputOrder(t *testing.T) {
	dates := []string{"2024-06-05", "2024-06-03", "2024-06-04"}

	days, err := AssembleForecast(dates, []float64{1, 2, 3}, []float64{0, 0, 0}, []int{0, 1, 2})

	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", days[0].Date)
	assert.Equal(t, "2024-06-03", days[1].Date)
	assert.Equal(t, "LUNES", days[1].DayLabel)
	assert.Equal(t, "2024-06-04", days[2].Date)
	assert.Equal(t, "MARTES", days[2].DayLabel)
}

func TestAssembleForecast_LengthMismatch(t *testing.T) {
	dates := []string{"2024-06-03", "2024-06-04"}
	tests := []struct {
		name     string
		maxTemps []float64
		minTemps []float64
		codes    []int
	}{
		{"ShortMax", []float64{1}, []float64{1, 2}, []int{0, 0}},
		{"ShortMin", []float64{1, 2}, []float64{1}, []int{0, 0}},
		{"ShortCodes", []float64{1, 2}, []float64{1, 2}, []int{0}},
		{"LongCodes", []float64{1, 2}, []float64{1, 2}, []int{0, 0, 0}},
		{"NilMax", nil, []float64{1, 2}, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := AssembleForecast(dates, tt.maxTemps, tt.minTemps, tt.codes)

			assert.Nil(t, days)
			assert.True(t, errors.Is(err, ErrLengthMismatch))
		})
	}
}

func TestAssembleForecast_MalformedDate(t *testing.T) {
	for _, date := range []string{"2024/06/03", "tomorrow", "", "2024-13-01"} {
		days, err := AssembleForecast([]string{"2024-06-03", date}, []float64{1, 2}, []float64{0, 1}, []int{0, 0})

		assert.Nil(t, days)
		require.Error(t, err, "date %q", date)
		assert.False(t, errors.Is(err, ErrLengthMismatch))
	}
}

func TestAssembleForecast_Empty(t *testing.T) {
	days, err := AssembleForecast(nil, nil, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected int
	}{
		{14.6, 15},
		{14.4, 14},
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
		{-0.4, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Round(tt.input), "input %v", tt.input)
	}
}

func TestRound_IdempotentOnIntegers(t *testing.T) {
	for v := -60; v <= 60; v++ {
		once := Round(float64(v))
		assert.Equal(t, v, once)
		assert.Equal(t, once, Round(float64(once)))
	}
}
