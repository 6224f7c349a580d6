package weather

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	expected := map[int]string{
		0:  "Clear sky",
		1:  "Mainly clear",
		2:  "Partly cloudy",
		3:  "Overcast",
		45: "Fog",
		48: "Depositing rime fog",
		51: "Light drizzle",
		53: "Moderate drizzle",
		55: "Dense drizzle",
		56: "Light freezing drizzle",
		57: "Dense freezing drizzle",
		61: "Slight rain",
		63: "Moderate rain",
		65: "Heavy rain",
		66: "Light freezing rain",
		67: "Heavy freezing rain",
		71: "Slight snow fall",
		73: "Moderate snow fall",
		75: "Heavy snow fall",
		77: "Snow grains",
		80: "Slight rain showers",
		81: "Moderate rain showers",
		82: "Violent rain showers",
		85: "Slight snow showers",
		86: "Heavy snow showers",
		95: "Thunderstorm",
		96: "Thunderstorm with slight hail",
		99: "Thunderstorm with heavy hail",
	}

	assert.Len(t, KnownCodes(), len(expected))
	for code, description := range expected {
		assert.Equal(t, description, Describe(code), "code %d", code)
	}

	for _, code := range []int{-1, 4, 44, 50, 52, 68, 100, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, UnknownDescription, Describe(code), "code %d", code)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		code     int
		expected Category
	}{
		{0, CategoryClear},
		{1, CategoryClear},
		{2, CategoryCloudy},
		{3, CategoryCloudy},
		{50, CategoryClear},
		{51, CategoryRain},
		{61, CategoryRain},
		{67, CategoryRain},
		{68, CategoryClear},
		{70, CategoryClear},
		{71, CategorySnow},
		{86, CategorySnow},
		{87, CategoryClear},
		{94, CategoryClear},
		{95, CategoryThunderstorm},
		{99, CategoryThunderstorm},
		{200, CategoryThunderstorm},
		{math.MaxInt32, CategoryThunderstorm},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Categorize(tt.code), "code %d", tt.code)
	}
}

// Fog, gaps in the table and negative codes have no bucket of their own and
// read as clear. Kept as observed in the published app.
func TestCategorize_FallsBackToClear(t *testing.T) {
	for _, code := range []int{45, 48, 4, 30, -1, -95, math.MinInt32} {
		assert.Equal(t, CategoryClear, Categorize(code), "code %d", code)
	}
}

func TestCategorize_IsTotal(t *testing.T) {
	valid := map[Category]bool{
		CategoryClear:        true,
		CategoryCloudy:       true,
		CategoryRain:         true,
		CategorySnow:         true,
		CategoryThunderstorm: true,
	}

	for code := -1000; code <= 1000; code++ {
		assert.True(t, valid[Categorize(code)], "code %d", code)
	}
}
