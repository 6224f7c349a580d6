package weather

import (
	"fmt"
	"strings"
	"time"
)

// CurrentConditions is the display-ready current weather of a city
type CurrentConditions struct {
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Temperature int       `json:"temperature"`
	DailyMax    int       `json:"max_temp"`
	DailyMin    int       `json:"min_temp"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	WeatherCode int       `json:"weather_code"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Forecast is the assembled multi-day forecast of a city
type Forecast struct {
	City    string        `json:"city"`
	Country string        `json:"country"`
	Days    []ForecastDay `json:"days"`
}

// DashboardRequest selects the cities shown on the dashboard
type DashboardRequest struct {
	SelectedCity string
	Cities       []string
}

// Dashboard bundles everything the main screen renders
type Dashboard struct {
	Selected CurrentConditions   `json:"selected"`
	Forecast Forecast            `json:"forecast"`
	Cities   []CurrentConditions `json:"cities"`
}

// String returns a string representation of the conditions
func (c *CurrentConditions) String() string {
	return fmt.Sprintf("%s, %s: %d°C (%d/%d), %s",
		c.City, c.Country, c.Temperature, c.DailyMin, c.DailyMax, c.Description)
}

// IsValid validates a dashboard request after defaults were applied
func (r *DashboardRequest) IsValid() error {
	if strings.TrimSpace(r.SelectedCity) == "" {
		return fmt.Errorf("selected city cannot be empty")
	}
	for _, city := range r.Cities {
		if strings.TrimSpace(city) == "" {
			return fmt.Errorf("city list cannot contain empty names")
		}
	}
	return nil
}
