package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrCityAlreadyAdded = errors.New("city already in profile")
	ErrCityNotInProfile = errors.New("city not in profile")
	ErrLastCity         = errors.New("profile must keep at least one city")
)

// Profile holds a user's favorite cities and current selection
type Profile struct {
	ID             uint      `json:"-"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	CustomCities   []string  `json:"custom_cities"`
	SelectedCity   string    `json:"selected_city"`
	LoginTimestamp time.Time `json:"login_timestamp"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// Session is an open profile session
type Session struct {
	Token     string    `json:"token"`
	Profile   *Profile  `json:"profile"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewProfile creates a profile seeded with the default cities
func NewProfile(username, email string, defaultCities []string, defaultCity string, now time.Time) *Profile {
	cities := make([]string, len(defaultCities))
	copy(cities, defaultCities)

	return &Profile{
		Username:       username,
		Email:          email,
		CustomCities:   cities,
		SelectedCity:   defaultCity,
		LoginTimestamp: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsValid validates profile data
func (p *Profile) IsValid() error {
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(p.CustomCities) == 0 {
		return fmt.Errorf("profile must have at least one city")
	}
	if !p.HasCity(p.SelectedCity) {
		return fmt.Errorf("selected city %s is not in the profile", p.SelectedCity)
	}
	return nil
}

// HasCity reports whether city is one of the profile's cities
func (p *Profile) HasCity(city string) bool {
	for _, c := range p.CustomCities {
		if c == city {
			return true
		}
	}
	return false
}

// AddCity appends city to the end of the list
func (p *Profile) AddCity(city string) error {
	if p.HasCity(city) {
		return ErrCityAlreadyAdded
	}
	p.CustomCities = append(p.CustomCities, city)
	return nil
}

// RemoveCity drops city from the list. When the removed city was selected the
// selection moves to the head of the list as it was before removal, or to the
// new head if the old head was the removed city.
func (p *Profile) RemoveCity(city string) error {
	if !p.HasCity(city) {
		return ErrCityNotInProfile
	}
	if len(p.CustomCities) <= 1 {
		return ErrLastCity
	}

	previousHead := p.CustomCities[0]
	remaining := make([]string, 0, len(p.CustomCities)-1)
	for _, c := range p.CustomCities {
		if c != city {
			remaining = append(remaining, c)
		}
	}
	p.CustomCities = remaining

	if p.SelectedCity == city {
		if previousHead != city {
			p.SelectedCity = previousHead
		} else {
			p.SelectedCity = remaining[0]
		}
	}
	return nil
}

// SelectCity makes city the selected one
func (p *Profile) SelectCity(city string) error {
	if !p.HasCity(city) {
		return ErrCityNotInProfile
	}
	p.SelectedCity = city
	return nil
}

// IsExpired reports whether a session opened at loginAt has outlived duration
func IsExpired(loginAt time.Time, duration time.Duration, now time.Time) bool {
	return now.Sub(loginAt) > duration
}
