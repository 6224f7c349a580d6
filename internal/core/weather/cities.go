package weather

import (
	"rainydays.app/pkg/errors"
	"rainydays.app/pkg/validation"
)

// DefaultSuggestionLimit caps the number of suggestions returned
const DefaultSuggestionLimit = 8

// CityCoordinate locates a supported city
type CityCoordinate struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

var cityTable = []CityCoordinate{
	{Name: "Mexicali", Latitude: 32.6519, Longitude: -115.4683, Country: "MX"},
	{Name: "Tijuana", Latitude: 32.5027, Longitude: -117.0039, Country: "MX"},
	{Name: "Madrid", Latitude: 40.4168, Longitude: -3.7038, Country: "ES"},
	{Name: "Beijing", Latitude: 39.9042, Longitude: 116.4074, Country: "CN"},
	{Name: "Buenos Aires", Latitude: -34.6118, Longitude: -58.396, Country: "AR"},
	{Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Country: "JP"},
	{Name: "New York", Latitude: 40.7128, Longitude: -74.006, Country: "US"},
	{Name: "London", Latitude: 51.5074, Longitude: -0.1278, Country: "GB"},
	{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, Country: "FR"},
	{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093, Country: "AU"},
	{Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437, Country: "US"},
	{Name: "Mumbai", Latitude: 19.076, Longitude: 72.8777, Country: "IN"},
	{Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333, Country: "BR"},
	{Name: "Cairo", Latitude: 30.0444, Longitude: 31.2357, Country: "EG"},
	{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6176, Country: "RU"},
	{Name: "Dubai", Latitude: 25.2048, Longitude: 55.2708, Country: "AE"},
	{Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198, Country: "SG"},
	{Name: "Mexico City", Latitude: 19.4326, Longitude: -99.1332, Country: "MX"},
	{Name: "Barcelona", Latitude: 41.3851, Longitude: 2.1734, Country: "ES"},
	{Name: "Rome", Latitude: 41.9028, Longitude: 12.4964, Country: "IT"},
}

var cityIndex = func() map[string]CityCoordinate {
	index := make(map[string]CityCoordinate, len(cityTable))
	for _, c := range cityTable {
		index[c.Name] = c
	}
	return index
}()

// LookupCity resolves a city by exact, case-sensitive name
func LookupCity(name string) (CityCoordinate, error) {
	coordinate, ok := cityIndex[name]
	if !ok {
		return CityCoordinate{}, errors.NewCityNotFoundError(name)
	}
	return coordinate, nil
}

// IsKnownCity reports whether name is in the coordinate table
func IsKnownCity(name string) bool {
	_, ok := cityIndex[name]
	return ok
}

// AvailableCities returns every supported city name in table order
func AvailableCities() []string {
	names := make([]string, 0, len(cityTable))
	for _, c := range cityTable {
		names = append(names, c.Name)
	}
	return names
}

// SuggestCities returns table cities whose name contains query, ignoring case,
// skipping those in exclude. An empty query yields no suggestions.
func SuggestCities(query string, exclude []string, limit int) []string {
	if query == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	suggestions := make([]string, 0, limit)
	for _, c := range cityTable {
		if len(suggestions) == limit {
			break
		}
		if _, skip := excluded[c.Name]; skip {
			continue
		}
		if validation.ContainsFold(c.Name, query) {
			suggestions = append(suggestions, c.Name)
		}
	}
	return suggestions
}
