package weather

// Category is the coarse bucket a weather code falls into
type Category string

const (
	CategoryClear        Category = "clear"
	CategoryCloudy       Category = "cloudy"
	CategoryRain         Category = "rain"
	CategorySnow         Category = "snow"
	CategoryThunderstorm Category = "thunderstorm"
)

// UnknownDescription is returned by Describe for codes outside the WMO table
const UnknownDescription = "Unknown"

var codeDescriptions = map[int]string{
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

// Describe returns the WMO description of a weather code
func Describe(code int) string {
	if description, ok := codeDescriptions[code]; ok {
		return description
	}
	return UnknownDescription
}

// Categorize maps any weather code to one of the five categories.
// Codes outside every range, including fog and negative codes, fall back to clear.
func Categorize(code int) Category {
	switch {
	case code == 0 || code == 1:
		return CategoryClear
	case code == 2 || code == 3:
		return CategoryCloudy
	case code >= 51 && code <= 67:
		return CategoryRain
	case code >= 71 && code <= 86:
		return CategorySnow
	case code >= 95:
		return CategoryThunderstorm
	default:
		return CategoryClear
	}
}

// KnownCodes returns the codes that have a published description
func KnownCodes() []int {
	codes := make([]int, 0, len(codeDescriptions))
	for code := range codeDescriptions {
		codes = append(codes, code)
	}
	return codes
}
