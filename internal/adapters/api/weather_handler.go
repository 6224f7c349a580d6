package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"rainydays.app/internal/core/weather"
	"rainydays.app/pkg/errors"
)

// CityQuery binds the single-city query of /api/weather and /api/forecast
type CityQuery struct {
	City string `form:"city" binding:"required,notblank"`
}

// CitiesQuery binds the repeated city parameter of /api/weather/cities
type CitiesQuery struct {
	Cities []string `form:"city" binding:"required,min=1,dive,notblank"`
}

// DashboardQuery selects dashboard cities for callers without a session
type DashboardQuery struct {
	Selected string   `form:"selected"`
	Cities   []string `form:"city" binding:"omitempty,dive,notblank"`
}

// SuggestionQuery binds /api/cities
type SuggestionQuery struct {
	Query   string   `form:"q"`
	Exclude []string `form:"exclude"`
}

type MultipleWeatherResponse struct {
	Cities []weather.CurrentConditions `json:"cities"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
}

type WeatherCodeResponse struct {
	Code        int              `json:"code"`
	Description string           `json:"description"`
	Category    weather.Category `json:"category"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query CityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	slog.Debug("Getting weather for city", "city", query.City)

	conditions, err := s.weatherUseCase.GetCurrentWeather(c.Request.Context(), query.City)
	if err != nil {
		slog.Error("Weather use case error", "error", err, "city", query.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, conditions)
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	var query CityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required"))
		return
	}

	forecast, err := s.weatherUseCase.GetForecast(c.Request.Context(), query.City)
	if err != nil {
		slog.Error("Forecast use case error", "error", err, "city", query.City)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}

// getMultipleCitiesWeather handles GET /api/weather/cities requests
func (s *HTTPServerAdapter) getMultipleCitiesWeather(c *gin.Context) {
	var query CitiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("at least one city parameter is required"))
		return
	}

	conditions, err := s.weatherUseCase.GetMultipleCitiesWeather(c.Request.Context(), query.Cities)
	if err != nil {
		slog.Error("Multiple cities use case error", "error", err, "cities", query.Cities)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MultipleWeatherResponse{Cities: conditions})
}

// getDashboard handles GET /api/dashboard. With a session the profile's cities
// are shown, otherwise the query or the configured defaults.
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	var request weather.DashboardRequest

	if token := sessionToken(c); token != "" {
		current, err := s.profileUseCase.CurrentProfile(c.Request.Context(), token)
		if err != nil {
			s.handleError(c, err)
			return
		}
		request = weather.DashboardRequest{SelectedCity: current.SelectedCity, Cities: current.CustomCities}
	} else {
		var query DashboardQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			s.handleError(c, errors.NewValidationError("Invalid request format"))
			return
		}
		request = weather.DashboardRequest{SelectedCity: query.Selected, Cities: query.Cities}
	}

	dashboard, err := s.weatherUseCase.GetDashboard(c.Request.Context(), request)
	if err != nil {
		slog.Error("Dashboard use case error", "error", err, "selected_city", request.SelectedCity)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// getCities handles GET /api/cities: every supported city, or suggestions when q is given
func (s *HTTPServerAdapter) getCities(c *gin.Context) {
	var query SuggestionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if query.Query == "" {
		c.JSON(http.StatusOK, CitiesResponse{Cities: weather.AvailableCities()})
		return
	}

	c.JSON(http.StatusOK, CitiesResponse{
		Cities: weather.SuggestCities(query.Query, query.Exclude, weather.DefaultSuggestionLimit),
	})
}

// getWeatherCode handles GET /api/weather-codes/:code
func (s *HTTPServerAdapter) getWeatherCode(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		s.handleError(c, errors.NewValidationError("weather code must be an integer"))
		return
	}

	c.JSON(http.StatusOK, WeatherCodeResponse{
		Code:        code,
		Description: weather.Describe(code),
		Category:    weather.Categorize(code),
	})
}
