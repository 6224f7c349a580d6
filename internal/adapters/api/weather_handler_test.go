package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"rainydays.app/internal/core/weather"
	"rainydays.app/internal/mocks"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

var (
	londonCurrent = ports.ForecastQuery{Latitude: 51.5074, Longitude: -0.1278, ForecastDays: 1, IncludeCurrent: true}
	londonDaily   = ports.ForecastQuery{Latitude: 51.5074, Longitude: -0.1278, ForecastDays: 3}
)

func allowLogging(logger *mocks.Logger) {
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
}

func currentData(temp float64, code int) *ports.ForecastData {
	return &ports.ForecastData{
		Timezone: "Europe/London",
		Current: &ports.CurrentReading{
			Temperature:      temp,
			RelativeHumidity: 70,
			WindSpeed:        12.5,
			WeatherCode:      code,
		},
		Daily: ports.DailySeries{
			Time:           []string{"2024-03-04"},
			TemperatureMax: []float64{temp + 3},
			TemperatureMin: []float64{temp - 3},
			WeatherCode:    []int{code},
		},
		FetchedAt: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
	}
}

func dailyData() *ports.ForecastData {
	return &ports.ForecastData{
		Daily: ports.DailySeries{
			Time:           []string{"2024-03-04", "2024-03-05", "2024-03-06"},
			TemperatureMax: []float64{12.4, 13.6, 11},
			TemperatureMin: []float64{5.5, 6.1, 4.9},
			WeatherCode:    []int{3, 61, 0},
		},
	}
}

func setupWeatherTestRouter(t *testing.T) (*gin.Engine, *mocks.ForecastProvider) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	mockProvider := mocks.NewForecastProvider(t)
	mockCache := mocks.NewForecastCache(t)
	mockConfig := mocks.NewConfigProvider(t)
	mockLogger := mocks.NewLogger(t)
	mockMetrics := mocks.NewWeatherMetrics(t)

	allowLogging(mockLogger)

	mockConfig.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		ForecastDays: 3,
		EnableCache:  false,
		CacheTTL:     5 * time.Minute,
	}).Maybe()
	mockConfig.EXPECT().GetSessionConfig().Return(ports.SessionConfig{
		Duration:      24 * time.Hour,
		DefaultCities: []string{"London"},
		DefaultCity:   "London",
	}).Maybe()

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: mockProvider,
		Cache:    mockCache,
		Config:   mockConfig,
		Logger:   mockLogger,
		Metrics:  mockMetrics,
	})
	require.NoError(t, err)

	server := &HTTPServerAdapter{
		weatherUseCase: weatherUseCase,
	}

	router := gin.New()
	router.GET("/api/weather", server.getWeather)
	router.GET("/api/weather/cities", server.getMultipleCitiesWeather)
	router.GET("/api/forecast", server.getForecast)
	router.GET("/api/dashboard", server.getDashboard)
	router.GET("/api/cities", server.getCities)
	router.GET("/api/weather-codes/:code", server.getWeatherCode)

	return router, mockProvider
}

func TestWeatherHandler_GetWeather_Success(t *testing.T) {
	router, mockProvider := setupWeatherTestRouter(t)

	mockProvider.EXPECT().GetForecast(mock.Anything, londonCurrent).Return(currentData(11.6, 3), nil)

	req := httptest.NewRequest("GET", "/api/weather?city=London", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response weather.CurrentConditions
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "London", response.City)
	assert.Equal(t, "GB", response.Country)
	assert.Equal(t, 12, response.Temperature)
	assert.Equal(t, 15, response.DailyMax)
	assert.Equal(t, 9, response.DailyMin)
	assert.Equal(t, "Overcast", response.Description)
	assert.Equal(t, weather.CategoryCloudy, response.Category)
}

func TestWeatherHandler_GetWeather_MissingCity(t *testing.T) {
	router, _ := setupWeatherTestRouter(t)

	req := httptest.NewRequest("GET", "/api/weather", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "city parameter is required", response.Error)
}

func TestWeatherHandler_BlankCityIsRejectedBeforeLookup(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"EmptyWeather", "/api/weather?city="},
		{"SpacesWeather", "/api/weather?city=%20%20"},
		{"TabForecast", "/api/forecast?city=%09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, provider := setupWeatherTestRouter(t)

			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "city parameter is required", response.Error)
			provider.AssertNotCalled(t, "GetForecast", mock.Anything, mock.Anything)
		})
	}
}

func TestWeatherHandler_GetWeather_UnknownCity(t *testing.T) {
	router, _ := setupWeatherTestRouter(t)

	req := httptest.NewRequest("GET", "/api/weather?city=Atlantis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "city Atlantis not found", response.Error)
}

func TestWeatherHandler_GetWeather_ProviderError(t *testing.T) {
	router, mockProvider := setupWeatherTestRouter(t)

	mockProvider.EXPECT().GetForecast(mock.Anything, londonCurrent).
		Return(nil, errors.NewExternalAPIError("Open-Meteo returned status 502", nil))

	req := httptest.NewRequest("GET", "/api/weather?city=London", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, weather.FetchFailureMessage, response.Error)
}

func TestWeatherHandler_GetForecast_Success(t *testing.T) {
	router, mockProvider := setupWeatherTestRouter(t)

	mockProvider.EXPECT().GetForecast(mock.Anything, londonDaily).Return(dailyData(), nil)

	req := httptest.NewRequest("GET", "/api/forecast?city=London", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response weather.Forecast
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "London", response.City)
	assert.Len(t, response.Days, 3)
}

func TestWeatherHandler_GetMultipleCitiesWeather(t *testing.T) {
	router, mockProvider := setupWeatherTestRouter(t)

	mockProvider.EXPECT().GetForecast(mock.Anything, londonCurrent).Return(currentData(10, 0), nil)
	mockProvider.EXPECT().GetForecast(mock.Anything, ports.ForecastQuery{
		Latitude: 48.8566, Longitude: 2.3522, ForecastDays: 1, IncludeCurrent: true,
	}).Return(currentData(15, 61), nil)

	req := httptest.NewRequest("GET", "/api/weather/cities?city=London&city=Paris", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response MultipleWeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Cities, 2)
	assert.Equal(t, "London", response.Cities[0].City)
	assert.Equal(t, "Paris", response.Cities[1].City)
	assert.Equal(t, weather.CategoryRain, response.Cities[1].Category)
}

func TestWeatherHandler_GetMultipleCitiesWeather_NoCities(t *testing.T) {
	router, _ := setupWeatherTestRouter(t)

	req := httptest.NewRequest("GET", "/api/weather/cities", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeatherHandler_GetDashboard_Defaults(t *testing.T) {
	router, mockProvider := setupWeatherTestRouter(t)

	mockProvider.EXPECT().GetForecast(mock.Anything, londonCurrent).Return(currentData(10, 0), nil).Times(2)
	mockProvider.EXPECT().GetForecast(mock.Anything, londonDaily).Return(dailyData(), nil)

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response weather.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "London", response.Selected.City)
	assert.Equal(t, "London", response.Forecast.City)
	require.Len(t, response.Cities, 1)
}

func TestWeatherHandler_GetDashboard_FailureIsAllOrNothing(t *testing.T) {
	router, mockProvider := setupWeatherTestRouter(t)

	mockProvider.EXPECT().GetForecast(mock.Anything, mock.Anything).
		Return(nil, errors.NewExternalAPIError("timeout", nil)).Maybe()

	req := httptest.NewRequest("GET", "/api/dashboard?selected=London&city=London", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "selected")
}

func TestWeatherHandler_GetCities(t *testing.T) {
	router, _ := setupWeatherTestRouter(t)

	t.Run("all cities", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cities", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response CitiesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, weather.AvailableCities(), response.Cities)
	})

	t.Run("suggestions skip excluded", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cities?q=mex&exclude=Mexicali", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response CitiesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"Mexico City"}, response.Cities)
	})
}

func TestWeatherHandler_GetWeatherCode(t *testing.T) {
	router, _ := setupWeatherTestRouter(t)

	req := httptest.NewRequest("GET", "/api/weather-codes/61", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response WeatherCodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 61, response.Code)
	assert.Equal(t, weather.Describe(61), response.Description)
	assert.Equal(t, weather.CategoryRain, response.Category)

	req = httptest.NewRequest("GET", "/api/weather-codes/abc", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
