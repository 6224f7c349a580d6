package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	ForecastProvider ForecastProvider
	ForecastCache    ForecastCache
	WeatherMetrics   WeatherMetrics

	// Profile
	ProfileRepository ProfileRepository
	SessionStore      SessionStore

	// Cache
	CacheProvider CacheProvider

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
}
