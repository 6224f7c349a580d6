package external

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

// RateLimitedForecastProvider wraps a ForecastProvider with a token bucket
type RateLimitedForecastProvider struct {
	provider ports.ForecastProvider
	limiter  *rate.Limiter
}

// NewRateLimitedForecastProvider allows rps requests per second with the given burst.
// rps may be fractional for less than one request per second.
func NewRateLimitedForecastProvider(provider ports.ForecastProvider, rps float64, burst int) *RateLimitedForecastProvider {
	return &RateLimitedForecastProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetForecast waits for the limiter or the context before forwarding
func (r *RateLimitedForecastProvider) GetForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewExternalAPIError("rate limit wait canceled", err)
	}
	return r.provider.GetForecast(ctx, query)
}

// GetProviderName returns the wrapped name with a rate limit marker
func (r *RateLimitedForecastProvider) GetProviderName() string {
	return fmt.Sprintf("%s [rate limited]", r.provider.GetProviderName())
}

var _ ports.ForecastProvider = (*RateLimitedForecastProvider)(nil)
