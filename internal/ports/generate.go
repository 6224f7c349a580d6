// Package ports declares what the weather and profile use cases need from the
// outside world. Adapters implement these; internal/mocks holds generated mocks.
//
//go:generate mockery
package ports
