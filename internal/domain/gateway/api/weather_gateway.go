package api

import (
	"context"
	"fmt"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
)

// WeatherGateway defines the interface for the external weather provider
type WeatherGateway interface {
	// GetCurrentWeather gets current conditions for a city in metric units.
	// Failures are always returned as *FetchError.
	GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// Health reports the outcome of the last provider call
	Health() model.ComponentHealthStatus
}

// FetchErrorKind classifies why a provider call failed.
type FetchErrorKind string

const (
	// FetchTransport covers network failures and cancelled or expired contexts.
	FetchTransport FetchErrorKind = "TRANSPORT"
	// FetchStatus is a non-success HTTP status from the provider.
	FetchStatus FetchErrorKind = "STATUS"
	// FetchDecode is a body that is not the expected JSON shape.
	FetchDecode FetchErrorKind = "DECODE"
)

// FetchError is the error result of a provider call.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("weather fetch failed (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("weather fetch failed (%s, status %d): %v", e.Kind, e.StatusCode, e.Err)
	case e.Message != "":
		return fmt.Sprintf("weather fetch failed (%s): %s", e.Kind, e.Message)
	default:
		return fmt.Sprintf("weather fetch failed (%s): %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
