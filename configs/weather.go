package configs

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"time"
	"weather-view/pkg/resource"
)

// WeatherConfig is everything main needs to assemble the service.
type WeatherConfig struct {
	Port           string        `validate:"required,numeric"`
	ContextPath    string        `validate:"omitempty,startswith=/"`
	BaseURL        string        `validate:"required,url"`
	City           string        `validate:"required"`
	APIKey         string        `validate:"required"`
	Timeout        time.Duration `validate:"gt=0"`
	SurfaceFailure bool
}

// NewWeatherConfig reads the app.* properties and validates them.
func NewWeatherConfig() (*WeatherConfig, error) {
	cfg := &WeatherConfig{
		Port:           resource.GetStringOrDefault("app.server.port", "8080"),
		ContextPath:    resource.GetString("app.server.context-path"),
		BaseURL:        resource.GetStringOrDefault("app.weather.base-url", "https://api.openweathermap.org"),
		City:           resource.GetString("app.weather.city"),
		APIKey:         resource.GetString("app.weather.api-key"),
		Timeout:        10 * time.Second,
		SurfaceFailure: resource.GetBool("app.weather.surface-failure"),
	}
	if resource.IsSet("app.weather.timeout") {
		cfg.Timeout = resource.GetDuration("app.weather.timeout")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid weather configuration: %w", err)
	}
	return cfg, nil
}
