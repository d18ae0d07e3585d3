package weather

import (
	"context"
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
)

type UseCase interface {
	// Load fetches the snapshot for the configured city. It runs at most once per view; later
	// calls return ErrAlreadyLoaded. Provider failures are logged, leave the view Failed and are
	// returned as *api.FetchError.
	Load(ctx context.Context) (*entity.WeatherSnapshot, error)

	// State returns the current lifecycle state
	State() model.ViewState

	// Render builds the page model from the current state and snapshot in the given unit.
	// The unit belongs to the caller, so every client can pick its own.
	Render(unit model.DisplayUnit) model.WeatherPage

	// Health reports the view lifecycle as a health component
	Health() model.ComponentHealthStatus
}
