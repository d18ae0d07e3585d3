package health

import (
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/model"
)

// ViewHealth is implemented by anything that reports the weather view lifecycle.
type ViewHealth interface {
	Health() model.ComponentHealthStatus
}

type healthUseCase struct {
	apiGateway api.WeatherGateway
	view       ViewHealth
}

func NewHealthUseCase(apiGateway api.WeatherGateway, view ViewHealth) UseCase {
	return &healthUseCase{
		apiGateway: apiGateway,
		view:       view,
	}
}

// CheckHealth is Down when the last provider call failed or the view failed.
// A view still loading keeps the service Up so that startup probes pass.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	providerHealth := useCase.apiGateway.Health()
	viewHealth := useCase.view.Health()

	overallStatus := model.StatusUp
	if providerHealth.Status == model.StatusDown || viewHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Provider: providerHealth,
		View:     viewHealth,
	}
}
