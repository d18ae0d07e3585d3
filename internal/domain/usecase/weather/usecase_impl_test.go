package weather

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
)

type mockWeatherGateway struct {
	mock.Mock
}

func (m *mockWeatherGateway) GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	args := m.Called(ctx, city)
	response, _ := args.Get(0).(*external.CurrentWeatherResponse)
	return response, args.Error(1)
}

func (m *mockWeatherGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

// fixedResponse is the reference snapshot: 27.4 max, 24.6 feels like, 1011 hPa, 70%, 7.2 km/h from 180°.
func fixedResponse() *external.CurrentWeatherResponse {
	return &external.CurrentWeatherResponse{
		Timezone: 3600,
		Name:     "Lagos",
		Weather:  []external.WeatherConditionDTO{{Description: "cloudy to sunny"}},
		Main: external.MainDTO{
			TempMax:   27.4,
			TempMin:   22.1,
			FeelsLike: 24.6,
			Pressure:  1011,
			Humidity:  70,
		},
		Wind: external.WindDTO{Speed: 7.2, Deg: 180},
		Sys:  external.SysDTO{Sunrise: 1753160400, Sunset: 1753206000},
	}
}

func newReadyView(t *testing.T) (*weatherViewUseCase, *mockWeatherGateway) {
	t.Helper()
	gateway := &mockWeatherGateway{}
	gateway.On("GetCurrentWeather", mock.Anything, "Lagos").Return(fixedResponse(), nil).Once()

	uc := NewWeatherViewUseCase("Lagos", false, gateway).(*weatherViewUseCase)
	// Tuesday 22 July 2025, 09:00 UTC
	uc.now = func() time.Time { return time.Date(2025, time.July, 22, 9, 0, 0, 0, time.UTC) }

	_, err := uc.Load(context.Background())
	require.NoError(t, err)
	return uc, gateway
}

func TestLoad_RendersFixedSnapshot(t *testing.T) {
	uc, gateway := newReadyView(t)
	gateway.AssertExpectations(t)

	page := uc.Render(model.Celsius)
	assert.Equal(t, model.StateReady, page.State)
	assert.False(t, page.Loading)
	require.NotNil(t, page.Header)
	require.NotNil(t, page.Air)

	assert.Equal(t, model.Temperature{Value: 27, Unit: "C"}, page.Header.Temperature)
	assert.Equal(t, "CLOUDY TO SUNNY", page.Header.Description)
	assert.Equal(t, "TUESDAY, 7/22", page.Header.DateLine)
	assert.Equal(t, "Lagos", page.Header.Location)

	assert.Equal(t, model.Temperature{Value: 25, Unit: "C"}, page.Air.Temperature)
	assert.Equal(t, "1011", page.Air.Pressure)
	assert.Equal(t, "70%", page.Air.Humidity)
	assert.Equal(t, "7.2 km/h", page.Air.WindSpeed)
	assert.Equal(t, "180° S", page.Air.WindDirection)
	assert.Equal(t, "06:00", page.Air.Sunrise)
	assert.Equal(t, "18:40", page.Air.Sunset)

	require.Len(t, page.Forecast, 3)
	assert.Equal(t, "Mon", page.Forecast[0].Day)
	assert.Equal(t, model.Temperature{Value: 22, Unit: "C"}, page.Forecast[0].Temperature)
	assert.True(t, page.Forecast[1].Active)
	assert.False(t, page.Forecast[2].Active)
}

func TestLoad_ReturnsSnapshotCopy(t *testing.T) {
	gateway := &mockWeatherGateway{}
	gateway.On("GetCurrentWeather", mock.Anything, "Lagos").Return(fixedResponse(), nil).Once()
	uc := NewWeatherViewUseCase("Lagos", false, gateway)

	snapshot, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1011, snapshot.Pressure)
	assert.Equal(t, int64(1753160400), snapshot.Sunrise)

	snapshot.TempMax = 99
	assert.Equal(t, 27, uc.Render(model.Celsius).Header.Temperature.Value)
}

func TestLoad_RunsOnce(t *testing.T) {
	uc, gateway := newReadyView(t)

	snapshot, err := uc.Load(context.Background())
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrAlreadyLoaded)
	gateway.AssertNumberOfCalls(t, "GetCurrentWeather", 1)
	assert.Equal(t, model.StateReady, uc.State())
}

func TestRender_UnitRoundTripRestoresCelsius(t *testing.T) {
	uc, gateway := newReadyView(t)
	before := uc.Render(model.Celsius)

	fahrenheit := uc.Render(model.Celsius.Other())
	assert.Equal(t, model.Fahrenheit, fahrenheit.Unit)
	assert.Equal(t, model.Temperature{Value: 81, Unit: "F"}, fahrenheit.Header.Temperature)
	assert.Equal(t, model.Temperature{Value: 76, Unit: "F"}, fahrenheit.Air.Temperature)
	assert.Equal(t, model.Temperature{Value: 72, Unit: "F"}, fahrenheit.Forecast[0].Temperature)
	assert.True(t, fahrenheit.Toggle[1].Active)
	assert.False(t, fahrenheit.Toggle[0].Active)

	assert.Equal(t, before, uc.Render(fahrenheit.Unit.Other()))

	gateway.AssertNumberOfCalls(t, "GetCurrentWeather", 1)
}

func TestRender_UnitsAreIndependentPerCaller(t *testing.T) {
	uc, _ := newReadyView(t)

	fahrenheit := uc.Render(model.Fahrenheit)
	celsius := uc.Render(model.Celsius)

	assert.Equal(t, 81, fahrenheit.Header.Temperature.Value)
	assert.Equal(t, 27, celsius.Header.Temperature.Value)
}

func TestRender_UnknownUnitFallsBackToCelsius(t *testing.T) {
	uc, _ := newReadyView(t)

	page := uc.Render("")
	assert.Equal(t, model.Celsius, page.Unit)
	assert.Equal(t, model.Temperature{Value: 27, Unit: "C"}, page.Header.Temperature)
}

func TestRender_LoadingUntilFetchResolves(t *testing.T) {
	release := make(chan time.Time)
	gateway := &mockWeatherGateway{}
	gateway.On("GetCurrentWeather", mock.Anything, "Lagos").
		WaitUntil(release).
		Return(fixedResponse(), nil).
		Once()

	uc := NewWeatherViewUseCase("Lagos", false, gateway)
	assert.Equal(t, model.StateLoading, uc.State())

	done := make(chan error, 1)
	go func() {
		_, err := uc.Load(context.Background())
		done <- err
	}()

	page := uc.Render(model.Fahrenheit)
	assert.True(t, page.Loading)
	assert.Nil(t, page.Header)
	assert.Nil(t, page.Air)
	assert.Empty(t, page.Forecast)
	assert.Empty(t, page.Toggle)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, model.StateReady, uc.State())
	assert.False(t, uc.Render(model.Celsius).Loading)
}

func TestLoad_FailureStaysLoading(t *testing.T) {
	failures := []error{
		&api.FetchError{Kind: api.FetchTransport, Err: errors.New("connection refused")},
		&api.FetchError{Kind: api.FetchStatus, StatusCode: http.StatusNotFound, Message: "city not found"},
		&api.FetchError{Kind: api.FetchDecode, StatusCode: http.StatusOK, Message: "response has no weather conditions"},
	}

	for _, failure := range failures {
		t.Run(failure.Error(), func(t *testing.T) {
			gateway := &mockWeatherGateway{}
			gateway.On("GetCurrentWeather", mock.Anything, "Lagos").Return(nil, failure).Once()

			uc := NewWeatherViewUseCase("Lagos", false, gateway)
			snapshot, err := uc.Load(context.Background())

			assert.Nil(t, snapshot)
			assert.ErrorIs(t, err, failure)
			assert.Equal(t, model.StateFailed, uc.State())

			page := uc.Render(model.Celsius)
			assert.True(t, page.Loading)
			assert.Empty(t, page.Failure)
			assert.Nil(t, page.Header)
			assert.Empty(t, page.Toggle)

			health := uc.Health()
			assert.Equal(t, model.StatusDown, health.Status)
			assert.Equal(t, failure.Error(), health.Details["error"])
		})
	}
}

func TestLoad_FailureSurfacedWhenEnabled(t *testing.T) {
	gateway := &mockWeatherGateway{}
	gateway.On("GetCurrentWeather", mock.Anything, "Lagos").
		Return(nil, &api.FetchError{Kind: api.FetchStatus, StatusCode: http.StatusUnauthorized}).
		Once()

	uc := NewWeatherViewUseCase("Lagos", true, gateway)
	_, err := uc.Load(context.Background())
	require.Error(t, err)

	page := uc.Render(model.Celsius)
	assert.False(t, page.Loading)
	assert.NotEmpty(t, page.Failure)
	assert.Nil(t, page.Header)
	assert.Empty(t, page.Toggle)
}

func TestLoad_TransportFailureDoesNotExposeAPIKey(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	gateway := api.NewWeatherGateway(baseURL, api.WeatherGatewayOptions{APIKey: "SUPERSECRETKEY"})
	uc := NewWeatherViewUseCase("Lagos", true, gateway)

	_, err := uc.Load(context.Background())
	require.Error(t, err)

	assert.NotContains(t, uc.Health().Details["error"], "SUPERSECRETKEY")
	assert.NotContains(t, uc.Render(model.Celsius).Failure, "SUPERSECRETKEY")
}

func TestHealth_LoadingIsUnknown(t *testing.T) {
	uc := NewWeatherViewUseCase("Lagos", false, &mockWeatherGateway{})
	health := uc.Health()
	assert.Equal(t, model.StatusUnknown, health.Status)
	assert.Equal(t, "LOADING", health.Details["state"])
	assert.Equal(t, "Lagos", health.Details["city"])
}

func TestCompassPoint(t *testing.T) {
	tests := map[int]string{0: "N", 22: "N", 23: "NE", 90: "E", 180: "S", 200: "S", 270: "W", 337: "NW", 338: "N", 360: "N", -90: "W"}
	for deg, want := range tests {
		assert.Equal(t, want, compassPoint(deg), "deg %d", deg)
	}
}
