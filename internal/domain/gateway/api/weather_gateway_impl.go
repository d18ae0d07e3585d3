package api

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
	"weather-view/pkg/http"
)

const currentWeatherPath = "/data/2.5/weather"

// WeatherGatewayOptions configures the OpenWeatherMap gateway.
type WeatherGatewayOptions struct {
	APIKey string
	Client http.ClientOptions
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	baseUrl    string
	apiKey     string
	httpClient *http.Client

	mu        sync.Mutex
	requests  int
	lastCall  time.Time
	lastError *FetchError
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, opts WeatherGatewayOptions) WeatherGateway {
	if opts.Client.Logger == nil {
		opts.Client.Logger = http.ZapLogger{Name: "openweathermap"}
	}

	return &weatherGatewayImpl{
		baseUrl:    baseUrl,
		apiKey:     opts.APIKey,
		httpClient: http.NewHttpClient(baseUrl, opts.Client),
	}
}

// GetCurrentWeather gets current conditions for a city
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	response, err := w.fetch(ctx, city)

	w.mu.Lock()
	w.requests++
	w.lastCall = time.Now()
	w.lastError = err
	w.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return response, nil
}

func (w *weatherGatewayImpl) fetch(ctx context.Context, city string) (*external.CurrentWeatherResponse, *FetchError) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithHeaders(map[string]string{"Accept": "application/json"}).
		WithQueryParams(map[string]string{
			"q":     city,
			"appid": w.apiKey,
			"units": "metric",
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toFetchError(status, errResp, err)
	}

	response, ok := successResp.(*external.CurrentWeatherResponse)
	if !ok || response == nil {
		return nil, &FetchError{Kind: FetchDecode, StatusCode: status, Message: "empty response body"}
	}
	if len(response.Weather) == 0 {
		return nil, &FetchError{Kind: FetchDecode, StatusCode: status, Message: "response has no weather conditions"}
	}

	return response, nil
}

// toFetchError maps pkg/http failures onto the transport/status/decode taxonomy.
func toFetchError(status int, errResp any, err error) *FetchError {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		fetchErr := &FetchError{Kind: FetchStatus, StatusCode: statusErr.StatusCode, Err: err}
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
			fetchErr.Message = apiErr.Message
		}
		return fetchErr
	}

	var decodeErr *http.DecodeError
	if errors.As(err, &decodeErr) {
		return &FetchError{Kind: FetchDecode, StatusCode: status, Err: err}
	}

	return &FetchError{Kind: FetchTransport, Err: err}
}

// Health reports the outcome of the last provider call. Unknown until the first call.
func (w *weatherGatewayImpl) Health() model.ComponentHealthStatus {
	w.mu.Lock()
	defer w.mu.Unlock()

	details := map[string]string{
		"base_url":           w.baseUrl,
		"requests":           strconv.Itoa(w.requests),
		"api_key_configured": strconv.FormatBool(w.apiKey != ""),
	}

	status := model.StatusUnknown
	if w.requests > 0 {
		details["last_call"] = w.lastCall.UTC().Format(time.RFC3339)
		status = model.StatusUp
		if w.lastError != nil {
			status = model.StatusDown
			details["last_error_kind"] = string(w.lastError.Kind)
			details["last_error"] = w.lastError.Error()
		}
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
