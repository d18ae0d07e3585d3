package weather

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"strconv"
	"strings"
	"sync"
	"time"
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
)

// ErrAlreadyLoaded is returned by Load after the first call.
var ErrAlreadyLoaded = errors.New("weather view already loaded")

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

type weatherViewUseCase struct {
	id             string
	city           string
	surfaceFailure bool
	apiGateway     api.WeatherGateway
	now            func() time.Time

	mu       sync.RWMutex
	started  bool
	state    model.ViewState
	snapshot *entity.WeatherSnapshot
	failure  error
}

// NewWeatherViewUseCase creates a view for city in the Loading state.
// surfaceFailure renders a failure notice instead of the loading indicator after a failed Load.
func NewWeatherViewUseCase(city string, surfaceFailure bool, apiGateway api.WeatherGateway) UseCase {
	return &weatherViewUseCase{
		id:             uuid.NewString(),
		city:           city,
		surfaceFailure: surfaceFailure,
		apiGateway:     apiGateway,
		now:            time.Now,
		state:          model.StateLoading,
	}
}

// Load fetches the snapshot once and moves the view to Ready or Failed
func (uc *weatherViewUseCase) Load(ctx context.Context) (*entity.WeatherSnapshot, error) {
	uc.mu.Lock()
	if uc.started {
		uc.mu.Unlock()
		return nil, ErrAlreadyLoaded
	}
	uc.started = true
	uc.mu.Unlock()

	log.Info(msg.GetMessage("weather.fetch.start", uc.city), zap.String("view_id", uc.id))
	start := uc.now()

	response, err := uc.apiGateway.GetCurrentWeather(ctx, uc.city)
	if err != nil {
		uc.mu.Lock()
		uc.state = model.StateFailed
		uc.failure = err
		uc.mu.Unlock()

		fields := []zap.Field{zap.String("view_id", uc.id), zap.String("city", uc.city), zap.Error(err)}
		var fetchErr *api.FetchError
		if errors.As(err, &fetchErr) {
			fields = append(fields, zap.String("kind", string(fetchErr.Kind)), zap.Int("status", fetchErr.StatusCode))
		}
		log.Error(msg.GetMessage("weather.fetch.failed", uc.city, err), fields...)
		return nil, err
	}

	snapshot := toSnapshot(response, uc.now())

	uc.mu.Lock()
	uc.snapshot = &snapshot
	uc.state = model.StateReady
	uc.mu.Unlock()

	log.Info(msg.GetMessage("weather.fetch.done", snapshot.Location),
		zap.String("view_id", uc.id),
		zap.Duration("latency", uc.now().Sub(start)))

	result := snapshot
	return &result, nil
}

func toSnapshot(response *external.CurrentWeatherResponse, fetchedAt time.Time) entity.WeatherSnapshot {
	description := ""
	if len(response.Weather) > 0 {
		description = response.Weather[0].Description
	}

	return entity.WeatherSnapshot{
		Location:    response.Name,
		Description: description,
		TempMax:     response.Main.TempMax,
		TempMin:     response.Main.TempMin,
		FeelsLike:   response.Main.FeelsLike,
		Pressure:    response.Main.Pressure,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
		WindDeg:     response.Wind.Deg,
		Sunrise:     response.Sys.Sunrise,
		Sunset:      response.Sys.Sunset,
		UTCOffset:   response.Timezone,
		FetchedAt:   fetchedAt,
	}
}

func (uc *weatherViewUseCase) State() model.ViewState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// Render builds the page model. Panels and the unit toggle are only filled in the Ready state.
func (uc *weatherViewUseCase) Render(unit model.DisplayUnit) model.WeatherPage {
	if unit != model.Fahrenheit {
		unit = model.Celsius
	}

	uc.mu.RLock()
	state, failure := uc.state, uc.failure
	var snapshot entity.WeatherSnapshot
	if uc.snapshot != nil {
		snapshot = *uc.snapshot
	}
	uc.mu.RUnlock()

	page := model.WeatherPage{
		State: state,
		Unit:  unit,
	}

	switch {
	case state == model.StateReady:
		page.Toggle = toggleButtons(unit)
		page.Header = renderHeader(snapshot, unit)
		page.Air = renderAirQuality(snapshot, unit)
		page.Forecast = renderForecast(unit)
	case state == model.StateFailed && uc.surfaceFailure:
		page.Failure = msg.GetMessage("weather.view.failed", uc.city, failure)
	default:
		page.Loading = true
	}

	return page
}

func renderHeader(snapshot entity.WeatherSnapshot, unit model.DisplayUnit) *model.HeaderPanel {
	fetchedAt := snapshot.FetchedAt.In(snapshot.Zone())
	return &model.HeaderPanel{
		Location:    snapshot.Location,
		Temperature: toTemperature(snapshot.TempMax, unit),
		Description: strings.ToUpper(snapshot.Description),
		DateLine: fmt.Sprintf("%s, %d/%d",
			strings.ToUpper(fetchedAt.Weekday().String()), int(fetchedAt.Month()), fetchedAt.Day()),
	}
}

func renderAirQuality(snapshot entity.WeatherSnapshot, unit model.DisplayUnit) *model.AirQualityPanel {
	zone := snapshot.Zone()
	return &model.AirQualityPanel{
		Temperature:   toTemperature(snapshot.FeelsLike, unit),
		Humidity:      strconv.Itoa(snapshot.Humidity) + "%",
		Pressure:      strconv.Itoa(snapshot.Pressure),
		WindSpeed:     strconv.FormatFloat(snapshot.WindSpeed, 'f', -1, 64) + " km/h",
		WindDirection: fmt.Sprintf("%d° %s", snapshot.WindDeg, compassPoint(snapshot.WindDeg)),
		Sunrise:       time.Unix(snapshot.Sunrise, 0).In(zone).Format("15:04"),
		Sunset:        time.Unix(snapshot.Sunset, 0).In(zone).Format("15:04"),
	}
}

func renderForecast(unit model.DisplayUnit) []model.ForecastCard {
	cards := make([]model.ForecastCard, 0, len(shortForecast))
	for _, day := range shortForecast {
		cards = append(cards, model.ForecastCard{
			Day:         day.Day,
			Date:        day.Date,
			Icon:        day.Icon,
			Temperature: toTemperature(day.TempC, unit),
			Active:      day.Active,
		})
	}
	return cards
}

func toggleButtons(unit model.DisplayUnit) []model.UnitButton {
	return []model.UnitButton{
		{Unit: model.Celsius, Label: "°C", Active: unit == model.Celsius},
		{Unit: model.Fahrenheit, Label: "°F", Active: unit == model.Fahrenheit},
	}
}

// compassPoint maps meteorological degrees onto an 8-point compass.
func compassPoint(deg int) string {
	normalized := ((deg % 360) + 360) % 360
	return compassPoints[((normalized*2+45)/90)%8]
}

func (uc *weatherViewUseCase) Health() model.ComponentHealthStatus {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	status := model.StatusUnknown
	switch uc.state {
	case model.StateReady:
		status = model.StatusUp
	case model.StateFailed:
		status = model.StatusDown
	}

	details := map[string]string{
		"view_id": uc.id,
		"city":    uc.city,
		"state":   string(uc.state),
	}
	if uc.failure != nil {
		details["error"] = uc.failure.Error()
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
