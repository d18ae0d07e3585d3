package view

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"weather-view/internal/domain/model"
)

func toggle(unit model.DisplayUnit) []model.UnitButton {
	return []model.UnitButton{
		{Unit: model.Celsius, Label: "°C", Active: unit == model.Celsius},
		{Unit: model.Fahrenheit, Label: "°F", Active: unit == model.Fahrenheit},
	}
}

func render(t *testing.T, data PageData) string {
	t.Helper()
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, PageTemplate, data, nil))
	return buf.String()
}

func TestRender_Loading(t *testing.T) {
	html := render(t, PageData{
		BasePath: "/weather-view",
		Page:     model.WeatherPage{State: model.StateLoading, Loading: true, Unit: model.Celsius},
	})

	assert.Contains(t, html, "Loading...")
	assert.NotContains(t, html, `class="toggle"`)
	assert.NotContains(t, html, "Air Quality")
	assert.NotContains(t, html, `class="card header"`)
}

func TestRender_Ready(t *testing.T) {
	html := render(t, PageData{
		BasePath: "/weather-view",
		Page: model.WeatherPage{
			State: model.StateReady,
			Unit:  model.Celsius,
			Header: &model.HeaderPanel{
				Location:    "Lagos",
				Temperature: model.Temperature{Value: 27, Unit: "C"},
				Description: "SCATTERED CLOUDS",
				DateLine:    "TUESDAY, 7/22",
			},
			Air: &model.AirQualityPanel{
				Temperature:   model.Temperature{Value: 25, Unit: "C"},
				Humidity:      "70%",
				Pressure:      "1011",
				WindSpeed:     "7.2 km/h",
				WindDirection: "180° S",
				Sunrise:       "06:00",
				Sunset:        "18:40",
			},
			Forecast: []model.ForecastCard{{Day: "Tue", Date: "9/8", Icon: "sun", Temperature: model.Temperature{Value: 25, Unit: "C"}, Active: true}},
			Toggle:   toggle(model.Celsius),
		},
	})

	assert.Contains(t, html, "27°C")
	assert.Contains(t, html, "25°C")
	assert.Contains(t, html, "1011 hPa")
	assert.Contains(t, html, "7.2 km/h")
	assert.Contains(t, html, "TUESDAY, 7/22")
	assert.Contains(t, html, "☀")
	assert.Contains(t, html, `class="day active"`)
	assert.Contains(t, html, `action="/weather-view/weather/unit"`)
	assert.Contains(t, html, `value="C" class="active"`)
	assert.NotContains(t, html, "Loading...")
}

func TestRender_Failure(t *testing.T) {
	html := render(t, PageData{
		Page: model.WeatherPage{State: model.StateFailed, Failure: "Weather for Lagos is unavailable"},
	})

	assert.Contains(t, html, "Weather for Lagos is unavailable")
	assert.NotContains(t, html, `class="toggle"`)
	assert.NotContains(t, html, "Loading...")
}

func TestForecastIcon_UnknownFallsBackToName(t *testing.T) {
	assert.Equal(t, "snow", forecastIcon("snow"))
	assert.Equal(t, "☁", forecastIcon("cloud"))
}
