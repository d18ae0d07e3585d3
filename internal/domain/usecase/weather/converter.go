package weather

import (
	"math"
	"weather-view/internal/domain/model"
)

// ConvertTemperature converts a Celsius reading for display. Halves round up, so -0.5 becomes 0.
func ConvertTemperature(celsius float64, unit model.DisplayUnit) (int, string) {
	if unit == model.Fahrenheit {
		return roundHalfUp(celsius*9/5 + 32), model.Fahrenheit.Glyph()
	}
	return roundHalfUp(celsius), model.Celsius.Glyph()
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

func toTemperature(celsius float64, unit model.DisplayUnit) model.Temperature {
	value, glyph := ConvertTemperature(celsius, unit)
	return model.Temperature{Value: value, Unit: glyph}
}
