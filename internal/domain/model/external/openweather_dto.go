package external

// CurrentWeatherResponse represents the response from the OpenWeatherMap current weather API
type CurrentWeatherResponse struct {
	Timezone int                   `json:"timezone"`
	Name     string                `json:"name"`
	Weather  []WeatherConditionDTO `json:"weather"`
	Main     MainDTO               `json:"main"`
	Wind     WindDTO               `json:"wind"`
	Sys      SysDTO                `json:"sys"`
}

// WeatherConditionDTO represents a single weather condition
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperatures (metric units) and atmospheric readings
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WindDTO holds wind speed and meteorological direction in degrees
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// SysDTO holds sunrise and sunset as unix seconds
type SysDTO struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// APIErrorResponse represents error responses from OpenWeatherMap. Cod is a string for 404s and a
// number for 401s, so it is kept raw.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
