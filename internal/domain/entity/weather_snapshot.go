package entity

import "time"

// WeatherSnapshot is the current weather for one location, fetched once and never mutated.
// Temperatures are degrees Celsius.
type WeatherSnapshot struct {
	Location    string    `json:"location"`
	Description string    `json:"description"`
	TempMax     float64   `json:"tempMax"`
	TempMin     float64   `json:"tempMin"`
	FeelsLike   float64   `json:"feelsLike"`
	Pressure    int       `json:"pressure"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	WindDeg     int       `json:"windDeg"`
	Sunrise     int64     `json:"sunrise"`
	Sunset      int64     `json:"sunset"`
	UTCOffset   int       `json:"utcOffset"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Zone is the fixed offset zone of the location, used for local clock times.
func (s WeatherSnapshot) Zone() *time.Location {
	return time.FixedZone("", s.UTCOffset)
}
