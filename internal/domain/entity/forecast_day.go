package entity

// ForecastDay is one entry of the short forecast strip.
type ForecastDay struct {
	Day    string  `json:"day"`
	Date   string  `json:"date"`
	Icon   string  `json:"icon"`
	TempC  float64 `json:"tempC"`
	Active bool    `json:"active"`
}
