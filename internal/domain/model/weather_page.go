package model

// WeatherPage is everything the page template or a JSON client needs to draw the view.
// Panels are nil while the view is loading.
type WeatherPage struct {
	State    ViewState        `json:"state"`
	Loading  bool             `json:"loading"`
	Failure  string           `json:"failure,omitempty"`
	Unit     DisplayUnit      `json:"unit"`
	Header   *HeaderPanel     `json:"header,omitempty"`
	Air      *AirQualityPanel `json:"airQuality,omitempty"`
	Forecast []ForecastCard   `json:"forecast,omitempty"`
	Toggle   []UnitButton     `json:"toggle"`
}

// Temperature is a converted, rounded reading with its unit glyph.
type Temperature struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

// HeaderPanel is the top card with the headline temperature.
type HeaderPanel struct {
	Location    string      `json:"location"`
	Temperature Temperature `json:"temperature"`
	Description string      `json:"description"`
	DateLine    string      `json:"dateLine"`
}

// AirQualityPanel groups the secondary readings.
type AirQualityPanel struct {
	Temperature   Temperature `json:"temperature"`
	Humidity      string      `json:"humidity"`
	Pressure      string      `json:"pressure"`
	WindSpeed     string      `json:"windSpeed"`
	WindDirection string      `json:"windDirection"`
	Sunrise       string      `json:"sunrise"`
	Sunset        string      `json:"sunset"`
}

// ForecastCard is one day of the forecast strip.
type ForecastCard struct {
	Day         string      `json:"day"`
	Date        string      `json:"date"`
	Icon        string      `json:"icon"`
	Temperature Temperature `json:"temperature"`
	Active      bool        `json:"active"`
}

// UnitButton is one side of the °C / °F toggle.
type UnitButton struct {
	Unit   DisplayUnit `json:"unit"`
	Label  string      `json:"label"`
	Active bool        `json:"active"`
}
