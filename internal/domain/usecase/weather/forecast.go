package weather

import "weather-view/internal/domain/entity"

// shortForecast is the fixed three-day strip shown under the current conditions.
var shortForecast = []entity.ForecastDay{
	{Day: "Mon", Date: "9/7", Icon: "rain", TempC: 22},
	{Day: "Tue", Date: "9/8", Icon: "sun", TempC: 25, Active: true},
	{Day: "Wed", Date: "9/9", Icon: "cloud", TempC: 20},
}
