package domain

// WeatherCategory is the display bucket for a WMO weather code
type WeatherCategory string

const (
	WeatherSunny        WeatherCategory = "sunny"
	WeatherCloudy       WeatherCategory = "cloudy"
	WeatherFog          WeatherCategory = "fog"
	WeatherRain         WeatherCategory = "rain"
	WeatherSnow         WeatherCategory = "snow"
	WeatherThunderstorm WeatherCategory = "thunderstorm"
)

// MapWeatherCode buckets a WMO code. Codes above 99 and negative codes fall
// back to cloudy.
func MapWeatherCode(code int) WeatherCategory {
	switch {
	case code < 0:
		return WeatherCloudy
	case code <= 1:
		return WeatherSunny
	case code <= 3:
		return WeatherCloudy
	case code <= 48:
		return WeatherFog
	case code <= 67:
		return WeatherRain
	case code <= 77:
		return WeatherSnow
	case code <= 82:
		return WeatherRain
	case code <= 99:
		return WeatherThunderstorm
	default:
		return WeatherCloudy
	}
}

// StaticWeather is the pre-authored weather of a day plan
type StaticWeather string

const (
	StaticSunny  StaticWeather = "sunny"
	StaticCloudy StaticWeather = "cloudy"
	StaticRainy  StaticWeather = "rainy"
)

// DailyForecast is one day of the external forecast
type DailyForecast struct {
	Date     string          `json:"date"`
	Code     int             `json:"code"`
	TempMax  float64         `json:"tempMax"`
	TempMin  float64         `json:"tempMin"`
	Category WeatherCategory `json:"category"`
}
