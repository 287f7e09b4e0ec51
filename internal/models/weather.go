package models

// WeatherCondition is the categorical sky condition reported by the
// weather provider.
type WeatherCondition string

const (
	ConditionClear WeatherCondition = "clear"
	ConditionRain  WeatherCondition = "rain"
	ConditionSnow  WeatherCondition = "snow"
	ConditionFog   WeatherCondition = "fog"
	ConditionWind  WeatherCondition = "wind"
)

// WeatherConditions describes forecast conditions at kickoff. A nil
// *WeatherConditions or a dome game is treated as weather-neutral.
type WeatherConditions struct {
	Temperature   float64          `json:"temperature"`
	WindSpeed     float64          `json:"wind_speed" validate:"gte=0"`
	Precipitation float64          `json:"precipitation" validate:"gte=0,lte=100"`
	Condition     WeatherCondition `json:"condition"`
	IsDome        bool             `json:"is_dome"`
}

// IsNeutral reports whether the conditions have no modeled impact on play.
func (w *WeatherConditions) IsNeutral() bool {
	if w == nil || w.IsDome {
		return true
	}
	// 40 is the lightest precipitation level that draws a modifier.
	if w.WindSpeed < 10 && w.Temperature > 32 && w.Precipitation < 40 && w.Condition != ConditionSnow {
		return true
	}
	return false
}
