package engine

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// WeatherAdjustment carries weather-adjusted strengths and the per-play-type
// efficiency modifiers that produced them.
type WeatherAdjustment struct {
	AdjustedOffense  float64
	AdjustedDefense  float64
	PassingModifier  float64
	RushingModifier  float64
	Explanation      string
}

// Neutral reports whether the adjustment left strengths untouched.
func (a WeatherAdjustment) Neutral() bool {
	return a.PassingModifier == 1.0 && a.RushingModifier == 1.0
}

// WeatherAdjuster applies wind, temperature and precipitation penalties to
// an offense's strength. Each factor is an ordered threshold ladder; the
// first rung crossed applies. The two per-play-type modifiers are blended
// into one offensive modifier weighted by the offense's actual pass/rush
// yardage mix, so a pass-heavy team is hurt more by wind. The opposing
// defense receives a partial inverse benefit: suppressed offense helps
// whichever side is not holding the ball.
type WeatherAdjuster struct {
	tuning Tuning
}

// NewWeatherAdjuster creates an adjuster with the given tuning table.
func NewWeatherAdjuster(t Tuning) *WeatherAdjuster {
	return &WeatherAdjuster{tuning: t}
}

// Adjust returns weather-adjusted strengths for one offense/defense pairing.
// Dome games, nil conditions and impact-free forecasts return the inputs
// unchanged with modifiers of 1.0.
func (w *WeatherAdjuster) Adjust(cond *models.WeatherConditions, offense, defense float64, passYards, rushYards float64) WeatherAdjustment {
	if cond.IsNeutral() {
		return WeatherAdjustment{
			AdjustedOffense: offense,
			AdjustedDefense: defense,
			PassingModifier: 1.0,
			RushingModifier: 1.0,
			Explanation:     "no weather impact",
		}
	}

	t := w.tuning
	passMod, rushMod := 1.0, 1.0

	for _, step := range t.WindLadder {
		if cond.WindSpeed >= step.Threshold {
			passMod *= step.PassMod
			rushMod *= step.RushMod
			break
		}
	}
	for _, step := range t.TempLadder {
		if cond.Temperature <= step.Threshold {
			passMod *= step.PassMod
			rushMod *= step.RushMod
			break
		}
	}
	switch {
	case cond.Condition == models.ConditionSnow:
		passMod *= t.SnowPass
		rushMod *= t.SnowRush
	case cond.Precipitation >= t.HeavyPrecipLevel:
		passMod *= t.HeavyPrecipPass
		rushMod *= t.HeavyPrecipRush
	case cond.Precipitation >= t.ModeratePrecip:
		passMod *= t.ModeratePrecipPass
	}

	passShare := safeDiv(passYards, passYards+rushYards, t.DefaultPassShare)
	overall := passShare*passMod + (1-passShare)*rushMod

	adjOffense := clamp(offense*overall, 0, 100)
	defenseBoost := 1 + (1-overall)*t.DefenseBenefit
	adjDefense := clamp(defense*defenseBoost, 0, 100)

	return WeatherAdjustment{
		AdjustedOffense: adjOffense,
		AdjustedDefense: adjDefense,
		PassingModifier: passMod,
		RushingModifier: rushMod,
		Explanation: fmt.Sprintf("wind %.0fmph temp %.0fF precip %.0f %s: pass x%.2f rush x%.2f",
			cond.WindSpeed, cond.Temperature, cond.Precipitation, cond.Condition, passMod, rushMod),
	}
}
