package engine

import (
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/stats"
)

func TestDomeGameIsUntouched(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())
	cond := &models.WeatherConditions{
		Temperature: 5,
		WindSpeed:   30,
		Condition:   models.ConditionSnow,
		IsDome:      true,
	}

	adj := adjuster.Adjust(cond, 60, 55, 240, 110)
	if !adj.Neutral() {
		t.Fatalf("dome game adjusted: %+v", adj)
	}
	if adj.AdjustedOffense != 60 || adj.AdjustedDefense != 55 {
		t.Fatalf("dome strengths changed: %+v", adj)
	}
}

func TestNilConditionsAreNeutral(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())

	adj := adjuster.Adjust(nil, 60, 55, 240, 110)
	if !adj.Neutral() {
		t.Fatalf("nil conditions adjusted: %+v", adj)
	}
}

func TestMildWeatherIsNeutral(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())
	cond := &models.WeatherConditions{
		Temperature:   62,
		WindSpeed:     6,
		Precipitation: 10,
		Condition:     models.ConditionClear,
	}

	adj := adjuster.Adjust(cond, 60, 55, 240, 110)
	if !adj.Neutral() {
		t.Fatalf("mild weather adjusted: %+v", adj)
	}
}

func TestWindPenaltyGrowsWithSpeed(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())

	speeds := []float64{12, 17, 22, 27}
	prev := 101.0
	for _, speed := range speeds {
		cond := &models.WeatherConditions{Temperature: 60, WindSpeed: speed, Condition: models.ConditionWind}
		adj := adjuster.Adjust(cond, 60, 55, 240, 110)
		if adj.AdjustedOffense >= prev {
			t.Fatalf("wind %v mph: offense %.2f not below previous %.2f", speed, adj.AdjustedOffense, prev)
		}
		if adj.RushingModifier != 1.0 {
			t.Fatalf("wind %v mph touched rushing: %.2f", speed, adj.RushingModifier)
		}
		prev = adj.AdjustedOffense
	}
}

func TestPassHeavyOffenseHurtsMoreInWind(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())
	cond := &models.WeatherConditions{Temperature: 60, WindSpeed: 22, Condition: models.ConditionWind}

	passHeavy := adjuster.Adjust(cond, 60, 55, 300, 80)
	runHeavy := adjuster.Adjust(cond, 60, 55, 150, 180)

	if passHeavy.AdjustedOffense >= runHeavy.AdjustedOffense {
		t.Fatalf("pass-heavy offense (%.2f) should suffer more than run-heavy (%.2f)",
			passHeavy.AdjustedOffense, runHeavy.AdjustedOffense)
	}
}

func TestSnowHitsBothPlayTypes(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())
	cond := &models.WeatherConditions{Temperature: 28, Precipitation: 80, Condition: models.ConditionSnow}

	adj := adjuster.Adjust(cond, 60, 55, 240, 110)
	if adj.PassingModifier >= 1.0 || adj.RushingModifier >= 1.0 {
		t.Fatalf("snow should penalize both play types: %+v", adj)
	}
}

func TestSuppressedOffenseBenefitsDefense(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())
	cond := &models.WeatherConditions{Temperature: 15, WindSpeed: 22, Condition: models.ConditionWind}

	adj := adjuster.Adjust(cond, 60, 55, 240, 110)
	if adj.AdjustedOffense >= 60 {
		t.Fatalf("offense should drop, got %.2f", adj.AdjustedOffense)
	}
	if adj.AdjustedDefense <= 55 {
		t.Fatalf("defense should rise, got %.2f", adj.AdjustedDefense)
	}
}

func TestAdjustedStrengthsStayBounded(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())
	cond := &models.WeatherConditions{Temperature: 0, WindSpeed: 35, Precipitation: 95, Condition: models.ConditionSnow}

	adj := adjuster.Adjust(cond, 95, 95, 240, 110)
	if adj.AdjustedOffense < 0 || adj.AdjustedOffense > 100 {
		t.Fatalf("adjusted offense out of range: %.2f", adj.AdjustedOffense)
	}
	if adj.AdjustedDefense < 0 || adj.AdjustedDefense > 100 {
		t.Fatalf("adjusted defense out of range: %.2f", adj.AdjustedDefense)
	}
}

func TestWeatherNeverChangesProfiles(t *testing.T) {
	adjuster := NewWeatherAdjuster(DefaultTuning())
	p := stats.LeagueAverageProfile("CHI")
	passBefore := p.PassingYardsPerGame

	cond := &models.WeatherConditions{Temperature: 10, WindSpeed: 25, Condition: models.ConditionWind}
	adjuster.Adjust(cond, 50, 50, p.PassingYardsPerGame, p.RushingYardsPerGame)

	if p.PassingYardsPerGame != passBefore {
		t.Fatal("adjustment mutated the profile")
	}
}
