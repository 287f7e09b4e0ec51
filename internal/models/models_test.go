package models

import (
	"math"
	"testing"
	"time"
)

func TestPassShare(t *testing.T) {
	p := &TeamStatisticalProfile{PassingYardsPerGame: 240, RushingYardsPerGame: 120}
	if got := p.PassShare(); math.Abs(got-240.0/360.0) > 1e-9 {
		t.Errorf("pass share %.4f", got)
	}

	empty := &TeamStatisticalProfile{}
	if got := empty.PassShare(); got != 0.58 {
		t.Errorf("fallback pass share %.4f, want 0.58", got)
	}
}

func TestTurnoverRates(t *testing.T) {
	p := &TeamStatisticalProfile{
		DrivesPerGame:          11.0,
		TurnoversLostPerGame:   1.1,
		TurnoversForcedPerGame: 2.2,
	}
	if got := p.TurnoverRate(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("turnover rate %.4f", got)
	}
	if got := p.TakeawayRate(); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("takeaway rate %.4f", got)
	}

	empty := &TeamStatisticalProfile{}
	if got := empty.TurnoverRate(); got != 0.11 {
		t.Errorf("fallback turnover rate %.4f", got)
	}
}

func TestAbsSpread(t *testing.T) {
	line := &MarketLine{Spread: -6.5}
	if got := line.AbsSpread(); got != 6.5 {
		t.Errorf("abs spread %.1f", got)
	}
	line.Spread = 3.0
	if got := line.AbsSpread(); got != 3.0 {
		t.Errorf("abs spread %.1f", got)
	}
}

func TestWeatherIsNeutral(t *testing.T) {
	tests := []struct {
		name string
		cond *WeatherConditions
		want bool
	}{
		{"nil conditions", nil, true},
		{"dome", &WeatherConditions{IsDome: true, WindSpeed: 40}, true},
		{"mild outdoor", &WeatherConditions{Temperature: 65, WindSpeed: 5, Condition: ConditionClear}, true},
		{"windy", &WeatherConditions{Temperature: 65, WindSpeed: 22, Condition: ConditionClear}, false},
		{"freezing", &WeatherConditions{Temperature: 20, WindSpeed: 5, Condition: ConditionClear}, false},
		{"snow", &WeatherConditions{Temperature: 65, WindSpeed: 5, Condition: ConditionSnow}, false},
		{"light rain below modifier level", &WeatherConditions{Temperature: 65, WindSpeed: 5, Precipitation: 35, Condition: ConditionRain}, true},
		{"moderate rain", &WeatherConditions{Temperature: 65, WindSpeed: 5, Precipitation: 40, Condition: ConditionRain}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.IsNeutral(); got != tt.want {
				t.Errorf("IsNeutral() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImpliedEdgeSide(t *testing.T) {
	r := &SimulationResult{HomeWinProbability: 55, AwayWinProbability: 43}
	if got := r.ImpliedEdgeSide(); got != "home" {
		t.Errorf("edge side %q", got)
	}
	r = &SimulationResult{HomeWinProbability: 41, AwayWinProbability: 57}
	if got := r.ImpliedEdgeSide(); got != "away" {
		t.Errorf("edge side %q", got)
	}
}

func TestGameIsUpcoming(t *testing.T) {
	g := &Game{Status: "scheduled", Kickoff: time.Now().Add(24 * time.Hour)}
	if !g.IsUpcoming() {
		t.Error("future scheduled game should be upcoming")
	}

	g.Status = "final"
	if g.IsUpcoming() {
		t.Error("final game is not upcoming")
	}

	g.Status = "scheduled"
	g.Kickoff = time.Now().Add(-time.Hour)
	if g.IsUpcoming() {
		t.Error("past kickoff is not upcoming")
	}
}
