package engine

import (
	"math/rand"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// PossessionSimulator resolves a single offensive possession to 0, 3 or 7
// points through a three-stage cascade mirroring a real drive: turnover
// check, score/no-score check, then touchdown versus field goal. Each
// statistical category gates its own stage so turnovers, overall
// efficiency and red-zone conversion influence outcomes independently.
type PossessionSimulator struct {
	tuning Tuning
}

// NewPossessionSimulator creates a simulator with the given tuning table.
func NewPossessionSimulator(t Tuning) *PossessionSimulator {
	return &PossessionSimulator{tuning: t}
}

// SimulatePossession returns the point outcome of one possession for the
// offense against the defense. adj may be nil for weather-neutral games;
// when present its adjusted strengths replace the raw ones. All draws
// come from the injected rng.
func (s *PossessionSimulator) SimulatePossession(rng *rand.Rand, offense, defense *models.TeamStatisticalProfile, offStrength, defStrength float64, adj *WeatherAdjustment) int {
	t := s.tuning

	if adj != nil {
		offStrength = adj.AdjustedOffense
		defStrength = adj.AdjustedDefense
	}

	// Stage 1: turnover ends the drive scoreless.
	turnoverProb := clamp((offense.TurnoverRate()+defense.TakeawayRate())/2, t.MinTurnoverProb, t.MaxTurnoverProb)
	if rng.Float64() < turnoverProb {
		return 0
	}

	// Stage 2: does the drive produce points at all. Strength ratio and
	// efficiency ratio blend per the fixed tuning split.
	strengthRatio := safeDiv(offStrength, offStrength+defStrength, 0.5)
	effRatio := safeDiv(offense.YardsPerPlay, offense.YardsPerPlay+defense.YardsPerPlayAllowed, 0.5)
	scoreProb := t.ScoreStrengthBlend*strengthRatio + (1-t.ScoreStrengthBlend)*effRatio
	if rng.Float64() >= scoreProb {
		return 0
	}

	// Stage 3: touchdown, field goal, or a stalled drive in range.
	tdThreshold := s.touchdownThreshold(offense)
	roll := rng.Float64()
	if roll < tdThreshold {
		return 7
	}
	if roll < tdThreshold+t.FieldGoalBand {
		return 3
	}
	return 0
}

// touchdownThreshold derives the chance a scoring drive finishes in the
// end zone from red-zone efficiency and touchdown rates.
func (s *PossessionSimulator) touchdownThreshold(offense *models.TeamStatisticalProfile) float64 {
	t := s.tuning
	threshold := t.TDThresholdBase +
		t.TDRedZoneWeight*(offense.RedZonePct/100) +
		t.TDRateWeight*((offense.PassingTDRate+offense.RushingTDRate)/100)
	return clamp(threshold, t.TDThresholdMin, t.TDThresholdMax)
}
