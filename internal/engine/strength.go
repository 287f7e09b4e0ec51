package engine

import (
	"github.com/yourusername/gridiron-edge/internal/models"
)

// League-average reference values used to normalize heterogeneous box-score
// statistics onto comparable ratios. A team matching every reference lands
// at strength 50 after rescaling.
const (
	refPointsPerGame   = 22.5
	refPassingYards    = 215.0
	refRushingYards    = 120.0
	refCompletionPct   = 63.5
	refYardsPerAttempt = 7.1
	refYardsPerCarry   = 4.3
	refYardsPerPlay    = 5.4
	refPassingTDRate   = 4.5
	refInterceptionRate = 2.3
	refRushingTDRate   = 2.5
	refFirstDowns      = 20.0
	refThirdDownPct    = 40.0
	refRedZonePct      = 55.0
	refPenaltyYards    = 45.0
	refTurnovers       = 1.3
	refDrivesPerGame   = 11.5
)

// StrengthCalculator converts a team's statistical profile into scalar
// offensive and defensive strength scores on a common 0-100 scale.
// Box-score magnitudes differ by units, so each category is expressed as
// a ratio against its league-average reference, weighted, summed into a
// raw value and linearly rescaled from the empirical raw band onto
// [0,100]. The fixed band keeps an average team pinned near 50.
type StrengthCalculator struct {
	tuning Tuning
}

// NewStrengthCalculator creates a calculator with the given tuning table.
func NewStrengthCalculator(t Tuning) *StrengthCalculator {
	return &StrengthCalculator{tuning: t}
}

// OffensiveStrength scores a team's offense on [0,100]. Pure and
// deterministic.
func (c *StrengthCalculator) OffensiveStrength(p *models.TeamStatisticalProfile) float64 {
	t := c.tuning

	passRatio := 0.30*safeDiv(p.PassingYardsPerGame, refPassingYards, t.DivisionFallback) +
		0.25*safeDiv(p.YardsPerAttempt, refYardsPerAttempt, t.DivisionFallback) +
		0.20*safeDiv(p.CompletionPct, refCompletionPct, t.DivisionFallback) +
		0.15*safeDiv(p.PassingTDRate, refPassingTDRate, t.DivisionFallback) +
		0.10*safeDiv(refInterceptionRate, p.InterceptionRate, t.DivisionFallback)
	passScore := clamp(50*passRatio, 0, 100)

	rushRatio := 0.45*safeDiv(p.RushingYardsPerGame, refRushingYards, t.DivisionFallback) +
		0.35*safeDiv(p.YardsPerCarry, refYardsPerCarry, t.DivisionFallback) +
		0.20*safeDiv(p.RushingTDRate, refRushingTDRate, t.DivisionFallback)
	rushScore := clamp(50*rushRatio, 0, 100)

	effRatio := 0.35*safeDiv(p.YardsPerPlay, refYardsPerPlay, t.DivisionFallback) +
		0.25*safeDiv(p.FirstDownsPerGame, refFirstDowns, t.DivisionFallback) +
		0.20*safeDiv(p.ThirdDownPct, refThirdDownPct, t.DivisionFallback) +
		0.20*safeDiv(p.RedZonePct, refRedZonePct, t.DivisionFallback)
	effScore := clamp(50*effRatio, 0, 100)

	toScore := turnoverImpact(p.TurnoversForcedPerGame, p.TurnoversLostPerGame, p.PenaltyYardsPerGame)

	raw := t.PassWeight*passScore +
		t.RushWeight*rushScore +
		t.EfficiencyWeight*effScore +
		t.TurnoverWeight*toScore +
		5*(safeDiv(p.PointsPerGame, refPointsPerGame, t.DivisionFallback)-1)

	return c.rescale(raw)
}

// DefensiveStrength scores a team's defense on [0,100]. Ratios are
// inverted against the "allowed" statistics so that giving up less raises
// the score. Pure and deterministic.
func (c *StrengthCalculator) DefensiveStrength(p *models.TeamStatisticalProfile) float64 {
	t := c.tuning

	passRatio := 0.40*safeDiv(refPassingYards, p.PassingYardsAllowedPerGame, t.DivisionFallback) +
		0.30*safeDiv(refYardsPerAttempt, p.YardsPerAttemptAllowed, t.DivisionFallback) +
		0.30*safeDiv(refCompletionPct, p.CompletionPctAllowed, t.DivisionFallback)
	passScore := clamp(50*passRatio, 0, 100)

	rushRatio := 0.60*safeDiv(refRushingYards, p.RushingYardsAllowedPerGame, t.DivisionFallback) +
		0.40*safeDiv(refYardsPerCarry, p.YardsPerCarryAllowed, t.DivisionFallback)
	rushScore := clamp(50*rushRatio, 0, 100)

	effRatio := 0.40*safeDiv(refYardsPerPlay, p.YardsPerPlayAllowed, t.DivisionFallback) +
		0.30*safeDiv(refThirdDownPct, p.ThirdDownPctAllowed, t.DivisionFallback) +
		0.30*safeDiv(refRedZonePct, p.RedZonePctAllowed, t.DivisionFallback)
	effScore := clamp(50*effRatio, 0, 100)

	toScore := turnoverImpact(p.TurnoversForcedPerGame, p.TurnoversLostPerGame, p.PenaltyYardsPerGame)

	raw := t.PassWeight*passScore +
		t.RushWeight*rushScore +
		t.EfficiencyWeight*effScore +
		t.TurnoverWeight*toScore +
		5*(1-safeDiv(p.PointsAllowedPerGame, refPointsPerGame, t.DivisionFallback))

	return c.rescale(raw)
}

// turnoverImpact scores the takeaway/giveaway differential around 50,
// with a small penalty-yardage drag.
func turnoverImpact(forced, lost, penaltyYards float64) float64 {
	score := 50 + 15*(forced-lost) - 0.1*(penaltyYards-refPenaltyYards)
	return clamp(score, 0, 100)
}

// rescale maps the raw weighted value from the fixed empirical band onto
// [0,100], clamping outside it.
func (c *StrengthCalculator) rescale(raw float64) float64 {
	t := c.tuning
	span := t.RawScoreCeiling - t.RawScoreFloor
	if span <= 0 {
		return clamp(raw, 0, 100)
	}
	return clamp((raw-t.RawScoreFloor)/span*100, 0, 100)
}
