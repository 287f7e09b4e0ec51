// Package edge detects betting value by comparing model probabilities
// against market implied probabilities.
package edge

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/engine"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// standardJuice is the implied probability of a -110 line, which books
// hang on spread and total markets by default.
const standardJuice = 110.0 / 210.0

// Signal represents one detected value opportunity.
type Signal struct {
	Market      string  `json:"market"`
	Side        string  `json:"side"`
	ModelProb   float64 `json:"model_prob"`
	ImpliedProb float64 `json:"implied_prob"`
	EdgePercent float64 `json:"edge_percent"`
	StakeUnits  float64 `json:"stake_units"`
}

// Detector evaluates predictions against their market lines.
type Detector struct {
	minEdgePercent float64
	kellyFraction  decimal.Decimal
	maxStakeUnits  decimal.Decimal
	logger         *logrus.Logger
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(minEdgePercent, kellyFraction, maxStakeUnits float64, logger *logrus.Logger) *Detector {
	if logger == nil {
		logger = logrus.New()
	}
	if kellyFraction <= 0 {
		kellyFraction = 0.25
	}
	return &Detector{
		minEdgePercent: minEdgePercent,
		kellyFraction:  decimal.NewFromFloat(kellyFraction),
		maxStakeUnits:  decimal.NewFromFloat(maxStakeUnits),
		logger:         logger,
	}
}

// Evaluate compares a prediction to its market line and returns every
// signal whose edge clears the configured threshold.
func (d *Detector) Evaluate(line models.MarketLine, result *models.SimulationResult) []Signal {
	if result == nil {
		return nil
	}

	var signals []Signal

	homeImplied, awayImplied := engine.RemoveVig(
		engine.AmericanToImplied(line.HomeMoneyline),
		engine.AmericanToImplied(line.AwayMoneyline),
	)

	candidates := []struct {
		market   string
		side     string
		model    float64
		implied  float64
		american int
	}{
		{"moneyline", "home", result.HomeWinProbability / 100, homeImplied, line.HomeMoneyline},
		{"moneyline", "away", result.AwayWinProbability / 100, awayImplied, line.AwayMoneyline},
		{"spread", "favorite", result.FavoriteCoverProbability / 100, standardJuice, -110},
		{"spread", "underdog", result.UnderdogCoverProbability / 100, standardJuice, -110},
		{"total", "over", result.OverProbability / 100, standardJuice, -110},
		{"total", "under", result.UnderProbability / 100, standardJuice, -110},
	}

	for _, c := range candidates {
		edgePct := (c.model - c.implied) * 100
		if edgePct < d.minEdgePercent {
			continue
		}

		stake := d.kellyStake(c.model, c.american)
		if stake.IsZero() {
			continue
		}

		stakeUnits, _ := stake.Round(2).Float64()
		signals = append(signals, Signal{
			Market:      c.market,
			Side:        c.side,
			ModelProb:   c.model,
			ImpliedProb: c.implied,
			EdgePercent: edgePct,
			StakeUnits:  stakeUnits,
		})

		d.logger.WithFields(logrus.Fields{
			"market":       c.market,
			"side":         c.side,
			"edge_percent": edgePct,
			"stake_units":  stakeUnits,
		}).Debug("Edge signal")
	}

	return signals
}

// kellyStake computes a fractional Kelly stake in units, capped at the
// configured maximum.
func (d *Detector) kellyStake(probability float64, americanOdds int) decimal.Decimal {
	decimalOdds := AmericanToDecimal(americanOdds)
	if probability <= 0 || decimalOdds.LessThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero
	}

	p := decimal.NewFromFloat(probability)
	q := decimal.NewFromInt(1).Sub(p)
	b := decimalOdds.Sub(decimal.NewFromInt(1))

	kelly := b.Mul(p).Sub(q).Div(b)
	if kelly.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	stake := kelly.Mul(d.kellyFraction).Mul(d.maxStakeUnits)
	if stake.GreaterThan(d.maxStakeUnits) {
		return d.maxStakeUnits
	}
	return stake
}

// AmericanToDecimal converts American odds to European decimal odds.
func AmericanToDecimal(americanOdds int) decimal.Decimal {
	if americanOdds == 0 {
		return decimal.Zero
	}
	odds := decimal.NewFromInt(int64(americanOdds))
	hundred := decimal.NewFromInt(100)
	if americanOdds > 0 {
		return odds.Div(hundred).Add(decimal.NewFromInt(1))
	}
	return hundred.Div(odds.Neg()).Add(decimal.NewFromInt(1))
}
