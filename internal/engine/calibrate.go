package engine

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// MarketCalibrator runs many game replays and recenters the simulated
// total and margin distributions onto the posted market line before
// deriving over/under and cover probabilities. The market line already
// encodes information the statistical profiles do not (injuries,
// situational factors), so the simulation's variance is trusted while its
// mean is not: outcomes are re-tested against shifted copies of the
// recorded scores rather than re-run.
//
// Win/tie probabilities are intentionally reported from the unshifted raw
// tally. Moneyline is the one market where the model is allowed to
// disagree with the market; that disagreement is the edge signal.
type MarketCalibrator struct {
	tuning Tuning
	games  *GameSimulator
}

// NewMarketCalibrator creates a calibrator with the given tuning table.
func NewMarketCalibrator(t Tuning) *MarketCalibrator {
	return &MarketCalibrator{tuning: t, games: NewGameSimulator(t)}
}

// RunCalibrated simulates iterations full games and aggregates them into
// a SimulationResult. spread carries its posted sign; orientation of the
// margin follows favoriteIsHome.
func (c *MarketCalibrator) RunCalibrated(rng *rand.Rand, home, away *models.TeamStatisticalProfile, spread, total float64, cond *models.WeatherConditions, favoriteIsHome bool, iterations int) models.SimulationResult {
	homeScores := make([]float64, iterations)
	awayScores := make([]float64, iterations)
	totals := make([]float64, iterations)
	margins := make([]float64, iterations)

	var homeWins, awayWins, ties int
	for i := 0; i < iterations; i++ {
		h, a := c.games.SimulateGame(rng, home, away, cond)
		homeScores[i] = float64(h)
		awayScores[i] = float64(a)
		totals[i] = float64(h + a)
		if favoriteIsHome {
			margins[i] = float64(h - a)
		} else {
			margins[i] = float64(a - h)
		}

		switch {
		case h > a:
			homeWins++
		case a > h:
			awayWins++
		default:
			ties++
		}
	}

	absSpread := math.Abs(spread)
	rawMeanTotal := stat.Mean(totals, nil)
	rawMeanMargin := stat.Mean(margins, nil)

	// Shift the recorded distributions so their means land exactly on the
	// market line, preserving shape and variance.
	totalOffset := rawMeanTotal - total
	marginOffset := rawMeanMargin - absSpread

	var overs, favoriteCovers int
	for i := 0; i < iterations; i++ {
		if totals[i]-totalOffset > total {
			overs++
		}
		// Pushes count toward the underdog so cover probabilities stay
		// complementary.
		if margins[i]-marginOffset > absSpread {
			favoriteCovers++
		}
	}

	n := float64(iterations)
	homeWinPct := 100 * float64(homeWins) / n
	awayWinPct := 100 * float64(awayWins) / n
	overPct := 100 * float64(overs) / n
	favoriteCoverPct := 100 * float64(favoriteCovers) / n

	return models.SimulationResult{
		HomeWinProbability:       homeWinPct,
		AwayWinProbability:       awayWinPct,
		TieProbability:           100 - homeWinPct - awayWinPct,
		FavoriteCoverProbability: favoriteCoverPct,
		UnderdogCoverProbability: 100 - favoriteCoverPct,
		OverProbability:          overPct,
		UnderProbability:         100 - overPct,
		PredictedHomeScore:       roundScore(stat.Mean(homeScores, nil)),
		PredictedAwayScore:       roundScore(stat.Mean(awayScores, nil)),
		Iterations:               iterations,
		SimulatedMeanTotal:       rawMeanTotal,
		SimulatedMeanMargin:      rawMeanMargin,
		FavoriteIsHome:           favoriteIsHome,
	}
}

func roundScore(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	return score
}
