// Package backtest grades stored predictions against final scores so a
// model tag's real-world accuracy can be tracked across weeks.
package backtest

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Payout for a one-unit winning wager at standard -110 pricing.
var winPayout = decimal.NewFromInt(100).Div(decimal.NewFromInt(110))

// GradedGame pairs a stored prediction with the game's final score.
type GradedGame struct {
	Prediction *models.GamePrediction
	HomeScore  int
	AwayScore  int
}

// Record is a win/loss/push tally for one market.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
}

// HitRate returns wins over decided picks. Pushes do not count.
func (r Record) HitRate() float64 {
	decided := r.Wins + r.Losses
	if decided == 0 {
		return 0
	}
	return float64(r.Wins) / float64(decided)
}

// Scorecard aggregates a model tag's accuracy over a set of graded games.
type Scorecard struct {
	Games             int     `json:"games"`
	WinnerHitRate     float64 `json:"winner_hit_rate"`
	SpreadRecord      Record  `json:"spread_record"`
	TotalRecord       Record  `json:"total_record"`
	BrierScore        float64 `json:"brier_score"`
	MeanAbsTotalError float64 `json:"mean_abs_total_error"`

	// Return in units from staking one unit at -110 on every spread and
	// total pick the model graded.
	ReturnUnits decimal.Decimal `json:"return_units"`
}

// Evaluate grades each prediction against its final score and aggregates
// the results. Games without a final score must be filtered out by the
// caller.
func Evaluate(graded []GradedGame) Scorecard {
	card := Scorecard{Games: len(graded)}
	if len(graded) == 0 {
		return card
	}

	winnerHits := 0
	brier := make([]float64, 0, len(graded))
	totalErrs := make([]float64, 0, len(graded))
	ret := decimal.Zero

	for _, g := range graded {
		result := g.Prediction.Result
		line := g.Prediction.Line
		margin := float64(g.HomeScore - g.AwayScore)
		total := float64(g.HomeScore + g.AwayScore)

		if pickedWinner(&result, margin) {
			winnerHits++
		}

		homeWon := 0.5
		if margin > 0 {
			homeWon = 1.0
		} else if margin < 0 {
			homeWon = 0.0
		}
		p := result.HomeWinProbability / 100.0
		brier = append(brier, (p-homeWon)*(p-homeWon))

		predictedTotal := float64(result.PredictedHomeScore + result.PredictedAwayScore)
		totalErrs = append(totalErrs, math.Abs(predictedTotal-total))

		spreadOutcome := gradeSpread(&result, &line, margin)
		card.SpreadRecord.tally(spreadOutcome)
		ret = ret.Add(stakeReturn(spreadOutcome))

		totalOutcome := gradeTotal(&result, &line, total)
		card.TotalRecord.tally(totalOutcome)
		ret = ret.Add(stakeReturn(totalOutcome))
	}

	card.WinnerHitRate = float64(winnerHits) / float64(len(graded)) * 100.0
	card.BrierScore = stat.Mean(brier, nil)
	card.MeanAbsTotalError = stat.Mean(totalErrs, nil)
	card.ReturnUnits = ret
	return card
}

type outcome int

const (
	outcomeWin outcome = iota
	outcomeLoss
	outcomePush
)

func (r *Record) tally(o outcome) {
	switch o {
	case outcomeWin:
		r.Wins++
	case outcomeLoss:
		r.Losses++
	case outcomePush:
		r.Pushes++
	}
}

func stakeReturn(o outcome) decimal.Decimal {
	switch o {
	case outcomeWin:
		return winPayout
	case outcomeLoss:
		return decimal.NewFromInt(-1)
	default:
		return decimal.Zero
	}
}

// pickedWinner reports whether the side the model favored won outright.
// Ties grade as a miss for either side.
func pickedWinner(result *models.SimulationResult, margin float64) bool {
	switch result.ImpliedEdgeSide() {
	case "home":
		return margin > 0
	default:
		return margin < 0
	}
}

// gradeSpread grades the model's side of the posted handicap. The model
// takes the favorite when it gives the favorite better than even odds to
// cover, the underdog otherwise.
func gradeSpread(result *models.SimulationResult, line *models.MarketLine, margin float64) outcome {
	favoriteMargin := margin
	if !result.FavoriteIsHome {
		favoriteMargin = -margin
	}
	coverDiff := favoriteMargin - line.AbsSpread()

	tookFavorite := result.FavoriteCoverProbability > 50.0
	switch {
	case coverDiff == 0:
		return outcomePush
	case (coverDiff > 0) == tookFavorite:
		return outcomeWin
	default:
		return outcomeLoss
	}
}

// gradeTotal grades the model's side of the posted total.
func gradeTotal(result *models.SimulationResult, line *models.MarketLine, total float64) outcome {
	diff := total - line.Total
	tookOver := result.OverProbability > 50.0
	switch {
	case diff == 0:
		return outcomePush
	case (diff > 0) == tookOver:
		return outcomeWin
	default:
		return outcomeLoss
	}
}
