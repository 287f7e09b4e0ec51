package backtest

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func gradedGame(result models.SimulationResult, line models.MarketLine, home, away int) GradedGame {
	return GradedGame{
		Prediction: &models.GamePrediction{Line: line, Result: result},
		HomeScore:  home,
		AwayScore:  away,
	}
}

func TestEvaluateEmpty(t *testing.T) {
	card := Evaluate(nil)
	if card.Games != 0 {
		t.Fatalf("games %d", card.Games)
	}
	if !card.ReturnUnits.IsZero() {
		t.Fatalf("return units %s", card.ReturnUnits)
	}
}

func TestEvaluateWinningPicks(t *testing.T) {
	result := models.SimulationResult{
		HomeWinProbability:       60,
		AwayWinProbability:       38,
		TieProbability:           2,
		FavoriteCoverProbability: 58,
		UnderdogCoverProbability: 42,
		OverProbability:          56,
		UnderProbability:         44,
		PredictedHomeScore:       27,
		PredictedAwayScore:       20,
		FavoriteIsHome:           true,
	}
	line := models.MarketLine{Spread: -7, Total: 44.5}

	// Home wins by 10: outright, cover, and over all hit.
	card := Evaluate([]GradedGame{gradedGame(result, line, 28, 18)})

	if card.WinnerHitRate != 100 {
		t.Errorf("winner hit rate %.1f", card.WinnerHitRate)
	}
	if card.SpreadRecord.Wins != 1 || card.SpreadRecord.Losses != 0 {
		t.Errorf("spread record %+v", card.SpreadRecord)
	}
	if card.TotalRecord.Wins != 1 {
		t.Errorf("total record %+v", card.TotalRecord)
	}

	// Two winning one-unit wagers at -110.
	want := decimal.NewFromInt(100).Div(decimal.NewFromInt(110)).Mul(decimal.NewFromInt(2))
	if !card.ReturnUnits.Equal(want) {
		t.Errorf("return units %s, want %s", card.ReturnUnits, want)
	}

	if math.Abs(card.MeanAbsTotalError-1.0) > 1e-9 {
		t.Errorf("mean abs total error %.2f, want 1.0", card.MeanAbsTotalError)
	}
}

func TestEvaluateLosingPicks(t *testing.T) {
	result := models.SimulationResult{
		HomeWinProbability:       60,
		AwayWinProbability:       38,
		FavoriteCoverProbability: 58,
		OverProbability:          56,
		PredictedHomeScore:       27,
		PredictedAwayScore:       20,
		FavoriteIsHome:           true,
	}
	line := models.MarketLine{Spread: -7, Total: 44.5}

	// Away wins 24-10: winner miss, no cover, under.
	card := Evaluate([]GradedGame{gradedGame(result, line, 10, 24)})

	if card.WinnerHitRate != 0 {
		t.Errorf("winner hit rate %.1f", card.WinnerHitRate)
	}
	if card.SpreadRecord.Losses != 1 || card.TotalRecord.Losses != 1 {
		t.Errorf("records %+v / %+v", card.SpreadRecord, card.TotalRecord)
	}
	if !card.ReturnUnits.Equal(decimal.NewFromInt(-2)) {
		t.Errorf("return units %s, want -2", card.ReturnUnits)
	}
}

func TestEvaluateSpreadPush(t *testing.T) {
	result := models.SimulationResult{
		HomeWinProbability:       60,
		FavoriteCoverProbability: 58,
		OverProbability:          30,
		FavoriteIsHome:           true,
	}
	line := models.MarketLine{Spread: -7, Total: 50}

	// Home wins by exactly 7: spread pushes and stakes nothing. Total
	// lands under 50 so the under pick wins.
	card := Evaluate([]GradedGame{gradedGame(result, line, 27, 20)})

	if card.SpreadRecord.Pushes != 1 {
		t.Fatalf("spread record %+v", card.SpreadRecord)
	}
	if card.TotalRecord.Wins != 1 {
		t.Fatalf("total record %+v", card.TotalRecord)
	}
	want := decimal.NewFromInt(100).Div(decimal.NewFromInt(110))
	if !card.ReturnUnits.Equal(want) {
		t.Fatalf("return units %s, want %s", card.ReturnUnits, want)
	}
}

func TestEvaluateUnderdogPick(t *testing.T) {
	result := models.SimulationResult{
		HomeWinProbability:       45,
		AwayWinProbability:       53,
		FavoriteCoverProbability: 40,
		OverProbability:          50,
		FavoriteIsHome:           false,
	}
	line := models.MarketLine{Spread: 3, Total: 41.5}

	// Away is favored by three but only wins by one. The model took the
	// underdog against the spread and grades a win.
	card := Evaluate([]GradedGame{gradedGame(result, line, 20, 21)})

	if card.SpreadRecord.Wins != 1 {
		t.Fatalf("spread record %+v", card.SpreadRecord)
	}
	if card.WinnerHitRate != 100 {
		t.Fatalf("winner hit rate %.1f", card.WinnerHitRate)
	}
}

func TestBrierScorePerfectAndWorst(t *testing.T) {
	line := models.MarketLine{Spread: -3, Total: 40}

	confident := models.SimulationResult{HomeWinProbability: 100, FavoriteIsHome: true}
	card := Evaluate([]GradedGame{gradedGame(confident, line, 30, 10)})
	if card.BrierScore != 0 {
		t.Errorf("confident correct brier %.3f, want 0", card.BrierScore)
	}

	card = Evaluate([]GradedGame{gradedGame(confident, line, 10, 30)})
	if card.BrierScore != 1 {
		t.Errorf("confident wrong brier %.3f, want 1", card.BrierScore)
	}
}

func TestRecordHitRate(t *testing.T) {
	r := Record{Wins: 6, Losses: 3, Pushes: 2}
	if got := r.HitRate(); math.Abs(got-6.0/9.0) > 1e-9 {
		t.Errorf("hit rate %.4f", got)
	}
	if got := (Record{}).HitRate(); got != 0 {
		t.Errorf("empty record hit rate %.4f", got)
	}
}
