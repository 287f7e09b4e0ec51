package backtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

type fakeGameRepo struct {
	repository.GameRepository
	byWeek map[int][]*models.Game
}

func (f *fakeGameRepo) GetByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	return f.byWeek[week], nil
}

type fakePredictionRepo struct {
	repository.PredictionRepository
	byGame map[uuid.UUID]*models.GamePrediction
}

func (f *fakePredictionRepo) GetLatestForGame(ctx context.Context, gameID uuid.UUID) (*models.GamePrediction, error) {
	p, ok := f.byGame[gameID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func finalGame(week int, home, away int) *models.Game {
	return &models.Game{
		ID:        uuid.New(),
		Season:    2025,
		Week:      week,
		HomeTeam:  "KC",
		AwayTeam:  "BUF",
		Kickoff:   time.Now().Add(-72 * time.Hour),
		Status:    "final",
		HomeScore: &home,
		AwayScore: &away,
	}
}

func TestCollectWeeks(t *testing.T) {
	graded1 := finalGame(1, 27, 20)
	graded2 := finalGame(2, 13, 30)
	unpredicted := finalGame(1, 21, 21)
	inProgress := finalGame(2, 0, 0)
	inProgress.Status = "in_progress"

	games := &fakeGameRepo{byWeek: map[int][]*models.Game{
		1: {graded1, unpredicted},
		2: {graded2, inProgress},
	}}
	predictions := &fakePredictionRepo{byGame: map[uuid.UUID]*models.GamePrediction{
		graded1.ID: {GameID: graded1.ID},
		graded2.ID: {GameID: graded2.ID},
	}}

	collected, err := NewCollector(games, predictions, nil).CollectWeeks(context.Background(), 2025, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(collected) != 2 {
		t.Fatalf("collected %d games, want 2", len(collected))
	}
	if collected[0].HomeScore != 27 || collected[1].AwayScore != 30 {
		t.Errorf("scores not carried: %+v", collected)
	}
}

func TestCollectWeeksEmptySlate(t *testing.T) {
	games := &fakeGameRepo{byWeek: map[int][]*models.Game{}}
	predictions := &fakePredictionRepo{byGame: map[uuid.UUID]*models.GamePrediction{}}

	collected, err := NewCollector(games, predictions, nil).CollectWeeks(context.Background(), 2025, 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(collected) != 0 {
		t.Fatalf("collected %d games from empty slate", len(collected))
	}
}
