package backtest

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

// Collector assembles graded games from stored predictions and final
// scores.
type Collector struct {
	games       repository.GameRepository
	predictions repository.PredictionRepository
	logger      *logrus.Logger
}

// NewCollector creates a collector over the given repositories.
func NewCollector(games repository.GameRepository, predictions repository.PredictionRepository, logger *logrus.Logger) *Collector {
	if logger == nil {
		logger = logrus.New()
	}
	return &Collector{games: games, predictions: predictions, logger: logger}
}

// CollectWeeks gathers every final game in the week range that has a
// stored prediction. Games still in progress, cancelled, or never
// predicted are skipped with a debug log.
func (c *Collector) CollectWeeks(ctx context.Context, season, fromWeek, toWeek int) ([]GradedGame, error) {
	var graded []GradedGame

	for week := fromWeek; week <= toWeek; week++ {
		games, err := c.games.GetByWeek(ctx, season, week)
		if err != nil {
			return nil, fmt.Errorf("failed to load week %d games: %w", week, err)
		}

		for _, game := range games {
			if game.Status != "final" || game.HomeScore == nil || game.AwayScore == nil {
				continue
			}

			prediction, err := c.predictions.GetLatestForGame(ctx, game.ID)
			if err != nil {
				if errors.Is(err, models.ErrNotFound) {
					c.logger.WithField("game_id", game.ID).Debug("No stored prediction, skipping")
					continue
				}
				return nil, fmt.Errorf("failed to load prediction for game %s: %w", game.ID, err)
			}

			graded = append(graded, GradedGame{
				Prediction: prediction,
				HomeScore:  *game.HomeScore,
				AwayScore:  *game.AwayScore,
			})
		}
	}

	return graded, nil
}
