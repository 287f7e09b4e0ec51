//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/test/helpers"
)

const skipIntegration = "Skipping integration test in short mode"

// TestDatabaseRepositoryIntegration tests the repositories against a real
// PostgreSQL instance.
func TestDatabaseRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip(skipIntegration)
	}

	ctx := context.Background()
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	repos, err := repository.NewRepositories(db)
	require.NoError(t, err)

	t.Run("GameRepository", func(t *testing.T) {
		game := helpers.NewTestGame("KC", "BUF")

		err := repos.Game.Create(ctx, game)
		require.NoError(t, err)

		retrieved, err := repos.Game.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game.HomeTeam, retrieved.HomeTeam)
		assert.Equal(t, game.AwayTeam, retrieved.AwayTeam)
		assert.Equal(t, "scheduled", retrieved.Status)

		homeScore, awayScore := 27, 20
		game.Status = "final"
		game.HomeScore = &homeScore
		game.AwayScore = &awayScore
		err = repos.Game.Update(ctx, game)
		require.NoError(t, err)

		updated, err := repos.Game.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, "final", updated.Status)
		require.NotNil(t, updated.HomeScore)
		assert.Equal(t, 27, *updated.HomeScore)

		err = repos.Game.Delete(ctx, game.ID)
		require.NoError(t, err)

		_, err = repos.Game.GetByID(ctx, game.ID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("GameRepositoryKickoffWindow", func(t *testing.T) {
		games := helpers.LoadGameFixtures(t)
		for _, game := range games {
			require.NoError(t, repos.Game.Create(ctx, game))
			defer repos.Game.Delete(ctx, game.ID)
		}

		window, err := repos.Game.GetByKickoffWindow(ctx, time.Now(), time.Now().Add(72*time.Hour))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(window), len(games))
	})

	t.Run("PredictionRepository", func(t *testing.T) {
		game := helpers.NewTestGame("GB", "DET")
		require.NoError(t, repos.Game.Create(ctx, game))
		defer repos.Game.Delete(ctx, game.ID)

		prediction := &models.GamePrediction{
			ID:     uuid.New(),
			GameID: game.ID,
			Line:   models.MarketLine{Spread: -3.5, Total: 47.5, HomeMoneyline: -180, AwayMoneyline: 155},
			Result: models.SimulationResult{
				HomeWinProbability:       58.2,
				AwayWinProbability:       39.9,
				TieProbability:           1.9,
				FavoriteCoverProbability: 51.4,
				UnderdogCoverProbability: 48.6,
				OverProbability:          49.1,
				UnderProbability:         50.9,
				PredictedHomeScore:       26,
				PredictedAwayScore:       21,
				Iterations:               10000,
				SimulatedMeanTotal:       46.8,
				SimulatedMeanMargin:      4.6,
				FavoriteIsHome:           true,
			},
			ModelTag: "integration-test",
		}

		err := repos.Prediction.Insert(ctx, prediction)
		require.NoError(t, err)

		latest, err := repos.Prediction.GetLatestForGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, prediction.ID, latest.ID)
		assert.InDelta(t, 58.2, latest.Result.HomeWinProbability, 0.001)
		assert.Equal(t, 10000, latest.Result.Iterations)

		all, err := repos.Prediction.GetByGameID(ctx, game.ID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("PredictionRepositoryBatch", func(t *testing.T) {
		games := helpers.LoadGameFixtures(t)
		predictions := make([]*models.GamePrediction, 0, len(games))
		for _, game := range games {
			require.NoError(t, repos.Game.Create(ctx, game))
			defer repos.Game.Delete(ctx, game.ID)
			predictions = append(predictions, &models.GamePrediction{
				ID:       uuid.New(),
				GameID:   game.ID,
				Line:     models.MarketLine{Spread: -3, Total: 44.5, HomeMoneyline: -150, AwayMoneyline: 130},
				Result:   models.SimulationResult{Iterations: 1000, FavoriteIsHome: true},
				ModelTag: "integration-test",
			})
		}

		err := repos.Prediction.InsertBatch(ctx, predictions)
		require.NoError(t, err)

		start := time.Now().Add(-time.Minute)
		end := time.Now().Add(time.Minute)
		byTag, err := repos.Prediction.GetByModelTag(ctx, "integration-test", start, end)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(byTag), len(predictions))
	})
}

// TestConcurrentPredictionInserts verifies the pool survives parallel
// writers.
func TestConcurrentPredictionInserts(t *testing.T) {
	if testing.Short() {
		t.Skip(skipIntegration)
	}

	ctx := context.Background()
	db := database.SetupTestDB(t)
	defer database.TeardownTestDB(t, db)

	repos, err := repository.NewRepositories(db)
	require.NoError(t, err)

	game := helpers.NewTestGame("DAL", "PHI")
	require.NoError(t, repos.Game.Create(ctx, game))
	defer repos.Game.Delete(ctx, game.ID)

	const writers = 8
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			errs <- repos.Prediction.Insert(ctx, &models.GamePrediction{
				ID:       uuid.New(),
				GameID:   game.ID,
				Line:     models.MarketLine{Spread: -3, Total: 44.5, HomeMoneyline: -150, AwayMoneyline: 130},
				Result:   models.SimulationResult{Iterations: 1000, FavoriteIsHome: true},
				ModelTag: "integration-test",
			})
		}()
	}
	for i := 0; i < writers; i++ {
		require.NoError(t, <-errs)
	}

	all, err := repos.Prediction.GetByGameID(ctx, game.ID)
	require.NoError(t, err)
	assert.Len(t, all, writers)
}
