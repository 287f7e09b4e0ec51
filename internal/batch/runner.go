// Package batch fans a slate of games out over a worker pool, running
// one full simulation per game and persisting the results. A failure on
// one game never aborts the rest of the slate.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/edge"
	"github.com/yourusername/gridiron-edge/internal/engine"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/stats"
)

// LineResolver returns the current market line for a game, if one is
// known. Games without a line are skipped.
type LineResolver func(game *models.Game) (models.MarketLine, bool)

// Runner coordinates a batch prediction run.
type Runner struct {
	engine      *engine.Engine
	profiles    stats.ProfileProvider
	weather     stats.WeatherProvider
	predictions repository.PredictionRepository
	detector    *edge.Detector
	workers     int
	iterations  int
	modelTag    string
	logger      *logrus.Logger
	simLog      *logger.SimulationLogger
}

// Config carries the runner's construction parameters.
type Config struct {
	Workers    int
	Iterations int
	ModelTag   string
}

// GameOutcome is the per-game result of a batch run.
type GameOutcome struct {
	Game       *models.Game
	Prediction *models.GamePrediction
	Signals    []edge.Signal
	Err        error
}

// NewRunner creates a batch runner.
func NewRunner(
	eng *engine.Engine,
	profiles stats.ProfileProvider,
	weather stats.WeatherProvider,
	predictions repository.PredictionRepository,
	detector *edge.Detector,
	cfg Config,
	baseLogger *logrus.Logger,
) *Runner {
	if baseLogger == nil {
		baseLogger = logrus.New()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = 10000
	}
	return &Runner{
		engine:      eng,
		profiles:    profiles,
		weather:     weather,
		predictions: predictions,
		detector:    detector,
		workers:     workers,
		iterations:  iterations,
		modelTag:    cfg.ModelTag,
		logger:      baseLogger,
		simLog:      logger.NewSimulationLogger(baseLogger),
	}
}

// Run simulates every game on the slate and returns one outcome per
// game, in no particular order.
func (r *Runner) Run(ctx context.Context, games []*models.Game, resolveLine LineResolver) []GameOutcome {
	start := time.Now()

	gameChan := make(chan *models.Game)
	outcomeChan := make(chan GameOutcome, len(games))

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go r.worker(ctx, gameChan, outcomeChan, resolveLine, &wg)
	}

	for _, game := range games {
		select {
		case gameChan <- game:
		case <-ctx.Done():
			outcomeChan <- GameOutcome{Game: game, Err: ctx.Err()}
		}
	}
	close(gameChan)
	wg.Wait()
	close(outcomeChan)

	outcomes := make([]GameOutcome, 0, len(games))
	failures := 0
	for outcome := range outcomeChan {
		if outcome.Err != nil {
			failures++
		}
		outcomes = append(outcomes, outcome)
	}

	status := "success"
	if failures > 0 && failures < len(outcomes) {
		status = "partial"
	} else if failures > 0 {
		status = "failure"
	}
	metrics.RecordBatchRun("scheduled", status)
	metrics.RecordBatchDuration(time.Since(start).Seconds())
	metrics.LastBatchGames.Set(float64(len(outcomes)))

	r.logger.WithFields(logrus.Fields{
		"games":       len(outcomes),
		"failures":    failures,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Batch run complete")

	return outcomes
}

func (r *Runner) worker(ctx context.Context, gameChan <-chan *models.Game, outcomeChan chan<- GameOutcome, resolveLine LineResolver, wg *sync.WaitGroup) {
	defer wg.Done()

	for game := range gameChan {
		if err := ctx.Err(); err != nil {
			outcomeChan <- GameOutcome{Game: game, Err: err}
			continue
		}
		outcomeChan <- r.predictGame(ctx, game, resolveLine)
	}
}

func (r *Runner) predictGame(ctx context.Context, game *models.Game, resolveLine LineResolver) GameOutcome {
	line, ok := resolveLine(game)
	if !ok {
		r.logger.WithField("game_id", game.ID).Debug("No market line, skipping game")
		return GameOutcome{Game: game}
	}

	homeProfile, err := r.profiles.FetchProfile(ctx, game.HomeTeam, game.Season)
	if err != nil {
		return GameOutcome{Game: game, Err: err}
	}
	awayProfile, err := r.profiles.FetchProfile(ctx, game.AwayTeam, game.Season)
	if err != nil {
		return GameOutcome{Game: game, Err: err}
	}

	var conditions *models.WeatherConditions
	if game.IsDome {
		conditions = &models.WeatherConditions{IsDome: true}
	} else if r.weather != nil {
		conditions, err = r.weather.FetchForecast(ctx, game.Stadium, game.Kickoff)
		if err != nil {
			// Forecast failure is soft; simulate weather-neutral.
			r.logger.WithError(err).WithField("game_id", game.ID).Warn("Forecast unavailable")
			conditions = nil
		}
	}

	simStart := time.Now()
	result, err := r.engine.Simulate(ctx, engine.SimulationRequest{
		HomeProfile: homeProfile,
		AwayProfile: awayProfile,
		Line:        line,
		Weather:     conditions,
		Iterations:  r.iterations,
	})
	if err != nil {
		return GameOutcome{Game: game, Err: err}
	}
	metrics.RecordSimulationRun(time.Since(simStart).Seconds())
	metrics.RecordPredictedScores(result.PredictedHomeScore, result.PredictedAwayScore)
	r.simLog.LogSimulationRun(game.ID.String(), game.HomeTeam, game.AwayTeam,
		r.iterations, 0, float64(time.Since(simStart).Milliseconds()))

	prediction := &models.GamePrediction{
		ID:       uuid.New(),
		GameID:   game.ID,
		Line:     line,
		Result:   result,
		ModelTag: r.modelTag,
	}

	if r.predictions != nil {
		if err := r.predictions.Insert(ctx, prediction); err != nil {
			return GameOutcome{Game: game, Prediction: prediction, Err: err}
		}
		metrics.RecordPredictionStored()
		r.simLog.LogPredictionOutcome(game.ID.String(),
			result.PredictedHomeScore, result.PredictedAwayScore,
			line.Spread, line.Total,
			result.FavoriteCoverProbability, result.OverProbability)
	}

	var signals []edge.Signal
	if r.detector != nil {
		signals = r.detector.Evaluate(line, &result)
		for _, signal := range signals {
			metrics.RecordEdgeSignal()
			metrics.UpdateModelEdge(game.ID.String(), signal.Market, signal.EdgePercent)
			r.simLog.LogEdgeSignal(game.ID.String(), signal.Market, signal.Side,
				signal.ModelProb, signal.ImpliedProb, signal.EdgePercent,
				signal.StakeUnits)
		}
	}

	return GameOutcome{Game: game, Prediction: prediction, Signals: signals}
}
