package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// SimulationRequest bundles everything one engine run needs. Profiles
// must arrive fully populated; the engine performs no stats retrieval.
type SimulationRequest struct {
	HomeProfile *models.TeamStatisticalProfile
	AwayProfile *models.TeamStatisticalProfile
	Line        models.MarketLine
	Weather     *models.WeatherConditions
	Iterations  int
	Seed        int64 // 0 seeds from the wall clock
}

// Engine is the public entry point for game simulation. Each Simulate
// call is a self-contained CPU-bound computation with no shared mutable
// state, so calls for different games may run concurrently.
type Engine struct {
	tuning     Tuning
	calibrator *MarketCalibrator
	logger     *logrus.Logger
}

// NewEngine creates an engine from a tuning table and logger.
func NewEngine(t Tuning, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		tuning:     t,
		calibrator: NewMarketCalibrator(t),
		logger:     logger,
	}
}

// Simulate runs the full Monte Carlo pipeline for one game and returns
// the aggregated result. A non-positive iteration count is a
// configuration error and is rejected before any simulation runs.
func (e *Engine) Simulate(ctx context.Context, req SimulationRequest) (models.SimulationResult, error) {
	if req.Iterations <= 0 {
		return models.SimulationResult{}, fmt.Errorf("engine: %w: %d", models.ErrInvalidIterations, req.Iterations)
	}
	if req.HomeProfile == nil || req.AwayProfile == nil {
		return models.SimulationResult{}, fmt.Errorf("engine: %w", models.ErrProfileRequired)
	}
	if err := ctx.Err(); err != nil {
		return models.SimulationResult{}, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	favorite := ResolveFavorite(req.Line.HomeMoneyline, req.Line.AwayMoneyline)

	start := time.Now()
	result := e.calibrator.RunCalibrated(rng, req.HomeProfile, req.AwayProfile,
		req.Line.Spread, req.Line.Total, req.Weather, favorite.IsHome, req.Iterations)

	e.logger.WithFields(logrus.Fields{
		"home":        req.HomeProfile.TeamName,
		"away":        req.AwayProfile.TeamName,
		"iterations":  req.Iterations,
		"favorite":    favorite.Side,
		"raw_total":   result.SimulatedMeanTotal,
		"raw_margin":  result.SimulatedMeanMargin,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Simulation complete")

	return result, nil
}
