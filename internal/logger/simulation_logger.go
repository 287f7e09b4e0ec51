// Package logger provides simulation-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// SimulationLogger provides dedicated logging for simulation runs.
type SimulationLogger struct {
	*logrus.Entry
}

// NewSimulationLogger creates a new simulation logger.
func NewSimulationLogger(baseLogger *logrus.Logger) *SimulationLogger {
	return &SimulationLogger{
		Entry: baseLogger.WithField("component", "simulation"),
	}
}

// LogSimulationRun logs a completed simulation run.
func (sl *SimulationLogger) LogSimulationRun(gameID, homeTeam, awayTeam string, iterations int, seed int64, durationMs float64) {
	sl.WithFields(logrus.Fields{
		"game_id":     gameID,
		"home_team":   homeTeam,
		"away_team":   awayTeam,
		"iterations":  iterations,
		"seed":        seed,
		"duration_ms": durationMs,
	}).Info("Simulation run completed")
}

// LogPredictionOutcome logs a prediction against its market line.
func (sl *SimulationLogger) LogPredictionOutcome(gameID string, predictedHome, predictedAway int, spread float64, total float64, favoriteCoverPct, overPct float64) {
	sl.WithFields(logrus.Fields{
		"game_id":            gameID,
		"predicted_home":     predictedHome,
		"predicted_away":     predictedAway,
		"spread":             spread,
		"total":              total,
		"favorite_cover_pct": favoriteCoverPct,
		"over_pct":           overPct,
	}).Info("Prediction recorded")
}

// LogEdgeSignal logs a detected betting edge.
func (sl *SimulationLogger) LogEdgeSignal(gameID, market, side string, modelProb, impliedProb, edgePct, kellyStake float64) {
	sl.WithFields(logrus.Fields{
		"game_id":      gameID,
		"market":       market,
		"side":         side,
		"model_prob":   modelProb,
		"implied_prob": impliedProb,
		"edge_pct":     edgePct,
		"kelly_stake":  kellyStake,
	}).Info("Edge signal detected")
}

// LogProviderFallback logs a stats provider failure that fell back to league averages.
func (sl *SimulationLogger) LogProviderFallback(team string, season int, reason string) {
	sl.WithFields(logrus.Fields{
		"team":   team,
		"season": season,
		"reason": reason,
	}).Warn("Provider fallback to league-average profile")
}
