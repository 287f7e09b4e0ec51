// Package metrics defines batch-run and prediction distribution metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Batch counter vectors
var (
	BatchRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "batch_runs_total",
		Help:      "Total number of batch prediction runs by trigger and status",
	}, []string{"trigger", "status"})
)

// Prediction distribution histograms
var (
	PredictedTotalPoints = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "predicted_total_points",
		Help:      "Predicted combined points per game across batch runs",
		Buckets:   []float64{20, 30, 35, 40, 45, 50, 55, 60, 70, 85},
	})
	PredictedMargin = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "predicted_margin",
		Help:      "Predicted favorite margin of victory per game across batch runs",
		Buckets:   []float64{0, 1, 3, 4, 6, 7, 10, 14, 17, 21, 28},
	})
)

// RecordBatchRun records a batch run event.
// trigger should be one of: "scheduled", "manual", "line_update"
// status should be one of: "success", "partial", "failure"
func RecordBatchRun(trigger, status string) {
	BatchRunsTotal.WithLabelValues(trigger, status).Inc()
}

// RecordPredictedScores records the predicted distribution points for a game.
func RecordPredictedScores(homeScore, awayScore int) {
	PredictedTotalPoints.Observe(float64(homeScore + awayScore))
	margin := homeScore - awayScore
	if margin < 0 {
		margin = -margin
	}
	PredictedMargin.Observe(float64(margin))
}
