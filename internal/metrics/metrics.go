// Package metrics provides the centralized Prometheus metrics registry for the prediction engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SimulationsRunTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "simulations_run_total",
		Help:      "Total number of Monte Carlo simulations executed",
	})
	PredictionsStoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "predictions_stored_total",
		Help:      "Total number of game predictions persisted",
	})
	EdgeSignalsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "edge_signals_total",
		Help:      "Total number of betting edges detected above threshold",
	})
	ProviderFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "provider_fallbacks_total",
		Help:      "Total number of stats provider failures replaced by league averages",
	})
	LineUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "line_updates_total",
		Help:      "Total number of market line updates received from the odds feed",
	})
	FeedReconnectsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "feed_reconnects_total",
		Help:      "Total number of odds feed reconnection attempts",
	})
)

// Gauge metrics
var (
	ScheduledGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "scheduled_games",
		Help:      "Number of games in the current prediction window",
	})
	FeedConnected = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "feed_connected",
		Help:      "Whether the odds feed connection is live (1) or down (0)",
	})
	LastBatchGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "last_batch_games",
		Help:      "Number of games simulated in the most recent batch run",
	})
	ModelEdgePercent = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "model_edge_percent",
		Help:      "Latest detected edge percentage per game and market",
	}, []string{"game_id", "market"})
)

// Histogram metrics
var (
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of a full Monte Carlo simulation run in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	ProviderLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "provider_latency_seconds",
		Help:      "Latency of stats provider requests in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	BatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridiron_edge",
		Name:      "batch_duration_seconds",
		Help:      "Duration of batch prediction runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600, 1800},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(SimulationsRunTotal)
		registry.MustRegister(PredictionsStoredTotal)
		registry.MustRegister(EdgeSignalsTotal)
		registry.MustRegister(ProviderFallbacksTotal)
		registry.MustRegister(LineUpdatesTotal)
		registry.MustRegister(FeedReconnectsTotal)

		// Register gauge metrics
		registry.MustRegister(ScheduledGames)
		registry.MustRegister(FeedConnected)
		registry.MustRegister(LastBatchGames)
		registry.MustRegister(ModelEdgePercent)

		// Register histogram metrics
		registry.MustRegister(SimulationDuration)
		registry.MustRegister(ProviderLatency)
		registry.MustRegister(BatchDuration)

		// Register batch metrics
		registry.MustRegister(BatchRunsTotal)
		registry.MustRegister(PredictedTotalPoints)
		registry.MustRegister(PredictedMargin)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSimulationRun records a completed simulation run.
func RecordSimulationRun(durationSeconds float64) {
	SimulationsRunTotal.Inc()
	SimulationDuration.Observe(durationSeconds)
}

// RecordPredictionStored records a persisted prediction.
func RecordPredictionStored() {
	PredictionsStoredTotal.Inc()
}

// RecordEdgeSignal records a detected edge above threshold.
func RecordEdgeSignal() {
	EdgeSignalsTotal.Inc()
}

// RecordProviderFallback records a stats provider fallback event.
func RecordProviderFallback() {
	ProviderFallbacksTotal.Inc()
}

// RecordLineUpdate records a market line update from the odds feed.
func RecordLineUpdate() {
	LineUpdatesTotal.Inc()
}

// RecordFeedReconnect records an odds feed reconnection attempt.
func RecordFeedReconnect() {
	FeedReconnectsTotal.Inc()
}

// UpdateFeedConnected updates the odds feed connection gauge.
func UpdateFeedConnected(connected bool) {
	if connected {
		FeedConnected.Set(1)
	} else {
		FeedConnected.Set(0)
	}
}

// UpdateScheduledGames updates the prediction window gauge.
func UpdateScheduledGames(count float64) {
	ScheduledGames.Set(count)
}

// UpdateModelEdge updates the latest edge percentage for a game market.
func UpdateModelEdge(gameID, market string, edgePct float64) {
	ModelEdgePercent.WithLabelValues(gameID, market).Set(edgePct)
}

// RecordProviderLatency records stats provider request latency.
func RecordProviderLatency(durationSeconds float64) {
	ProviderLatency.Observe(durationSeconds)
}

// RecordBatchDuration records batch run duration.
func RecordBatchDuration(durationSeconds float64) {
	BatchDuration.Observe(durationSeconds)
}
