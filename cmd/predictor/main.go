// Package main provides the entry point for the prediction daemon.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-edge/internal/batch"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/edge"
	"github.com/yourusername/gridiron-edge/internal/engine"
	"github.com/yourusername/gridiron-edge/internal/health"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/oddsfeed"
	"github.com/yourusername/gridiron-edge/internal/repository"
	"github.com/yourusername/gridiron-edge/internal/scheduler"
	"github.com/yourusername/gridiron-edge/internal/stats"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "predictor",
	Short: "Game prediction daemon",
	Long:  `Runs scheduled Monte Carlo predictions for upcoming games, tracks market lines, and flags betting value.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
			region := os.Getenv("AWS_REGION")
			secretName := os.Getenv("AWS_SECRET_NAME")
			if region == "" || secretName == "" {
				return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
			}
			if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLog = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		runDaemon()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the prediction daemon",
	Run: func(cmd *cobra.Command, args []string) {
		runDaemon()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("predictor %s (%s)\n", Version, GitCommit)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runDaemon() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"version":     Version,
	}).Info("Gridiron Edge predictor starting")

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()
	appLog.Info("Database connection established")

	repos, err := repository.NewRepositories(db)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize repositories")
	}

	profiles, weather := buildProviders()
	eng := engine.NewEngine(engine.DefaultTuning(), appLog)
	detector := edge.NewDetector(cfg.Edge.MinEdgePercent, cfg.Edge.KellyFraction, cfg.Edge.MaxStakeUnits, appLog)

	runner := batch.NewRunner(eng, profiles, weather, repos.Prediction, detector, batch.Config{
		Workers:    cfg.Simulation.BatchWorkers,
		Iterations: cfg.Simulation.Iterations,
		ModelTag:   cfg.Simulation.ModelTag,
	}, appLog)

	tracker := oddsfeed.NewLineTracker(6 * time.Hour)
	feed := startOddsFeed(ctx, tracker)

	resolveLine := func(game *models.Game) (models.MarketLine, bool) {
		return tracker.Latest(game.ID.String())
	}

	sched := scheduler.NewScheduler(runner, repos.Game, resolveLine, appLog)
	if err := sched.SchedulePredictionRun(cfg.Schedule.PredictionSync, cfg.Schedule.LookaheadHours); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule prediction runs")
	}
	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}

	healthServer := buildHealthServer(db, feed)
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}
	healthServer.SetReady(true)

	appLog.WithFields(logrus.Fields{
		"schedule":   cfg.Schedule.PredictionSync,
		"iterations": cfg.Simulation.Iterations,
		"model_tag":  cfg.Simulation.ModelTag,
		"next_run":   sched.GetNextRun().Format(time.RFC3339),
	}).Info("Predictor is running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	cancel()
	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Error during scheduler shutdown")
	}
	if feed != nil {
		feed.Close()
	}
	healthServer.SetReady(false)

	appLog.Info("Predictor shut down")
}

func buildProviders() (stats.ProfileProvider, stats.WeatherProvider) {
	if !cfg.Providers.SportsFeed.Enabled {
		appLog.Info("Stats provider disabled; using league-average profiles")
		return stats.LeagueAverageProvider{}, nil
	}

	httpClient := stats.NewRateLimitedHTTPClient(stats.DefaultHTTPClientConfig(), appLog)
	client := stats.NewSportsFeedClient(httpClient, cfg.Providers.SportsFeed.BaseURL, cfg.Providers.SportsFeed.APIKey, true, appLog)
	ttl := time.Duration(cfg.Providers.SportsFeed.CacheTTLMinutes) * time.Minute
	profiles := stats.NewCachingProvider(client, ttl, appLog)

	var weather stats.WeatherProvider
	if cfg.Providers.Forecast.Enabled {
		weather = stats.NewForecastClient(httpClient, cfg.Providers.Forecast.BaseURL, cfg.Providers.Forecast.APIKey, appLog)
	}

	return profiles, weather
}

func startOddsFeed(ctx context.Context, tracker *oddsfeed.LineTracker) *oddsfeed.StreamClient {
	if !cfg.OddsFeed.Enabled {
		appLog.Info("Odds feed disabled; games without stored lines are skipped")
		return nil
	}

	feed := oddsfeed.NewStreamClient(cfg.OddsFeed.APIKey, cfg.OddsFeed.URL, appLog)
	feed.SetReconnectConfig(oddsfeed.ReconnectConfig{
		MaxRetries:        0, // retry until shutdown
		InitialBackoff:    time.Duration(cfg.OddsFeed.ReconnectMinSeconds) * time.Second,
		MaxBackoff:        time.Duration(cfg.OddsFeed.ReconnectMaxSeconds) * time.Second,
		BackoffMultiplier: 1.5,
	})
	feed.AddHandler(tracker.Apply)

	go func() {
		if err := feed.RunWithReconnect(ctx, nil); err != nil && ctx.Err() == nil {
			appLog.WithError(err).Error("Odds feed stopped")
		}
	}()

	return feed
}

func buildHealthServer(db *database.DB, feed *oddsfeed.StreamClient) *health.Server {
	healthCfg := health.Config{
		ServiceName: cfg.App.Name,
		Version:     Version,
		Commit:      GitCommit,
		Port:        fmt.Sprintf("%d", cfg.Health.Port),
		Logger:      appLog,
		DB:          db,
	}
	if feed != nil {
		healthCfg.Feed = feed
	}
	if cfg.Metrics.Enabled {
		healthCfg.Metrics = metrics.Handler()
	}
	return health.NewServer(healthCfg)
}
