// Package main provides the entry point for the one-shot prediction CLI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/edge"
	"github.com/yourusername/gridiron-edge/internal/engine"
	"github.com/yourusername/gridiron-edge/internal/logger"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/stats"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		homeTeam   = flag.String("home", "", "Home team abbreviation")
		awayTeam   = flag.String("away", "", "Away team abbreviation")
		season     = flag.Int("season", time.Now().Year(), "Season year")
		spread     = flag.Float64("spread", 0, "Posted spread (negative favors home)")
		total      = flag.Float64("total", 0, "Posted total")
		homeML     = flag.Int("home-ml", -110, "Home American moneyline")
		awayML     = flag.Int("away-ml", -110, "Away American moneyline")
		iterations = flag.Int("iterations", 0, "Iteration count override")
		seed       = flag.Int64("seed", 0, "RNG seed (0 uses the wall clock)")
		dome       = flag.Bool("dome", false, "Game is in a dome")
		windSpeed  = flag.Float64("wind", 0, "Wind speed in mph")
		temp       = flag.Float64("temp", 60, "Temperature in Fahrenheit")
		precip     = flag.Float64("precip", 0, "Precipitation chance percent")
		condition  = flag.String("condition", "clear", "Weather condition: clear, rain, snow, fog, wind")
		offline    = flag.Bool("offline", false, "Use league-average profiles instead of the stats provider")
	)
	flag.Parse()

	if *homeTeam == "" || *awayTeam == "" {
		fmt.Fprintln(os.Stderr, "both -home and -away are required")
		os.Exit(2)
	}
	if *total <= 0 {
		fmt.Fprintln(os.Stderr, "-total must be positive")
		os.Exit(2)
	}

	cfg := loadConfig(*configPath)
	appLog := logger.NewLogger(cfg.App.LogLevel)
	ctx := context.Background()

	runIterations := cfg.Simulation.Iterations
	if *iterations > 0 {
		runIterations = *iterations
	}

	provider := buildProfileProvider(cfg, *offline, appLog)

	homeProfile, err := provider.FetchProfile(ctx, *homeTeam, *season)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to fetch home profile")
	}
	awayProfile, err := provider.FetchProfile(ctx, *awayTeam, *season)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to fetch away profile")
	}

	line := models.MarketLine{
		Spread:        *spread,
		Total:         *total,
		HomeMoneyline: *homeML,
		AwayMoneyline: *awayML,
	}
	conditions := &models.WeatherConditions{
		Temperature:   *temp,
		WindSpeed:     *windSpeed,
		Precipitation: *precip,
		Condition:     models.WeatherCondition(*condition),
		IsDome:        *dome,
	}

	eng := engine.NewEngine(engine.DefaultTuning(), appLog)
	result, err := eng.Simulate(ctx, engine.SimulationRequest{
		HomeProfile: homeProfile,
		AwayProfile: awayProfile,
		Line:        line,
		Weather:     conditions,
		Iterations:  runIterations,
		Seed:        *seed,
	})
	if err != nil {
		appLog.WithError(err).Fatal("Simulation failed")
	}

	detector := edge.NewDetector(cfg.Edge.MinEdgePercent, cfg.Edge.KellyFraction, cfg.Edge.MaxStakeUnits, appLog)
	signals := detector.Evaluate(line, &result)

	printReport(*homeTeam, *awayTeam, line, result, signals)
}

func loadConfig(path string) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			fmt.Fprintln(os.Stderr, "AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
			os.Exit(1)
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load secrets: %v\n", err)
			os.Exit(1)
		}
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func buildProfileProvider(cfg *config.Config, offline bool, appLog *logrus.Logger) stats.ProfileProvider {
	if offline || !cfg.Providers.SportsFeed.Enabled {
		return stats.LeagueAverageProvider{}
	}

	httpClient := stats.NewRateLimitedHTTPClient(stats.DefaultHTTPClientConfig(), appLog)
	client := stats.NewSportsFeedClient(httpClient, cfg.Providers.SportsFeed.BaseURL, cfg.Providers.SportsFeed.APIKey, true, appLog)
	ttl := time.Duration(cfg.Providers.SportsFeed.CacheTTLMinutes) * time.Minute
	return stats.NewCachingProvider(client, ttl, appLog)
}

func printReport(home, away string, line models.MarketLine, result models.SimulationResult, signals []edge.Signal) {
	report := struct {
		HomeTeam string                  `json:"home_team"`
		AwayTeam string                  `json:"away_team"`
		Line     models.MarketLine       `json:"line"`
		Result   models.SimulationResult `json:"result"`
		Signals  []edge.Signal           `json:"signals,omitempty"`
	}{home, away, line, result, signals}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
