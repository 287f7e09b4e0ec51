package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/gridiron-edge/internal/backtest"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

var (
	scorecardSeason   int
	scorecardFromWeek int
	scorecardToWeek   int
)

func init() {
	scorecardCmd.Flags().IntVar(&scorecardSeason, "season", time.Now().Year(), "Season to grade")
	scorecardCmd.Flags().IntVar(&scorecardFromWeek, "from-week", 1, "First week to grade")
	scorecardCmd.Flags().IntVar(&scorecardToWeek, "to-week", 18, "Last week to grade")
	rootCmd.AddCommand(scorecardCmd)
}

var scorecardCmd = &cobra.Command{
	Use:   "scorecard",
	Short: "Grade stored predictions against final scores",
	Long:  `Loads every final game in the week range that has a stored prediction, grades the model's winner, spread and total picks, and prints the aggregate scorecard as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		repos, err := repository.NewRepositories(db)
		if err != nil {
			return fmt.Errorf("failed to initialize repositories: %w", err)
		}

		collector := backtest.NewCollector(repos.Game, repos.Prediction, appLog)
		graded, err := collector.CollectWeeks(ctx, scorecardSeason, scorecardFromWeek, scorecardToWeek)
		if err != nil {
			return err
		}

		card := backtest.Evaluate(graded)
		appLog.WithField("games", card.Games).Info("Scorecard computed")

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(card)
	},
}
