package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/gridiron-edge/internal/database"
	"github.com/yourusername/gridiron-edge/internal/models"
)

const predictionColumns = `
	id, game_id, model_tag, spread, total, home_moneyline, away_moneyline,
	home_win_pct, away_win_pct, tie_pct, favorite_cover_pct, underdog_cover_pct,
	over_pct, under_pct, predicted_home_score, predicted_away_score,
	iterations, simulated_mean_total, simulated_mean_margin, favorite_is_home,
	created_at`

const insertPredictionQuery = `
	INSERT INTO game_predictions (
		id, game_id, model_tag, spread, total, home_moneyline, away_moneyline,
		home_win_pct, away_win_pct, tie_pct, favorite_cover_pct, underdog_cover_pct,
		over_pct, under_pct, predicted_home_score, predicted_away_score,
		iterations, simulated_mean_total, simulated_mean_margin, favorite_is_home
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
`

// PostgresPredictionRepository implements PredictionRepository for PostgreSQL
type PostgresPredictionRepository struct {
	db *database.DB
}

// NewPostgresPredictionRepository creates a new prediction repository
func NewPostgresPredictionRepository(db *database.DB) PredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

// Insert stores a single prediction
func (r *PostgresPredictionRepository) Insert(ctx context.Context, prediction *models.GamePrediction) error {
	_, err := r.db.GetPool().Exec(ctx, insertPredictionQuery, predictionArgs(prediction)...)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}

	return nil
}

// InsertBatch stores multiple predictions in one round trip
func (r *PostgresPredictionRepository) InsertBatch(ctx context.Context, predictions []*models.GamePrediction) error {
	if len(predictions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, prediction := range predictions {
		batch.Queue(insertPredictionQuery, predictionArgs(prediction)...)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range predictions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert prediction batch: %w", err)
		}
	}

	return nil
}

// GetByGameID retrieves all predictions for a game, newest first
func (r *PostgresPredictionRepository) GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.GamePrediction, error) {
	query := `SELECT ` + predictionColumns + `
		FROM game_predictions
		WHERE game_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	return scanPredictions(rows)
}

// GetLatestForGame retrieves the most recent prediction for a game
func (r *PostgresPredictionRepository) GetLatestForGame(ctx context.Context, gameID uuid.UUID) (*models.GamePrediction, error) {
	query := `SELECT ` + predictionColumns + `
		FROM game_predictions
		WHERE game_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	rows, err := r.db.GetPool().Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest prediction: %w", err)
	}
	defer rows.Close()

	predictions, err := scanPredictions(rows)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		return nil, models.ErrNotFound
	}

	return predictions[0], nil
}

// GetByModelTag retrieves predictions made by one model version within a time range
func (r *PostgresPredictionRepository) GetByModelTag(ctx context.Context, modelTag string, start, end time.Time) ([]*models.GamePrediction, error) {
	query := `SELECT ` + predictionColumns + `
		FROM game_predictions
		WHERE model_tag = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, modelTag, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions by model tag: %w", err)
	}
	defer rows.Close()

	return scanPredictions(rows)
}

func predictionArgs(p *models.GamePrediction) []interface{} {
	return []interface{}{
		p.ID, p.GameID, p.ModelTag,
		p.Line.Spread, p.Line.Total, p.Line.HomeMoneyline, p.Line.AwayMoneyline,
		p.Result.HomeWinProbability, p.Result.AwayWinProbability, p.Result.TieProbability,
		p.Result.FavoriteCoverProbability, p.Result.UnderdogCoverProbability,
		p.Result.OverProbability, p.Result.UnderProbability,
		p.Result.PredictedHomeScore, p.Result.PredictedAwayScore,
		p.Result.Iterations, p.Result.SimulatedMeanTotal, p.Result.SimulatedMeanMargin,
		p.Result.FavoriteIsHome,
	}
}

func scanPredictions(rows pgx.Rows) ([]*models.GamePrediction, error) {
	var predictions []*models.GamePrediction
	for rows.Next() {
		p := &models.GamePrediction{}
		err := rows.Scan(
			&p.ID, &p.GameID, &p.ModelTag,
			&p.Line.Spread, &p.Line.Total, &p.Line.HomeMoneyline, &p.Line.AwayMoneyline,
			&p.Result.HomeWinProbability, &p.Result.AwayWinProbability, &p.Result.TieProbability,
			&p.Result.FavoriteCoverProbability, &p.Result.UnderdogCoverProbability,
			&p.Result.OverProbability, &p.Result.UnderProbability,
			&p.Result.PredictedHomeScore, &p.Result.PredictedAwayScore,
			&p.Result.Iterations, &p.Result.SimulatedMeanTotal, &p.Result.SimulatedMeanMargin,
			&p.Result.FavoriteIsHome,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}
