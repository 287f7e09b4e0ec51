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

const errScanGame = "failed to scan game: %w"

// PostgresGameRepository implements GameRepository for PostgreSQL
type PostgresGameRepository struct {
	db *database.DB
}

// NewPostgresGameRepository creates a new game repository
func NewPostgresGameRepository(db *database.DB) GameRepository {
	return &PostgresGameRepository{db: db}
}

// Create inserts a new game
func (r *PostgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (id, season, week, home_team, away_team, kickoff, stadium, is_dome, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		game.ID, game.Season, game.Week, game.HomeTeam, game.AwayTeam,
		game.Kickoff, game.Stadium, game.IsDome, game.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

// GetByID retrieves a game by ID
func (r *PostgresGameRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	query := `
		SELECT id, season, week, home_team, away_team, kickoff, stadium, is_dome,
		       status, home_score, away_score, created_at, updated_at
		FROM games WHERE id = $1
	`

	game := &models.Game{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&game.ID, &game.Season, &game.Week, &game.HomeTeam, &game.AwayTeam,
		&game.Kickoff, &game.Stadium, &game.IsDome, &game.Status,
		&game.HomeScore, &game.AwayScore, &game.CreatedAt, &game.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// GetUpcoming retrieves upcoming games ordered by kickoff time
func (r *PostgresGameRepository) GetUpcoming(ctx context.Context, limit int) ([]*models.Game, error) {
	query := `
		SELECT id, season, week, home_team, away_team, kickoff, stadium, is_dome,
		       status, home_score, away_score, created_at, updated_at
		FROM games
		WHERE status = 'scheduled' AND kickoff > NOW()
		ORDER BY kickoff ASC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetByKickoffWindow retrieves games kicking off within a time window
func (r *PostgresGameRepository) GetByKickoffWindow(ctx context.Context, start, end time.Time) ([]*models.Game, error) {
	query := `
		SELECT id, season, week, home_team, away_team, kickoff, stadium, is_dome,
		       status, home_score, away_score, created_at, updated_at
		FROM games
		WHERE kickoff >= $1 AND kickoff < $2
		ORDER BY kickoff ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query games by kickoff window: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetByWeek retrieves all games for a season week
func (r *PostgresGameRepository) GetByWeek(ctx context.Context, season, week int) ([]*models.Game, error) {
	query := `
		SELECT id, season, week, home_team, away_team, kickoff, stadium, is_dome,
		       status, home_score, away_score, created_at, updated_at
		FROM games
		WHERE season = $1 AND week = $2
		ORDER BY kickoff ASC
	`

	rows, err := r.db.GetPool().Query(ctx, query, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to query games by week: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// Update updates an existing game
func (r *PostgresGameRepository) Update(ctx context.Context, game *models.Game) error {
	query := `
		UPDATE games
		SET season = $2, week = $3, home_team = $4, away_team = $5, kickoff = $6,
		    stadium = $7, is_dome = $8, status = $9, home_score = $10, away_score = $11,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.GetPool().Exec(ctx, query,
		game.ID, game.Season, game.Week, game.HomeTeam, game.AwayTeam,
		game.Kickoff, game.Stadium, game.IsDome, game.Status,
		game.HomeScore, game.AwayScore,
	)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete removes a game
func (r *PostgresGameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.GetPool().Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func scanGames(rows pgx.Rows) ([]*models.Game, error) {
	var games []*models.Game
	for rows.Next() {
		game := &models.Game{}
		err := rows.Scan(
			&game.ID, &game.Season, &game.Week, &game.HomeTeam, &game.AwayTeam,
			&game.Kickoff, &game.Stadium, &game.IsDome, &game.Status,
			&game.HomeScore, &game.AwayScore, &game.CreatedAt, &game.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanGame, err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
