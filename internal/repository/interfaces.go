package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// GameRepository defines the interface for game data access
type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error)
	GetUpcoming(ctx context.Context, limit int) ([]*models.Game, error)
	GetByKickoffWindow(ctx context.Context, start, end time.Time) ([]*models.Game, error)
	GetByWeek(ctx context.Context, season, week int) ([]*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PredictionRepository defines the interface for prediction data access
type PredictionRepository interface {
	Insert(ctx context.Context, prediction *models.GamePrediction) error
	InsertBatch(ctx context.Context, predictions []*models.GamePrediction) error
	GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*models.GamePrediction, error)
	GetLatestForGame(ctx context.Context, gameID uuid.UUID) (*models.GamePrediction, error)
	GetByModelTag(ctx context.Context, modelTag string, start, end time.Time) ([]*models.GamePrediction, error)
}
