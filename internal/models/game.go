package models

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a scheduled matchup in the system.
type Game struct {
	ID        uuid.UUID `db:"id" json:"id" validate:"required,uuid4"`
	Season    int       `db:"season" json:"season" validate:"required"`
	Week      int       `db:"week" json:"week" validate:"required,gte=1"`
	HomeTeam  string    `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam  string    `db:"away_team" json:"away_team" validate:"required"`
	Kickoff   time.Time `db:"kickoff" json:"kickoff" validate:"required"`
	Stadium   string    `db:"stadium" json:"stadium"`
	IsDome    bool      `db:"is_dome" json:"is_dome"`
	Status    string    `db:"status" json:"status" validate:"oneof=scheduled in_progress final cancelled"`
	HomeScore *int      `db:"home_score" json:"home_score"`
	AwayScore *int      `db:"away_score" json:"away_score"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// IsUpcoming checks whether the game has not kicked off yet.
func (g *Game) IsUpcoming() bool {
	return g.Status == "scheduled" && g.Kickoff.After(time.Now())
}

// GamePrediction is the persisted record of one engine run for a game.
type GamePrediction struct {
	ID        uuid.UUID        `db:"id" json:"id" validate:"required,uuid4"`
	GameID    uuid.UUID        `db:"game_id" json:"game_id" validate:"required,uuid4"`
	Line      MarketLine       `db:"-" json:"line"`
	Result    SimulationResult `db:"-" json:"result"`
	ModelTag  string           `db:"model_tag" json:"model_tag"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
}

// PredictedMargin returns the model's home-minus-away score margin.
func (p *GamePrediction) PredictedMargin() float64 {
	return float64(p.Result.PredictedHomeScore - p.Result.PredictedAwayScore)
}
