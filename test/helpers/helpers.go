// Package helpers provides shared utilities for integration tests.
package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// LoadFixture loads test data from a JSON fixture file.
func LoadFixture(t *testing.T, filename string, target interface{}) {
	t.Helper()

	fixturePath := filepath.Join("..", "fixtures", filename)
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err, "failed to read fixture file: %s", filename)

	err = json.Unmarshal(data, target)
	require.NoError(t, err, "failed to unmarshal fixture: %s", filename)
}

// LoadGameFixtures loads scheduled game test data from fixtures.
func LoadGameFixtures(t *testing.T) []*models.Game {
	t.Helper()

	var games []*models.Game
	LoadFixture(t, "games.json", &games)
	for _, game := range games {
		if game.ID == uuid.Nil {
			game.ID = uuid.New()
		}
		if game.Kickoff.IsZero() {
			game.Kickoff = time.Now().Add(48 * time.Hour)
		}
	}
	return games
}

// NewTestGame builds a scheduled game with sane defaults.
func NewTestGame(homeTeam, awayTeam string) *models.Game {
	return &models.Game{
		ID:       uuid.New(),
		Season:   2025,
		Week:     1,
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
		Kickoff:  time.Now().Add(48 * time.Hour),
		Stadium:  fmt.Sprintf("%s Stadium", homeTeam),
		Status:   "scheduled",
	}
}
