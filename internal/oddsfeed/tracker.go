package oddsfeed

import (
	"sync"
	"time"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// LineTracker keeps the most recent market line per game.
type LineTracker struct {
	mu    sync.RWMutex
	lines map[string]trackedLine
	ttl   time.Duration
}

type trackedLine struct {
	line models.MarketLine
	seen time.Time
}

// NewLineTracker creates a tracker that considers lines stale after ttl.
func NewLineTracker(ttl time.Duration) *LineTracker {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &LineTracker{
		lines: make(map[string]trackedLine),
		ttl:   ttl,
	}
}

// Apply records a line update. It satisfies LineHandler.
func (t *LineTracker) Apply(update LineUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines[update.GameID] = trackedLine{
		line: models.MarketLine{
			Spread:        update.Spread,
			Total:         update.Total,
			HomeMoneyline: update.HomeMoneyline,
			AwayMoneyline: update.AwayMoneyline,
		},
		seen: time.Now(),
	}
	return nil
}

// Latest returns the most recent line for a game, if any fresh one exists.
func (t *LineTracker) Latest(gameID string) (models.MarketLine, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entry, ok := t.lines[gameID]
	if !ok || time.Since(entry.seen) > t.ttl {
		return models.MarketLine{}, false
	}
	return entry.line, true
}

// GameIDs returns the IDs of all games with a fresh line.
func (t *LineTracker) GameIDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]string, 0, len(t.lines))
	for id, entry := range t.lines {
		if time.Since(entry.seen) <= t.ttl {
			ids = append(ids, id)
		}
	}
	return ids
}
