package stats

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// CachingProvider wraps a ProfileProvider with a TTL cache and a
// league-average fallback. Provider failures degrade to the default
// profile rather than failing the prediction; a defaulted team simulates
// as exactly average.
type CachingProvider struct {
	provider ProfileProvider
	cache    *cache.Cache
	ttl      time.Duration
	logger   *logrus.Logger
}

// NewCachingProvider creates a caching wrapper around provider.
func NewCachingProvider(provider ProfileProvider, ttl time.Duration, logger *logrus.Logger) *CachingProvider {
	if logger == nil {
		logger = logrus.New()
	}
	return &CachingProvider{
		provider: provider,
		cache:    cache.New(ttl, ttl*2),
		ttl:      ttl,
		logger:   logger,
	}
}

// FetchProfile returns a cached profile when fresh, fetches otherwise,
// and falls back to the league-average default on provider failure.
func (c *CachingProvider) FetchProfile(ctx context.Context, team string, season int) (*models.TeamStatisticalProfile, error) {
	key := profileCacheKey(team, season)
	if cached, found := c.cache.Get(key); found {
		if profile, ok := cached.(*models.TeamStatisticalProfile); ok {
			return profile, nil
		}
	}

	profile, err := c.provider.FetchProfile(ctx, team, season)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"team":   team,
			"season": season,
		}).Warnf("Stats fetch failed, using league-average defaults: %v", err)
		metrics.RecordProviderFallback()
		return LeagueAverageProfile(team), nil
	}

	c.cache.Set(key, profile, c.ttl)
	return profile, nil
}

func profileCacheKey(team string, season int) string {
	return fmt.Sprintf("profile:%d:%s", season, team)
}
