package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yourusername/gridiron-edge/internal/models"
)

type countingProvider struct {
	calls   int
	fail    bool
	profile *models.TeamStatisticalProfile
}

func (p *countingProvider) FetchProfile(ctx context.Context, team string, season int) (*models.TeamStatisticalProfile, error) {
	p.calls++
	if p.fail {
		return nil, NewProviderError("test", ErrCodeNetworkError, "unreachable", errors.New("dial refused"))
	}
	return p.profile, nil
}

func TestLeagueAverageProfileIsComplete(t *testing.T) {
	p := LeagueAverageProfile("NYG")
	if p.TeamName != "NYG" {
		t.Fatalf("team name %q", p.TeamName)
	}
	if p.PointsPerGame != DefaultPointsPerGame {
		t.Fatalf("points per game %.1f", p.PointsPerGame)
	}
	if p.DrivesPerGame == 0 || p.YardsPerPlayAllowed == 0 || p.TurnoversForcedPerGame == 0 {
		t.Fatal("default profile has zero fields")
	}
}

func TestFillAbsentOnlyTouchesZeroFields(t *testing.T) {
	p := &models.TeamStatisticalProfile{TeamName: "KC", PointsPerGame: 29.5}
	FillAbsent(p)

	if p.PointsPerGame != 29.5 {
		t.Fatalf("populated field overwritten: %.1f", p.PointsPerGame)
	}
	if p.PassingYardsPerGame != DefaultPassingYards {
		t.Fatalf("absent field not defaulted: %.1f", p.PassingYardsPerGame)
	}
	if p.RedZonePctAllowed != DefaultRedZonePct {
		t.Fatalf("absent defensive field not defaulted: %.1f", p.RedZonePctAllowed)
	}
}

func TestCachingProviderServesFromCache(t *testing.T) {
	upstream := &countingProvider{profile: LeagueAverageProfile("DAL")}
	provider := NewCachingProvider(upstream, time.Minute, nil)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := provider.FetchProfile(ctx, "DAL", 2025); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}

	if upstream.calls != 1 {
		t.Fatalf("upstream called %d times, want 1", upstream.calls)
	}
}

func TestCachingProviderFallsBackOnFailure(t *testing.T) {
	upstream := &countingProvider{fail: true}
	provider := NewCachingProvider(upstream, time.Minute, nil)

	profile, err := provider.FetchProfile(context.Background(), "SEA", 2025)
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if profile == nil || profile.TeamName != "SEA" {
		t.Fatalf("fallback profile: %+v", profile)
	}
	if profile.PointsPerGame != DefaultPointsPerGame {
		t.Fatalf("fallback should be league average, got %.1f ppg", profile.PointsPerGame)
	}
}

func TestCachingProviderDoesNotCacheFallback(t *testing.T) {
	upstream := &countingProvider{fail: true}
	provider := NewCachingProvider(upstream, time.Minute, nil)

	ctx := context.Background()
	provider.FetchProfile(ctx, "SEA", 2025)
	provider.FetchProfile(ctx, "SEA", 2025)

	// A recovered upstream must be retried, not masked by a cached default.
	if upstream.calls != 2 {
		t.Fatalf("upstream called %d times, want 2", upstream.calls)
	}
}

func TestLeagueAverageProviderAlwaysSucceeds(t *testing.T) {
	var provider LeagueAverageProvider
	profile, err := provider.FetchProfile(context.Background(), "GB", 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.TeamName != "GB" {
		t.Fatalf("team name %q", profile.TeamName)
	}
}

func TestProviderErrorUnwraps(t *testing.T) {
	inner := errors.New("socket closed")
	err := NewProviderError("sportsfeed", ErrCodeNetworkError, "fetch failed", inner)

	if !errors.Is(err, inner) {
		t.Fatal("ProviderError should unwrap to its cause")
	}
	if err.Code != ErrCodeNetworkError {
		t.Fatalf("code %q", err.Code)
	}
}

func TestDisabledClientErrors(t *testing.T) {
	client := NewSportsFeedClient(nil, "http://localhost", "", false, nil)

	_, err := client.FetchProfile(context.Background(), "KC", 2025)
	if err == nil {
		t.Fatal("disabled client must error")
	}
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("want ProviderError, got %T", err)
	}
}
