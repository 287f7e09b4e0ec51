package stats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(baseURL string) *SportsFeedClient {
	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 1000
	return NewSportsFeedClient(NewRateLimitedHTTPClient(cfg, nil), baseURL, "test-key", true, nil)
}

func TestFetchProfileDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2025/teams/KC/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer auth, got %q", r.Header.Get("Authorization"))
		}
		fmt.Fprint(w, `{
			"team": "KC",
			"pointsPerGame": 28.4,
			"giveawaysPerGame": 0.9,
			"drivesPerGame": 11.8
		}`)
	}))
	defer server.Close()

	profile, err := newTestClient(server.URL).FetchProfile(context.Background(), "KC", 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.PointsPerGame != 28.4 {
		t.Errorf("points per game %.1f, want 28.4", profile.PointsPerGame)
	}
	if profile.TurnoversLostPerGame != 0.9 {
		t.Errorf("turnovers lost %.1f, want 0.9", profile.TurnoversLostPerGame)
	}
	// Fields absent from the response come back as league averages.
	if profile.YardsPerPlayAllowed != DefaultYardsPerPlay {
		t.Errorf("absent field %.1f, want default %.1f", profile.YardsPerPlayAllowed, DefaultYardsPerPlay)
	}
}

func TestFetchProfileStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"unauthorized", http.StatusUnauthorized, ErrCodeAuthFailed},
		{"forbidden", http.StatusForbidden, ErrCodeAuthFailed},
		{"unknown team", http.StatusNotFound, ErrCodeNotFound},
		{"unexpected status", http.StatusTeapot, ErrCodeInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).FetchProfile(context.Background(), "KC", 2025)
			var provErr *ProviderError
			if !errors.As(err, &provErr) {
				t.Fatalf("want ProviderError, got %v", err)
			}
			if provErr.Code != tt.wantCode {
				t.Errorf("code %q, want %q", provErr.Code, tt.wantCode)
			}
		})
	}
}

func TestFetchProfileRejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"team": `)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchProfile(context.Background(), "KC", 2025)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("want ProviderError, got %v", err)
	}
	if provErr.Code != ErrCodeInvalidResponse {
		t.Errorf("code %q, want %q", provErr.Code, ErrCodeInvalidResponse)
	}
}
