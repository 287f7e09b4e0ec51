package stats

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func newTestForecastClient(baseURL string) *ForecastClient {
	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 1000
	return NewForecastClient(NewRateLimitedHTTPClient(cfg, nil), baseURL, "weather-key", nil)
}

func TestFetchForecastDecodesConditions(t *testing.T) {
	kickoff := time.Date(2025, 12, 14, 18, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("stadium") != "Highmark Stadium" {
			t.Errorf("stadium query %q", r.URL.Query().Get("stadium"))
		}
		if r.Header.Get("Authorization") != "Bearer weather-key" {
			t.Errorf("missing bearer auth, got %q", r.Header.Get("Authorization"))
		}
		fmt.Fprint(w, `{"temperatureF": 24.0, "windMph": 18.5, "precipitationIndex": 0.6, "condition": "snow", "indoor": false}`)
	}))
	defer server.Close()

	cond, err := newTestForecastClient(server.URL).FetchForecast(context.Background(), "Highmark Stadium", kickoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cond == nil {
		t.Fatal("expected conditions")
	}
	if cond.WindSpeed != 18.5 {
		t.Errorf("wind %.1f, want 18.5", cond.WindSpeed)
	}
	if cond.Condition != models.ConditionSnow {
		t.Errorf("condition %q, want snow", cond.Condition)
	}
}

func TestFetchForecastUnavailableIsNeutral(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cond, err := newTestForecastClient(server.URL).FetchForecast(context.Background(), "Lambeau Field", time.Now())
	if err != nil {
		t.Fatalf("unavailable forecast should not error: %v", err)
	}
	if cond != nil {
		t.Fatalf("want nil conditions, got %+v", cond)
	}
}

func TestFetchForecastCachesByStadiumAndHour(t *testing.T) {
	kickoff := time.Date(2025, 12, 14, 18, 0, 0, 0, time.UTC)
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"temperatureF": 70.0, "windMph": 3.0, "condition": "clear"}`)
	}))
	defer server.Close()

	client := newTestForecastClient(server.URL)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.FetchForecast(ctx, "SoFi Stadium", kickoff); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}

	if requests != 1 {
		t.Fatalf("server hit %d times, want 1", requests)
	}
}
