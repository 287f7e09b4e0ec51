package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestConcurrentRequestsTripBreakerSafely(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 10000
	cfg.CircuitBreakerMax = 5
	client := NewRateLimitedHTTPClient(cfg, nil)
	defer client.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				resp, err := client.Get(context.Background(), server.URL)
				if err == nil {
					resp.Body.Close()
					t.Error("expected every request to fail")
					return
				}
			}
		}()
	}
	wg.Wait()

	_, err := client.Get(context.Background(), server.URL)
	if err == nil || !strings.Contains(err.Error(), "circuit breaker open") {
		t.Fatalf("expected open breaker after sustained failures, got %v", err)
	}
}

func TestBreakerResetsAfterSuccess(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 10000
	cfg.CircuitBreakerMax = 3
	client := NewRateLimitedHTTPClient(cfg, nil)
	defer client.Close()

	fail.Store(true)
	for i := 0; i < 2; i++ {
		if _, err := client.Get(context.Background(), server.URL); err == nil {
			t.Fatal("expected failure")
		}
	}

	fail.Store(false)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	fail.Store(true)
	for i := 0; i < 2; i++ {
		if _, err := client.Get(context.Background(), server.URL); err == nil {
			t.Fatal("expected failure")
		}
	}
	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Fatal("expected failure")
	} else if strings.Contains(err.Error(), "circuit breaker open") {
		t.Fatalf("success should have reset the failure count, got %v", err)
	}
}
