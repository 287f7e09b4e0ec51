package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

type fakeFeed struct {
	connected bool
}

func (f *fakeFeed) IsConnected() bool {
	return f.connected
}

func decodeReady(t *testing.T, recorder *httptest.ResponseRecorder) ReadyResponse {
	t.Helper()
	var response ReadyResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestHandleHealth(t *testing.T) {
	server := NewServer(Config{ServiceName: "gridiron-edge", Version: "1.2.3"})

	recorder := httptest.NewRecorder()
	server.handleHealth(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "gridiron-edge", response.Service)
	assert.Equal(t, "1.2.3", response.Version)
}

func TestHandleReadyNotReady(t *testing.T) {
	server := NewServer(Config{ServiceName: "gridiron-edge"})

	recorder := httptest.NewRecorder()
	server.handleReady(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	response := decodeReady(t, recorder)
	assert.Equal(t, "not_ready", response.Status)
	assert.Equal(t, "not_ready", response.Checks["service"])
}

func TestHandleReadyWithHealthyChecks(t *testing.T) {
	server := NewServer(Config{
		ServiceName: "gridiron-edge",
		DB:          &fakePinger{},
		Feed:        &fakeFeed{connected: true},
	})
	server.SetReady(true)

	recorder := httptest.NewRecorder()
	server.handleReady(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	response := decodeReady(t, recorder)
	assert.Equal(t, "ok", response.Checks["database"])
	assert.Equal(t, "ok", response.Checks["odds_feed"])
}

func TestHandleReadyDatabaseDown(t *testing.T) {
	server := NewServer(Config{
		ServiceName: "gridiron-edge",
		DB:          &fakePinger{err: errors.New("connection refused")},
	})
	server.SetReady(true)

	recorder := httptest.NewRecorder()
	server.handleReady(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	response := decodeReady(t, recorder)
	assert.Contains(t, response.Checks["database"], "connection refused")
}

func TestHandleReadyFeedDisconnectedIsNonFatal(t *testing.T) {
	server := NewServer(Config{
		ServiceName: "gridiron-edge",
		DB:          &fakePinger{},
		Feed:        &fakeFeed{connected: false},
	})
	server.SetReady(true)

	recorder := httptest.NewRecorder()
	server.handleReady(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	response := decodeReady(t, recorder)
	assert.Equal(t, "disconnected", response.Checks["odds_feed"])
}

func TestDefaultPort(t *testing.T) {
	server := NewServer(Config{ServiceName: "gridiron-edge"})
	assert.Equal(t, "8080", server.port)
}
