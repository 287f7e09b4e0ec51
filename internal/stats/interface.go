// Package stats retrieves, caches and defaults the team statistical
// profiles and weather forecasts the simulation engine consumes. The
// engine never fetches; everything arriving from here is fully populated.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// ProfileProvider supplies season-to-date statistical profiles.
type ProfileProvider interface {
	FetchProfile(ctx context.Context, team string, season int) (*models.TeamStatisticalProfile, error)
}

// WeatherProvider supplies kickoff forecasts. A nil result with nil error
// means the game is weather-neutral (dome or no forecast coverage).
type WeatherProvider interface {
	FetchForecast(ctx context.Context, stadium string, kickoff time.Time) (*models.WeatherConditions, error)
}

// Error codes for provider failures.
const (
	ErrCodeNetworkError    = "NETWORK_ERROR"
	ErrCodeAuthFailed      = "AUTHENTICATION_FAILED"
	ErrCodeInvalidResponse = "INVALID_RESPONSE"
	ErrCodeNotFound        = "NOT_FOUND"
)

// ProviderError wraps provider failures with a source and error code so
// callers can decide between retry and default fallback.
type ProviderError struct {
	Source  string
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Source, e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Source, e.Message, e.Code)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a provider error.
func NewProviderError(source, code, message string, err error) *ProviderError {
	return &ProviderError{Source: source, Code: code, Message: message, Err: err}
}
