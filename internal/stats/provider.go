package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// SportsFeedClient implements ProfileProvider against a season-stats API.
type SportsFeedClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	enabled    bool
	logger     *logrus.Logger
}

// sportsFeedTeamStats is the provider's wire shape for one team's season
// averages. Missing fields decode to zero and are defaulted afterwards.
type sportsFeedTeamStats struct {
	Team                 string  `json:"team"`
	PointsPerGame        float64 `json:"pointsPerGame"`
	YardsPerGame         float64 `json:"yardsPerGame"`
	PassingYardsPerGame  float64 `json:"passingYardsPerGame"`
	RushingYardsPerGame  float64 `json:"rushingYardsPerGame"`
	CompletionPct        float64 `json:"completionPct"`
	YardsPerAttempt      float64 `json:"yardsPerAttempt"`
	YardsPerCarry        float64 `json:"yardsPerCarry"`
	YardsPerPlay         float64 `json:"yardsPerPlay"`
	PassingTDPct         float64 `json:"passingTouchdownPct"`
	InterceptionPct      float64 `json:"interceptionPct"`
	RushingTDPct         float64 `json:"rushingTouchdownPct"`
	FumblePct            float64 `json:"fumblePct"`
	FirstDownsPerGame    float64 `json:"firstDownsPerGame"`
	ThirdDownPct         float64 `json:"thirdDownConversionPct"`
	RedZonePct           float64 `json:"redZoneScoringPct"`
	PenaltyYardsPerGame  float64 `json:"penaltyYardsPerGame"`
	TurnoversLostPerGame float64 `json:"giveawaysPerGame"`
	DrivesPerGame        float64 `json:"drivesPerGame"`

	PointsAllowedPerGame       float64 `json:"pointsAllowedPerGame"`
	YardsAllowedPerGame        float64 `json:"yardsAllowedPerGame"`
	PassingYardsAllowedPerGame float64 `json:"passingYardsAllowedPerGame"`
	RushingYardsAllowedPerGame float64 `json:"rushingYardsAllowedPerGame"`
	CompletionPctAllowed       float64 `json:"completionPctAllowed"`
	YardsPerAttemptAllowed     float64 `json:"yardsPerAttemptAllowed"`
	YardsPerCarryAllowed       float64 `json:"yardsPerCarryAllowed"`
	YardsPerPlayAllowed        float64 `json:"yardsPerPlayAllowed"`
	ThirdDownPctAllowed        float64 `json:"thirdDownPctAllowed"`
	RedZonePctAllowed          float64 `json:"redZonePctAllowed"`
	TurnoversForcedPerGame     float64 `json:"takeawaysPerGame"`
}

// NewSportsFeedClient creates a season-stats API client.
func NewSportsFeedClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, enabled bool, logger *logrus.Logger) *SportsFeedClient {
	if logger == nil {
		logger = logrus.New()
	}
	return &SportsFeedClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchProfile retrieves one team's season-to-date averages and fills any
// absent fields with the league-average defaults.
func (c *SportsFeedClient) FetchProfile(ctx context.Context, team string, season int) (*models.TeamStatisticalProfile, error) {
	if !c.enabled {
		return nil, NewProviderError("sportsfeed", ErrCodeNetworkError, "provider disabled", nil)
	}

	endpoint := fmt.Sprintf("%s/seasons/%d/teams/%s/stats", c.baseURL, season, url.PathEscape(team))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewProviderError("sportsfeed", ErrCodeNetworkError, "failed to create request", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, NewProviderError("sportsfeed", ErrCodeNetworkError, "failed to fetch team stats", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, NewProviderError("sportsfeed", ErrCodeAuthFailed, "invalid API key", nil)
	case http.StatusNotFound:
		return nil, NewProviderError("sportsfeed", ErrCodeNotFound, fmt.Sprintf("no stats for team %s", team), nil)
	default:
		return nil, NewProviderError("sportsfeed", ErrCodeInvalidResponse, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewProviderError("sportsfeed", ErrCodeInvalidResponse, "failed to read response", err)
	}

	var raw sportsFeedTeamStats
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewProviderError("sportsfeed", ErrCodeInvalidResponse, "failed to decode team stats", err)
	}

	profile := raw.toProfile(team)
	FillAbsent(profile)
	return profile, nil
}

func (s *sportsFeedTeamStats) toProfile(fallbackName string) *models.TeamStatisticalProfile {
	name := s.Team
	if name == "" {
		name = fallbackName
	}
	return &models.TeamStatisticalProfile{
		TeamName:             name,
		PointsPerGame:        s.PointsPerGame,
		YardsPerGame:         s.YardsPerGame,
		PassingYardsPerGame:  s.PassingYardsPerGame,
		RushingYardsPerGame:  s.RushingYardsPerGame,
		CompletionPct:        s.CompletionPct,
		YardsPerAttempt:      s.YardsPerAttempt,
		YardsPerCarry:        s.YardsPerCarry,
		YardsPerPlay:         s.YardsPerPlay,
		PassingTDRate:        s.PassingTDPct,
		InterceptionRate:     s.InterceptionPct,
		RushingTDRate:        s.RushingTDPct,
		FumbleRate:           s.FumblePct,
		FirstDownsPerGame:    s.FirstDownsPerGame,
		ThirdDownPct:         s.ThirdDownPct,
		RedZonePct:           s.RedZonePct,
		PenaltyYardsPerGame:  s.PenaltyYardsPerGame,
		TurnoversLostPerGame: s.TurnoversLostPerGame,
		DrivesPerGame:        s.DrivesPerGame,

		PointsAllowedPerGame:       s.PointsAllowedPerGame,
		YardsAllowedPerGame:        s.YardsAllowedPerGame,
		PassingYardsAllowedPerGame: s.PassingYardsAllowedPerGame,
		RushingYardsAllowedPerGame: s.RushingYardsAllowedPerGame,
		CompletionPctAllowed:       s.CompletionPctAllowed,
		YardsPerAttemptAllowed:     s.YardsPerAttemptAllowed,
		YardsPerCarryAllowed:       s.YardsPerCarryAllowed,
		YardsPerPlayAllowed:        s.YardsPerPlayAllowed,
		ThirdDownPctAllowed:        s.ThirdDownPctAllowed,
		RedZonePctAllowed:          s.RedZonePctAllowed,
		TurnoversForcedPerGame:     s.TurnoversForcedPerGame,
	}
}
