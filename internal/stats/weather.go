package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// ForecastClient implements WeatherProvider against a stadium-forecast
// API. Failures degrade to a nil forecast, which the engine treats as
// weather-neutral.
type ForecastClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	cache      *cache.Cache
	logger     *logrus.Logger
}

type forecastResponse struct {
	TemperatureF  float64 `json:"temperatureF"`
	WindMph       float64 `json:"windMph"`
	Precipitation float64 `json:"precipitationIndex"`
	Condition     string  `json:"condition"`
	Indoor        bool    `json:"indoor"`
}

// NewForecastClient creates a stadium-forecast client with a one-hour
// forecast cache.
func NewForecastClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, logger *logrus.Logger) *ForecastClient {
	if logger == nil {
		logger = logrus.New()
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      cache.New(time.Hour, 2*time.Hour),
		logger:     logger,
	}
}

// FetchForecast retrieves the forecast for a stadium at kickoff time.
// Returns (nil, nil) when the forecast is unavailable; the caller should
// simulate weather-neutral.
func (c *ForecastClient) FetchForecast(ctx context.Context, stadium string, kickoff time.Time) (*models.WeatherConditions, error) {
	key := fmt.Sprintf("forecast:%s:%s", stadium, kickoff.Format("2006-01-02T15"))
	if cached, found := c.cache.Get(key); found {
		if cond, ok := cached.(*models.WeatherConditions); ok {
			return cond, nil
		}
	}

	endpoint := fmt.Sprintf("%s/forecast?stadium=%s&at=%s",
		c.baseURL, url.QueryEscape(stadium), url.QueryEscape(kickoff.UTC().Format(time.RFC3339)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewProviderError("forecast", ErrCodeNetworkError, "failed to create request", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		c.logger.WithField("stadium", stadium).Warnf("Forecast fetch failed, simulating weather-neutral: %v", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"stadium": stadium,
			"status":  resp.StatusCode,
		}).Warn("Forecast unavailable, simulating weather-neutral")
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewProviderError("forecast", ErrCodeInvalidResponse, "failed to read response", err)
	}

	var raw forecastResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, NewProviderError("forecast", ErrCodeInvalidResponse, "failed to decode forecast", err)
	}

	cond := &models.WeatherConditions{
		Temperature:   raw.TemperatureF,
		WindSpeed:     raw.WindMph,
		Precipitation: raw.Precipitation,
		Condition:     models.WeatherCondition(raw.Condition),
		IsDome:        raw.Indoor,
	}
	c.cache.Set(key, cond, cache.DefaultExpiration)
	return cond, nil
}
