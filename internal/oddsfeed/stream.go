// Package oddsfeed handles the WebSocket connection to the market line feed.
package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/metrics"
)

// StreamClient handles the WebSocket connection to the odds feed.
type StreamClient struct {
	conn            *websocket.Conn
	apiKey          string
	baseURL         string
	mu              sync.RWMutex
	isConnected     bool
	handlers        []LineHandler
	reconnectConfig ReconnectConfig
	lastMessageTime time.Time
	logger          *logrus.Logger
}

// ReconnectConfig controls reconnection behavior
type ReconnectConfig struct {
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

// LineHandler is called when a line update is received from the feed
type LineHandler func(update LineUpdate) error

// LineUpdate represents a market line change for a single game.
type LineUpdate struct {
	GameID        string  `json:"gameId"`
	HomeTeam      string  `json:"homeTeam"`
	AwayTeam      string  `json:"awayTeam"`
	Spread        float64 `json:"spread"`
	Total         float64 `json:"total"`
	HomeMoneyline int     `json:"homeMl"`
	AwayMoneyline int     `json:"awayMl"`
	Timestamp     int64   `json:"ts"`
}

// feedMessage is the wire envelope for feed messages.
type feedMessage struct {
	Op      string       `json:"op"`
	Status  int          `json:"status,omitempty"`
	Updates []LineUpdate `json:"updates,omitempty"`
}

// DefaultReconnectConfig returns default reconnection configuration
func DefaultReconnectConfig() ReconnectConfig {
	return ReconnectConfig{
		MaxRetries:        10,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 1.5,
	}
}

// NewStreamClient creates a new stream client
func NewStreamClient(apiKey, feedURL string, logger *logrus.Logger) *StreamClient {
	if logger == nil {
		logger = logrus.New()
	}

	return &StreamClient{
		apiKey:          apiKey,
		baseURL:         feedURL,
		handlers:        make([]LineHandler, 0),
		reconnectConfig: DefaultReconnectConfig(),
		logger:          logger,
	}
}

// SetReconnectConfig overrides the default reconnection configuration.
func (s *StreamClient) SetReconnectConfig(cfg ReconnectConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconnectConfig = cfg
}

// Connect establishes the WebSocket connection to the feed.
func (s *StreamClient) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isConnected {
		return fmt.Errorf("already connected")
	}

	wsURL := fmt.Sprintf("wss://%s/v1/lines/stream", s.baseURL)

	s.logger.WithField("url", wsURL).Info("Connecting to odds feed")

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to odds feed: %w", err)
	}

	s.conn = conn
	s.isConnected = true
	s.lastMessageTime = time.Now()
	metrics.UpdateFeedConnected(true)

	s.logger.Info("Connected to odds feed")

	go s.readMessages()

	return nil
}

// Authenticate sends the authentication message.
func (s *StreamClient) Authenticate(ctx context.Context) error {
	s.mu.RLock()
	if !s.isConnected || s.conn == nil {
		s.mu.RUnlock()
		return fmt.Errorf("not connected to feed")
	}
	s.mu.RUnlock()

	authMsg := map[string]interface{}{
		"op":     "auth",
		"apiKey": s.apiKey,
	}

	return s.sendMessage(authMsg)
}

// SubscribeToGames subscribes to line updates for the specified game IDs.
func (s *StreamClient) SubscribeToGames(ctx context.Context, gameIDs []string) error {
	s.mu.RLock()
	if !s.isConnected || s.conn == nil {
		s.mu.RUnlock()
		return fmt.Errorf("not connected to feed")
	}
	s.mu.RUnlock()

	subMsg := map[string]interface{}{
		"op":        "subscribe",
		"apiKey":    s.apiKey,
		"gameIds":   gameIDs,
		"markets":   []string{"spread", "total", "moneyline"},
		"heartbeat": true,
	}

	s.logger.WithField("games", len(gameIDs)).Info("Subscribing to line updates")
	return s.sendMessage(subMsg)
}

// AddHandler registers a line update handler
func (s *StreamClient) AddHandler(handler LineHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, handler)
}

// RunWithReconnect keeps the feed connection alive until the context is
// cancelled, reconnecting with exponential backoff after drops.
func (s *StreamClient) RunWithReconnect(ctx context.Context, gameIDs []string) error {
	backoff := s.reconnectConfig.InitialBackoff
	retries := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !s.IsConnected() {
			if err := s.connectAndSubscribe(ctx, gameIDs); err != nil {
				retries++
				metrics.RecordFeedReconnect()
				if s.reconnectConfig.MaxRetries > 0 && retries > s.reconnectConfig.MaxRetries {
					return fmt.Errorf("odds feed reconnect failed after %d attempts: %w", retries-1, err)
				}
				s.logger.WithFields(logrus.Fields{
					"attempt": retries,
					"backoff": backoff.String(),
				}).WithError(err).Warn("Odds feed reconnect failed")

				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(backoff):
				}

				backoff = time.Duration(float64(backoff) * s.reconnectConfig.BackoffMultiplier)
				if backoff > s.reconnectConfig.MaxBackoff {
					backoff = s.reconnectConfig.MaxBackoff
				}
				continue
			}
			backoff = s.reconnectConfig.InitialBackoff
			retries = 0
		}

		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}

func (s *StreamClient) connectAndSubscribe(ctx context.Context, gameIDs []string) error {
	if err := s.Connect(ctx); err != nil {
		return err
	}
	if err := s.Authenticate(ctx); err != nil {
		s.Close()
		return err
	}
	if len(gameIDs) > 0 {
		if err := s.SubscribeToGames(ctx, gameIDs); err != nil {
			s.Close()
			return err
		}
	}
	return nil
}

// readMessages reads messages from the WebSocket connection.
func (s *StreamClient) readMessages() {
	defer s.Close()

	for {
		var raw json.RawMessage
		err := s.conn.ReadJSON(&raw)
		if err != nil {
			s.logger.WithError(err).Warn("Odds feed read error")
			s.mu.Lock()
			s.isConnected = false
			s.mu.Unlock()
			metrics.UpdateFeedConnected(false)
			return
		}

		s.mu.Lock()
		s.lastMessageTime = time.Now()
		s.mu.Unlock()

		var msg feedMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.logger.WithError(err).Warn("Malformed feed message")
			continue
		}
		if msg.Op != "lines" {
			continue
		}

		s.mu.RLock()
		handlers := s.handlers
		s.mu.RUnlock()

		for _, update := range msg.Updates {
			metrics.RecordLineUpdate()
			for _, handler := range handlers {
				if err := handler(update); err != nil {
					s.logger.WithError(err).Warn("Line handler error")
				}
			}
		}
	}
}

// sendMessage sends a JSON message to the feed.
func (s *StreamClient) sendMessage(msg interface{}) error {
	s.mu.RLock()
	if !s.isConnected || s.conn == nil {
		s.mu.RUnlock()
		return fmt.Errorf("not connected")
	}
	conn := s.conn
	s.mu.RUnlock()

	return conn.WriteJSON(msg)
}

// IsConnected returns whether the feed is connected
func (s *StreamClient) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isConnected
}

// LastMessageTime returns the time of the last received message
func (s *StreamClient) LastMessageTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastMessageTime
}

// Close closes the feed connection
func (s *StreamClient) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	s.isConnected = false
	metrics.UpdateFeedConnected(false)
	return s.conn.Close()
}

// Ping sends a ping message to keep the connection alive.
func (s *StreamClient) Ping() error {
	return s.sendMessage(map[string]interface{}{
		"op": "ping",
	})
}
