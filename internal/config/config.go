// Package config provides configuration management for the Gridiron Edge application.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	Providers  ProvidersConfig  `mapstructure:"providers" validate:"required"`
	OddsFeed   OddsFeedConfig   `mapstructure:"odds_feed" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Edge       EdgeConfig       `mapstructure:"edge" validate:"required"`
	Schedule   ScheduleConfig   `mapstructure:"schedule" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
	Health     HealthConfig     `mapstructure:"health" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// ProvidersConfig groups the external data provider clients.
type ProvidersConfig struct {
	SportsFeed ProviderConfig `mapstructure:"sportsfeed" validate:"required"`
	Forecast   ProviderConfig `mapstructure:"forecast" validate:"required"`
}

// ProviderConfig represents one HTTP data provider.
type ProviderConfig struct {
	BaseURL         string  `mapstructure:"base_url" validate:"required,url"`
	APIKey          string  `mapstructure:"api_key"`
	Enabled         bool    `mapstructure:"enabled"`
	RateLimit       float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
	CacheTTLMinutes int     `mapstructure:"cache_ttl_minutes" validate:"omitempty,gt=0"`
}

// OddsFeedConfig represents the websocket line-update feed.
type OddsFeedConfig struct {
	URL                 string `mapstructure:"url" validate:"required"`
	APIKey              string `mapstructure:"api_key"`
	Enabled             bool   `mapstructure:"enabled"`
	ReconnectMinSeconds int    `mapstructure:"reconnect_min_seconds" validate:"required,gt=0"`
	ReconnectMaxSeconds int    `mapstructure:"reconnect_max_seconds" validate:"required,gt=0"`
}

// SimulationConfig represents engine run parameters.
type SimulationConfig struct {
	Iterations   int    `mapstructure:"iterations" validate:"required,gt=0"`
	Seed         int64  `mapstructure:"seed"`
	BatchWorkers int    `mapstructure:"batch_workers" validate:"omitempty,gt=0"`
	ModelTag     string `mapstructure:"model_tag" validate:"required"`
}

// EdgeConfig represents value-detection thresholds.
type EdgeConfig struct {
	MinEdgePercent float64 `mapstructure:"min_edge_percent" validate:"gte=0"`
	KellyFraction  float64 `mapstructure:"kelly_fraction" validate:"required,gt=0,lte=1"`
	MaxStakeUnits  float64 `mapstructure:"max_stake_units" validate:"required,gt=0"`
}

// ScheduleConfig represents the prediction scheduler.
type ScheduleConfig struct {
	PredictionSync string `mapstructure:"prediction_sync" validate:"required"`
	LookaheadHours int    `mapstructure:"lookahead_hours" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents the health check server.
type HealthConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
