// Package config provides configuration loading and validation for the
// guide content pipeline. Configuration is loaded from YAML files with
// environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration shared by the pipeline's commands.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	CMS       CMSConfig       `koanf:"cms"`
	Legacy    LegacyConfig    `koanf:"legacy"`
	Fetch     FetchConfig     `koanf:"fetch"`
	Preload   PreloadConfig   `koanf:"preload"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CMSConfig holds settings for the headless CMS content API and the JSON
// mock store it is mirrored into.
type CMSConfig struct {
	Client   ClientConfig `koanf:"client"`
	Token    string       `koanf:"token"`
	ClientID string       `koanf:"client_id"`
	MockDir  string       `koanf:"mock_dir"`
}

// LegacyConfig holds settings for the legacy tour asset store. The client's
// base URL is the object store host the tour buckets live on.
type LegacyConfig struct {
	Client      ClientConfig `koanf:"client"`
	Environment string       `koanf:"environment"`
}

// FetchConfig holds CMS ingestion batch settings.
type FetchConfig struct {
	Languages    []string      `koanf:"languages"`
	RequestDelay time.Duration `koanf:"request_delay"`
	Concurrency  int           `koanf:"concurrency"`
	PageSize     int           `koanf:"page_size"`
}

// PreloadConfig holds guide asset preload settings.
type PreloadConfig struct {
	Concurrency int    `koanf:"concurrency"`
	OutputDir   string `koanf:"output_dir"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
