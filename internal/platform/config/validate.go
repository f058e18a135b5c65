package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.CMS.validate(),
		c.Legacy.validate(),
		c.Fetch.validate(),
		c.Preload.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (c *CMSConfig) validate() error {
	var errs []error

	errs = append(errs, c.Client.validate("cms.client"))
	if strings.TrimSpace(c.ClientID) == "" {
		errs = append(errs, errors.New("cms.client_id must not be empty"))
	}
	if c.MockDir == "" {
		errs = append(errs, errors.New("cms.mock_dir must not be empty"))
	}

	return errors.Join(errs...)
}

func (l *LegacyConfig) validate() error {
	var errs []error

	errs = append(errs, l.Client.validate("legacy.client"))
	if l.Environment == "" {
		errs = append(errs, errors.New("legacy.environment must not be empty"))
	}

	return errors.Join(errs...)
}

func (f *FetchConfig) validate() error {
	var errs []error

	if len(f.Languages) == 0 {
		errs = append(errs, errors.New("fetch.languages must not be empty"))
	}
	if f.RequestDelay < 0 {
		errs = append(errs, fmt.Errorf("fetch.request_delay must not be negative, got %s", f.RequestDelay))
	}
	if f.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("fetch.concurrency must be >= 1, got %d", f.Concurrency))
	}
	if f.PageSize < 1 {
		errs = append(errs, fmt.Errorf("fetch.page_size must be >= 1, got %d", f.PageSize))
	}

	return errors.Join(errs...)
}

func (p *PreloadConfig) validate() error {
	if p.Concurrency < 1 {
		return fmt.Errorf("preload.concurrency must be >= 1, got %d", p.Concurrency)
	}
	return nil
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
