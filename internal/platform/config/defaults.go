package config

import "github.com/knadh/koanf/maps"

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultFetchConcurrency = 1
	defaultFetchPageSize    = 100

	defaultPreloadConcurrency = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	m := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"cms.client.base_url": "http://localhost:1337",
		"cms.token":           "",
		"cms.client_id":       "default",
		"cms.mock_dir":        "mocks/content",

		"legacy.client.base_url": "https://storage.googleapis.com",
		"legacy.environment":     "dev",

		"fetch.languages":     []string{"en", "ja", "ko", "zh-Hans", "zh-Hant"},
		"fetch.request_delay": "500ms",
		"fetch.concurrency":   defaultFetchConcurrency,
		"fetch.page_size":     defaultFetchPageSize,

		"preload.concurrency": defaultPreloadConcurrency,
		"preload.output_dir":  "guide-bundles",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "guide-content-pipeline",
	}
	for _, client := range []string{"cms.client", "legacy.client"} {
		m[client+".timeout"] = "30s"
		m[client+".retry.max_attempts"] = defaultRetryMaxAttempts
		m[client+".retry.initial_interval"] = "100ms"
		m[client+".retry.max_interval"] = "10s"
		m[client+".retry.multiplier"] = defaultRetryMultiplier
		m[client+".circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
		m[client+".circuit_breaker.timeout"] = "30s"
		m[client+".circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
		m[client+".rate_limit.requests_per_second"] = 0
		m[client+".rate_limit.burst_size"] = 1
	}
	return m
}

// defaultsProvider serves defaults() to koanf as a nested map.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytesUnsupported
}

func (defaultsProvider) Read() (map[string]any, error) {
	return maps.Unflatten(defaults(), "."), nil
}
