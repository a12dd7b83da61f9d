package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "30s",
		"server.shutdown_timeout": "15s",

		"server.cors.allowed_origins":   []string{"*"},
		"server.cors.allow_credentials": false,
		"server.cors.max_age":           "10m",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://sky-scrapper.p.rapidapi.com",
		"client.api_key":                         "",
		"client.api_host":                        "sky-scrapper.p.rapidapi.com",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"search.debounce_delay":   "500ms",
		"search.time_layout":      "3:04:05 PM",
		"search.trip_mode":        "round-trip",
		"search.cabin_class":      "economy",
		"search.min_adults":       0,
		"search.session_ttl":      "30m",
		"search.janitor_interval": "1m",
		"search.lookup_timeout":   "10s",
		"search.search_timeout":   "60s",
		"search.locale":           "en-US",
		"search.market":           "en-US",
		"search.currency":         "USD",
		"search.country_code":     "US",
		"search.sort_by":          "best",

		"cache.airport_ttl": "10m",
		"cache.flight_ttl":  "2m",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "skysearch",
	}
}
