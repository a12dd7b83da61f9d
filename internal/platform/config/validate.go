package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Search.validate(),
		c.Cache.validate(),
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
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if s.CORS.MaxAge < 0 {
		errs = append(errs, errors.New("server.cors.max_age must not be negative"))
	}
	if s.CORS.AllowCredentials && slices.Contains(s.CORS.AllowedOrigins, "*") {
		errs = append(errs, errors.New("server.cors.allow_credentials cannot be combined with a wildcard origin"))
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

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.APIHost == "" {
		errs = append(errs, errors.New("client.api_host must not be empty"))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *SearchConfig) validate() error {
	var errs []error

	if s.DebounceDelay <= 0 {
		errs = append(errs, errors.New("search.debounce_delay must be positive"))
	}
	if s.TimeLayout == "" {
		errs = append(errs, errors.New("search.time_layout must not be empty"))
	}

	switch s.TripMode {
	case "round-trip", "one-way":
		// Valid trip modes.
	default:
		errs = append(errs, fmt.Errorf("search.trip_mode must be one of: round-trip, one-way; got %q", s.TripMode))
	}

	switch s.CabinClass {
	case "economy", "premium_economy", "business", "first":
		// Valid cabin classes.
	default:
		errs = append(errs, fmt.Errorf(
			"search.cabin_class must be one of: economy, premium_economy, business, first; got %q", s.CabinClass))
	}

	switch s.SortBy {
	case "best", "price_high", "fastest", "outbound_take_off_time", "outbound_landing_time",
		"return_take_off_time", "return_landing_time":
		// Valid sort orders accepted by the flights API.
	default:
		errs = append(errs, fmt.Errorf("search.sort_by is not a supported sort order: %q", s.SortBy))
	}

	// A session starts with one adult, so a higher floor could never be met
	// by decrementing.
	if s.MinAdults < 0 || s.MinAdults > 1 {
		errs = append(errs, fmt.Errorf("search.min_adults must be 0 or 1, got %d", s.MinAdults))
	}
	if s.SessionTTL < 0 {
		errs = append(errs, errors.New("search.session_ttl must not be negative"))
	}
	if s.SessionTTL > 0 && s.JanitorInterval <= 0 {
		errs = append(errs, errors.New("search.janitor_interval must be positive when search.session_ttl is set"))
	}
	if s.LookupTimeout <= 0 {
		errs = append(errs, errors.New("search.lookup_timeout must be positive"))
	}
	if s.SearchTimeout <= 0 {
		errs = append(errs, errors.New("search.search_timeout must be positive"))
	}

	for key, v := range map[string]string{
		"search.locale":       s.Locale,
		"search.market":       s.Market,
		"search.currency":     s.Currency,
		"search.country_code": s.CountryCode,
	} {
		if v == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", key))
		}
	}

	return errors.Join(errs...)
}

func (c *CacheConfig) validate() error {
	var errs []error

	if c.AirportTTL < 0 {
		errs = append(errs, errors.New("cache.airport_ttl must not be negative"))
	}
	if c.FlightTTL < 0 {
		errs = append(errs, errors.New("cache.flight_ttl must not be negative"))
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
