// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Search    SearchConfig    `koanf:"search"`
	Cache     CacheConfig     `koanf:"cache"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORS            CORSConfig    `koanf:"cors"`
}

// CORSConfig controls cross-origin access for browser clients. An empty
// AllowedOrigins list disables CORS headers entirely.
type CORSConfig struct {
	AllowedOrigins   []string      `koanf:"allowed_origins"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the downstream flights API client.
// APIKey and APIHost are sent as the RapidAPI authentication headers.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIKey         string               `koanf:"api_key"`
	APIHost        string               `koanf:"api_host"`
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

// RateLimitConfig bounds outbound request throughput. A zero
// RequestsPerSecond disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// SearchConfig holds search-session behavior and the market context sent
// with every flights API request.
type SearchConfig struct {
	DebounceDelay   time.Duration `koanf:"debounce_delay"`
	TimeLayout      string        `koanf:"time_layout"`
	TripMode        string        `koanf:"trip_mode"`
	CabinClass      string        `koanf:"cabin_class"`
	MinAdults       int           `koanf:"min_adults"`
	SessionTTL      time.Duration `koanf:"session_ttl"`
	JanitorInterval time.Duration `koanf:"janitor_interval"`
	LookupTimeout   time.Duration `koanf:"lookup_timeout"`
	SearchTimeout   time.Duration `koanf:"search_timeout"`
	Locale          string        `koanf:"locale"`
	Market          string        `koanf:"market"`
	Currency        string        `koanf:"currency"`
	CountryCode     string        `koanf:"country_code"`
	SortBy          string        `koanf:"sort_by"`
}

// CacheConfig holds response cache lifetimes. A zero TTL disables that
// cache.
type CacheConfig struct {
	AirportTTL time.Duration `koanf:"airport_ttl"`
	FlightTTL  time.Duration `koanf:"flight_ttl"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
