package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/skysearch/internal/adapters/clients/acl/sky"
	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/itinerary"
	"github.com/jsamuelsen11/skysearch/internal/platform/cache"
	"github.com/jsamuelsen11/skysearch/internal/platform/httpclient"
	"github.com/jsamuelsen11/skysearch/internal/ports"
)

// Downstream endpoints.
const (
	pathSearchAirport = "/api/v1/flights/searchAirport"
	pathSearchFlights = "/api/v2/flights/searchFlights"
)

// Compile-time interface checks.
var (
	_ ports.AirportClient = (*SkyClient)(nil)
	_ ports.FlightClient  = (*SkyClient)(nil)
	_ ports.HealthChecker = (*SkyClient)(nil)
)

// SkyClient is the outbound adapter for the Sky-Scrapper flights API. It
// implements [ports.AirportClient] and [ports.FlightClient], translating
// responses through the [sky] subpackage.
//
// Identical requests within the cache TTL are answered from memory. The
// underlying [httpclient.Client] provides circuit breaking, rate limiting,
// retry, tracing, and the RapidAPI credential headers.
type SkyClient struct {
	req      *Requester
	market   sky.Market
	airports *cache.Cache[[]filter.AirportOption]
	flights  *cache.Cache[[]itinerary.Itinerary]
	logger   *slog.Logger
}

// SkyOption configures optional SkyClient behavior.
type SkyOption func(*SkyClient)

// WithAirportCache answers repeated airport lookups from c.
func WithAirportCache(c *cache.Cache[[]filter.AirportOption]) SkyOption {
	return func(s *SkyClient) { s.airports = c }
}

// WithFlightCache answers repeated flight searches from c.
func WithFlightCache(c *cache.Cache[[]itinerary.Itinerary]) SkyOption {
	return func(s *SkyClient) { s.flights = c }
}

// NewSkyClient creates a SkyClient that sends requests through client. The
// market supplies the locale and pricing context added to every request.
func NewSkyClient(client *httpclient.Client, market sky.Market, logger *slog.Logger, opts ...SkyOption) *SkyClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &SkyClient{
		req:    NewRequester(client, logger),
		market: market,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchAirports looks up airports matching a free-text query. An empty
// result is an empty slice.
func (c *SkyClient) SearchAirports(ctx context.Context, query string) ([]filter.AirportOption, error) {
	query = strings.TrimSpace(query)
	key := c.market.Locale + "|" + strings.ToLower(query)
	if c.airports != nil {
		if hit, ok := c.airports.Get(key); ok {
			return hit, nil
		}
	}

	params := url.Values{}
	params.Set("query", query)
	if c.market.Locale != "" {
		params.Set("locale", c.market.Locale)
	}

	var dto sky.AirportListResponseDTO
	if err := c.req.Get(ctx, pathSearchAirport, params, &dto); err != nil {
		return nil, fmt.Errorf("searching airports: %w", err)
	}
	if dto.Failed() {
		return nil, rejected("searching airports", dto.Envelope)
	}

	options := sky.ToAirportOptions(dto)
	if c.airports != nil {
		c.airports.Set(key, options)
	}
	return options, nil
}

// SearchFlights runs a flight search for q. Zero results is an empty slice.
func (c *SkyClient) SearchFlights(ctx context.Context, q filter.Query) ([]itinerary.Itinerary, error) {
	params := sky.ToSearchParams(q, c.market)
	key := params.Encode()
	if c.flights != nil {
		if hit, ok := c.flights.Get(key); ok {
			return hit, nil
		}
	}

	var dto sky.FlightSearchResponseDTO
	if err := c.req.Get(ctx, pathSearchFlights, params, &dto); err != nil {
		return nil, fmt.Errorf("searching flights: %w", err)
	}
	if dto.Failed() {
		return nil, rejected("searching flights", dto.Envelope)
	}

	records := sky.ToItineraries(dto)
	if dto.Data != nil && dto.Data.Context.Status != "" && dto.Data.Context.Status != "complete" {
		// Partial results are returned but never cached.
		c.logger.InfoContext(ctx, "flight search incomplete",
			slog.String("status", dto.Data.Context.Status),
			slog.Int("records", len(records)),
		)
		return records, nil
	}
	if c.flights != nil {
		c.flights.Set(key, records)
	}
	return records, nil
}

// PurgeExpired drops expired entries from both response caches and returns
// how many were removed.
func (c *SkyClient) PurgeExpired() int {
	n := 0
	if c.airports != nil {
		n += c.airports.Purge()
	}
	if c.flights != nil {
		n += c.flights.Purge()
	}
	return n
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *SkyClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the downstream availability from the circuit breaker
// state. No network call is made.
func (c *SkyClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}

// rejected builds the error for a 200 response whose envelope reports
// status false.
func rejected(op string, env sky.Envelope) error {
	msg := env.MessageText()
	if msg == "" {
		msg = "request rejected"
	}
	return fmt.Errorf("%s: %s: %w", op, msg, domain.ErrUnavailable)
}
