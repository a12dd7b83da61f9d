package ports

import (
	"context"

	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/itinerary"
)

// AirportClient defines the client port for free-text airport lookups.
// Implemented by the ACL adapter; called by the application layer.
type AirportClient interface {
	// SearchAirports returns the airports matching a free-text query.
	// An empty or absent result set is returned as an empty slice, not
	// an error.
	SearchAirports(ctx context.Context, query string) ([]filter.AirportOption, error)
}

// FlightClient defines the client port for flight searches.
// Implemented by the ACL adapter; called by the application layer.
type FlightClient interface {
	// SearchFlights returns the raw itineraries matching the query.
	// Zero results is an empty slice; transport or downstream failures
	// are returned as errors.
	SearchFlights(ctx context.Context, query filter.Query) ([]itinerary.Itinerary, error)
}
