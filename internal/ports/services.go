package ports

import (
	"context"

	"github.com/jsamuelsen11/skysearch/internal/app/session"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// SearchService defines the service port for flight-search sessions.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method that takes a session ID returns domain.ErrNotFound when the
// session does not exist or has been evicted.
type SearchService interface {
	// CreateSession starts a session with the configured default filters.
	CreateSession(ctx context.Context) (session.View, error)

	// GetSession returns a snapshot of the session's filters, lookup state
	// and latest results.
	GetSession(ctx context.Context, id string) (session.View, error)

	// DeleteSession ends a session and cancels its pending airport lookup.
	DeleteSession(ctx context.Context, id string) error

	// UpdateFilters applies a partial filter change atomically.
	// Returns domain.ErrValidation if any field is invalid; nothing is
	// changed in that case.
	UpdateFilters(ctx context.Context, id string, patch session.FilterPatch) (session.View, error)

	// IncrementPassenger adds one passenger of the category.
	// Returns domain.ErrValidation for unknown categories.
	IncrementPassenger(ctx context.Context, id string, cat passenger.Category) (passenger.Counts, error)

	// DecrementPassenger removes one passenger of the category, flooring at
	// the category minimum. Returns domain.ErrValidation for unknown categories.
	DecrementPassenger(ctx context.Context, id string, cat passenger.Category) (passenger.Counts, error)

	// QueueAirportQuery records a keystroke in the airport field. The lookup
	// runs once typing has paused for the debounce window.
	QueueAirportQuery(ctx context.Context, id, query string) error

	// SelectOrigin picks the origin from the session's loaded airport options.
	// Returns domain.ErrAirportNotFound if no option has the label.
	SelectOrigin(ctx context.Context, id, label string) (filter.AirportRef, error)

	// SelectDestination picks the destination from the session's loaded
	// airport options. Returns domain.ErrAirportNotFound if no option has
	// the label.
	SelectDestination(ctx context.Context, id, label string) (filter.AirportRef, error)

	// Submit snapshots the filters and starts an asynchronous flight search.
	// Returns domain.ErrValidation if the query is incomplete.
	Submit(ctx context.Context, id string) (filter.Query, error)
}
