package filter

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// Query is an immutable snapshot of a State taken when a search is
// submitted. All fields are values, so copies never share state.
type Query struct {
	TripMode      TripMode
	CabinClass    CabinClass
	Origin        AirportRef
	Destination   AirportRef
	DepartureDate string
	ReturnDate    string
	Passengers    passenger.Counts
}

// Validate checks that the query is complete enough to send to the flights
// API. Returns a *domain.ValidationError with per-field details, or nil.
func (q Query) Validate() error {
	fields := make(map[string]string)

	if q.Origin.IsZero() {
		fields["origin"] = domain.MsgRequired
	}
	if q.Destination.IsZero() {
		fields["destination"] = domain.MsgRequired
	}
	if !q.Origin.IsZero() && q.Origin == q.Destination {
		fields["destination"] = "must differ from origin"
	}
	if q.DepartureDate == "" {
		fields["departure_date"] = domain.MsgRequired
	}
	if q.TripMode == TripModeRoundTrip {
		switch {
		case q.ReturnDate == "":
			fields["return_date"] = "is required for round-trip"
		case q.DepartureDate != "" && q.ReturnDate < q.DepartureDate:
			fields["return_date"] = "must not be before departure_date"
		}
	}
	if q.Passengers.Total() == 0 {
		fields["passengers"] = "at least one passenger is required"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Key returns a stable identifier for the query, suitable as a cache key.
// Two queries with the same key request the same results.
func (q Query) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%d|%d|%d",
		q.TripMode,
		strings.ToLower(q.CabinClass.String()),
		q.Origin,
		q.Destination,
		q.DepartureDate,
		q.ReturnDate,
		q.Passengers.Adults,
		q.Passengers.Children,
		q.Passengers.Infants,
	)
}
