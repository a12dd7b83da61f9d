// Package filter holds the flight-search filter state and assembles it into
// immutable search queries.
//
// A State is mutated field by field as the user interacts with each
// control. Snapshot copies it into a Query value; later edits to the State
// never reach a Query that was already taken.
package filter

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// Defaults are the initial filter values for a new State.
type Defaults struct {
	TripMode   TripMode
	CabinClass CabinClass
}

// State is the mutable record of all current search-filter selections.
// A zero AirportRef means the airport is not selected.
type State struct {
	TripMode      TripMode
	CabinClass    CabinClass
	Origin        AirportRef
	Destination   AirportRef
	DepartureDate string
	ReturnDate    string
	Passengers    passenger.Counts
}

// NewState creates a State from the given defaults with one adult passenger.
// Invalid defaults fall back to round-trip economy.
func NewState(d Defaults) State {
	s := State{
		TripMode:   TripModeRoundTrip,
		CabinClass: CabinEconomy,
		Passengers: passenger.DefaultCounts(),
	}
	if d.TripMode.IsValid() {
		s.TripMode = d.TripMode
	}
	if d.CabinClass.IsValid() {
		s.CabinClass = d.CabinClass
	}
	return s
}

// SetTripMode switches between round-trip and one-way. The stored return
// date is kept so switching back restores it; Snapshot drops it while the
// mode is one-way.
func (s *State) SetTripMode(mode TripMode) error {
	if !mode.IsValid() {
		return domain.NewFieldError("trip_mode", fmt.Sprintf("invalid: %q", mode))
	}
	s.TripMode = mode
	return nil
}

// SetCabinClass stores the lower-cased cabin class.
func (s *State) SetCabinClass(raw string) error {
	c := CabinClass(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return domain.NewFieldError("cabin_class", fmt.Sprintf("invalid: %q", raw))
	}
	s.CabinClass = c
	return nil
}

// SelectOrigin sets the origin to the option whose label matches exactly.
// When no option matches, the origin is cleared and an error wrapping
// domain.ErrAirportNotFound is returned.
func (s *State) SelectOrigin(label string, options []AirportOption) error {
	ref, err := selectAirport("origin", label, options)
	s.Origin = ref
	return err
}

// SelectDestination sets the destination to the option whose label matches
// exactly. When no option matches, the destination is cleared and an error
// wrapping domain.ErrAirportNotFound is returned.
func (s *State) SelectDestination(label string, options []AirportOption) error {
	ref, err := selectAirport("destination", label, options)
	s.Destination = ref
	return err
}

// SetDepartureDate parses raw and stores it as a calendar day. On failure
// the previous value is kept.
func (s *State) SetDepartureDate(raw string) error {
	day, err := ParseDay("departure_date", raw)
	if err != nil {
		return err
	}
	s.DepartureDate = day
	return nil
}

// SetReturnDate parses raw and stores it as a calendar day. An empty raw
// value clears the return date. On failure the previous value is kept.
func (s *State) SetReturnDate(raw string) error {
	if strings.TrimSpace(raw) == "" {
		s.ReturnDate = ""
		return nil
	}
	day, err := ParseDay("return_date", raw)
	if err != nil {
		return err
	}
	s.ReturnDate = day
	return nil
}

// MergePassengers replaces the passenger counts wholesale.
func (s *State) MergePassengers(c passenger.Counts) {
	s.Passengers = c
}

// Snapshot returns an immutable copy of the current filters. The return
// date is omitted unless the trip mode is round-trip.
func (s *State) Snapshot() Query {
	q := Query{
		TripMode:      s.TripMode,
		CabinClass:    s.CabinClass,
		Origin:        s.Origin,
		Destination:   s.Destination,
		DepartureDate: s.DepartureDate,
		Passengers:    s.Passengers,
	}
	if s.TripMode == TripModeRoundTrip {
		q.ReturnDate = s.ReturnDate
	}
	return q
}

func selectAirport(field, label string, options []AirportOption) (AirportRef, error) {
	opt, ok := FindOption(options, label)
	if !ok {
		return AirportRef{}, fmt.Errorf("%s %q: %w", field, label, domain.ErrAirportNotFound)
	}
	return opt.Ref, nil
}
