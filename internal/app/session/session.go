// Package session holds per-client search sessions: the filter state, the
// passenger selector, the airport lookup status and the latest flight
// results. Sessions are owned by a Store and mutated only through their
// methods, which serialize access internally.
package session

import (
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/itinerary"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// Scheduler delays airport lookups until typing pauses. It is satisfied by
// *debounce.Debouncer[string].
type Scheduler interface {
	Schedule(query string) bool
	Stop()
}

// Params configure a new Session.
type Params struct {
	ID               string
	Now              time.Time
	Defaults         filter.Defaults
	PassengerOptions []passenger.Option
}

// Session is a single client's search-filter session.
type Session struct {
	id        string
	createdAt time.Time
	lookup    Scheduler
	state     *guard[state]
}

type state struct {
	lastSeen time.Time

	filters    filter.State
	passengers *passenger.Selector

	airportQuery    string
	airportOptions  []filter.AirportOption
	airportsLoading bool
	airportErr      error

	loading    bool
	generation uint64
	lastQuery  *filter.Query

	// Results are labeled with the submission that produced them, which
	// need not be the latest one.
	resultsGeneration uint64
	resultsQuery      *filter.Query
	results           []itinerary.Summary
	skipped           int
	fetchErr          error
	completedAt       time.Time
}

// New creates a Session with default filters and one adult passenger.
func New(p Params) *Session {
	s := &Session{
		id:        p.ID,
		createdAt: p.Now,
		state: newGuard(state{
			lastSeen: p.Now,
			filters:  filter.NewState(p.Defaults),
		}),
	}
	_ = s.state.write(func(st *state) error {
		st.passengers = passenger.NewSelector(st.filters.Passengers, st.filters.MergePassengers, p.PassengerOptions...)
		return nil
	})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// BindLookup attaches the scheduler used by QueueAirportQuery. It must be
// called before the session is shared.
func (s *Session) BindLookup(l Scheduler) { s.lookup = l }

// Touch records activity at now, postponing idle eviction.
func (s *Session) Touch(now time.Time) {
	_ = s.state.write(func(st *state) error {
		st.lastSeen = now
		return nil
	})
}

// IdleSince reports when the session was last used.
func (s *Session) IdleSince() time.Time {
	var t time.Time
	s.state.read(func(st *state) { t = st.lastSeen })
	return t
}

// Close stops any pending airport lookup.
func (s *Session) Close() {
	if s.lookup != nil {
		s.lookup.Stop()
	}
}

// FilterPatch lists the filter fields to change. Nil fields are left alone.
type FilterPatch struct {
	TripMode      *filter.TripMode
	CabinClass    *string
	DepartureDate *string
	ReturnDate    *string
}

// UpdateFilters applies every field in the patch or none of them. Field
// failures are aggregated into a single *domain.ValidationError.
func (s *Session) UpdateFilters(p FilterPatch) error {
	return s.state.write(func(st *state) error {
		next := st.filters
		var errs []error
		if p.TripMode != nil {
			errs = append(errs, next.SetTripMode(*p.TripMode))
		}
		if p.CabinClass != nil {
			errs = append(errs, next.SetCabinClass(*p.CabinClass))
		}
		if p.DepartureDate != nil {
			errs = append(errs, next.SetDepartureDate(*p.DepartureDate))
		}
		if p.ReturnDate != nil {
			errs = append(errs, next.SetReturnDate(*p.ReturnDate))
		}
		if err := mergeValidation(errs); err != nil {
			return err
		}
		st.filters = next
		return nil
	})
}

// IncrementPassenger adds one passenger of the category and returns the
// updated counts.
func (s *Session) IncrementPassenger(cat passenger.Category) (passenger.Counts, error) {
	var counts passenger.Counts
	err := s.state.write(func(st *state) error {
		var err error
		counts, err = st.passengers.Increment(cat)
		return err
	})
	return counts, err
}

// DecrementPassenger removes one passenger of the category, never going
// below its floor, and returns the updated counts.
func (s *Session) DecrementPassenger(cat passenger.Category) (passenger.Counts, error) {
	var counts passenger.Counts
	err := s.state.write(func(st *state) error {
		var err error
		counts, err = st.passengers.Decrement(cat)
		return err
	})
	return counts, err
}

// QueueAirportQuery marks airport options as loading and schedules a lookup
// for query. It reports whether a pending lookup was superseded.
func (s *Session) QueueAirportQuery(query string) bool {
	_ = s.state.write(func(st *state) error {
		st.airportQuery = query
		st.airportsLoading = true
		return nil
	})
	if s.lookup == nil {
		return false
	}
	return s.lookup.Schedule(query)
}

// ApplyAirportOptions stores the outcome of a lookup and clears the loading
// flag. On error the previous options are dropped.
func (s *Session) ApplyAirportOptions(options []filter.AirportOption, err error) {
	_ = s.state.write(func(st *state) error {
		st.airportsLoading = false
		st.airportErr = err
		if err != nil {
			st.airportOptions = nil
			return nil
		}
		st.airportOptions = slices.Clone(options)
		return nil
	})
}

// SelectOrigin sets the origin from the currently loaded airport options.
func (s *Session) SelectOrigin(label string) (filter.AirportRef, error) {
	var ref filter.AirportRef
	err := s.state.write(func(st *state) error {
		err := st.filters.SelectOrigin(label, st.airportOptions)
		ref = st.filters.Origin
		return err
	})
	return ref, err
}

// SelectDestination sets the destination from the currently loaded airport
// options.
func (s *Session) SelectDestination(label string) (filter.AirportRef, error) {
	var ref filter.AirportRef
	err := s.state.write(func(st *state) error {
		err := st.filters.SelectDestination(label, st.airportOptions)
		ref = st.filters.Destination
		return err
	})
	return ref, err
}

// Submission is a search handed to the flights API.
type Submission struct {
	Query      filter.Query
	Generation uint64
}

// BeginSearch snapshots the filters, validates the query and marks results
// as loading. Overlapping submissions are allowed; each one gets a new
// generation.
func (s *Session) BeginSearch() (Submission, error) {
	var sub Submission
	err := s.state.write(func(st *state) error {
		q := st.filters.Snapshot()
		if err := q.Validate(); err != nil {
			return err
		}
		st.generation++
		st.loading = true
		st.lastQuery = &q
		sub = Submission{Query: q, Generation: st.generation}
		return nil
	})
	return sub, err
}

// Outcome is the result of one flight search. Generation and Query identify
// the submission it answers.
type Outcome struct {
	Generation uint64
	Query      filter.Query
	Results    []itinerary.Summary
	Skipped    int
	Err        error
	At         time.Time
}

// CompleteSearch records a finished search. The latest completion always
// overwrites results, whatever its generation, and the results carry that
// completion's generation and query. The loading flag follows the most
// recent submission only.
func (s *Session) CompleteSearch(o Outcome) {
	_ = s.state.write(func(st *state) error {
		if o.Generation == st.generation {
			st.loading = false
		}
		q := o.Query
		st.resultsGeneration = o.Generation
		st.resultsQuery = &q
		st.completedAt = o.At
		st.fetchErr = o.Err
		st.skipped = o.Skipped
		if o.Err != nil {
			st.results = nil
			return nil
		}
		st.results = slices.Clone(o.Results)
		if st.results == nil {
			st.results = []itinerary.Summary{}
		}
		return nil
	})
}

// View is a read-only snapshot of a session.
type View struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time

	Filters        filter.State
	PassengerTotal int

	AirportQuery    string
	AirportOptions  []filter.AirportOption
	AirportsLoading bool
	AirportErr      error

	// Generation and LastQuery describe the most recent submission.
	Loading    bool
	Generation uint64
	LastQuery  *filter.Query

	// ResultsGeneration and ResultsQuery describe the submission whose
	// completion produced Results, Skipped and FetchErr.
	ResultsGeneration uint64
	ResultsQuery      *filter.Query
	Results           []itinerary.Summary
	Skipped           int
	FetchErr          error
	CompletedAt       time.Time
}

// Searched reports whether at least one search has completed.
func (v View) Searched() bool { return !v.CompletedAt.IsZero() }

// View returns a snapshot of the session that is safe to use after further
// mutations.
func (s *Session) View() View {
	v := View{ID: s.id, CreatedAt: s.createdAt}
	s.state.read(func(st *state) {
		v.LastSeen = st.lastSeen
		v.Filters = st.filters
		v.PassengerTotal = st.passengers.Total()
		v.AirportQuery = st.airportQuery
		v.AirportOptions = slices.Clone(st.airportOptions)
		v.AirportsLoading = st.airportsLoading
		v.AirportErr = st.airportErr
		v.Loading = st.loading
		v.Generation = st.generation
		if st.lastQuery != nil {
			q := *st.lastQuery
			v.LastQuery = &q
		}
		v.ResultsGeneration = st.resultsGeneration
		if st.resultsQuery != nil {
			q := *st.resultsQuery
			v.ResultsQuery = &q
		}
		v.Results = slices.Clone(st.results)
		v.Skipped = st.skipped
		v.FetchErr = st.fetchErr
		v.CompletedAt = st.completedAt
	})
	return v
}

// mergeValidation folds field errors from several setters into one
// ValidationError. Non-validation errors are joined as-is.
func mergeValidation(errs []error) error {
	merged := &domain.ValidationError{Fields: map[string]string{}}
	var other []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			other = append(other, err)
			continue
		}
		maps.Copy(merged.Fields, verr.Fields)
		if verr.Cause != nil && merged.Cause == nil {
			merged.Cause = verr.Cause
		}
	}
	if len(other) > 0 {
		if len(merged.Fields) > 0 {
			other = append(other, merged)
		}
		return errors.Join(other...)
	}
	if len(merged.Fields) == 0 {
		return nil
	}
	return merged
}
