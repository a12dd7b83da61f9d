// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/skysearch/internal/app/debounce"
	"github.com/jsamuelsen11/skysearch/internal/app/session"
	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/itinerary"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
	"github.com/jsamuelsen11/skysearch/internal/platform/clock"
	"github.com/jsamuelsen11/skysearch/internal/ports"
)

// Compile-time check that SearchService implements ports.SearchService.
var _ ports.SearchService = (*SearchService)(nil)

// SearchConfig holds the tunables of the search service.
type SearchConfig struct {
	// DebounceDelay is the quiet window before an airport lookup fires.
	DebounceDelay time.Duration
	// TimeLayout renders departure and arrival times in results.
	TimeLayout string
	// Defaults are the filters of a new session.
	Defaults filter.Defaults
	// MinAdults is the lowest adult count a decrement can reach.
	MinAdults int
	// LookupTimeout bounds one airport lookup.
	LookupTimeout time.Duration
	// SearchTimeout bounds one flight search.
	SearchTimeout time.Duration
}

// Option configures optional SearchService collaborators.
type Option func(*SearchService)

// WithMetrics records domain events on m.
func WithMetrics(m SearchMetrics) Option {
	return func(s *SearchService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithIDGenerator replaces the session ID generator. The default produces
// random UUIDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *SearchService) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// SearchService implements ports.SearchService. It owns no state of its own:
// sessions live in the Store, airport lookups are debounced per session, and
// flight searches run in the background and write their outcome back to the
// session that submitted them.
type SearchService struct {
	store    *session.Store
	airports ports.AirportClient
	flights  ports.FlightClient
	clock    clock.Clock
	cfg      SearchConfig
	logger   *slog.Logger
	metrics  SearchMetrics
	newID    func() string

	// baseCtx is canceled by Shutdown to abort background requests.
	baseCtx context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// NewSearchService creates a SearchService. A nil logger discards output.
func NewSearchService(
	store *session.Store,
	airports ports.AirportClient,
	flights ports.FlightClient,
	clk clock.Clock,
	cfg SearchConfig,
	logger *slog.Logger,
	opts ...Option,
) *SearchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = itinerary.DefaultTimeLayout
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &SearchService{
		store:    store,
		airports: airports,
		flights:  flights,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
		metrics:  noopMetrics{},
		newID:    uuid.NewString,
		baseCtx:  ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession starts a session with the configured default filters.
func (s *SearchService) CreateSession(ctx context.Context) (session.View, error) {
	var passengerOpts []passenger.Option
	if s.cfg.MinAdults > 0 {
		passengerOpts = append(passengerOpts, passenger.WithMinimum(passenger.CategoryAdults, s.cfg.MinAdults))
	}

	sess := session.New(session.Params{
		ID:               s.newID(),
		Now:              s.clock.Now(),
		Defaults:         s.cfg.Defaults,
		PassengerOptions: passengerOpts,
	})
	sess.BindLookup(debounce.New(s.clock, s.cfg.DebounceDelay, func(query string) {
		s.lookupAirports(sess, query)
	}))

	if err := s.store.Add(sess); err != nil {
		s.logger.ErrorContext(ctx, "failed to register session",
			slog.String("operation", "CreateSession"),
			slog.String("session_id", sess.ID()),
			slog.Any("error", err),
		)
		return session.View{}, err
	}

	s.logger.InfoContext(ctx, "session created", slog.String("session_id", sess.ID()))
	return sess.View(), nil
}

// GetSession returns a snapshot of the session.
func (s *SearchService) GetSession(ctx context.Context, id string) (session.View, error) {
	sess, err := s.session(ctx, "GetSession", id)
	if err != nil {
		return session.View{}, err
	}
	return sess.View(), nil
}

// DeleteSession ends a session and cancels its pending lookup.
func (s *SearchService) DeleteSession(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting session", slog.String("session_id", id))

	if err := s.store.Delete(id); err != nil {
		s.logger.WarnContext(ctx, "session not deleted",
			slog.String("operation", "DeleteSession"),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// UpdateFilters applies a partial filter change atomically.
func (s *SearchService) UpdateFilters(ctx context.Context, id string, patch session.FilterPatch) (session.View, error) {
	sess, err := s.session(ctx, "UpdateFilters", id)
	if err != nil {
		return session.View{}, err
	}

	if err := sess.UpdateFilters(patch); err != nil {
		s.logger.InfoContext(ctx, "filter update rejected",
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return session.View{}, err
	}
	return sess.View(), nil
}

// IncrementPassenger adds one passenger of the category.
func (s *SearchService) IncrementPassenger(ctx context.Context, id string, cat passenger.Category) (passenger.Counts, error) {
	sess, err := s.session(ctx, "IncrementPassenger", id)
	if err != nil {
		return passenger.Counts{}, err
	}
	return sess.IncrementPassenger(cat)
}

// DecrementPassenger removes one passenger of the category.
func (s *SearchService) DecrementPassenger(ctx context.Context, id string, cat passenger.Category) (passenger.Counts, error) {
	sess, err := s.session(ctx, "DecrementPassenger", id)
	if err != nil {
		return passenger.Counts{}, err
	}
	return sess.DecrementPassenger(cat)
}

// QueueAirportQuery flags the session's airport options as loading and
// (re)arms the debounced lookup.
func (s *SearchService) QueueAirportQuery(ctx context.Context, id, query string) error {
	sess, err := s.session(ctx, "QueueAirportQuery", id)
	if err != nil {
		return err
	}

	if sess.QueueAirportQuery(query) {
		s.metrics.KeystrokeSuperseded(ctx)
	}
	s.logger.DebugContext(ctx, "airport lookup queued",
		slog.String("session_id", id),
		slog.String("query", query),
	)
	return nil
}

// SelectOrigin picks the origin from the loaded airport options.
func (s *SearchService) SelectOrigin(ctx context.Context, id, label string) (filter.AirportRef, error) {
	sess, err := s.session(ctx, "SelectOrigin", id)
	if err != nil {
		return filter.AirportRef{}, err
	}
	return sess.SelectOrigin(label)
}

// SelectDestination picks the destination from the loaded airport options.
func (s *SearchService) SelectDestination(ctx context.Context, id, label string) (filter.AirportRef, error) {
	sess, err := s.session(ctx, "SelectDestination", id)
	if err != nil {
		return filter.AirportRef{}, err
	}
	return sess.SelectDestination(label)
}

// Submit snapshots the filters and starts a flight search in the
// background. The returned query is the exact snapshot sent downstream.
// Overlapping submissions are not de-duplicated.
func (s *SearchService) Submit(ctx context.Context, id string) (filter.Query, error) {
	sess, err := s.session(ctx, "Submit", id)
	if err != nil {
		return filter.Query{}, err
	}

	if !s.track() {
		return filter.Query{}, fmt.Errorf("service shutting down: %w", domain.ErrUnavailable)
	}

	sub, err := sess.BeginSearch()
	if err != nil {
		s.inflight.Done()
		s.logger.InfoContext(ctx, "search rejected",
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return filter.Query{}, err
	}

	s.metrics.SearchSubmitted(ctx)
	s.logger.InfoContext(ctx, "search submitted",
		slog.String("session_id", id),
		slog.Uint64("generation", sub.Generation),
		slog.String("query", sub.Query.Key()),
	)

	go s.runSearch(context.WithoutCancel(ctx), sess, sub)
	return sub.Query, nil
}

// Shutdown cancels background lookups and searches, waits for searches to
// finish writing back, and closes every session.
func (s *SearchService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	var waitErr error
	select {
	case <-done:
	case <-ctx.Done():
		waitErr = fmt.Errorf("waiting for in-flight searches: %w", ctx.Err())
	}

	return errors.Join(waitErr, s.store.Shutdown(ctx))
}

// track registers a background search unless the service is shutting down.
func (s *SearchService) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.inflight.Add(1)
	return true
}

func (s *SearchService) session(ctx context.Context, op, id string) (*session.Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		s.logger.InfoContext(ctx, "session lookup failed",
			slog.String("operation", op),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return sess, nil
}

// lookupAirports runs when the debounce window for a session elapses.
func (s *SearchService) lookupAirports(sess *session.Session, query string) {
	ctx, cancel := s.backgroundContext(s.baseCtx, s.cfg.LookupTimeout)
	defer cancel()

	if strings.TrimSpace(query) == "" {
		sess.ApplyAirportOptions(nil, nil)
		return
	}

	s.metrics.LookupDispatched(ctx)
	options, err := s.airports.SearchAirports(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to look up airports",
			slog.String("operation", "SearchAirports"),
			slog.String("session_id", sess.ID()),
			slog.String("query", query),
			slog.Any("error", err),
		)
	}
	sess.ApplyAirportOptions(options, err)
}

func (s *SearchService) runSearch(ctx context.Context, sess *session.Session, sub session.Submission) {
	defer s.inflight.Done()

	ctx, cancel := s.backgroundContext(ctx, s.cfg.SearchTimeout)
	defer cancel()

	records, err := s.flights.SearchFlights(ctx, sub.Query)
	s.metrics.SearchCompleted(ctx, err)
	if err != nil {
		if !errors.Is(err, domain.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		s.logger.ErrorContext(ctx, "failed to search flights",
			slog.String("operation", "SearchFlights"),
			slog.String("session_id", sess.ID()),
			slog.Uint64("generation", sub.Generation),
			slog.Any("error", err),
		)
		sess.CompleteSearch(session.Outcome{Generation: sub.Generation, Query: sub.Query, Err: err, At: s.clock.Now()})
		return
	}

	summaries, skipped := itinerary.FormatFlights(records, s.cfg.TimeLayout)
	for _, rerr := range skipped {
		s.logger.WarnContext(ctx, "skipping malformed flight record",
			slog.String("session_id", sess.ID()),
			slog.Int("index", rerr.Index),
			slog.String("itinerary_id", rerr.ID),
			slog.Any("error", rerr.Err),
		)
	}
	if len(skipped) > 0 {
		s.metrics.RecordsSkipped(ctx, len(skipped))
	}

	sess.CompleteSearch(session.Outcome{
		Generation: sub.Generation,
		Query:      sub.Query,
		Results:    summaries,
		Skipped:    len(skipped),
		At:         s.clock.Now(),
	})
	s.logger.InfoContext(ctx, "search completed",
		slog.String("session_id", sess.ID()),
		slog.Uint64("generation", sub.Generation),
		slog.Int("results", len(summaries)),
	)
}

// backgroundContext bounds parent by timeout and ties it to the service
// lifetime so that Shutdown aborts outstanding calls.
func (s *SearchService) backgroundContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	stop := context.AfterFunc(s.baseCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
