package filter

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// requireValidationField asserts err is a *domain.ValidationError carrying
// the given field.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestQuery_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(q *Query)
		field  string
	}{
		{name: "missing origin", mutate: func(q *Query) { q.Origin = AirportRef{} }, field: "origin"},
		{name: "missing destination", mutate: func(q *Query) { q.Destination = AirportRef{} }, field: "destination"},
		{name: "same origin and destination", mutate: func(q *Query) { q.Destination = q.Origin }, field: "destination"},
		{name: "missing departure", mutate: func(q *Query) { q.DepartureDate = "" }, field: "departure_date"},
		{name: "round-trip without return", mutate: func(q *Query) { q.ReturnDate = "" }, field: "return_date"},
		{name: "return before departure", mutate: func(q *Query) { q.ReturnDate = "2026-10-01" }, field: "return_date"},
		{name: "no passengers", mutate: func(q *Query) { q.Passengers = passenger.Counts{} }, field: "passengers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := readyState(t)
			q := s.Snapshot()
			tt.mutate(&q)
			requireValidationField(t, q.Validate(), tt.field)
		})
	}

	t.Run("complete query is valid", func(t *testing.T) {
		t.Parallel()
		s := readyState(t)
		if err := s.Snapshot().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestQuery_Key(t *testing.T) {
	t.Parallel()

	s := readyState(t)
	a := s.Snapshot()
	b := s.Snapshot()
	if a.Key() != b.Key() {
		t.Errorf("equal queries produced different keys: %q vs %q", a.Key(), b.Key())
	}

	s.MergePassengers(passenger.Counts{Adults: 2})
	if c := s.Snapshot(); c.Key() == a.Key() {
		t.Errorf("different passenger counts produced the same key %q", a.Key())
	}
}
