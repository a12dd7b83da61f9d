package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/skysearch/internal/app/session"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

const testSessionID = "0b6c8f52-4a57-4a43-9d0e-3f8f1d0f5a11"

var testTime = time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validView() session.View {
	return session.View{
		ID:             testSessionID,
		CreatedAt:      testTime,
		LastSeen:       testTime,
		Filters:        filter.NewState(filter.Defaults{}),
		PassengerTotal: 1,
	}
}

func validQuery() filter.Query {
	return filter.Query{
		TripMode:      filter.TripModeRoundTrip,
		CabinClass:    filter.CabinEconomy,
		Origin:        filter.AirportRef{SkyID: "LHR", EntityID: "95565050"},
		Destination:   filter.AirportRef{SkyID: "JFK", EntityID: "95565058"},
		DepartureDate: "2026-11-02",
		ReturnDate:    "2026-11-09",
		Passengers:    passenger.DefaultCounts(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
