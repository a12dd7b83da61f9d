package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/skysearch/internal/adapters/http"
	"github.com/jsamuelsen11/skysearch/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/skysearch/internal/app/session"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
	"github.com/jsamuelsen11/skysearch/mocks"
)

const routerSessionID = "5f1d7c3e-8a2b-4c6d-9e0f-1a2b3c4d5e6f"

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockSearchService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockSearchService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewSessionHandler(svc),
		handlers.NewCatalogHandler(),
		handlers.NewHealthHandler(registry),
		middlewares...,
	)
	return router, svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/passenger-categories"},
		{http.MethodPost, "/api/v1/sessions"},
		{http.MethodGet, "/api/v1/sessions/{id}"},
		{http.MethodDelete, "/api/v1/sessions/{id}"},
		{http.MethodPatch, "/api/v1/sessions/{id}/filters"},
		{http.MethodPost, "/api/v1/sessions/{id}/passengers/{category}/increment"},
		{http.MethodPost, "/api/v1/sessions/{id}/passengers/{category}/decrement"},
		{http.MethodPost, "/api/v1/sessions/{id}/airports/query"},
		{http.MethodGet, "/api/v1/sessions/{id}/airports"},
		{http.MethodPut, "/api/v1/sessions/{id}/origin"},
		{http.MethodPut, "/api/v1/sessions/{id}/destination"},
		{http.MethodPost, "/api/v1/sessions/{id}/search"},
		{http.MethodGet, "/api/v1/sessions/{id}/results"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, _, registry := newTestRouter(t, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationGetSession(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	svc.EXPECT().GetSession(mock.Anything, routerSessionID).Return(session.View{
		ID:        routerSessionID,
		CreatedAt: now,
		LastSeen:  now,
		Filters:   filter.NewState(filter.Defaults{}),
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+routerSessionID, nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_IntegrationPassengerCategoryParam(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)

	svc.EXPECT().IncrementPassenger(mock.Anything, routerSessionID, passenger.CategoryInfants).
		Return(passenger.Counts{Adults: 1, Infants: 1}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/sessions/"+routerSessionID+"/passengers/infants/increment", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
