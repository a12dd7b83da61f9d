package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/skysearch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/ports"
)

const statusAccepted = "accepted"

// SessionHandler handles HTTP requests for flight-search sessions: filters,
// passengers, airport lookup and selection, search submission and results.
type SessionHandler struct {
	svc ports.SearchService
}

// NewSessionHandler creates a new SessionHandler with the given service port.
func NewSessionHandler(svc ports.SearchService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// CreateSession handles POST /api/v1/sessions.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.CreateSession(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+v.ID)
	writeJSON(w, http.StatusCreated, dto.ToSessionResponse(&v))
}

// GetSession handles GET /api/v1/sessions/{id}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetSession(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(&v))
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSession(r.Context(), sessionID(r)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateFilters handles PATCH /api/v1/sessions/{id}/filters.
func (h *SessionHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFiltersRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.svc.UpdateFilters(r.Context(), sessionID(r), req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFiltersResponse(&v.Filters))
}

// IncrementPassenger handles
// POST /api/v1/sessions/{id}/passengers/{category}/increment.
func (h *SessionHandler) IncrementPassenger(w http.ResponseWriter, r *http.Request) {
	cat, err := parseCategory(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	counts, err := h.svc.IncrementPassenger(r.Context(), sessionID(r), cat)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPassengersResponse(counts))
}

// DecrementPassenger handles
// POST /api/v1/sessions/{id}/passengers/{category}/decrement.
func (h *SessionHandler) DecrementPassenger(w http.ResponseWriter, r *http.Request) {
	cat, err := parseCategory(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	counts, err := h.svc.DecrementPassenger(r.Context(), sessionID(r), cat)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPassengersResponse(counts))
}

// QueueAirportQuery handles POST /api/v1/sessions/{id}/airports/query.
// The lookup runs after the debounce window, so the response is 202.
func (h *SessionHandler) QueueAirportQuery(w http.ResponseWriter, r *http.Request) {
	var req dto.AirportQueryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.QueueAirportQuery(r.Context(), sessionID(r), req.Query); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": statusAccepted})
}

// GetAirports handles GET /api/v1/sessions/{id}/airports.
func (h *SessionHandler) GetAirports(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetSession(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAirportsResponse(&v))
}

// SelectOrigin handles PUT /api/v1/sessions/{id}/origin.
func (h *SessionHandler) SelectOrigin(w http.ResponseWriter, r *http.Request) {
	h.selectAirport(w, r, h.svc.SelectOrigin)
}

// SelectDestination handles PUT /api/v1/sessions/{id}/destination.
func (h *SessionHandler) SelectDestination(w http.ResponseWriter, r *http.Request) {
	h.selectAirport(w, r, h.svc.SelectDestination)
}

type selectFunc func(ctx context.Context, id, label string) (filter.AirportRef, error)

func (h *SessionHandler) selectAirport(w http.ResponseWriter, r *http.Request, sel selectFunc) {
	var req dto.SelectAirportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ref, err := sel(r.Context(), sessionID(r), req.Label)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAirportRefResponse(ref))
}

// Submit handles POST /api/v1/sessions/{id}/search. The search runs in the
// background; poll the results endpoint for the outcome.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	q, err := h.svc.Submit(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+id+"/results")
	writeJSON(w, http.StatusAccepted, dto.SubmitResponse{
		Status: statusAccepted,
		Query:  dto.ToQueryResponse(&q),
	})
}

// GetResults handles GET /api/v1/sessions/{id}/results.
func (h *SessionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetSession(r.Context(), sessionID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToResultsResponse(&v))
}
