// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"context"
	"errors"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/app/session"
	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/itinerary"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// AirportRefResponse identifies a selected airport.
type AirportRefResponse struct {
	SkyID    string `json:"sky_id"`
	EntityID string `json:"entity_id"`
}

// ToAirportRefResponse converts a domain reference. A zero reference yields
// nil so unselected airports serialize as null.
func ToAirportRefResponse(ref filter.AirportRef) *AirportRefResponse {
	if ref.IsZero() {
		return nil
	}
	return &AirportRefResponse{SkyID: ref.SkyID, EntityID: ref.EntityID}
}

// PassengersResponse carries per-category counts and their total.
type PassengersResponse struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Total    int `json:"total"`
}

// ToPassengersResponse converts domain passenger counts.
func ToPassengersResponse(c passenger.Counts) PassengersResponse {
	return PassengersResponse{
		Adults:   c.Adults,
		Children: c.Children,
		Infants:  c.Infants,
		Total:    c.Total(),
	}
}

// FiltersResponse represents the current filter selections of a session.
type FiltersResponse struct {
	TripMode      string              `json:"trip_mode"`
	CabinClass    string              `json:"cabin_class"`
	Origin        *AirportRefResponse `json:"origin"`
	Destination   *AirportRefResponse `json:"destination"`
	DepartureDate string              `json:"departure_date,omitempty"`
	ReturnDate    string              `json:"return_date,omitempty"`
	Passengers    PassengersResponse  `json:"passengers"`
}

// AirportOptionResponse is one selectable airport.
type AirportOptionResponse struct {
	Label    string             `json:"label"`
	Title    string             `json:"title,omitempty"`
	Subtitle string             `json:"subtitle,omitempty"`
	Ref      AirportRefResponse `json:"ref"`
}

// AirportsResponse represents the airport lookup state of a session.
type AirportsResponse struct {
	Query   string                  `json:"query"`
	Loading bool                    `json:"loading"`
	Options []AirportOptionResponse `json:"options"`
	Error   string                  `json:"error,omitempty"`
}

// SearchStatusResponse summarizes the search lifecycle of a session.
type SearchStatusResponse struct {
	Loading     bool   `json:"loading"`
	Generation  uint64 `json:"generation"`
	Searched    bool   `json:"searched"`
	ResultCount int    `json:"result_count"`
}

// SessionResponse represents a search session in HTTP responses.
type SessionResponse struct {
	ID        string               `json:"id"`
	CreatedAt string               `json:"created_at"`
	Filters   FiltersResponse      `json:"filters"`
	Airports  AirportsResponse     `json:"airports"`
	Search    SearchStatusResponse `json:"search"`
}

// ToSessionResponse converts a session snapshot to an HTTP response DTO.
func ToSessionResponse(v *session.View) SessionResponse {
	return SessionResponse{
		ID:        v.ID,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		Filters:   ToFiltersResponse(&v.Filters),
		Airports:  ToAirportsResponse(v),
		Search: SearchStatusResponse{
			Loading:     v.Loading,
			Generation:  v.Generation,
			Searched:    v.Searched(),
			ResultCount: len(v.Results),
		},
	}
}

// ToFiltersResponse converts the domain filter state.
func ToFiltersResponse(s *filter.State) FiltersResponse {
	return FiltersResponse{
		TripMode:      s.TripMode.String(),
		CabinClass:    s.CabinClass.String(),
		Origin:        ToAirportRefResponse(s.Origin),
		Destination:   ToAirportRefResponse(s.Destination),
		DepartureDate: s.DepartureDate,
		ReturnDate:    s.ReturnDate,
		Passengers:    ToPassengersResponse(s.Passengers),
	}
}

// ToAirportsResponse converts the airport lookup part of a session snapshot.
// Options is always a JSON array, never null.
func ToAirportsResponse(v *session.View) AirportsResponse {
	opts := make([]AirportOptionResponse, len(v.AirportOptions))
	for i, o := range v.AirportOptions {
		opts[i] = AirportOptionResponse{
			Label:    o.Label,
			Title:    o.Title,
			Subtitle: o.Subtitle,
			Ref:      AirportRefResponse{SkyID: o.Ref.SkyID, EntityID: o.Ref.EntityID},
		}
	}
	resp := AirportsResponse{
		Query:   v.AirportQuery,
		Loading: v.AirportsLoading,
		Options: opts,
	}
	if v.AirportErr != nil {
		resp.Error = UpstreamErrorCode(v.AirportErr, CodeLookupFailed)
	}
	return resp
}

// Stable codes reported for failed background calls to the flights API. The
// underlying cause is logged, never returned.
const (
	CodeLookupFailed        = "lookup_failed"
	CodeFetchFailed         = "fetch_failed"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeUpstreamTimeout     = "upstream_timeout"
	CodeUpstreamRejected    = "upstream_rejected"
)

// UpstreamErrorCode classifies a failed flights API call. Errors matching no
// more specific class yield fallback.
func UpstreamErrorCode(err error, fallback string) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CodeUpstreamTimeout
	case errors.Is(err, domain.ErrUnavailable):
		return CodeUpstreamUnavailable
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrValidation):
		return CodeUpstreamRejected
	default:
		return fallback
	}
}

// QueryResponse is the immutable query snapshot sent to the flights API.
type QueryResponse struct {
	TripMode      string              `json:"trip_mode"`
	CabinClass    string              `json:"cabin_class"`
	Origin        *AirportRefResponse `json:"origin"`
	Destination   *AirportRefResponse `json:"destination"`
	DepartureDate string              `json:"departure_date"`
	ReturnDate    string              `json:"return_date,omitempty"`
	Passengers    PassengersResponse  `json:"passengers"`
}

// ToQueryResponse converts a domain query snapshot.
func ToQueryResponse(q *filter.Query) QueryResponse {
	return QueryResponse{
		TripMode:      q.TripMode.String(),
		CabinClass:    q.CabinClass.String(),
		Origin:        ToAirportRefResponse(q.Origin),
		Destination:   ToAirportRefResponse(q.Destination),
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		Passengers:    ToPassengersResponse(q.Passengers),
	}
}

// FlightResponse is one display-ready flight summary.
type FlightResponse struct {
	ID          string `json:"id"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Stops       int    `json:"stops"`
}

// ToFlightResponse converts a domain summary.
func ToFlightResponse(s *itinerary.Summary) FlightResponse {
	return FlightResponse{
		ID:          s.ID,
		Duration:    s.Duration,
		Price:       s.Price,
		Departure:   s.Departure,
		Arrival:     s.Arrival,
		Origin:      s.Origin,
		Destination: s.Destination,
		Stops:       s.Stops,
	}
}

// ResultsResponse represents the latest search outcome of a session.
// Searched is false until the first search completes; Error is set when the
// latest completed fetch failed, which is distinct from zero results.
//
// Generation and Query identify the search that produced Results. While a
// newer search is loading, PendingQuery and SubmittedGeneration describe it.
type ResultsResponse struct {
	Loading             bool             `json:"loading"`
	Searched            bool             `json:"searched"`
	Generation          uint64           `json:"generation"`
	SubmittedGeneration uint64           `json:"submitted_generation"`
	Query               *QueryResponse   `json:"query,omitempty"`
	PendingQuery        *QueryResponse   `json:"pending_query,omitempty"`
	Results             []FlightResponse `json:"results"`
	Count               int              `json:"count"`
	Skipped             int              `json:"skipped"`
	Error               string           `json:"error,omitempty"`
	CompletedAt         string           `json:"completed_at,omitempty"`
}

// ToResultsResponse converts the results part of a session snapshot.
func ToResultsResponse(v *session.View) ResultsResponse {
	items := make([]FlightResponse, len(v.Results))
	for i := range v.Results {
		items[i] = ToFlightResponse(&v.Results[i])
	}
	resp := ResultsResponse{
		Loading:             v.Loading,
		Searched:            v.Searched(),
		Generation:          v.ResultsGeneration,
		SubmittedGeneration: v.Generation,
		Results:             items,
		Count:               len(items),
		Skipped:             v.Skipped,
	}
	if v.ResultsQuery != nil {
		q := ToQueryResponse(v.ResultsQuery)
		resp.Query = &q
	}
	if v.Loading && v.LastQuery != nil {
		q := ToQueryResponse(v.LastQuery)
		resp.PendingQuery = &q
	}
	if v.FetchErr != nil {
		resp.Error = UpstreamErrorCode(v.FetchErr, CodeFetchFailed)
	}
	if v.Searched() {
		resp.CompletedAt = v.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

// SubmitResponse acknowledges an accepted search.
type SubmitResponse struct {
	Status string        `json:"status"`
	Query  QueryResponse `json:"query"`
}

// PassengerCategoryResponse describes one passenger category.
type PassengerCategoryResponse struct {
	Category    string `json:"category"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// PassengerCategoryListResponse lists the passenger categories in display
// order.
type PassengerCategoryListResponse struct {
	Categories []PassengerCategoryResponse `json:"categories"`
	Count      int                         `json:"count"`
}

// ToPassengerCategoryListResponse converts the domain category catalogue.
func ToPassengerCategoryListResponse(ds []passenger.Descriptor) PassengerCategoryListResponse {
	items := make([]PassengerCategoryResponse, len(ds))
	for i, d := range ds {
		items[i] = PassengerCategoryResponse{
			Category:    d.Category.String(),
			Label:       d.Label,
			Description: d.Description,
		}
	}
	return PassengerCategoryListResponse{Categories: items, Count: len(items)}
}
