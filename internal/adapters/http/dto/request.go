package dto

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/skysearch/internal/app/session"
	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
)

const (
	msgMustNotEmpty = "must not be empty"

	// maxAirportQueryLen bounds the free-text airport query in runes.
	maxAirportQueryLen = 100
)

// UpdateFiltersRequest represents the JSON body for changing search filters.
// All fields are optional; nil means "do not change this field.".
type UpdateFiltersRequest struct {
	TripMode      *string `json:"trip_mode,omitempty"`
	CabinClass    *string `json:"cabin_class,omitempty"`
	DepartureDate *string `json:"departure_date,omitempty"`
	ReturnDate    *string `json:"return_date,omitempty"`
}

// Validate checks that at least one field is present and that none of the
// provided fields is blank. Value checks happen in the domain.
func (r *UpdateFiltersRequest) Validate() error {
	if r.TripMode == nil && r.CabinClass == nil && r.DepartureDate == nil && r.ReturnDate == nil {
		return domain.NewFieldError("body", "at least one filter field is required")
	}

	fields := make(map[string]string)
	for name, v := range map[string]*string{
		"trip_mode":      r.TripMode,
		"cabin_class":    r.CabinClass,
		"departure_date": r.DepartureDate,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			fields[name] = msgMustNotEmpty
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request into a session filter patch. An empty
// return_date clears the stored return date.
func (r *UpdateFiltersRequest) ToPatch() session.FilterPatch {
	p := session.FilterPatch{
		CabinClass:    r.CabinClass,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
	}
	if r.TripMode != nil {
		mode := filter.TripMode(strings.TrimSpace(*r.TripMode))
		p.TripMode = &mode
	}
	return p
}

// AirportQueryRequest represents one keystroke's worth of airport search text.
type AirportQueryRequest struct {
	Query string `json:"query"`
}

// Validate bounds the query length. A blank query is allowed and clears the
// loaded options.
func (r *AirportQueryRequest) Validate() error {
	if utf8.RuneCountInString(r.Query) > maxAirportQueryLen {
		return domain.NewFieldError("query", "must be at most 100 characters")
	}
	return nil
}

// SelectAirportRequest represents the JSON body for picking an origin or
// destination by its display label.
type SelectAirportRequest struct {
	Label string `json:"label"`
}

// Validate checks that the label is present.
func (r *SelectAirportRequest) Validate() error {
	if strings.TrimSpace(r.Label) == "" {
		return domain.NewFieldError("label", domain.MsgRequired)
	}
	return nil
}
