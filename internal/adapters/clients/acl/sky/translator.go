// Package sky implements the Anti-Corruption Layer translators for the
// Sky-Scrapper flights API: airport suggestions, flight search parameters,
// and itinerary records.
package sky

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/skysearch/internal/domain/filter"
	"github.com/jsamuelsen11/skysearch/internal/domain/itinerary"
)

// Market is the request context the flights search requires alongside the
// user's filters.
type Market struct {
	Locale      string
	Market      string
	Currency    string
	CountryCode string
	SortBy      string
}

// Failed reports whether the API answered with an explicit status of false.
func (e Envelope) Failed() bool {
	return e.Status != nil && !*e.Status
}

// MessageText flattens the message field, which the API sends either as a
// string or as an arbitrary JSON value.
func (e Envelope) MessageText() string {
	raw := bytes.TrimSpace(e.Message)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// ToAirportOptions converts an airport lookup response into selectable
// options. Suggestions without a localized name are dropped since they
// cannot be selected by label.
func ToAirportOptions(dto AirportListResponseDTO) []filter.AirportOption {
	options := make([]filter.AirportOption, 0, len(dto.Data))
	for i := range dto.Data {
		a := &dto.Data[i]
		if a.Navigation.LocalizedName == "" {
			continue
		}
		title := a.Presentation.SuggestionTitle
		if title == "" {
			title = a.Presentation.Title
		}
		options = append(options, filter.AirportOption{
			Label:    a.Navigation.LocalizedName,
			Title:    title,
			Subtitle: a.Presentation.Subtitle,
			Ref:      airportRef(a),
		})
	}
	return options
}

// airportRef prefers the top-level identifiers and falls back to the ones
// nested under navigation.
func airportRef(a *AirportDTO) filter.AirportRef {
	ref := filter.AirportRef{SkyID: a.SkyID, EntityID: a.EntityID}
	if ref.SkyID == "" {
		ref.SkyID = a.Navigation.RelevantFlightParams.SkyID
	}
	if ref.EntityID == "" {
		ref.EntityID = a.Navigation.RelevantFlightParams.EntityID
	}
	if ref.EntityID == "" {
		ref.EntityID = a.Navigation.EntityID
	}
	return ref
}

// ToSearchParams builds the flights search query string. The return date is
// sent only for round trips; cabin class is lower-case.
func ToSearchParams(q filter.Query, m Market) url.Values {
	v := url.Values{}
	v.Set("originSkyId", q.Origin.SkyID)
	v.Set("destinationSkyId", q.Destination.SkyID)
	v.Set("originEntityId", q.Origin.EntityID)
	v.Set("destinationEntityId", q.Destination.EntityID)
	v.Set("date", q.DepartureDate)
	if q.TripMode == filter.TripModeRoundTrip && q.ReturnDate != "" {
		v.Set("returnDate", q.ReturnDate)
	}
	v.Set("cabinClass", strings.ToLower(q.CabinClass.String()))
	v.Set("adults", strconv.Itoa(q.Passengers.Adults))
	v.Set("childrens", strconv.Itoa(q.Passengers.Children))
	v.Set("infants", strconv.Itoa(q.Passengers.Infants))

	setIf(v, "sortBy", m.SortBy)
	setIf(v, "currency", m.Currency)
	setIf(v, "market", m.Market)
	setIf(v, "countryCode", m.CountryCode)
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// ToItineraries converts a flight search response into raw itinerary
// records. A missing data object yields an empty slice.
func ToItineraries(dto FlightSearchResponseDTO) []itinerary.Itinerary {
	if dto.Data == nil {
		return []itinerary.Itinerary{}
	}
	out := make([]itinerary.Itinerary, len(dto.Data.Itineraries))
	for i := range dto.Data.Itineraries {
		out[i] = toItinerary(&dto.Data.Itineraries[i])
	}
	return out
}

func toItinerary(dto *ItineraryDTO) itinerary.Itinerary {
	legs := make([]itinerary.Leg, len(dto.Legs))
	for i := range dto.Legs {
		legs[i] = toLeg(&dto.Legs[i])
	}
	return itinerary.Itinerary{
		ID:    dto.ID,
		Price: itinerary.Price{Raw: dto.Price.Raw, Formatted: dto.Price.Formatted},
		Legs:  legs,
	}
}

func toLeg(dto *LegDTO) itinerary.Leg {
	carriers := make([]string, 0, len(dto.Carriers.Marketing))
	for _, c := range dto.Carriers.Marketing {
		carriers = append(carriers, c.Name)
	}
	segments := make([]itinerary.Segment, len(dto.Segments))
	for i, s := range dto.Segments {
		segments[i] = itinerary.Segment{
			FlightNumber: s.FlightNumber,
			Origin:       segmentPlace(s.Origin),
			Destination:  segmentPlace(s.Destination),
			Departure:    s.Departure,
			Arrival:      s.Arrival,
		}
	}
	return itinerary.Leg{
		ID:                dto.ID,
		Origin:            toPlace(dto.Origin),
		Destination:       toPlace(dto.Destination),
		DurationInMinutes: dto.DurationInMinutes,
		StopCount:         dto.StopCount,
		Departure:         dto.Departure,
		Arrival:           dto.Arrival,
		Carriers:          carriers,
		Segments:          segments,
	}
}

func toPlace(p PlaceDTO) itinerary.Place {
	return itinerary.Place{ID: p.ID, Name: p.Name, DisplayCode: p.DisplayCode, City: p.City}
}

func segmentPlace(p SegmentPlaceDTO) itinerary.Place {
	return itinerary.Place{ID: p.FlightPlaceID, Name: p.Name, DisplayCode: p.DisplayCode}
}
