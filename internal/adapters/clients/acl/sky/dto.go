package sky

import "encoding/json"

// Envelope carries the fields every Sky-Scrapper response shares. Status is
// false when the API rejected the request but still answered 200.
type Envelope struct {
	Status  *bool           `json:"status"`
	Message json.RawMessage `json:"message,omitempty"`
}

// --- Airport lookup (GET /api/v1/flights/searchAirport) ---

// AirportListResponseDTO is the downstream response for an airport lookup.
type AirportListResponseDTO struct {
	Envelope
	Data []AirportDTO `json:"data"`
}

// AirportDTO is a single airport or city suggestion.
type AirportDTO struct {
	SkyID        string          `json:"skyId"`
	EntityID     string          `json:"entityId"`
	Presentation PresentationDTO `json:"presentation"`
	Navigation   NavigationDTO   `json:"navigation"`
}

// PresentationDTO holds the display strings for a suggestion.
type PresentationDTO struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

// NavigationDTO holds the localized name used as the selection label and the
// identifiers to pass back to the flights search.
type NavigationDTO struct {
	EntityID             string          `json:"entityId"`
	EntityType           string          `json:"entityType"`
	LocalizedName        string          `json:"localizedName"`
	RelevantFlightParams FlightParamsDTO `json:"relevantFlightParams"`
}

// FlightParamsDTO mirrors the top-level identifiers inside navigation.
type FlightParamsDTO struct {
	SkyID           string `json:"skyId"`
	EntityID        string `json:"entityId"`
	FlightPlaceType string `json:"flightPlaceType"`
	LocalizedName   string `json:"localizedName"`
}

// --- Flight search (GET /api/v2/flights/searchFlights) ---

// FlightSearchResponseDTO is the downstream response for a flight search.
// Data is nil when the API found nothing.
type FlightSearchResponseDTO struct {
	Envelope
	Data *FlightSearchDataDTO `json:"data"`
}

// FlightSearchDataDTO wraps the itinerary list.
type FlightSearchDataDTO struct {
	Context     SearchContextDTO `json:"context"`
	Itineraries []ItineraryDTO   `json:"itineraries"`
}

// SearchContextDTO reports whether the downstream search finished.
type SearchContextDTO struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
}

// ItineraryDTO is one bookable option.
type ItineraryDTO struct {
	ID    string   `json:"id"`
	Price PriceDTO `json:"price"`
	Legs  []LegDTO `json:"legs"`
}

// PriceDTO is the itinerary price.
type PriceDTO struct {
	Raw       float64 `json:"raw"`
	Formatted string  `json:"formatted"`
}

// LegDTO is one direction of an itinerary.
type LegDTO struct {
	ID                string       `json:"id"`
	Origin            PlaceDTO     `json:"origin"`
	Destination       PlaceDTO     `json:"destination"`
	DurationInMinutes int          `json:"durationInMinutes"`
	StopCount         int          `json:"stopCount"`
	Departure         string       `json:"departure"`
	Arrival           string       `json:"arrival"`
	Carriers          CarriersDTO  `json:"carriers"`
	Segments          []SegmentDTO `json:"segments"`
}

// PlaceDTO is an airport referenced by a leg.
type PlaceDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayCode string `json:"displayCode"`
	City        string `json:"city"`
}

// CarriersDTO lists the airlines marketing a leg.
type CarriersDTO struct {
	Marketing []CarrierDTO `json:"marketing"`
}

// CarrierDTO is a single airline.
type CarrierDTO struct {
	Name string `json:"name"`
}

// SegmentDTO is a single flight within a leg.
type SegmentDTO struct {
	ID           string          `json:"id"`
	Origin       SegmentPlaceDTO `json:"origin"`
	Destination  SegmentPlaceDTO `json:"destination"`
	Departure    string          `json:"departure"`
	Arrival      string          `json:"arrival"`
	FlightNumber string          `json:"flightNumber"`
}

// SegmentPlaceDTO is an airport referenced by a segment.
type SegmentPlaceDTO struct {
	FlightPlaceID string `json:"flightPlaceId"`
	DisplayCode   string `json:"displayCode"`
	Name          string `json:"name"`
}
