// Package itinerary models raw flight records returned by the flights API
// and formats them into display-ready summaries.
package itinerary

import "slices"

// Place is an airport or city referenced by a leg.
type Place struct {
	ID          string
	Name        string
	DisplayCode string
	City        string
}

// Segment is a single flight within a leg.
type Segment struct {
	FlightNumber string
	Origin       Place
	Destination  Place
	Departure    string
	Arrival      string
}

// Leg is one direction of an itinerary (outbound or return).
type Leg struct {
	ID                string
	Origin            Place
	Destination       Place
	DurationInMinutes int
	StopCount         int
	Departure         string
	Arrival           string
	Carriers          []string
	Segments          []Segment
}

// Price is the itinerary price, both machine-readable and formatted for
// display by the API.
type Price struct {
	Raw       float64
	Formatted string
}

// Itinerary is a raw flight record as returned by the flights API.
type Itinerary struct {
	ID    string
	Price Price
	Legs  []Leg
}

// Summary is the display-ready form of an Itinerary. Only the first leg is
// summarized.
type Summary struct {
	ID          string
	Duration    string
	Price       string
	Departure   string
	Arrival     string
	Origin      string
	Destination string
	Stops       int
}

// Clone returns a deep copy of the itinerary.
func (it Itinerary) Clone() Itinerary {
	legs := make([]Leg, len(it.Legs))
	for i, l := range it.Legs {
		l.Carriers = slices.Clone(l.Carriers)
		l.Segments = slices.Clone(l.Segments)
		legs[i] = l
	}
	it.Legs = legs
	return it
}

// CloneAll deep-copies a slice of itineraries. A nil slice stays nil.
func CloneAll(its []Itinerary) []Itinerary {
	if its == nil {
		return nil
	}
	out := make([]Itinerary, len(its))
	for i, it := range its {
		out[i] = it.Clone()
	}
	return out
}
