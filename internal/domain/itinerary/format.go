package itinerary

import (
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/domain"
)

// DefaultTimeLayout renders clock times the way en-US locales do
// (for example "8:05:00 PM").
const DefaultTimeLayout = "3:04:05 PM"

// timestampLayouts are the timestamp formats the flights API is known to
// return, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// RecordError reports why the record at Index could not be formatted.
// Err always wraps domain.ErrMalformedRecord.
type RecordError struct {
	Index int
	ID    string
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.ID, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}

// FormatDuration renders a duration in minutes as "<hours> hr <minutes> min".
// Negative durations are rendered with a leading minus sign.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		return "-" + FormatDuration(-minutes)
	}
	return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
}

// FormatTime parses an API timestamp and renders its wall-clock time using
// layout. Timestamps without a zone are rendered as given. An empty layout
// uses DefaultTimeLayout.
func FormatTime(ts, layout string) (string, error) {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	for _, l := range timestampLayouts {
		t, err := time.Parse(l, ts)
		if err == nil {
			return t.Format(layout), nil
		}
	}
	return "", fmt.Errorf("parsing timestamp %q: unrecognized format", ts)
}

// FormatFlights converts raw itineraries into summaries, preserving input
// order. Records that cannot be formatted are skipped and reported as
// RecordErrors instead of being rendered with blank fields. An empty input
// yields an empty, non-nil slice.
func FormatFlights(records []Itinerary, layout string) ([]Summary, []RecordError) {
	summaries := make([]Summary, 0, len(records))
	var skipped []RecordError

	for i := range records {
		s, err := Format(&records[i], layout)
		if err != nil {
			skipped = append(skipped, RecordError{Index: i, ID: records[i].ID, Err: err})
			continue
		}
		summaries = append(summaries, s)
	}

	return summaries, skipped
}

// Format summarizes the first leg of a single itinerary.
func Format(it *Itinerary, layout string) (Summary, error) {
	if len(it.Legs) == 0 {
		return Summary{}, fmt.Errorf("no legs: %w", domain.ErrMalformedRecord)
	}
	leg := it.Legs[0]

	departure, depErr := FormatTime(leg.Departure, layout)
	arrival, arrErr := FormatTime(leg.Arrival, layout)
	if err := errors.Join(depErr, arrErr); err != nil {
		return Summary{}, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}

	return Summary{
		ID:          it.ID,
		Duration:    FormatDuration(leg.DurationInMinutes),
		Price:       it.Price.Formatted,
		Departure:   departure,
		Arrival:     arrival,
		Origin:      leg.Origin.Name,
		Destination: leg.Destination.Name,
		Stops:       stops(leg),
	}, nil
}

// stops derives the stop count from the segment list. The API's own
// stopCount is used when no segments were returned.
func stops(leg Leg) int {
	if len(leg.Segments) == 0 {
		return max(0, leg.StopCount)
	}
	return len(leg.Segments) - 1
}
