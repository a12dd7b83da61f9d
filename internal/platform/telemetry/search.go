package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// SearchMetrics counts search-session events: debounced airport lookups,
// keystrokes absorbed by the debounce window, submitted searches and their
// outcome, and flight records dropped as malformed.
type SearchMetrics struct {
	lookups    metric.Int64Counter
	superseded metric.Int64Counter
	submitted  metric.Int64Counter
	completed  metric.Int64Counter
	skipped    metric.Int64Counter
}

// NewSearchMetrics registers the search instruments on mp.
func NewSearchMetrics(mp metric.MeterProvider, serviceName string) (*SearchMetrics, error) {
	meter := newMeter(mp, serviceName)

	lookups, err := meter.Int64Counter(
		"search.airport_lookup.total",
		metric.WithDescription("Airport lookups dispatched after the debounce window"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating search.airport_lookup.total: %w", err)
	}

	superseded, err := meter.Int64Counter(
		"search.keystroke.superseded",
		metric.WithDescription("Pending airport lookups replaced by a newer keystroke"),
		metric.WithUnit("{keystroke}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating search.keystroke.superseded: %w", err)
	}

	submitted, err := meter.Int64Counter(
		"search.submitted.total",
		metric.WithDescription("Flight searches submitted"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating search.submitted.total: %w", err)
	}

	completed, err := meter.Int64Counter(
		"search.completed.total",
		metric.WithDescription("Flight searches completed, by result"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating search.completed.total: %w", err)
	}

	skipped, err := meter.Int64Counter(
		"search.records.skipped",
		metric.WithDescription("Flight records skipped because they could not be formatted"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating search.records.skipped: %w", err)
	}

	return &SearchMetrics{
		lookups:    lookups,
		superseded: superseded,
		submitted:  submitted,
		completed:  completed,
		skipped:    skipped,
	}, nil
}

// LookupDispatched counts an airport lookup sent after the debounce window.
func (m *SearchMetrics) LookupDispatched(ctx context.Context) {
	m.lookups.Add(ctx, 1)
}

// KeystrokeSuperseded counts a pending lookup replaced by a newer keystroke.
func (m *SearchMetrics) KeystrokeSuperseded(ctx context.Context) {
	m.superseded.Add(ctx, 1)
}

// SearchSubmitted counts an accepted flight search submission.
func (m *SearchMetrics) SearchSubmitted(ctx context.Context) {
	m.submitted.Add(ctx, 1)
}

// SearchCompleted records the outcome of a search: "success" or "error".
func (m *SearchMetrics) SearchCompleted(ctx context.Context, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.completed.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// RecordsSkipped adds n malformed itinerary records dropped from results.
func (m *SearchMetrics) RecordsSkipped(ctx context.Context, n int) {
	m.skipped.Add(ctx, int64(n))
}
