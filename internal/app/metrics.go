package app

import "context"

// SearchMetrics records domain events of the search service. Implemented by
// telemetry.SearchMetrics; nil-safe no-op by default.
type SearchMetrics interface {
	LookupDispatched(ctx context.Context)
	KeystrokeSuperseded(ctx context.Context)
	SearchSubmitted(ctx context.Context)
	SearchCompleted(ctx context.Context, err error)
	RecordsSkipped(ctx context.Context, n int)
}

type noopMetrics struct{}

func (noopMetrics) LookupDispatched(context.Context)       {}
func (noopMetrics) KeystrokeSuperseded(context.Context)    {}
func (noopMetrics) SearchSubmitted(context.Context)        {}
func (noopMetrics) SearchCompleted(context.Context, error) {}
func (noopMetrics) RecordsSkipped(context.Context, int)    {}
