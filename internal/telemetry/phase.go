package telemetry

import (
	"context"
	"time"
)

// Phases tracks the scan's metrics collector and emits a span plus a
// PhaseMetrics observation for each call to StartPhase. A nil *Phases is
// valid and records nothing, so callers that don't care about telemetry
// (unit tests, library embedders) can pass one without extra branching.
type Phases struct {
	Metrics *PhaseMetrics
}

// StartPhase opens a span named phase and returns an end func that records
// both the span's completion and the phase's duration in Metrics. Pass the
// operation's error (possibly nil) to end so the span reflects failure.
func (p *Phases) StartPhase(ctx context.Context, phase string) (context.Context, func(error)) {
	start := time.Now()
	spanCtx, span := Tracer().Start(ctx, phase)
	return spanCtx, func(err error) {
		HandleError(span, err)
		span.End()
		if p != nil && p.Metrics != nil {
			p.Metrics.Observe(phase, time.Since(start))
		}
	}
}
