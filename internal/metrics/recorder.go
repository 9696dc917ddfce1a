package metrics

import "time"

// OutcomeLabel enumerates render outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	// OutcomeInvalid means the configuration failed to load or validate.
	OutcomeInvalid OutcomeLabel = "invalid"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for config renders.
type Recorder interface {
	ObserveRenderDuration(d time.Duration)
	IncRenderOutcome(outcome OutcomeLabel)
	IncArtifact(format string, written bool)
	IncReload()
	SetLastSuccess(t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(time.Duration) {}
func (NoopRecorder) IncRenderOutcome(OutcomeLabel)       {}
func (NoopRecorder) IncArtifact(string, bool)            {}
func (NoopRecorder) IncReload()                          {}
func (NoopRecorder) SetLastSuccess(time.Time)            {}
