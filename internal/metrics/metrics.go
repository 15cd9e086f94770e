// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the cleaning pipeline.
//
// A global, pluggable backend defaults to a no-op implementation, so metric
// calls are always safe even when no real backend is configured. Concrete
// metric systems live in subpackages (e.g. prompush for a Prometheus
// Pushgateway) and the rest of the codebase depends only on this interface.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a latency/duration style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it (e.g. Pushgateway).
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStage records the duration of one pipeline stage.
func RecordStage(stage string, d time.Duration) {
	backend.ObserveHistogram("dataprep_stage_duration_seconds", d.Seconds(), Labels{
		"stage": stage,
	})
}

// RecordRows increments a row-level counter for a stage.
//
// Typical kinds mirror the stage deltas the pipeline logs, e.g.:
//   - "loaded", "skipped"
//   - "dropped_empty", "dropped_any", "dropped_thresh"
//   - "filled"
//   - "parsed", "unparseable"
//   - "deduped"
//   - "exported"
func RecordRows(stage, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("dataprep_rows_total", float64(delta), Labels{
		"stage": stage,
		"kind":  kind,
	})
}
