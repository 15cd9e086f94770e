// Package clean contains the ordered cleaning stages applied to a working
// table: header normalization, renaming, string trimming, date coercion,
// missing-value resolution, and optional de-duplication.
//
// Each stage is a small struct implementing Stage, mirroring the transformer
// chain pattern: stages mutate the table in place and never fail. Anything
// that goes wrong inside a stage (an unmatched rename, an unparseable date
// cell) is a recoverable condition: it is logged, counted, and processing
// continues with the unaffected data.
package clean

import (
	"log"
	"time"

	"dataprep/internal/metrics"
	"dataprep/internal/table"
)

// Stage is one in-place table transformation.
type Stage interface {
	// Name identifies the stage in logs and metrics.
	Name() string
	Apply(t *table.Table)
}

// Chain is an ordered list of stages.
type Chain []Stage

// Apply runs every stage in order, timing each for the metrics backend.
func (c Chain) Apply(t *table.Table) {
	for _, s := range c {
		start := time.Now()
		s.Apply(t)
		metrics.RecordStage(s.Name(), time.Since(start))
	}
}

// Verbose enables per-stage detail logging across the package.
var Verbose bool

func debugf(format string, a ...any) {
	if Verbose {
		log.Printf(format, a...)
	}
}
