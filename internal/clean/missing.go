package clean

import (
	"log"

	"dataprep/internal/metrics"
	"dataprep/internal/table"
)

// ResolveMissing applies the missing-value policy in fixed sub-step order:
//
//  1. drop rows where every cell is missing (always)
//  2. drop rows with any missing cell (when DropAny)
//  3. drop rows with fewer than MinNonNil non-missing cells (when > 0)
//  4. fill remaining missing cells with Fill (when HasFill)
//
// Each sub-step logs its row-count delta. Absent configuration means no-op,
// never an error. Fill is applied as-is to every column, with no per-column
// type coercion; it holds whatever the caller passed (typically the raw
// string from the command line).
type ResolveMissing struct {
	DropAny   bool
	MinNonNil int
	Fill      any
	HasFill   bool
}

func (ResolveMissing) Name() string { return "resolve_missing" }

func (s ResolveMissing) Apply(t *table.Table) {
	if dropped := t.Filter(func(r table.Row) bool { return r.NonNil() > 0 }); dropped > 0 {
		metrics.RecordRows(s.Name(), "dropped_empty", int64(dropped))
		log.Printf("dropped %d rows that were entirely empty", dropped)
	}

	if s.DropAny {
		cols := len(t.Columns())
		dropped := t.Filter(func(r table.Row) bool { return r.NonNil() == cols })
		metrics.RecordRows(s.Name(), "dropped_any", int64(dropped))
		log.Printf("dropped %d rows with any missing values", dropped)
	}

	if s.MinNonNil > 0 {
		min := s.MinNonNil
		dropped := t.Filter(func(r table.Row) bool { return r.NonNil() >= min })
		metrics.RecordRows(s.Name(), "dropped_thresh", int64(dropped))
		log.Printf("dropped %d rows with less than %d non-null values", dropped, min)
	}

	if s.HasFill {
		var filled int64
		for _, r := range t.Rows() {
			for k, v := range r {
				if v == nil {
					r[k] = s.Fill
					filled++
				}
			}
		}
		metrics.RecordRows(s.Name(), "filled", filled)
		log.Printf("filled %d remaining missing values with: %v", filled, s.Fill)
	}
}
