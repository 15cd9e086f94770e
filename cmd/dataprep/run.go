package main

import (
	"fmt"
	"log"
	"strings"

	"dataprep/internal/clean"
	"dataprep/internal/config"
	"dataprep/internal/table"
)

// runClean executes the cleaning stages over the loaded table, in order:
// normalize headers, rename, trim, coerce dates, resolve missing values,
// and optionally dedup. Stages themselves never fail; anything that still
// escapes (a bug) is caught and reported as a processing failure rather
// than a crash, matching the pipeline's fatal-vs-recoverable split.
func runClean(t *table.Table, job config.Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline panic: %v", r)
		}
	}()

	// Headers must be canonical before date columns can be matched or
	// detected, so normalization runs ahead of the rest of the chain.
	clean.Chain{clean.NormalizeHeaders{}}.Apply(t)

	dateCols := make([]string, 0, len(job.DateCols))
	for _, c := range job.DateCols {
		dateCols = append(dateCols, clean.Name(c))
	}
	if len(dateCols) == 0 {
		if dateCols = clean.AutoDetectDateColumns(t.Columns()); len(dateCols) > 0 {
			log.Printf("auto-detected date columns: %s", strings.Join(dateCols, ", "))
		} else {
			log.Printf("no date columns provided or auto-detected")
		}
	}

	resolve := clean.ResolveMissing{
		DropAny:   job.DropAny,
		MinNonNil: job.DropThresh,
	}
	if job.FillNA != nil {
		resolve.Fill = *job.FillNA
		resolve.HasFill = true
	}

	chain := clean.Chain{
		clean.Rename{Mapping: clean.ParseRenameSpec(job.Rename)},
		clean.TrimStrings{},
		clean.CoerceDates{Columns: dateCols},
		resolve,
	}
	if len(job.DedupKeys) > 0 {
		keys := make([]string, 0, len(job.DedupKeys))
		for _, k := range job.DedupKeys {
			keys = append(keys, clean.Name(k))
		}
		chain = append(chain, clean.Dedup{Keys: keys})
	}

	chain.Apply(t)
	return nil
}
