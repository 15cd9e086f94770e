// Package dataset loads one or more CSV sources into a single working table.
package dataset

import (
	"context"
	"fmt"
	"log"

	"dataprep/internal/datasource/file"
	"dataprep/internal/metrics"
	csvparser "dataprep/internal/parser/csv"
	"dataprep/internal/table"
)

// Load reads every path independently and concatenates the resulting tables
// row-wise in input order. Column sets are matched by name; the loader does
// not try to reconcile genuinely incompatible inputs beyond the union concat
// the table provides. Any unreadable source fails the whole load, so a
// successful Load always read every input.
func Load(ctx context.Context, paths []string, opt csvparser.Options) (*table.Table, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files given")
	}

	parser := csvparser.NewParser(opt)

	var combined *table.Table
	for _, path := range paths {
		log.Printf("reading CSV: %s", path)
		t, skipped, err := readOne(ctx, parser, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		metrics.RecordRows("load", "loaded", int64(t.Len()))
		metrics.RecordRows("load", "skipped", int64(skipped))
		if skipped > 0 {
			log.Printf("warning: skipped %d unusable rows in %s", skipped, path)
		}
		if combined == nil {
			combined = t
		} else {
			combined.Concat(t)
		}
	}
	if len(paths) > 1 {
		log.Printf("concatenated %d files (%d rows)", len(paths), combined.Len())
	}
	return combined, nil
}

func readOne(ctx context.Context, parser *csvparser.Parser, path string) (*table.Table, int, error) {
	rc, err := file.NewLocal(path).Open(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer rc.Close()
	return parser.Parse(rc)
}
