// Package config defines the canonical, JSON-serializable job model for the
// cleaning pipeline. A Job can be decoded from a file and/or assembled from
// command-line flags; it is intentionally small and explicit so it passes
// through the program without additional glue code.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Job describes one cleaning run end to end.
type Job struct {
	// Inputs are the CSV source paths, read and concatenated in order.
	// Entries of the form "@list.txt" are expanded from a line-based list
	// file before loading.
	Inputs []string `json:"inputs"`

	// Output is the destination: an .xlsx path, an .sqlite/.db path, or a
	// postgres:// DSN.
	Output string `json:"output"`

	// Table names the destination table for database outputs.
	Table string `json:"table,omitempty"`

	// DateCols lists columns to coerce to dates. Names are normalized
	// before matching. Empty means auto-detect by header substring.
	DateCols []string `json:"date_cols,omitempty"`

	// Rename is the raw "Old:New,Old2:New2" specification string.
	Rename string `json:"rename,omitempty"`

	// FillNA, when set, replaces every remaining missing cell with the
	// literal value, applied as-is to all columns. A pointer distinguishes
	// "not configured" from filling with the empty string.
	FillNA *string `json:"fillna,omitempty"`

	// DropAny drops rows containing at least one missing value.
	DropAny bool `json:"dropna_any,omitempty"`

	// DropThresh, when > 0, drops rows with fewer than this many
	// non-missing values.
	DropThresh int `json:"dropna_thresh,omitempty"`

	// DedupKeys, when set, collapses duplicate rows by these key columns
	// (last occurrence wins) after missing-value resolution.
	DedupKeys []string `json:"dedup_keys,omitempty"`

	// Delimiter is the CSV field delimiter; default ','.
	Delimiter string `json:"delimiter,omitempty"`

	// LazyQuotes tolerates unescaped quotes in the inputs.
	LazyQuotes bool `json:"lazy_quotes,omitempty"`

	// Verbose enables per-stage detail logging.
	Verbose bool `json:"verbose,omitempty"`
}

// Load decodes a Job from a JSON file.
func Load(path string) (Job, error) {
	var j Job
	b, err := os.ReadFile(path)
	if err != nil {
		return j, fmt.Errorf("read job file: %w", err)
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return j, fmt.Errorf("decode job file %s: %w", path, err)
	}
	return j, nil
}
