package config

import (
	"fmt"
	"strings"

	"dataprep/internal/export"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that blocks execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding that is surfaced but does not
	// block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding for a Job. Path is a dotted
// path into the config (e.g. "output", "inputs[2]").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where convenient.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static validation of a Job. It touches no files; path
// existence is checked by the caller right before loading. Callers decide
// whether warnings are fatal.
func Validate(j Job) []Issue {
	var issues []Issue

	if len(j.Inputs) == 0 {
		issues = append(issues, Issue{SeverityError, "inputs", "at least one input file is required"})
	}
	for idx, in := range j.Inputs {
		if strings.TrimSpace(in) == "" {
			issues = append(issues, Issue{SeverityError, fmt.Sprintf("inputs[%d]", idx), "input path must not be empty"})
		}
	}

	if _, err := export.Detect(j.Output); err != nil {
		issues = append(issues, Issue{SeverityError, "output", err.Error()})
	}

	if j.DropThresh < 0 {
		issues = append(issues, Issue{SeverityError, "dropna_thresh", "threshold must not be negative"})
	}
	if j.DropAny && j.FillNA != nil {
		issues = append(issues, Issue{SeverityWarning, "fillna",
			"dropna_any removes every missing value before filling, so fillna has no effect"})
	}
	if j.DropAny && j.DropThresh > 0 {
		issues = append(issues, Issue{SeverityWarning, "dropna_thresh",
			"dropna_any already removes all rows with missing values; the threshold is redundant"})
	}

	for idx, k := range j.DedupKeys {
		if strings.TrimSpace(k) == "" {
			issues = append(issues, Issue{SeverityError, fmt.Sprintf("dedup_keys[%d]", idx), "dedup key must not be empty"})
		}
	}

	if n := len([]rune(j.Delimiter)); n > 1 {
		issues = append(issues, Issue{SeverityError, "delimiter", "delimiter must be a single character"})
	}

	return issues
}
