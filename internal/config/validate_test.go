package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func severities(issues []Issue) (errors, warnings int) {
	for _, i := range issues {
		switch i.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return
}

/*
TestValidate exercises the static checks: required inputs, destination
shape, threshold sign, redundant policy combinations, dedup keys, and
delimiter width. Validation never touches the filesystem.
*/
func TestValidate(t *testing.T) {
	valid := Job{Inputs: []string{"a.csv"}, Output: "out.xlsx"}

	tests := []struct {
		name         string
		mutate       func(*Job)
		wantErrors   int
		wantWarnings int
	}{
		{"valid_job", func(*Job) {}, 0, 0},
		{"no_inputs", func(j *Job) { j.Inputs = nil }, 1, 0},
		{"blank_input", func(j *Job) { j.Inputs = []string{"a.csv", "  "} }, 1, 0},
		{"missing_output", func(j *Job) { j.Output = "" }, 1, 0},
		{"csv_output_rejected", func(j *Job) { j.Output = "out.csv" }, 1, 0},
		{"sqlite_output_ok", func(j *Job) { j.Output = "out.db" }, 0, 0},
		{"postgres_output_ok", func(j *Job) { j.Output = "postgres://u:p@h/db" }, 0, 0},
		{"negative_threshold", func(j *Job) { j.DropThresh = -1 }, 1, 0},
		{"fillna_with_dropany_warns", func(j *Job) { j.DropAny = true; j.FillNA = strPtr("0") }, 0, 1},
		{"thresh_with_dropany_warns", func(j *Job) { j.DropAny = true; j.DropThresh = 2 }, 0, 1},
		{"blank_dedup_key", func(j *Job) { j.DedupKeys = []string{"id", ""} }, 1, 0},
		{"multi_rune_delimiter", func(j *Job) { j.Delimiter = ";;" }, 1, 0},
		{"single_rune_delimiter_ok", func(j *Job) { j.Delimiter = "\t" }, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := valid
			tt.mutate(&j)
			errs, warns := severities(Validate(j))
			if errs != tt.wantErrors || warns != tt.wantWarnings {
				t.Errorf("Validate = %d errors / %d warnings, want %d / %d",
					errs, warns, tt.wantErrors, tt.wantWarnings)
			}
		})
	}
}

func TestIssueError(t *testing.T) {
	i := Issue{SeverityError, "output", "bad destination"}
	if got := i.Error(); !strings.Contains(got, "output") || !strings.Contains(got, "bad destination") {
		t.Errorf("Error() = %q, want path and message present", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.json")
	body := `{
  "inputs": ["a.csv", "@more.txt"],
  "output": "out.xlsx",
  "date_cols": ["sale_date"],
  "rename": "Old:new",
  "fillna": "0",
  "dropna_thresh": 2,
  "delimiter": ";",
  "verbose": true
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	j, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{"a.csv", "@more.txt"}; !reflect.DeepEqual(j.Inputs, want) {
		t.Errorf("Inputs = %v, want %v", j.Inputs, want)
	}
	if j.FillNA == nil || *j.FillNA != "0" {
		t.Errorf("FillNA = %v, want \"0\"", j.FillNA)
	}
	if j.DropThresh != 2 || j.Delimiter != ";" || !j.Verbose {
		t.Errorf("decoded job = %+v", j)
	}
}

func TestLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	os.WriteFile(path, []byte("{not json"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("Load of invalid JSON: want error, got nil")
	}
}
