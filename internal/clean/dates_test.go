package clean

import (
	"testing"
	"time"

	"dataprep/internal/table"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
		want   time.Time
	}{
		{"2024-01-02", true, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2024/01/02", true, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"20240102", true, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2 Jan 2024", true, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2024-01-02 13:45:00", true, time.Date(2024, 1, 2, 13, 45, 0, 0, time.UTC)},
		{"2024-01-02T13:45:00Z", true, time.Date(2024, 1, 2, 13, 45, 0, 0, time.UTC)},
		{"  2024-01-02  ", true, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"not-a-date", false, time.Time{}},
		{"", false, time.Time{}},
		{"2024-13-40", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

/*
TestCoerceDates verifies per-cell best-effort coercion:

  - parseable strings become time.Time
  - unparseable strings become nil (missing), never an error
  - nil and non-string cells pass through
  - a column missing from the table is skipped entirely
*/
func TestCoerceDates(t *testing.T) {
	tb := table.New([]string{"created_at", "note"})
	tb.AppendRow([]any{"2024-01-01", "keep"})
	tb.AppendRow([]any{"not-a-date", "keep"})
	tb.AppendRow([]any{nil, nil})

	CoerceDates{Columns: []string{"created_at", "absent_col"}}.Apply(tb)

	rows := tb.Rows()
	if _, ok := rows[0]["created_at"].(time.Time); !ok {
		t.Errorf("row 0 created_at = %v (%T), want time.Time", rows[0]["created_at"], rows[0]["created_at"])
	}
	if rows[1]["created_at"] != nil {
		t.Errorf("row 1 created_at = %v, want nil after failed parse", rows[1]["created_at"])
	}
	if rows[2]["created_at"] != nil {
		t.Errorf("row 2 created_at = %v, want nil", rows[2]["created_at"])
	}
	// Untargeted column untouched.
	if rows[0]["note"] != "keep" {
		t.Errorf("note = %v, want \"keep\"", rows[0]["note"])
	}
	if tb.Len() != 3 {
		t.Errorf("row count = %d, want 3 (coercion never drops rows)", tb.Len())
	}
}

func TestCoerceDatesNonStringPassThrough(t *testing.T) {
	ts := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	tb := table.New([]string{"d"})
	tb.AppendRow([]any{ts})
	tb.AppendRow([]any{42})

	CoerceDates{Columns: []string{"d"}}.Apply(tb)

	if got := tb.Rows()[0]["d"]; got != ts {
		t.Errorf("time cell = %v, want unchanged %v", got, ts)
	}
	if got := tb.Rows()[1]["d"]; got != 42 {
		t.Errorf("int cell = %v, want unchanged 42", got)
	}
}
