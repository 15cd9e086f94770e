package clean

import (
	"reflect"
	"testing"

	"dataprep/internal/table"
)

/*
TestName verifies header canonicalization:

  - surrounding whitespace trimmed
  - space, hyphen, slash, backslash, and dot become underscore
  - underscore runs collapse to one
  - result is lowercase
  - total (never errors, empty in -> empty out) and idempotent
*/
func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"  Sale Date  ", "sale_date"},
		{"First-Name", "first_name"},
		{"a/b\\c.d", "a_b_c_d"},
		{"weird -- header", "weird_header"},
		{"Already_Fine", "already_fine"},
		{"___", "_"},
		{"", ""},
		{"Total $ (USD)", "total_$_(usd)"},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// Idempotence: normalizing a normalized name is a no-op.
		if got := Name(Name(tt.in)); got != tt.want {
			t.Errorf("Name(Name(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeHeaders(t *testing.T) {
	tb := table.New([]string{" First Name ", "Sale-Date", "AMOUNT"})
	tb.AppendRow([]any{"a", "b", "c"})

	NormalizeHeaders{}.Apply(tb)

	want := []string{"first_name", "sale_date", "amount"}
	if !reflect.DeepEqual(tb.Columns(), want) {
		t.Fatalf("columns = %v, want %v", tb.Columns(), want)
	}
	if v := tb.Rows()[0]["first_name"]; v != "a" {
		t.Errorf("first_name = %v, want \"a\"", v)
	}
}

func TestAutoDetectDateColumns(t *testing.T) {
	tests := []struct {
		name string
		cols []string
		want []string
	}{
		{
			name: "markers_match",
			cols: []string{"id", "sale_date", "created_at", "updated_by", "event_time", "name"},
			want: []string{"sale_date", "created_at", "updated_by", "event_time"},
		},
		{
			// "time" matches inside "runtime" as well; the loose substring
			// match is intended.
			name: "substring_match",
			cols: []string{"runtime", "dated"},
			want: []string{"runtime", "dated"},
		},
		{
			name: "no_matches",
			cols: []string{"id", "name", "amount"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoDetectDateColumns(tt.cols); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AutoDetectDateColumns(%v) = %v, want %v", tt.cols, got, tt.want)
			}
		})
	}
}
