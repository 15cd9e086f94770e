package clean

import (
	"reflect"
	"testing"

	"dataprep/internal/table"
)

func TestParseRenameSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want map[string]string
	}{
		{
			name: "two_pairs",
			spec: "Old Name:new_name,Amount:total",
			want: map[string]string{"old_name": "new_name", "amount": "total"},
		},
		{
			name: "spaces_around_pairs",
			spec: " A : x , B : y ",
			want: map[string]string{"a": "x", "b": "y"},
		},
		{
			// A pair without a colon is skipped, the rest still applies.
			name: "invalid_pair_skipped",
			spec: "nocolon,Good:ok",
			want: map[string]string{"good": "ok"},
		},
		{
			name: "empty_spec",
			spec: "   ",
			want: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRenameSpec(tt.spec); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRenameSpec(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestRenameApply(t *testing.T) {
	tests := []struct {
		name    string
		cols    []string
		mapping map[string]string
		want    []string
	}{
		{
			name:    "applies_matching_keys",
			cols:    []string{"old_name", "amount"},
			mapping: map[string]string{"old_name": "name", "missing": "x"},
			want:    []string{"name", "amount"},
		},
		{
			// Renaming onto an existing column would break header
			// uniqueness; the mapping entry is skipped.
			name:    "collision_skipped",
			cols:    []string{"a", "b"},
			mapping: map[string]string{"a": "b"},
			want:    []string{"a", "b"},
		},
		{
			name:    "empty_mapping_noop",
			cols:    []string{"a"},
			mapping: nil,
			want:    []string{"a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := table.New(tt.cols)
			tb.AppendRow(make([]any, len(tt.cols)))
			Rename{Mapping: tt.mapping}.Apply(tb)
			if !reflect.DeepEqual(tb.Columns(), tt.want) {
				t.Errorf("columns = %v, want %v", tb.Columns(), tt.want)
			}
		})
	}
}
