package clean

import (
	"strings"

	"dataprep/internal/table"
)

// TrimStrings strips leading and trailing whitespace from every
// string-valued cell. Non-string cells are untouched; the row count never
// changes.
type TrimStrings struct{}

func (TrimStrings) Name() string { return "trim_strings" }

func (TrimStrings) Apply(t *table.Table) {
	changed := 0
	for _, r := range t.Rows() {
		for k, v := range r {
			if s, ok := v.(string); ok {
				if ts := strings.TrimSpace(s); ts != s {
					r[k] = ts
					changed++
				}
			}
		}
	}
	debugf("trimmed whitespace in %d cells", changed)
}
