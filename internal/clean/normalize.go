package clean

import (
	"log"
	"strings"

	"dataprep/internal/table"
)

// separators are the header characters rewritten to underscore.
var separators = strings.NewReplacer(
	" ", "_",
	"-", "_",
	"/", "_",
	"\\", "_",
	".", "_",
)

// Name canonicalizes a raw column header: trim, separators to underscore,
// collapse underscore runs, lowercase. Total and idempotent.
func Name(s string) string {
	s = strings.TrimSpace(s)
	s = separators.Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.ToLower(s)
}

// NormalizeHeaders rewrites every column name through Name. It runs first in
// the chain so that all later stages see canonical keys.
type NormalizeHeaders struct{}

func (NormalizeHeaders) Name() string { return "normalize_headers" }

func (NormalizeHeaders) Apply(t *table.Table) {
	collisions := t.MapColumns(Name)
	for _, c := range collisions {
		log.Printf("warning: headers collide on %q after normalization; suffixing duplicates", c)
	}
	debugf("normalized %d column names", len(t.Columns()))
}

// dateNameMarkers drive auto-detection of date columns by header substring.
// "time" also matches words like "runtime"; the loose match is kept on
// purpose for compatibility with existing datasets.
var dateNameMarkers = []string{"date", "time", "created", "updated"}

// AutoDetectDateColumns returns the normalized column names that look like
// date columns. Used only when the caller supplied no explicit list.
func AutoDetectDateColumns(cols []string) []string {
	var out []string
	for _, c := range cols {
		lc := strings.ToLower(c)
		for _, m := range dateNameMarkers {
			if strings.Contains(lc, m) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
