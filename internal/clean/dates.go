package clean

import (
	"log"
	"strings"
	"time"

	"dataprep/internal/metrics"
	"dataprep/internal/table"
)

// DateLayouts are common date formats without a time component.
var DateLayouts = []string{
	"2006-01-02",  // ISO
	"02.01.2006",  // DMY dot
	"01.02.2006",  // MDY dot
	"02/01/2006",  // DMY slash
	"01/02/2006",  // MDY slash
	"2 Jan 2006",  // DMY textual day
	"02-Jan-2006", // DMY dash textual month
	"2006/01/02",  // ISO slashy
	"20060102",    // basic ISO
}

// TimestampLayouts are common formats with a time component.
var TimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006/01/02 15:04:05",
	"02/01/2006 15:04:05", // DMY
	"01/02/2006 15:04:05", // MDY
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05 -0700",
}

// ParseDate attempts a best-effort parse of s against the timestamp layouts
// first, then the date layouts. ok is false when nothing matched.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range TimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CoerceDates converts the designated columns to time.Time values, cell by
// cell. A column absent from the table is warned about and skipped. A cell
// that fails to parse becomes nil (missing), never an error: failure is per
// cell, not per column. Cells that already hold non-string values pass
// through unchanged.
type CoerceDates struct {
	Columns []string
}

func (CoerceDates) Name() string { return "coerce_dates" }

func (s CoerceDates) Apply(t *table.Table) {
	for _, col := range s.Columns {
		if !t.HasColumn(col) {
			log.Printf("warning: date column %q not found in table", col)
			continue
		}
		var parsed, failed int64
		for _, r := range t.Rows() {
			v := r[col]
			if v == nil {
				continue
			}
			str, isStr := v.(string)
			if !isStr {
				continue
			}
			if ts, ok := ParseDate(str); ok {
				r[col] = ts
				parsed++
			} else {
				r[col] = nil
				failed++
			}
		}
		metrics.RecordRows(s.Name(), "parsed", parsed)
		metrics.RecordRows(s.Name(), "unparseable", failed)
		if failed > 0 {
			log.Printf("warning: %d value(s) in column %q did not parse as dates and became missing", failed, col)
		}
		debugf("parsed dates in column %q (%d ok, %d failed)", col, parsed, failed)
	}
}
