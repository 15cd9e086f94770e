package clean

import (
	"fmt"
	"log"
	"strings"

	"github.com/zeebo/xxh3"

	"dataprep/internal/metrics"
	"dataprep/internal/table"
)

// Dedup collapses rows that share the same values in the key columns,
// keeping the last occurrence. Rows with a missing key cell are never
// deduplicated and keep their original positions relative to each other.
// The stage is optional and off unless keys are configured.
type Dedup struct {
	Keys []string
}

func (Dedup) Name() string { return "dedup_rows" }

// keyOf hashes the joined key cells. Cell values are stabilized through
// fmt.Sprint so coerced types (time.Time, numbers) key consistently.
func (s Dedup) keyOf(r table.Row) (uint64, bool) {
	var b strings.Builder
	for i, k := range s.Keys {
		v, exists := r[k]
		if !exists || v == nil {
			return 0, false
		}
		if i > 0 {
			b.WriteByte('\x1f')
		}
		switch t := v.(type) {
		case string:
			b.WriteString(t)
		default:
			b.WriteString(fmt.Sprint(t))
		}
	}
	return xxh3.HashString(b.String()), true
}

func (s Dedup) Apply(t *table.Table) {
	if len(s.Keys) == 0 || t.Len() == 0 {
		return
	}
	for _, k := range s.Keys {
		if !t.HasColumn(k) {
			log.Printf("warning: dedup key %q not found in table; skipping de-duplication", k)
			return
		}
	}

	// Last occurrence wins: remember the winning index per key, then filter.
	last := make(map[uint64]int, t.Len())
	for i, r := range t.Rows() {
		if h, ok := s.keyOf(r); ok {
			last[h] = i
		}
	}
	i := -1
	dropped := t.Filter(func(r table.Row) bool {
		i++
		h, ok := s.keyOf(r)
		if !ok {
			return true
		}
		return last[h] == i
	})
	metrics.RecordRows(s.Name(), "deduped", int64(dropped))
	if dropped > 0 {
		log.Printf("dropped %d duplicate rows by key (%s)", dropped, strings.Join(s.Keys, ","))
	}
}
