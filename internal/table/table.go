// Package table holds the in-memory working table passed through the
// cleaning pipeline. A Table is an ordered list of column names plus
// row-major records; nil cell values mark missing data.
//
// The Table is a plain value under single ownership: each pipeline stage
// receives it, mutates it in place, and hands it to the next stage. Nothing
// here is safe for concurrent use, and nothing needs to be.
package table

import (
	"fmt"
)

// Row holds one record keyed by the current column names. A nil value is a
// missing cell. Every row in a Table carries exactly the Table's column set.
type Row map[string]any

// Table is a rectangular collection of named columns and aligned rows.
type Table struct {
	cols []string
	rows []Row
}

// New returns an empty Table with the given column order. The slice is
// copied so callers can reuse theirs.
func New(cols []string) *Table {
	t := &Table{cols: make([]string, len(cols))}
	copy(t.cols, cols)
	return t
}

// Columns returns the column names in order. The returned slice is the
// Table's own; treat it as read-only.
func (t *Table) Columns() []string { return t.cols }

// Len returns the row count.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the backing row slice for in-place stage mutation.
func (t *Table) Rows() []Row { return t.rows }

// HasColumn reports whether name is a current column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// AppendRow adds one positional record. Values beyond the column count are
// an error; missing trailing values become nil cells.
func (t *Table) AppendRow(vals []any) error {
	if len(vals) > len(t.cols) {
		return fmt.Errorf("table: row has %d values for %d columns", len(vals), len(t.cols))
	}
	r := make(Row, len(t.cols))
	for i, c := range t.cols {
		if i < len(vals) {
			r[c] = vals[i]
		} else {
			r[c] = nil
		}
	}
	t.rows = append(t.rows, r)
	return nil
}

// Concat appends every row of other to t, in order. Columns are matched by
// name; columns present only in other are added to t (existing rows get nil
// cells), and other's rows get nil cells for columns they lack. This mirrors
// a row-wise union concat.
func (t *Table) Concat(other *Table) {
	for _, c := range other.cols {
		if !t.HasColumn(c) {
			t.cols = append(t.cols, c)
			for _, r := range t.rows {
				r[c] = nil
			}
		}
	}
	for _, or := range other.rows {
		r := make(Row, len(t.cols))
		for _, c := range t.cols {
			if v, ok := or[c]; ok {
				r[c] = v
			} else {
				r[c] = nil
			}
		}
		t.rows = append(t.rows, r)
	}
}

// RenameColumn renames old to new in the header and every row. It reports
// whether old existed. Renaming onto an existing distinct column is refused;
// the caller decides how loudly to complain.
func (t *Table) RenameColumn(old, new string) (ok bool) {
	if old == new {
		return t.HasColumn(old)
	}
	idx := -1
	for i, c := range t.cols {
		if c == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	if t.HasColumn(new) {
		return false
	}
	t.cols[idx] = new
	for _, r := range t.rows {
		r[new] = r[old]
		delete(r, old)
	}
	return true
}

// MapColumns rewrites every column name through fn, keeping order. When two
// names collide after mapping, later columns get a numeric suffix (_2, _3,
// ...) so the header set stays unique; collisions are reported back.
func (t *Table) MapColumns(fn func(string) string) (collisions []string) {
	seen := make(map[string]int, len(t.cols))
	renamed := make([]string, len(t.cols))
	for i, c := range t.cols {
		n := fn(c)
		if k := seen[n]; k > 0 {
			seen[n] = k + 1
			collisions = append(collisions, n)
			n = fmt.Sprintf("%s_%d", n, k+1)
		}
		seen[n]++
		renamed[i] = n
	}
	// Rebuild each row from the old cells; a mapped name may equal another
	// column's old name, so in-place moves would clobber.
	for ri, r := range t.rows {
		nr := make(Row, len(renamed))
		for i, c := range t.cols {
			nr[renamed[i]] = r[c]
		}
		t.rows[ri] = nr
	}
	t.cols = renamed
	return collisions
}

// Filter keeps only rows for which keep returns true and returns the number
// of rows dropped. Row order is preserved.
func (t *Table) Filter(keep func(Row) bool) (dropped int) {
	out := t.rows[:0]
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		} else {
			dropped++
		}
	}
	// Clear the tail so dropped rows do not linger in the backing array.
	for i := len(out); i < len(t.rows); i++ {
		t.rows[i] = nil
	}
	t.rows = out
	return dropped
}

// NonNil returns the number of non-missing cells in r.
func (r Row) NonNil() int {
	n := 0
	for _, v := range r {
		if v != nil {
			n++
		}
	}
	return n
}
