package probe

import (
	"strconv"
	"strings"
	"time"

	"dataprep/internal/clean"
)

// inferTypes returns one inferred type per header based on the sampled
// rows: integer, boolean, real, date, timestamp, or text. All non-empty
// values must satisfy the narrower type for it to win.
func inferTypes(headers []string, rows [][]string) []string {
	n := len(headers)
	cols := make([][]string, n)
	for _, row := range rows {
		for i := 0; i < n && i < len(row); i++ {
			if v := strings.TrimSpace(row[i]); v != "" {
				cols[i] = append(cols[i], v)
			}
		}
	}
	types := make([]string, n)
	for i := 0; i < n; i++ {
		types[i] = inferColumnType(cols[i])
	}
	return types
}

func inferColumnType(values []string) string {
	if len(values) == 0 {
		return "text"
	}
	if allMatch(values, isInt) {
		return "integer"
	}
	if allMatch(values, isBool) {
		return "boolean"
	}
	// Integer-looking values are fine inside a real column; the pure
	// integer case was ruled out above.
	if allMatch(values, func(s string) bool { return isInt(s) || isFloat(s) }) {
		return "real"
	}

	allDate := true
	anyTime := false
	for _, v := range values {
		ok, hasTime := parseDateOrTimestamp(v)
		if !ok {
			allDate = false
			break
		}
		if hasTime {
			anyTime = true
		}
	}
	if allDate {
		if anyTime {
			return "timestamp"
		}
		return "date"
	}
	return "text"
}

func allMatch(vals []string, fn func(string) bool) bool {
	for _, v := range vals {
		if !fn(v) {
			return false
		}
	}
	return true
}

// isBool accepts common textual booleans and 1/0.
func isBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "t", "f", "yes", "no", "y", "n", "1", "0":
		return true
	default:
		return false
	}
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// isFloat accepts decimal or scientific notation; ints stay integer.
func isFloat(s string) bool {
	if isInt(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// parseDateOrTimestamp tries the pipeline's timestamp layouts first, then
// the date layouts, and reports whether a time component was present.
func parseDateOrTimestamp(s string) (ok bool, hasTime bool) {
	for _, layout := range clean.TimestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true, true
		}
	}
	for _, layout := range clean.DateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true, false
		}
	}
	return false, false
}

// detectColumnLayouts returns the winning layout (empty when unknown) for
// each column inferred as date or timestamp, scored by how many samples the
// layout parses.
func detectColumnLayouts(rows [][]string, inferred []string) []string {
	n := len(inferred)
	out := make([]string, n)
	if len(rows) == 0 {
		return out
	}

	cols := make([][]string, n)
	for _, r := range rows {
		for c := 0; c < n && c < len(r); c++ {
			if v := strings.TrimSpace(r[c]); v != "" {
				cols[c] = append(cols[c], v)
			}
		}
	}

	for c := 0; c < n; c++ {
		switch inferred[c] {
		case "timestamp":
			out[c] = selectBestLayout(cols[c], clean.TimestampLayouts, timestampLayoutPreference)
		case "date":
			out[c] = selectBestLayout(cols[c], clean.DateLayouts, dateLayoutPreference)
		}
	}
	return out
}

// dateLayoutPreference is the tie-break weight for date layouts: DMY over
// ISO over MDY, matching how the pipeline's source data usually looks.
func dateLayoutPreference(layout string) int {
	switch layout {
	case "02.01.2006", "02/01/2006", "2 Jan 2006", "02-Jan-2006":
		return 3
	case "2006-01-02", "2006/01/02", "20060102":
		return 2
	case "01.02.2006", "01/02/2006":
		return 1
	default:
		return 0
	}
}

// timestampLayoutPreference prefers strict RFC3339 variants over the rest.
func timestampLayoutPreference(layout string) int {
	switch layout {
	case time.RFC3339Nano:
		return 3
	case time.RFC3339:
		return 2
	default:
		return 1
	}
}

// selectBestLayout scores each candidate layout by how many samples it
// parses; ties break by preference, then declaration order.
func selectBestLayout(samples, layouts []string, pref func(string) int) string {
	if len(samples) == 0 || len(layouts) == 0 {
		return ""
	}
	scores := make([]int, len(layouts))
	for _, s := range samples {
		for i, lay := range layouts {
			if _, err := time.Parse(lay, s); err == nil {
				scores[i]++
			}
		}
	}

	bestIdx, bestScore, bestPref := -1, -1, -1
	for i := range layouts {
		switch {
		case scores[i] > bestScore:
			bestIdx, bestScore, bestPref = i, scores[i], pref(layouts[i])
		case scores[i] == bestScore && pref(layouts[i]) > bestPref:
			bestIdx, bestPref = i, pref(layouts[i])
		}
	}
	if bestIdx >= 0 && bestScore > 0 {
		return layouts[bestIdx]
	}
	return ""
}
