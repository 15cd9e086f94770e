// Package probe samples the head of a CSV file and reports header names,
// inferred column types, and detected date layouts, together with
// ready-to-paste dataprep flags. It is a reconnaissance tool: everything is
// best-effort and tolerant of trimmed samples and malformed lines.
package probe

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dataprep/internal/clean"
	"dataprep/internal/datasource/file"
)

// Options configures one probe.
type Options struct {
	// MaxBytes caps how much of the file is sampled. Default 64 KiB.
	MaxBytes int

	// Delimiter is the CSV field delimiter. Default ','.
	Delimiter rune
}

// Column is the per-column probe finding.
type Column struct {
	// Header is the raw header cell.
	Header string `json:"header"`

	// Normalized is the canonical pipeline name for the header.
	Normalized string `json:"normalized"`

	// Suggested is an ASCII-safe identifier when Normalized carries
	// accents or other non-ASCII runes, otherwise equal to Normalized.
	Suggested string `json:"suggested"`

	// Type is the inferred value type: integer, real, boolean, date,
	// timestamp, or text.
	Type string `json:"type"`

	// Layout is the winning Go time layout for date/timestamp columns.
	Layout string `json:"layout,omitempty"`
}

// Result is the outcome of probing one file.
type Result struct {
	Path       string   `json:"path"`
	SampleRows int      `json:"sample_rows"`
	Columns    []Column `json:"columns"`

	// DateColsFlag and RenameFlag are ready-made dataprep flag values;
	// empty when there is nothing to suggest.
	DateColsFlag string `json:"date_cols_flag,omitempty"`
	RenameFlag   string `json:"rename_flag,omitempty"`
}

// File probes one local CSV file.
func File(ctx context.Context, path string, opt Options) (Result, error) {
	if opt.MaxBytes <= 0 {
		opt.MaxBytes = 64 * 1024
	}
	if opt.Delimiter == 0 {
		opt.Delimiter = ','
	}

	rc, err := file.NewLocal(path).Open(ctx)
	if err != nil {
		return Result{}, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(&io.LimitedReader{R: rc, N: int64(opt.MaxBytes)}); err != nil {
		return Result{}, err
	}

	headers, rows := readSample(buf.Bytes(), opt.Delimiter)
	res := Result{Path: path, SampleRows: len(rows)}

	types := inferTypes(headers, rows)
	layouts := detectColumnLayouts(rows, types)

	var dateCols, renames []string
	for i, h := range headers {
		normalized := clean.Name(h)
		suggested := asciiIdent(normalized)
		col := Column{
			Header:     h,
			Normalized: normalized,
			Suggested:  suggested,
			Type:       types[i],
			Layout:     layouts[i],
		}
		res.Columns = append(res.Columns, col)
		if types[i] == "date" || types[i] == "timestamp" {
			dateCols = append(dateCols, normalized)
		}
		if suggested != normalized {
			renames = append(renames, strings.TrimSpace(h)+":"+suggested)
		}
	}
	res.DateColsFlag = strings.Join(dateCols, ",")
	res.RenameFlag = strings.Join(renames, ",")
	return res, nil
}

// JSON renders the result as indented JSON with a trailing newline.
func (r Result) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// readSample parses CSV bytes tolerantly: variable field counts are
// allowed, malformed lines are skipped, and rows whose width differs from
// the header are dropped to keep type inference aligned.
func readSample(data []byte, delim rune) (headers []string, rows [][]string) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	for {
		rec, err := r.Read()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil || len(rec) == 0 {
			continue
		}
		rec[0] = strings.TrimPrefix(rec[0], "\uFEFF")
		headers = rec
		break
	}

	want := len(headers)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(rec) != want {
			continue
		}
		rows = append(rows, rec)
	}
	return headers, rows
}

// asciiIdent folds an already-normalized column name down to a lowercase
// ASCII identifier: NFD decomposition, nonspacing marks removed, NFC
// recomposition, then anything outside [a-z0-9_] dropped. Falls back to
// "col" when nothing survives.
func asciiIdent(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	for _, r := range ascii {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "col"
	}
	return name
}
