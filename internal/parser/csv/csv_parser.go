// Package csv parses CSV input into the pipeline's working table. The
// parser is deliberately tolerant of real-world files: it strips a UTF-8
// BOM, accepts lazy quoting, and soft-fails rows it cannot use (malformed
// lines, wrong field counts) instead of aborting the whole read.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"dataprep/internal/table"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// skipLogLimit caps how many skipped rows are individually logged.
const skipLogLimit = 400

// Options configures the parser. All fields are optional; zero values get
// sensible defaults.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// LazyQuotes relaxes quote handling for files with unescaped quotes.
	LazyQuotes bool
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// Parse reads all CSV records from r into a Table whose columns come from
// the header row, kept verbatim apart from BOM stripping; header
// canonicalization is a pipeline stage, not a parsing concern. Empty fields
// become nil (missing) cells. It returns the table along with the number of
// rows skipped due to parse errors or field-count mismatches.
func (p *Parser) Parse(r io.Reader) (*table.Table, int, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.FieldsPerRecord = -1 // width enforced after read so bad rows soft-fail
	if p.opt.LazyQuotes {
		cr.LazyQuotes = true
	}

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}
	headers := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		headers[i] = h
	}

	t := table.New(headers)
	skipped := 0

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if skipped < skipLogLimit {
				log.Printf("skipping row %d: %v", line, err)
			}
			skipped++
			continue
		}
		if len(row) != len(headers) {
			if skipped < skipLogLimit {
				log.Printf("skipping row %d: incorrect number of fields (expected %d, got %d)", line, len(headers), len(row))
			}
			skipped++
			continue
		}

		vals := make([]any, len(row))
		for i, v := range row {
			vals[i] = emptyToNil(v)
		}
		if err := t.AppendRow(vals); err != nil {
			return nil, skipped, err
		}
	}

	return t, skipped, nil
}

// emptyToNil converts an empty string to a missing cell.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
