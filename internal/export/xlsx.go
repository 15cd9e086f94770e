package export

import (
	"context"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"dataprep/internal/metrics"
	"dataprep/internal/table"
)

// xlsxSink writes the table as a rectangular spreadsheet: a header row from
// the column names and one sheet row per table row, no index column. The
// stream writer keeps memory flat for wide exports.
type xlsxSink struct {
	path string
}

const sheetName = "Sheet1"

func (s *xlsxSink) Write(ctx context.Context, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("xlsx: stream writer: %w", err)
	}

	cols := t.Columns()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	cell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := sw.SetRow(cell, header); err != nil {
		return fmt.Errorf("xlsx: write header: %w", err)
	}

	for i, r := range t.Rows() {
		if err := ctx.Err(); err != nil {
			return err
		}
		vals := make([]any, len(cols))
		for j, c := range cols {
			vals[j] = cellValue(r[c])
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, vals); err != nil {
			return fmt.Errorf("xlsx: write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("xlsx: flush: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("xlsx: save %s: %w", s.path, err)
	}
	metrics.RecordRows("export", "exported", int64(t.Len()))
	log.Printf("exported %d rows to %s", t.Len(), s.path)
	return nil
}
