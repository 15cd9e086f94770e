// Package export writes the final table to its destination. Destinations
// are selected by shape, in the style of a storage factory keyed on a
// backend kind:
//
//   - "*.xlsx"                      spreadsheet via excelize
//   - "*.sqlite" / "*.db"           single-table SQLite database
//   - "postgres://" / "postgresql://" DSN, Postgres table via pgx COPY
//
// Detect runs before any input is read so an unusable destination rejects
// the run up front. Export errors are fatal and propagated to the caller;
// the destination is the only externally visible output and is written once,
// at the end of the run.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"dataprep/internal/table"
)

// Sink persists a finished table.
type Sink interface {
	Write(ctx context.Context, t *table.Table) error
}

// Kind identifies a sink backend.
type Kind string

const (
	KindXLSX     Kind = "xlsx"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// Detect classifies dest and rejects anything unsupported. It performs no
// I/O.
func Detect(dest string) (Kind, error) {
	if dest == "" {
		return "", fmt.Errorf("output destination is required")
	}
	if strings.HasPrefix(dest, "postgres://") || strings.HasPrefix(dest, "postgresql://") {
		return KindPostgres, nil
	}
	switch strings.ToLower(filepath.Ext(dest)) {
	case ".xlsx":
		return KindXLSX, nil
	case ".sqlite", ".db":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("unsupported output %q: want .xlsx, .sqlite/.db, or a postgres:// DSN", dest)
	}
}

// New builds the sink for dest. tableName names the destination table for
// database sinks and is ignored by the spreadsheet sink.
func New(dest, tableName string) (Sink, error) {
	kind, err := Detect(dest)
	if err != nil {
		return nil, err
	}
	if tableName == "" {
		tableName = "dataprep"
	}
	switch kind {
	case KindXLSX:
		return &xlsxSink{path: dest}, nil
	case KindSQLite:
		return &sqliteSink{path: dest, table: tableName}, nil
	case KindPostgres:
		return &postgresSink{dsn: dest, table: tableName}, nil
	}
	return nil, fmt.Errorf("no sink for kind %q", kind)
}

// cellValue flattens a cell for persistence: missing stays nil, dates are
// formatted (date-only when there is no time component), everything else is
// passed through.
func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	default:
		return v
	}
}
