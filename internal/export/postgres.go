package export

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"

	"dataprep/internal/metrics"
	"dataprep/internal/table"
)

// postgresSink bulk-loads the table into Postgres via the COPY protocol.
// The destination table is created as all-TEXT when missing and truncated
// before loading so repeated runs stay idempotent.
type postgresSink struct {
	dsn   string
	table string
}

func (s *postgresSink) Write(ctx context.Context, t *table.Table) error {
	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return fmt.Errorf("postgres: connect: %w", err)
	}
	defer conn.Close(ctx)

	cols := t.Columns()
	ident := pgx.Identifier{s.table}
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = pgx.Identifier{c}.Sanitize() + " TEXT"
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", ident.Sanitize(), strings.Join(defs, ", "))
	if _, err := conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("postgres: create table: %w", err)
	}
	if _, err := conn.Exec(ctx, "TRUNCATE "+ident.Sanitize()); err != nil {
		return fmt.Errorf("postgres: truncate: %w", err)
	}

	rows := make([][]any, t.Len())
	for i, r := range t.Rows() {
		vals := make([]any, len(cols))
		for j, c := range cols {
			vals[j] = cellValue(r[c])
		}
		rows[i] = vals
	}

	n, err := conn.CopyFrom(ctx, ident, cols, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("postgres: copy into %s: %w", s.table, err)
	}
	metrics.RecordRows("export", "exported", n)
	log.Printf("exported %d rows to table %s", n, s.table)
	return nil
}
