package export

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	// CGo-free SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"

	"dataprep/internal/metrics"
	"dataprep/internal/table"
)

// sqliteSink writes the table into a single-table SQLite database file. All
// columns are TEXT; cleaned values are stored as their flattened string
// forms and missing cells as NULL. The destination table is replaced on
// every run so the file always reflects exactly one export.
type sqliteSink struct {
	path  string
	table string
}

func (s *sqliteSink) Write(ctx context.Context, t *table.Table) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("sqlite: open %s: %w", s.path, err)
	}
	defer db.Close()

	cols := t.Columns()
	quoted := make([]string, len(cols))
	defs := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteIdent(c)
		defs[i] = quoted[i] + " TEXT"
		marks[i] = "?"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin tx: %w", err)
	}
	defer tx.Rollback()

	tbl := quoteIdent(s.table)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+tbl); err != nil {
		return fmt.Errorf("sqlite: drop table: %w", err)
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", tbl, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("sqlite: create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		tbl, strings.Join(quoted, ", "), strings.Join(marks, ", "),
	))
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range t.Rows() {
		args := make([]any, len(cols))
		for j, c := range cols {
			args[j] = cellValue(r[c])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("sqlite: insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	metrics.RecordRows("export", "exported", int64(t.Len()))
	log.Printf("exported %d rows to %s (table %s)", t.Len(), s.path, s.table)
	return nil
}

// quoteIdent double-quotes an identifier, escaping embedded quotes.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
