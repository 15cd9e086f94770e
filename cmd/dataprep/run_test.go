package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"dataprep/internal/config"
	"dataprep/internal/dataset"
	csvparser "dataprep/internal/parser/csv"
	"dataprep/internal/table"
)

func strPtr(s string) *string { return &s }

/*
TestRunCleanEndToEnd loads two CSV files with messy headers, runs the full
stage chain, and checks the final shape:

  - headers normalized ("Name " -> name, "Sale-Date" -> sale_date)
  - sale_date auto-detected and coerced to time.Time
  - string cells trimmed
  - remaining missing values filled with "0"
*/
func TestRunCleanEndToEnd(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.csv")
	p2 := filepath.Join(dir, "b.csv")
	os.WriteFile(p1, []byte("Name ,Sale-Date,Amount\n alice ,2024-01-02,10\n"), 0o644)
	os.WriteFile(p2, []byte("Name ,Sale-Date,Amount\nbob,2024-02-03,\n"), 0o644)

	tb, err := dataset.Load(context.Background(), []string{p1, p2}, csvparser.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	job := config.Job{FillNA: strPtr("0")}
	if err := runClean(tb, job); err != nil {
		t.Fatalf("runClean: %v", err)
	}

	wantCols := []string{"name", "sale_date", "amount"}
	if !reflect.DeepEqual(tb.Columns(), wantCols) {
		t.Fatalf("columns = %v, want %v", tb.Columns(), wantCols)
	}
	if tb.Len() != 2 {
		t.Fatalf("rows = %d, want 2", tb.Len())
	}

	rows := tb.Rows()
	if rows[0]["name"] != "alice" {
		t.Errorf("name = %v, want trimmed \"alice\"", rows[0]["name"])
	}
	if _, ok := rows[0]["sale_date"].(time.Time); !ok {
		t.Errorf("sale_date = %v (%T), want time.Time", rows[0]["sale_date"], rows[0]["sale_date"])
	}
	if rows[1]["amount"] != "0" {
		t.Errorf("amount = %v, want filled \"0\"", rows[1]["amount"])
	}
	for _, r := range rows {
		if r.NonNil() != len(wantCols) {
			t.Errorf("row %v still has missing cells after fill", r)
		}
	}
}

// Explicit date columns are matched after normalizing the configured names,
// so "Sale-Date" finds the sale_date column.
func TestRunCleanExplicitDateCols(t *testing.T) {
	tb := table.New([]string{"Sale-Date", "note"})
	tb.AppendRow([]any{"2024-01-02", "x"})

	job := config.Job{DateCols: []string{"Sale-Date"}}
	if err := runClean(tb, job); err != nil {
		t.Fatalf("runClean: %v", err)
	}
	if _, ok := tb.Rows()[0]["sale_date"].(time.Time); !ok {
		t.Errorf("sale_date = %v, want time.Time", tb.Rows()[0]["sale_date"])
	}
}

func TestRunCleanWithRenameAndDedup(t *testing.T) {
	tb := table.New([]string{"Old Name", "id"})
	tb.AppendRow([]any{"first", "1"})
	tb.AppendRow([]any{"second", "1"})
	tb.AppendRow([]any{"third", "2"})

	job := config.Job{
		Rename:    "Old Name:label",
		DedupKeys: []string{"ID"},
	}
	if err := runClean(tb, job); err != nil {
		t.Fatalf("runClean: %v", err)
	}

	if !tb.HasColumn("label") {
		t.Fatalf("columns = %v, want rename to label", tb.Columns())
	}
	if tb.Len() != 2 {
		t.Fatalf("rows = %d, want 2 after dedup", tb.Len())
	}
	// Last occurrence of id=1 wins.
	if got := tb.Rows()[0]["label"]; got != "second" {
		t.Errorf("kept row label = %v, want \"second\"", got)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , ,b ", []string{"a", "b"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "list.txt")
	os.WriteFile(list, []byte("x.csv\n# skip\ny.csv\n"), 0o644)

	got, err := expandInputs([]string{"a.csv", "@" + list, "b.csv"})
	if err != nil {
		t.Fatalf("expandInputs: %v", err)
	}
	want := []string{"a.csv", "x.csv", "y.csv", "b.csv"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandInputs = %v, want %v", got, want)
	}

	if _, err := expandInputs([]string{"@" + filepath.Join(dir, "missing.txt")}); err == nil {
		t.Error("expandInputs with missing list: want error, got nil")
	}
}

/*
TestResolveMetricsEnv verifies the flag -> env -> default fallback chain:
an explicit flag value wins, the environment fills an unset flag, and the
hard defaults apply when both are empty.
*/
func TestResolveMetricsEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("METRICS_BACKEND", "")
		t.Setenv("PUSHGATEWAY_URL", "")
		backend, url := resolveMetricsEnv("", "")
		if backend != "none" || url != "http://localhost:9091" {
			t.Errorf("resolveMetricsEnv = %q, %q; want none defaults", backend, url)
		}
	})
	t.Run("env_fills_unset_flags", func(t *testing.T) {
		t.Setenv("METRICS_BACKEND", "pushgateway")
		t.Setenv("PUSHGATEWAY_URL", "http://gw:9091")
		backend, url := resolveMetricsEnv("", "")
		if backend != "pushgateway" || url != "http://gw:9091" {
			t.Errorf("resolveMetricsEnv = %q, %q; want env values", backend, url)
		}
	})
	t.Run("flags_win_over_env", func(t *testing.T) {
		t.Setenv("METRICS_BACKEND", "pushgateway")
		t.Setenv("PUSHGATEWAY_URL", "http://gw:9091")
		backend, url := resolveMetricsEnv("none", "http://other:9091")
		if backend != "none" || url != "http://other:9091" {
			t.Errorf("resolveMetricsEnv = %q, %q; want flag values", backend, url)
		}
	})
}

func TestParserOptions(t *testing.T) {
	opt := parserOptions(config.Job{Delimiter: ";", LazyQuotes: true})
	if opt.Comma != ';' || !opt.LazyQuotes {
		t.Errorf("parserOptions = %+v", opt)
	}
	if opt := parserOptions(config.Job{}); opt.Comma != 0 {
		t.Errorf("default Comma = %q, want 0", opt.Comma)
	}
}
