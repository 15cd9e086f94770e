// Command dataprep reads one or more CSV files, cleans and normalizes the
// data, parses dates, resolves missing values, and exports the result to a
// spreadsheet or database destination.
//
// Usage examples:
//
//	dataprep -i data.csv -o out.xlsx
//	dataprep -i data1.csv -i data2.csv -o results.xlsx -date-cols date,created_at -fillna 0
//	dataprep -i data.csv -o out.xlsx -rename "Old Name:old_name,Price:price" -dropna-any
//
// Exit codes are distinct per failure class so callers can branch on them:
// 2 bad usage (missing input, unusable destination), 3 load failure,
// 4 processing failure, 5 export failure.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"dataprep/internal/clean"
	"dataprep/internal/config"
	"dataprep/internal/dataset"
	"dataprep/internal/datasource/file"
	"dataprep/internal/export"
	"dataprep/internal/metrics"
	"dataprep/internal/metrics/prompush"
	csvparser "dataprep/internal/parser/csv"
)

const (
	exitUsage   = 2
	exitLoad    = 3
	exitProcess = 4
	exitExport  = 5
)

// repeatable collects repeated -i flags, splitting comma-separated values.
type repeatable []string

func (r *repeatable) String() string { return strings.Join(*r, ",") }

func (r *repeatable) Set(v string) error {
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*r = append(*r, p)
		}
	}
	return nil
}

func main() {
	var (
		inputs      repeatable
		output      string
		tableName   string
		dateCols    string
		renameSpec  string
		fillNA      string
		dropAny     bool
		dropThresh  int
		dedupKeys   string
		delimiter   string
		lazyQuotes  bool
		cfgPath     string
		metricsFlag string
		gatewayURL  string
		verbose     bool
	)

	flag.Var(&inputs, "i", "input CSV file; repeat or comma-separate for multiple files, @file expands a list")
	flag.StringVar(&output, "o", "", "output destination: .xlsx, .sqlite/.db, or a postgres:// DSN")
	flag.StringVar(&tableName, "table", "", "destination table name for database outputs (default dataprep)")
	flag.StringVar(&dateCols, "date-cols", "", "comma-separated date columns to parse; omit to auto-detect by header name")
	flag.StringVar(&renameSpec, "rename", "", `column renames like "Old Col:old_col,Price:price"`)
	flag.StringVar(&fillNA, "fillna", "", "fill remaining missing values with this literal (all columns)")
	flag.BoolVar(&dropAny, "dropna-any", false, "drop rows with ANY missing value")
	flag.IntVar(&dropThresh, "dropna-thresh", 0, "drop rows with fewer than this many non-null values")
	flag.StringVar(&dedupKeys, "dedup-keys", "", "comma-separated key columns; duplicate rows collapse to the last occurrence")
	flag.StringVar(&delimiter, "delimiter", "", "CSV field delimiter (single character, default ',')")
	flag.BoolVar(&lazyQuotes, "lazy-quotes", false, "tolerate unescaped quotes in the inputs")
	flag.StringVar(&cfgPath, "config", "", "JSON job file; flags set on the command line take precedence")
	flag.StringVar(&metricsFlag, "metrics-backend", "", "metrics backend (pushgateway, none); falls back to env METRICS_BACKEND, default none")
	flag.StringVar(&gatewayURL, "pushgateway-url", "", "Pushgateway base URL; falls back to env PUSHGATEWAY_URL, default http://localhost:9091")
	flag.BoolVar(&verbose, "v", false, "enable verbose logs")
	flag.Parse()

	log.SetFlags(0)

	job, err := resolveJob(cfgPath, jobFlags{
		inputs:     inputs,
		output:     output,
		table:      tableName,
		dateCols:   dateCols,
		rename:     renameSpec,
		fillNA:     fillNA,
		dropAny:    dropAny,
		dropThresh: dropThresh,
		dedupKeys:  dedupKeys,
		delimiter:  delimiter,
		lazyQuotes: lazyQuotes,
		verbose:    verbose,
	})
	if err != nil {
		fatalf(exitUsage, "%v", err)
	}
	clean.Verbose = job.Verbose

	// Static validation first; errors block before any file is touched.
	hasError := false
	for _, iss := range config.Validate(job) {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		os.Exit(exitUsage)
	}

	// Input paths must exist before loading begins.
	for _, in := range job.Inputs {
		if _, err := os.Stat(in); err != nil {
			fatalf(exitUsage, "input file does not exist: %s", in)
		}
	}

	setupMetrics(metricsFlag, gatewayURL, job.Verbose)
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	ctx := context.Background()
	start := time.Now()

	t, err := dataset.Load(ctx, job.Inputs, parserOptions(job))
	if err != nil {
		fatalf(exitLoad, "could not load input CSV(s): %v", err)
	}

	if err := runClean(t, job); err != nil {
		fatalf(exitProcess, "processing failed: %v", err)
	}

	sink, err := export.New(job.Output, job.Table)
	if err != nil {
		// Detect already passed validation, so this should not happen.
		fatalf(exitUsage, "%v", err)
	}
	if err := sink.Write(ctx, t); err != nil {
		fatalf(exitExport, "export failed: %v", err)
	}

	if job.Verbose {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
	log.Printf("all done. output: %s", job.Output)
}

// jobFlags carries the raw flag values into job resolution.
type jobFlags struct {
	inputs     []string
	output     string
	table      string
	dateCols   string
	rename     string
	fillNA     string
	dropAny    bool
	dropThresh int
	dedupKeys  string
	delimiter  string
	lazyQuotes bool
	verbose    bool
}

// resolveJob merges an optional JSON job file with command-line flags;
// explicitly set flags win. Inputs of the form "@list.txt" are expanded.
func resolveJob(cfgPath string, f jobFlags) (config.Job, error) {
	var job config.Job
	if cfgPath != "" {
		var err error
		if job, err = config.Load(cfgPath); err != nil {
			return job, err
		}
	}

	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["i"] {
		job.Inputs = f.inputs
	}
	if set["o"] {
		job.Output = f.output
	}
	if set["table"] {
		job.Table = f.table
	}
	if set["date-cols"] {
		job.DateCols = splitList(f.dateCols)
	}
	if set["rename"] {
		job.Rename = f.rename
	}
	if set["fillna"] {
		v := f.fillNA
		job.FillNA = &v
	}
	if set["dropna-any"] {
		job.DropAny = f.dropAny
	}
	if set["dropna-thresh"] {
		job.DropThresh = f.dropThresh
	}
	if set["dedup-keys"] {
		job.DedupKeys = splitList(f.dedupKeys)
	}
	if set["delimiter"] {
		job.Delimiter = f.delimiter
	}
	if set["lazy-quotes"] {
		job.LazyQuotes = f.lazyQuotes
	}
	if set["v"] {
		job.Verbose = f.verbose
	}

	expanded, err := expandInputs(job.Inputs)
	if err != nil {
		return job, err
	}
	job.Inputs = expanded
	return job, nil
}

// expandInputs replaces "@list.txt" entries with the lines of the list file.
func expandInputs(inputs []string) ([]string, error) {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if !strings.HasPrefix(in, "@") {
			out = append(out, in)
			continue
		}
		lines, err := file.ReadList(strings.TrimPrefix(in, "@"))
		if err != nil {
			return nil, fmt.Errorf("read input list %s: %w", in, err)
		}
		out = append(out, lines...)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveMetricsEnv applies the flag -> env -> default fallback chain for
// the metrics backend name and the Pushgateway URL.
func resolveMetricsEnv(backendName, gatewayURL string) (string, string) {
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}
	if backendName == "" {
		backendName = "none"
	}
	if gatewayURL == "" {
		gatewayURL = os.Getenv("PUSHGATEWAY_URL")
	}
	if gatewayURL == "" {
		gatewayURL = "http://localhost:9091"
	}
	return backendName, gatewayURL
}

// setupMetrics decides the metrics backend: flag, then env, then default.
func setupMetrics(backendName, gatewayURL string, verbose bool) {
	backendName, gatewayURL = resolveMetricsEnv(backendName, gatewayURL)
	switch backendName {
	case "pushgateway":
		b, err := prompush.NewBackend("dataprep", gatewayURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
			return
		}
		if verbose {
			log.Printf("metrics: url=%v backend=%v", gatewayURL, backendName)
		}
		metrics.SetBackend(b)

	case "none":
		if verbose {
			log.Printf("metrics: disabled")
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

func parserOptions(job config.Job) csvparser.Options {
	opt := csvparser.Options{LazyQuotes: job.LazyQuotes}
	if job.Delimiter != "" {
		if r, _ := utf8.DecodeRuneInString(job.Delimiter); r != utf8.RuneError {
			opt.Comma = r
		}
	}
	return opt
}

func fatalf(code int, format string, a ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", a...)
	os.Exit(code)
}
