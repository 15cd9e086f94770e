// Command csvprobe samples the first N bytes of local CSV files and prints
// header names with inferred types, detected date layouts, and ready-made
// dataprep flags (-date-cols, -rename suggestions).
//
// Example:
//
//	csvprobe -bytes 8192 -delimiter ";" sales.csv customers.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"dataprep/internal/probe"
)

var (
	flagBytes     = flag.Int("bytes", 65536, "number of bytes to sample from the start of each file")
	flagDelimiter = flag.String("delimiter", ",", "CSV field delimiter (single character)")
	flagJSON      = flag.Bool("json", false, "output JSON instead of text")
	flagWorkers   = flag.Int("workers", 4, "how many files to probe concurrently")
)

func main() {
	flag.Parse()
	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: csvprobe [flags] file.csv [file2.csv ...]")
		os.Exit(2)
	}

	delim := ','
	if *flagDelimiter != "" {
		if r, _ := utf8.DecodeRuneInString(*flagDelimiter); r != utf8.RuneError {
			delim = r
		}
	}
	opt := probe.Options{MaxBytes: *flagBytes, Delimiter: delim}

	results := make([]probe.Result, len(paths))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*flagWorkers)
	for i, path := range paths {
		g.Go(func() error {
			res, err := probe.File(ctx, path, opt)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, res := range results {
		if *flagJSON {
			b, err := res.JSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			os.Stdout.Write(b)
			continue
		}
		printText(res)
	}
}

func printText(res probe.Result) {
	fmt.Printf("%s (%d sampled rows)\n", res.Path, res.SampleRows)
	for _, c := range res.Columns {
		line := fmt.Sprintf("  %-30s %-24s %s", c.Header, c.Normalized, c.Type)
		if c.Layout != "" {
			line += "  layout=" + c.Layout
		}
		fmt.Println(line)
	}
	if res.DateColsFlag != "" {
		fmt.Printf("  suggested: -date-cols %q\n", res.DateColsFlag)
	}
	if res.RenameFlag != "" {
		fmt.Printf("  suggested: -rename %q\n", res.RenameFlag)
	}
	fmt.Println()
}
