// Command export dumps the compiled HTS reference dataset as CSV for auditing.
// Usage: go run ./cmd/export [-out hts_entries.csv]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ftzops/internal/csvexport"
	"ftzops/internal/repository/static"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outPath := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if _, err := f.Write(csvexport.BOM); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
		out = f
	}

	store := static.NewSeedStore()
	w := csvexport.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteEntries(store.Entries()); err != nil {
		return fmt.Errorf("write entries: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	log.Printf("exported %d entries", len(store.Entries()))
	return nil
}
