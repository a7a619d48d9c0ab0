// Command seedhts converts the HTS master spreadsheet into the Go seed table
// compiled into the static reference store.
// Usage: go run ./cmd/seedhts [-in hts_master.xlsx] [-out internal/repository/static/entries.go]
// Expected sheet columns: HTS Code | Description | Category | Unit | General Rate | Special Rate.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

var codePattern = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{4}$`)

type htsRow struct {
	code        string
	description string
	category    string
	unit        string
	generalRate string
	specialRate string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	inPath := flag.String("in", "hts_master.xlsx", "HTS master spreadsheet")
	outPath := flag.String("out", "internal/repository/static/entries.go", "generated Go source file")
	flag.Parse()

	f, err := excelize.OpenFile(*inPath)
	if err != nil {
		return fmt.Errorf("open spreadsheet: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := parseSheet(f)
	if err != nil {
		return fmt.Errorf("parse sheet: %w", err)
	}
	log.Printf("parsed %d tariff lines", len(rows))

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeGoSource(out, rows); err != nil {
		return fmt.Errorf("write seed source: %w", err)
	}

	log.Printf("generated %d entries in %s", len(rows), *outPath)
	return nil
}

func parseSheet(f *excelize.File) ([]htsRow, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []htsRow
	for i, row := range rows {
		if i == 0 || len(row) < 6 {
			continue
		}
		code := strings.TrimSpace(row[0])
		if !codePattern.MatchString(code) || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, htsRow{
			code:        code,
			description: strings.TrimSpace(row[1]),
			category:    strings.TrimSpace(row[2]),
			unit:        strings.TrimSpace(row[3]),
			generalRate: strings.TrimSpace(row[4]),
			specialRate: strings.TrimSpace(row[5]),
		})
	}
	return out, nil
}

func writeGoSource(out *os.File, rows []htsRow) error {
	w := func(format string, args ...interface{}) error {
		_, werr := fmt.Fprintf(out, format, args...)
		return werr
	}

	for _, line := range []string{
		"// Code generated by cmd/seedhts from the HTS master spreadsheet. DO NOT EDIT.\n\n",
		"package static\n\n",
		"import \"ftzops/internal/domain\"\n\n",
		"var seedEntries = []domain.HTSEntry{\n",
	} {
		if err := w("%s", line); err != nil {
			return err
		}
	}

	for _, r := range rows {
		digits := strings.ReplaceAll(r.code, ".", "")
		err := w("\t{HTSCode: %q, Description: %q, Category: %q, Chapter: %q, Heading: %q, Subheading: %q, Unit: %q, GeneralRate: %q, SpecialRate: %q},\n",
			r.code, r.description, r.category, digits[:2], digits[:4], digits[:6], r.unit, r.generalRate, r.specialRate)
		if err != nil {
			return err
		}
	}

	return w("}\n")
}
