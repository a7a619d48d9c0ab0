// Package csvexport writes the HTS reference dataset as CSV for auditing.
package csvexport

import (
	"encoding/csv"
	"io"

	"ftzops/internal/domain"
)

// BOM is the UTF-8 byte order mark, for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"HTS Code",
	"Description",
	"Category",
	"Chapter",
	"Heading",
	"Subheading",
	"Unit",
	"General Rate",
	"Special Rate",
}

// Writer wraps csv.Writer for exporting HTS entries as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEntries converts a batch of HTS entries to CSV rows and writes them.
func (w *Writer) WriteEntries(entries []domain.HTSEntry) error {
	for i := range entries {
		if err := w.csv.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func entryToRow(e *domain.HTSEntry) []string {
	return []string{
		e.HTSCode,
		e.Description,
		e.Category,
		e.Chapter,
		e.Heading,
		e.Subheading,
		e.Unit,
		e.GeneralRate,
		e.SpecialRate,
	}
}
