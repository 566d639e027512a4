package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Writer serializes rows as UTF-8 delimited text prefixed with a byte-order
// mark so spreadsheet tools in double-byte locales pick the right encoding.
// Quoting follows the same rules the Reader accepts, so encoded output
// round-trips through decode unchanged.
type Writer struct {
	out      io.Writer
	csv      *csv.Writer
	wroteBOM bool
}

// NewWriter creates a Writer streaming to out
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
		csv: csv.NewWriter(out),
	}
}

// WriteHeader writes the BOM followed by the header row
func (w *Writer) WriteHeader(headers []string) error {
	if err := w.writeBOM(); err != nil {
		return err
	}
	return w.csv.Write(headers)
}

// WriteRow writes one data row
func (w *Writer) WriteRow(cells []string) error {
	if err := w.writeBOM(); err != nil {
		return err
	}
	return w.csv.Write(cells)
}

// Flush writes buffered data to the underlying writer
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func (w *Writer) writeBOM() error {
	if w.wroteBOM {
		return nil
	}
	if _, err := w.out.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte-order mark: %w", err)
	}
	w.wroteBOM = true
	return nil
}

// Encode serializes a header row and data rows into a single byte slice.
// Pure function, no side effects.
func Encode(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteHeader(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.WriteRow(row); err != nil {
			return nil, err
		}
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
