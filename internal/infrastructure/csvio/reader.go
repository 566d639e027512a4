package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader parses delimited text into rows keyed by header name
type Reader struct {
	delimiter  rune
	lazyQuotes bool
	trimSpace  bool
	headers    []string
	headerMap  map[string]int
	currentRow int
	reader     *csv.Reader
}

// ReaderOption is a functional option for Reader configuration
type ReaderOption func(*Reader)

// WithDelimiter sets the field delimiter (default is comma)
func WithDelimiter(d rune) ReaderOption {
	return func(r *Reader) {
		r.delimiter = d
	}
}

// WithLazyQuotes relaxes quote handling. Off by default so that a line
// with unterminated quoting fails the whole decode.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *Reader) {
		r.lazyQuotes = lazy
	}
}

// WithTrimSpace enables trimming of leading/trailing spaces from fields
func WithTrimSpace(trim bool) ReaderOption {
	return func(r *Reader) {
		r.trimSpace = trim
	}
}

// NewReader creates a Reader over the full input. The input must be UTF-8
// (with or without a byte-order mark) or Shift_JIS; Shift_JIS input is
// transparently transcoded. Returns ErrEmptyFile or ErrInvalidEncoding on
// undecodable input.
func NewReader(src io.Reader, opts ...ReaderOption) (*Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return NewReaderFromBytes(data, opts...)
}

// NewReaderFromBytes creates a Reader from an in-memory byte slice
func NewReaderFromBytes(data []byte, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		delimiter: ',',
		trimSpace: true,
		headerMap: make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	data, err := toUTF8(data)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = r.delimiter
	cr.LazyQuotes = r.lazyQuotes
	cr.TrimLeadingSpace = r.trimSpace
	cr.FieldsPerRecord = -1
	r.reader = cr

	return r, nil
}

// toUTF8 validates the content as UTF-8, falling back to a Shift_JIS
// transcode for files saved by legacy spreadsheet tools. The Shift_JIS
// decoder never fails on bad input, it substitutes U+FFFD for every
// undecodable sequence, so any replacement rune in its output means the
// bytes were not Shift_JIS either.
func toUTF8(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		return nil, ErrInvalidEncoding
	}
	return decoded, nil
}

// ParseHeader reads and indexes the header row
func (r *Reader) ParseHeader() error {
	record, err := r.reader.Read()
	if err == io.EOF {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	r.headers = make([]string, len(record))
	for i, h := range record {
		header := h
		if r.trimSpace {
			header = trimSpaces(header)
		}
		r.headers[i] = header
		r.headerMap[header] = i
	}

	if len(r.headers) == 0 {
		return ErrMissingHeader
	}

	r.currentRow = 1 // Header is row 1

	return nil
}

// Headers returns the parsed header names
func (r *Reader) Headers() []string {
	return r.headers
}

// HasHeader checks if a header exists
func (r *Reader) HasHeader(name string) bool {
	_, ok := r.headerMap[name]
	return ok
}

// RequireHeaders checks that every required header is present, by name and
// independent of column order. Returns a HeaderError naming all missing
// headers, never a partial decode.
func (r *Reader) RequireHeaders(required []string) error {
	var missing []string
	for _, h := range required {
		if !r.HasHeader(h) {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return &HeaderError{Missing: missing}
	}
	return nil
}

// Row represents a parsed CSV row with its data and line number
type Row struct {
	LineNumber int
	Data       map[string]string
	RawFields  []string
}

// Get returns the value for a column by header name
func (row *Row) Get(header string) string {
	return row.Data[header]
}

// IsEmpty returns true if the row has no non-empty values
func (row *Row) IsEmpty() bool {
	for _, v := range row.Data {
		if v != "" {
			return false
		}
	}
	return true
}

// ReadRow reads the next data row. Returns io.EOF at end of input.
func (r *Reader) ReadRow() (*Row, error) {
	record, err := r.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		r.currentRow++
		return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedCSV, r.currentRow, err)
	}

	r.currentRow++

	row := &Row{
		LineNumber: r.currentRow,
		Data:       make(map[string]string, len(r.headers)),
		RawFields:  record,
	}

	for i, header := range r.headers {
		if i < len(record) {
			value := record[i]
			if r.trimSpace {
				value = trimSpaces(value)
			}
			row.Data[header] = value
		} else {
			row.Data[header] = ""
		}
	}

	return row, nil
}

// ReadAll reads all remaining data rows, skipping completely empty ones.
// Any malformed row fails the whole read.
func (r *Reader) ReadAll() ([]*Row, error) {
	var rows []*Row

	for {
		row, err := r.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if row.IsEmpty() {
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// trimSpaces trims whitespace from a string
func trimSpaces(s string) string {
	start := 0
	end := len(s)

	for start < end {
		c, size := utf8.DecodeRuneInString(s[start:])
		if !isWhitespace(c) {
			break
		}
		start += size
	}

	for end > start {
		c, size := utf8.DecodeLastRuneInString(s[:end])
		if !isWhitespace(c) {
			break
		}
		end -= size
	}

	return s[start:end]
}

// isWhitespace checks if a rune is whitespace
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
