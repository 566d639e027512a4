package csvio

import (
	"errors"
	"fmt"
	"strings"
)

// Row error codes
const (
	ErrCodeRequiredField     = "ERR_IMPORT_REQUIRED_FIELD"
	ErrCodeInvalidFormat     = "ERR_IMPORT_INVALID_FORMAT"
	ErrCodeInvalidLength     = "ERR_IMPORT_INVALID_LENGTH"
	ErrCodeInvalidValue      = "ERR_IMPORT_INVALID_VALUE"
	ErrCodeDuplicateInFile   = "ERR_IMPORT_DUPLICATE_IN_FILE"
	ErrCodeDuplicateInDB     = "ERR_IMPORT_DUPLICATE_IN_DB"
	ErrCodeReferenceNotFound = "ERR_IMPORT_REFERENCE_NOT_FOUND"
	ErrCodeStorage           = "ERR_IMPORT_STORAGE"
)

// File-level errors that abort the whole decode
var (
	// ErrEmptyFile is returned when the CSV file is empty
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrInvalidEncoding is returned when the file is neither valid UTF-8
	// nor decodable Shift_JIS
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the CSV file has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")

	// ErrMalformedCSV is returned when quoting is unterminated or a row
	// cannot be parsed as delimited text
	ErrMalformedCSV = errors.New("malformed CSV content")
)

// HeaderError reports required headers missing from the header row.
// The whole file is rejected, no partial decode.
type HeaderError struct {
	Missing []string
}

// Error implements the error interface
func (e *HeaderError) Error() string {
	return fmt.Sprintf("missing required headers: %s", strings.Join(e.Missing, ", "))
}

// RowError represents an error in a specific row. A row with several
// problems still yields one RowError: the first problem is the primary
// reason and the rest ride along in Details.
type RowError struct {
	Row     int      `json:"row"`
	Column  string   `json:"column,omitempty"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Value   string   `json:"value,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, column, code, message string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
	}
}

// NewRowErrorWithValue creates a new RowError carrying the offending value
func NewRowErrorWithValue(row int, column, code, message, value string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
		Value:   value,
	}
}

// NewRequiredError reports a missing required field
func NewRequiredError(row int, column string) RowError {
	return NewRowError(row, column, ErrCodeRequiredField, fmt.Sprintf("field '%s' is required", column))
}

// NewFormatError reports a value that does not match the expected format
func NewFormatError(row int, column, expectedFormat, value string) RowError {
	return NewRowErrorWithValue(row, column, ErrCodeInvalidFormat,
		fmt.Sprintf("invalid format, expected %s", expectedFormat), value)
}

// NewDuplicateError reports a duplicate value, distinguishing file-internal
// duplicates from database collisions
func NewDuplicateError(row int, column, value string, inDB bool) RowError {
	code := ErrCodeDuplicateInFile
	msg := fmt.Sprintf("duplicate value '%s' found in file", value)
	if inDB {
		code = ErrCodeDuplicateInDB
		msg = fmt.Sprintf("value '%s' already exists", value)
	}
	return NewRowErrorWithValue(row, column, code, msg, value)
}

// NewReferenceError reports a reference name with no match
func NewReferenceError(row int, column, value, refType string) RowError {
	return NewRowErrorWithValue(row, column, ErrCodeReferenceNotFound,
		fmt.Sprintf("%s '%s' not found", refType, value), value)
}

// MergeRowErrors collapses every problem found in one row into a single
// RowError. The first problem supplies the row, column, code, message and
// value; the remaining problems are appended to Details.
func MergeRowErrors(errs []RowError) RowError {
	merged := errs[0]
	for _, e := range errs[1:] {
		detail := e.Message
		if e.Column != "" {
			detail = fmt.Sprintf("%s: %s", e.Column, e.Message)
		}
		merged.Details = append(merged.Details, detail)
	}
	return merged
}

// ErrorCollection accumulates row errors up to a bounded count.
// The total count keeps growing past the bound so accounting stays exact.
type ErrorCollection struct {
	errors     []RowError
	maxErrors  int
	totalCount int
}

// NewErrorCollection creates a new ErrorCollection with a maximum error limit
func NewErrorCollection(maxErrors int) *ErrorCollection {
	if maxErrors <= 0 {
		maxErrors = 100
	}
	return &ErrorCollection{
		errors:    make([]RowError, 0, maxErrors),
		maxErrors: maxErrors,
	}
}

// Add adds an error to the collection
func (ec *ErrorCollection) Add(err RowError) {
	ec.totalCount++
	if len(ec.errors) < ec.maxErrors {
		ec.errors = append(ec.errors, err)
	}
}

// Errors returns the collected errors
func (ec *ErrorCollection) Errors() []RowError {
	return ec.errors
}

// TotalCount returns the total number of errors including those not collected
func (ec *ErrorCollection) TotalCount() int {
	return ec.totalCount
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollection) HasErrors() bool {
	return ec.totalCount > 0
}

// IsTruncated returns true if some errors were not collected due to the limit
func (ec *ErrorCollection) IsTruncated() bool {
	return ec.totalCount > ec.maxErrors
}

// String returns a string representation of all errors
func (ec *ErrorCollection) String() string {
	if !ec.HasErrors() {
		return "no errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) found", ec.totalCount))
	if ec.IsTruncated() {
		sb.WriteString(fmt.Sprintf(" (showing first %d)", ec.maxErrors))
	}
	sb.WriteString(":\n")

	for _, err := range ec.errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}

	return sb.String()
}
