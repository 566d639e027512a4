package dto

import "net/http"

// General error codes
const (
	ErrCodeUnknown  = "ERR_UNKNOWN"
	ErrCodeInternal = "ERR_INTERNAL"
)

// Authentication error codes
const (
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	ErrCodeTokenRevoked = "ERR_TOKEN_REVOKED"
)

// Resource error codes
const (
	ErrCodeNotFound      = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	ErrCodeConflict      = "ERR_CONFLICT"
)

// Input error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	ErrCodeTooLarge     = "ERR_REQUEST_TOO_LARGE"
)

// Import error codes. Row-level problems never surface here; they come
// back inside a committed import summary. These cover whole-file rejections.
const (
	ErrCodeImportEmptyFile     = "ERR_IMPORT_EMPTY_FILE"
	ErrCodeImportBadEncoding   = "ERR_IMPORT_BAD_ENCODING"
	ErrCodeImportMissingHeader = "ERR_IMPORT_MISSING_HEADER"
	ErrCodeImportMalformedCSV  = "ERR_IMPORT_MALFORMED_CSV"
	ErrCodeImportTooManyRows   = "ERR_IMPORT_TOO_MANY_ROWS"
)

// Business rule error codes
const (
	ErrCodeInvalidState       = "ERR_INVALID_STATE"
	ErrCodeBusinessRule       = "ERR_BUSINESS_RULE"
	ErrCodeStorageUnavailable = "ERR_STORAGE_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeTokenRevoked: http.StatusUnauthorized,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeTooLarge:     http.StatusRequestEntityTooLarge,

	ErrCodeImportEmptyFile:     http.StatusBadRequest,
	ErrCodeImportBadEncoding:   http.StatusBadRequest,
	ErrCodeImportMissingHeader: http.StatusBadRequest,
	ErrCodeImportMalformedCSV:  http.StatusBadRequest,
	ErrCodeImportTooManyRows:   http.StatusBadRequest,

	ErrCodeInvalidState:       http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:       http.StatusUnprocessableEntity,
	ErrCodeStorageUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to wire codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":                 ErrCodeNotFound,
	"ALREADY_EXISTS":            ErrCodeAlreadyExists,
	"INVALID_INPUT":             ErrCodeInvalidInput,
	"INVALID_STATE":             ErrCodeInvalidState,
	"UNAUTHORIZED":              ErrCodeUnauthorized,
	"FORBIDDEN":                 ErrCodeForbidden,
	"CONCURRENCY_CONFLICT":      ErrCodeConflict,
	"STORAGE_UNAVAILABLE":       ErrCodeStorageUnavailable,
	"DUPLICATE_NAME":            ErrCodeAlreadyExists,
	"DUPLICATE_EMAIL":           ErrCodeAlreadyExists,
	"DUPLICATE_EMPLOYEE_NUMBER": ErrCodeAlreadyExists,
	"DUPLICATE_USERNAME":        ErrCodeAlreadyExists,
	"HAS_EMPLOYEES":             ErrCodeConflict,
	"TOO_MANY_ROWS":             ErrCodeImportTooManyRows,
	"INVALID_CREDENTIALS":       ErrCodeUnauthorized,
	"ACCOUNT_DISABLED":          ErrCodeForbidden,
	"INVALID_NAME":              ErrCodeInvalidInput,
	"INVALID_RANK":              ErrCodeInvalidInput,
	"INVALID_ROLE":              ErrCodeInvalidInput,
	"INVALID_USERNAME":          ErrCodeInvalidInput,
	"INVALID_PASSWORD":          ErrCodeInvalidInput,
	"INVALID_EMPLOYMENT_TYPE":   ErrCodeInvalidInput,
	"ALREADY_DISABLED":          ErrCodeInvalidState,
	"ALREADY_ACTIVE":            ErrCodeInvalidState,
}

// NormalizeErrorCode converts a domain error code to the wire format.
// Unknown codes pass through as-is.
func NormalizeErrorCode(code string) string {
	if wireCode, ok := domainErrorCodeMapping[code]; ok {
		return wireCode
	}
	return code
}
