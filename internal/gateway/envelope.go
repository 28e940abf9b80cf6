package gateway

import (
	"regexp"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// UniqueViolationCode is the Postgres SQLSTATE for unique_violation.
const UniqueViolationCode = "23505"

const (
	TextCodeUniqueViolation = "STORE_UNIQUE_VIOLATION"
	TextCodeNetwork         = "STORE_NETWORK"
	TextCodeRequestFailed   = "STORE_REQUEST_FAILED"
	TextCodeInvalidRequest  = "STORE_INVALID_REQUEST"
)

// InvalidRequestCode marks failures raised before any request was sent: a
// query without a projection or a payload that cannot be encoded.
const InvalidRequestCode = "GATEWAY_INVALID_REQUEST"

const (
	networkErrorMessage = "network error"
	invalidBodyMessage  = "invalid response body"

	missingProjectionMessage = "gateway: read requires an explicit select projection"
	encodePayloadMessage     = "gateway: encode payload"
)

var duplicatePattern = regexp.MustCompile(`(?i)duplicate|unique`)

// ErrorInfo is the error body returned by the store. Fields pass through
// verbatim.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// IsUniqueViolation reports whether the store rejected a write because a
// unique constraint already holds the value.
func (e *ErrorInfo) IsUniqueViolation() bool {
	if e == nil {
		return false
	}
	return e.Code == UniqueViolationCode || duplicatePattern.MatchString(e.Message)
}

// Envelope wraps every gateway result. On completion either Error is set or
// Data holds the decoded payload (possibly a zero value). Status is the HTTP
// status when a response arrived and 0 when none did.
type Envelope[T any] struct {
	Data   T          `json:"data"`
	Error  *ErrorInfo `json:"error"`
	Status int        `json:"status,omitempty"`
}

// OK reports whether the call succeeded.
func (e Envelope[T]) OK() bool {
	return e.Error == nil
}

// IsUniqueViolation is shorthand for e.Error.IsUniqueViolation.
func (e Envelope[T]) IsUniqueViolation() bool {
	return e.Error.IsUniqueViolation()
}

// Err converts a failed envelope into a *StoreError. It returns nil on
// success.
func (e Envelope[T]) Err() error {
	if e.Error == nil {
		return nil
	}
	return newStoreError(e.Status, *e.Error)
}

// StoreError is a failed envelope as a Go error. Error returns the store
// message verbatim; Unwrap exposes a categorised go-errors value.
type StoreError struct {
	Status   int
	Info     ErrorInfo
	category goerrors.Category
	textCode string
	cause    *goerrors.Error
}

func newStoreError(status int, info ErrorInfo) *StoreError {
	message := strings.TrimSpace(info.Message)
	if message == "" {
		message = statusText(status)
		info.Message = message
	}

	se := &StoreError{Status: status, Info: info}
	switch {
	case info.Code == InvalidRequestCode:
		se.category, se.textCode = goerrors.CategoryInternal, TextCodeInvalidRequest
	case status == 0:
		se.category, se.textCode = goerrors.CategoryExternal, TextCodeNetwork
	case info.IsUniqueViolation():
		se.category, se.textCode = goerrors.CategoryConflict, TextCodeUniqueViolation
	default:
		se.category, se.textCode = goerrors.CategoryExternal, TextCodeRequestFailed
	}

	se.cause = goerrors.New(message, se.category).WithTextCode(se.textCode)
	if status != 0 {
		se.cause = se.cause.WithCode(status)
	}
	return se
}

func (e *StoreError) Error() string { return e.Info.Message }

func (e *StoreError) Unwrap() error { return e.cause }

// Category is CategoryConflict for unique violations, CategoryInternal for
// invalid requests and CategoryExternal otherwise.
func (e *StoreError) Category() goerrors.Category { return e.category }

// TextCode is one of the STORE_* codes.
func (e *StoreError) TextCode() string { return e.textCode }

// IsUniqueViolation reports whether the failure was a unique violation.
func (e *StoreError) IsUniqueViolation() bool { return e.category == goerrors.CategoryConflict }

// IsNetwork reports whether the request was sent and no response was
// received.
func (e *StoreError) IsNetwork() bool { return e.textCode == TextCodeNetwork }

// IsInvalidRequest reports whether the call was rejected before sending.
func (e *StoreError) IsInvalidRequest() bool { return e.textCode == TextCodeInvalidRequest }

func invalidRequest[T any](message string, err error) Envelope[T] {
	info := ErrorInfo{Message: message, Code: InvalidRequestCode}
	if err != nil {
		info.Details = err.Error()
	}
	return failure[T](0, info)
}

func failure[T any](status int, info ErrorInfo) Envelope[T] {
	var zero T
	return Envelope[T]{Data: zero, Error: &info, Status: status}
}

func success[T any](status int, data T) Envelope[T] {
	return Envelope[T]{Data: data, Status: status}
}
