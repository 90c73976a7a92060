// Package apperr provides the typed errors returned by request validation
// and by the HTTP engine. Validation errors carry a fixed message that
// callers may match on exactly.
package apperr

import (
	"errors"
	"fmt"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindMissingKey indicates the API key is absent or empty.
	KindMissingKey
	// KindMissingPoints indicates a required location list is absent or empty.
	KindMissingPoints
	// KindTooManyPoints indicates a location list exceeds the endpoint maximum.
	KindTooManyPoints
	// KindMissingField indicates any other required field is absent.
	KindMissingField
	// KindOutOfRange indicates a numeric field is outside its allowed range.
	KindOutOfRange
	// KindTooManyValues indicates a non-location list exceeds its maximum.
	KindTooManyValues
	// KindInvalidField indicates a field value or field combination is not allowed.
	KindInvalidField
	// KindUpstream indicates the remote API answered with an HTTP error status.
	KindUpstream
	// KindAPIStatus indicates the remote API answered with a non-OK status payload.
	KindAPIStatus
	// KindQuotaExceeded indicates the local daily quota for an endpoint is used up.
	KindQuotaExceeded
	// KindInvalidResponse indicates the response body could not be decoded.
	KindInvalidResponse
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindMissingKey:      "missing_key",
	KindMissingPoints:   "missing_points",
	KindTooManyPoints:   "too_many_points",
	KindMissingField:    "missing_field",
	KindOutOfRange:      "out_of_range",
	KindTooManyValues:   "too_many_values",
	KindInvalidField:    "invalid_field",
	KindUpstream:        "upstream",
	KindAPIStatus:       "api_status",
	KindQuotaExceeded:   "quota_exceeded",
	KindInvalidResponse: "invalid_response",
	KindInternal:        "internal",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a typed error with a Kind.
type Error struct {
	Kind    Kind
	Message string
	Field   string // Request field that failed validation (optional)
	Op      string // Operation that failed (optional)
	Status  string // API status or HTTP status text (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithField returns the error with the failing field set.
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// WithStatus returns the error with the remote status set.
func (e *Error) WithStatus(status string) *Error {
	e.Status = status
	return e
}

// GetKind extracts the error kind from an error chain.
// Returns KindUnknown if no *Error is found.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err carries an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}
