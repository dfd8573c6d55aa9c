// Package apperror defines the closed set of error kinds shared by every
// resource operation in the application. Each fallible operation returns
// exactly one of these kinds, carrying a printable description plus the
// original low-level cause as an attached chain. Outer callers match only on
// the kind; the raw storage error text never crosses the service boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates the categories an operation failure can fall into.
type Kind int

const (
	// StorageFailure means the backing store could not be reached or the
	// query failed for reasons unrelated to business rules (pool exhaustion,
	// timeout, closed pool, malformed query execution).
	StorageFailure Kind = iota
	// AlreadyExists means a uniqueness precondition was violated. It can
	// carry the conflicting resource value alongside the description.
	AlreadyExists
	// InvalidArguments means caller-supplied parameters failed validation,
	// e.g. a required foreign key was missing.
	InvalidArguments
	// NotFound means a lookup by key found nothing. Read operations that
	// return collections answer with empty slices instead of this kind.
	NotFound
)

// String returns a stable name for the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case StorageFailure:
		return "storage_failure"
	case AlreadyExists:
		return "already_exists"
	case InvalidArguments:
		return "invalid_arguments"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// AppError is the structured error value returned by every resource
// operation. Message is the stable, user-visible description. Err retains the
// underlying cause for logging and errors.Is/As inspection; it is never
// serialized to clients. Record optionally holds the conflicting resource for
// AlreadyExists failures.
type AppError struct {
	Kind    Kind
	Message string
	Record  any   // conflicting resource, AlreadyExists only
	Err     error // underlying cause
}

// Error satisfies the error interface. The underlying cause is appended so
// log output keeps the full chain.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the kind to the HTTP status the transport layer must use.
// AlreadyExists and InvalidArguments are both client errors on this API, so
// both answer 400.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case AlreadyExists:
		return http.StatusBadRequest
	case InvalidArguments:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case StorageFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewStorageFailure wraps a low-level storage error. Every pool acquisition
// or query failure that business logic has not already classified ends up
// here.
func NewStorageFailure(message string, underlying error) *AppError {
	return &AppError{Kind: StorageFailure, Message: message, Err: underlying}
}

// NewAlreadyExists reports a uniqueness violation with a description only.
func NewAlreadyExists(message string) *AppError {
	return &AppError{Kind: AlreadyExists, Message: message}
}

// NewAlreadyExistsRecord reports a uniqueness violation and attaches the
// attempted or conflicting resource value for diagnostics.
func NewAlreadyExistsRecord(message string, record any) *AppError {
	return &AppError{Kind: AlreadyExists, Message: message, Record: record}
}

// NewInvalidArguments reports a caller-supplied parameter problem, optionally
// wrapping the failure that revealed it.
func NewInvalidArguments(message string, underlying error) *AppError {
	return &AppError{Kind: InvalidArguments, Message: message, Err: underlying}
}

// NewNotFound reports a lookup by key that matched nothing.
func NewNotFound(message string, underlying error) *AppError {
	return &AppError{Kind: NotFound, Message: message, Err: underlying}
}

// ErrorResponse is the JSON payload API clients receive for any failure.
type ErrorResponse struct {
	Error string `json:"error" example:"a description of the error"`
}

// genericStorageMessage is what clients see for storage failures instead of
// the internal description. The real message and cause stay in the logs.
const genericStorageMessage = "something went wrong, please try again later"

// ToResponse converts the error to its client-facing payload. Storage
// failures are masked behind a generic message; every other kind exposes its
// description verbatim.
func (e *AppError) ToResponse() ErrorResponse {
	if e.Kind == StorageFailure {
		return ErrorResponse{Error: genericStorageMessage}
	}
	return ErrorResponse{Error: e.Message}
}

// FromError attempts to interpret a generic error as an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Kind predicates. errors.As walks the wrap chain, so these work even when an
// AppError has been wrapped again with fmt.Errorf("%w", ...).

// IsStorageFailure reports whether err carries the StorageFailure kind.
func IsStorageFailure(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == StorageFailure
}

// IsAlreadyExists reports whether err carries the AlreadyExists kind.
func IsAlreadyExists(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == AlreadyExists
}

// IsInvalidArguments reports whether err carries the InvalidArguments kind.
func IsInvalidArguments(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == InvalidArguments
}

// IsNotFound reports whether err carries the NotFound kind.
func IsNotFound(err error) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == NotFound
}
