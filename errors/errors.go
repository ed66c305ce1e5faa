// Package errors provides error handling for milassist.
//
// This package re-exports github.com/cockroachdb/errors so callers get stack
// traces, wrapping, hints and details from one import:
//
//	if err := geocoder.Geocode(ctx, name); err != nil {
//	    return errors.Wrapf(err, "failed to locate %q", name)
//	}
//
//	return errors.WithHint(errors.ErrInvalidSIDC, "a SIDC is exactly 20 digits")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Common sentinel errors. Wrap them with errors.Wrap() to add context while
// keeping errors.Is() working.
var (
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates the request was malformed or invalid
	ErrInvalidRequest = New("invalid request")

	// ErrServiceUnavailable indicates a required service is not configured or reachable
	ErrServiceUnavailable = New("service unavailable")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = New("operation timed out")
)

// Domain sentinels.
var (
	// ErrInvalidSIDC indicates a code string is not a well-formed 20 digit SIDC
	ErrInvalidSIDC = New("invalid SIDC")

	// ErrLocationNotFound indicates the geocoder returned no match for a place name
	ErrLocationNotFound = New("location not found")

	// ErrModelBusy indicates the LLM provider is overloaded (HTTP 503 and friends)
	ErrModelBusy = New("model busy")

	// ErrNoCoordinates indicates a symbol feature was produced without a position
	ErrNoCoordinates = New("symbol data missing coordinates")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound or ErrLocationNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && IsAny(err, ErrNotFound, ErrLocationNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest or ErrInvalidSIDC
func IsInvalidRequestError(err error) bool {
	return err != nil && IsAny(err, ErrInvalidRequest, ErrInvalidSIDC)
}

// IsServiceUnavailableError checks if an error is or wraps ErrServiceUnavailable or ErrModelBusy
func IsServiceUnavailableError(err error) bool {
	return err != nil && IsAny(err, ErrServiceUnavailable, ErrModelBusy)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrNotFound)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidRequest)
}
