// Package errors provides error handling for xmatrix.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'xmatrix setup <matrix.xlsx>' first")
//
//	// Check errors
//	if errors.Is(err, errors.ErrParseFailure) {
//	    // handle parse failure
//	}
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
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is           = crdb.Is
	IsAny        = crdb.IsAny
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	Mark         = crdb.Mark
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Sentinel errors for the lookup pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the kind.
var (
	// ErrStoreUnavailable indicates the record store has not been built yet
	ErrStoreUnavailable = New("record store unavailable")

	// ErrParseFailure indicates the intent parser returned no usable payload
	ErrParseFailure = New("intent parse failure")

	// ErrUnknownLookupKind indicates an intent with an unrecognized lookup kind
	ErrUnknownLookupKind = New("unknown lookup kind")

	// ErrSheetMissing indicates a configured source sheet is absent from the
	// workbook. One missing sheet is skipped with a warning; a workbook with
	// none of the configured sheets fails with this error.
	ErrSheetMissing = New("source sheet missing")

	// ErrColumnMissing indicates a processed sheet lacks a required column.
	// Fatal: the whole import run aborts rather than producing malformed rows.
	ErrColumnMissing = New("required column missing")
)

// IsStoreUnavailable checks if an error is or wraps ErrStoreUnavailable
func IsStoreUnavailable(err error) bool {
	return err != nil && Is(err, ErrStoreUnavailable)
}

// IsParseFailure checks if an error is or wraps ErrParseFailure
func IsParseFailure(err error) bool {
	return err != nil && Is(err, ErrParseFailure)
}

// IsColumnMissing checks if an error is or wraps ErrColumnMissing
func IsColumnMissing(err error) bool {
	return err != nil && Is(err, ErrColumnMissing)
}
