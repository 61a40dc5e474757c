// Package errors provides centralized error definitions and error handling utilities
// for spotlight. It defines the sentinel errors of the attention core, the
// MisuseError type that wraps them with the failing operation, and
// classification helpers.
//
// # Error Taxonomy
//
// Misuse errors report a structural integration bug, such as constructing a
// claimant outside any attention scope. They are surfaced immediately and
// never retried:
//
//	c, err := attention.NewClaimant(ctx, reset, ref)
//	if errors.IsMisuse(err) { ... }
//
// Everything else the core encounters (releasing an already-evicted claim,
// clicking when nothing is claimed, a boundary that is not rendered) is a
// tolerated no-op and never produces an error value.
//
// # Checking errors
//
//	if errors.Is(err, errors.ErrNoScope) { ... }
//
//	var misuse *errors.MisuseError
//	if errors.As(err, &misuse) {
//	    fmt.Println(misuse.Op)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityError is for errors that indicate a real problem.
	SeverityError Severity = iota
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Attention scope sentinel errors
var (
	// ErrNoScope indicates that no attention scope is reachable from the caller.
	ErrNoScope = New("no attention scope in context")
	// ErrScopeClosed indicates that the attention scope has already been torn down.
	ErrScopeClosed = New("attention scope is closed")
	// ErrNoBoundary indicates a claimant was created with a nil boundary.
	// Callers that manage their own outside clicks pass attention.NoBoundary.
	ErrNoBoundary = New("boundary is nil; pass attention.NoBoundary to opt out")
	// ErrNoReset indicates a claimant was created without a reset callback.
	ErrNoReset = New("reset callback is nil")
)

// -----------------------------------------------------------------------------
// MisuseError
// -----------------------------------------------------------------------------

// MisuseError reports an API call that can never succeed as written.
//
// Example:
//
//	err := errors.NewMisuseError("attention.NewClaimant", errors.ErrNoScope)
//	fmt.Println(err) // "misuse [op=attention.NewClaimant]: no attention scope in context"
type MisuseError struct {
	Op  string
	Err error
}

// NewMisuseError creates a new MisuseError for the named operation.
func NewMisuseError(op string, cause error) *MisuseError {
	return &MisuseError{Op: op, Err: cause}
}

// Error returns the formatted error message.
func (e *MisuseError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("misuse: %v", e.Err)
	}
	return fmt.Sprintf("misuse [op=%s]: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *MisuseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is any *MisuseError.
func (e *MisuseError) Is(target error) bool {
	_, ok := target.(*MisuseError)
	return ok
}

// Severity returns SeverityCritical; misuse breaks the app-wide guarantee.
func (e *MisuseError) Severity() Severity {
	return SeverityCritical
}

// -----------------------------------------------------------------------------
// Classification
// -----------------------------------------------------------------------------

// IsMisuse reports whether err is, or wraps, a MisuseError.
func IsMisuse(err error) bool {
	var m *MisuseError
	return As(err, &m)
}

// GetSeverity returns the severity of err, or SeverityError when err carries none.
func GetSeverity(err error) Severity {
	var s interface{ Severity() Severity }
	if As(err, &s) {
		return s.Severity()
	}
	return SeverityError
}
