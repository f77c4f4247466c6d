// Package errs defines the error taxonomy shared by the grid/snake/solver
// packages. It has no dependency on grid or snake so that any of them can
// import it without creating a cycle.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies what went wrong, independent of which component raised it.
type Kind string

const (
	// KindBounds means a coordinate or index fell outside a valid range.
	KindBounds Kind = "bounds"
	// KindCorruption means an internal invariant was violated by stored data
	// (e.g. a grid cell holding a color outside [0, 9]).
	KindCorruption Kind = "corruption"
	// KindInvariant means a caller-visible precondition was violated.
	KindInvariant Kind = "invariant"
	// KindNotFound means a requested entity does not exist.
	KindNotFound Kind = "not_found"
	// KindUnreachable means no path exists between two reachable-seeming
	// points.
	KindUnreachable Kind = "unreachable"
	// KindNoReturn means a loop-closing path back to the start could not be
	// found after all cells were consumed.
	KindNoReturn Kind = "no_return"
	// KindCancelled means the caller's context was cancelled mid-solve.
	KindCancelled Kind = "cancelled"
)

// Error is a typed, wrapped error carrying a Kind and optional structured
// fields for diagnostics.
type Error struct {
	Kind   Kind
	Op     string
	Fields map[string]any
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an *Error with no wrapped cause.
func New(op string, kind Kind, fields map[string]any) *Error {
	return &Error{Op: op, Kind: kind, Fields: fields}
}

// Wrap creates an *Error that wraps an existing error.
func Wrap(op string, kind Kind, err error, fields map[string]any) *Error {
	return &Error{Op: op, Kind: kind, Fields: fields, Err: err}
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
