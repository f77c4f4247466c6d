// Package solver orchestrates the two-phase, per-color-level walk that
// turns a contribution grid into a single closed route: a sequence of
// poses starting and ending at the snake's initial position, whose head
// eats every originally non-empty cell along the way.
package solver

import (
	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/snake"
)

// Route is the solved path: every pose the snake occupies, in order,
// starting with its initial pose and (on success) ending back at it.
type Route struct {
	Poses []snake.Snake
}

// Error wraps a failure with whatever partial route had been built before
// the failure occurred, so a caller can still render or inspect progress.
type Error struct {
	Err     *errs.Error
	Partial *Route
}

func (e *Error) Error() string { return e.Err.Error() }

// Unwrap exposes the wrapped *errs.Error as the next link in the chain, so
// callers doing errs.Is(err, someKind) on a *solver.Error can still reach
// the *errs.Error itself via errors.As.
func (e *Error) Unwrap() error { return e.Err }

func newError(op string, kind errs.Kind, err error, partial *Route, fields map[string]any) *Error {
	return &Error{Err: errs.Wrap(op, kind, err, fields), Partial: partial}
}
