// Package gerr implements the error taxonomy of spec.md §7 as plain Go
// errors (sentinel + wrapping), replacing the source project's
// exception-driven control flow with explicit returns, per spec.md §9's
// design note. The wrapping idiom (fmt.Errorf("...: %w", sentinel)) matches
// teleivo-dot's error handling throughout its parser and CLI commands.
package gerr

import (
	"errors"
	"fmt"

	"github.com/danielcohen/geomkernel/geom"
)

// Sentinels for errors.Is matching against the taxonomy in spec.md §7.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupportedOp   = errors.New("unsupported operation")
	ErrTopology        = errors.New("topology exception")
	ErrCancelled       = errors.New("cancelled")
	ErrAssertion       = errors.New("internal assertion failed")
)

// TopologyError carries the witness coordinate of a robustness failure
// (spec.md §7: "Noder and labeller raise TopologyException carrying the
// offending coordinate").
type TopologyError struct {
	Coord geom.XY
	Msg   string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topology exception at %v: %s", e.Coord, e.Msg)
}

func (e *TopologyError) Unwrap() error { return ErrTopology }

// NewTopologyError builds a *TopologyError with a witness coordinate.
func NewTopologyError(at geom.XY, format string, args ...any) *TopologyError {
	return &TopologyError{Coord: at, Msg: fmt.Sprintf(format, args...)}
}

// InvalidArgumentError reports a malformed call (null input, mismatched
// dimension collection, malformed DE-9IM pattern).
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string { return "invalid argument: " + e.Msg }

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

func NewInvalidArgumentError(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedOperationError reports an operation with no overlay path for
// the given input (e.g. a curved geometry type reaching the overlay entry
// without being linearised first).
type UnsupportedOperationError struct {
	Msg string
}

func (e *UnsupportedOperationError) Error() string { return "unsupported operation: " + e.Msg }

func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOp }

func NewUnsupportedOperationError(format string, args ...any) *UnsupportedOperationError {
	return &UnsupportedOperationError{Msg: fmt.Sprintf(format, args...)}
}

// CancelledError reports a host-requested stop at a checkpoint
// (spec.md §5 "Cancellation").
type CancelledError struct {
	At string
}

func (e *CancelledError) Error() string { return "cancelled at checkpoint: " + e.At }

func (e *CancelledError) Unwrap() error { return ErrCancelled }

func NewCancelledError(at string) *CancelledError {
	return &CancelledError{At: at}
}

// AssertionFailed panics with an error wrapping ErrAssertion. Reserved for
// genuine internal invariant violations — never for bad user input
// (spec.md §7: "AssertionFailed | Internal invariant violated | Anywhere
// (a bug)").
func AssertionFailed(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrAssertion, fmt.Sprintf(format, args...)))
}

// AsTopology reports whether err (or something it wraps) is a
// *TopologyError, returning it if so.
func AsTopology(err error) (*TopologyError, bool) {
	var te *TopologyError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
