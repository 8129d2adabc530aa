package layout

import (
	"errors"
	"fmt"
)

// ErrNilElement is reported when a nil element is passed to a tree mutation.
var ErrNilElement = errors.New("nil element")

// ArgumentError reports an invalid argument passed to a tree mutation or parse call.
type ArgumentError struct {
	Op     string // operation that rejected the argument, e.g. "AddChild"
	Arg    string // argument name
	Reason string
	Err    error // optional underlying cause
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("%s: invalid argument %s", e.Op, e.Arg)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// FormatError reports text that does not match the grid-length grammar.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid grid length %q", e.Input)
	}
	return fmt.Sprintf("invalid grid length %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
