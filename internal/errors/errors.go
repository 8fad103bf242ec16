// Package errors provides the Kind-tagged error values used across the
// engine. It is a thin layer over github.com/pkg/errors: Wrapf and Errorf
// pass through to that package, and the Kind-tagged values built by New,
// Newf and Wrap (which record no stack trace) let callers distinguish
// InvalidInput from DivisionByZero from NotInvertible without string
// matching.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// Other is the zero value: an error with no specific Kind attached.
	Other Kind = iota
	// InvalidInput is raised by FromHex (string too long) and StrToPoint
	// (t outside [0, (q-1)/2]).
	InvalidInput
	// DivisionByZero is raised by DivRem and Mod when the divisor is zero.
	DivisionByZero
	// NotInvertible is raised by Inv when gcd(a, m) != 1.
	NotInvertible
	// Overflow marks a shift-left result that would exceed Capacity. It is
	// diagnostic only: no algorithmic decision in this engine depends on it,
	// and ShlBits never returns it as a failure (see bigint.ShlBits).
	Overflow
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case DivisionByZero:
		return "division by zero"
	case NotInvertible:
		return "not invertible"
	case Overflow:
		return "overflow"
	default:
		return "error"
	}
}

// Error is a Kind-tagged error. It implements error and Unwrap, so
// errors.Is/errors.As from the standard library and from pkg/errors both
// work against it.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// KindOf reports the classification of err, or Other if err is nil or was not
// produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if pkgerrors.As(err, &e) {
		return e.kind
	}
	return Other
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// New returns a new Kind-tagged error with the given message.
func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

// Newf returns a new Kind-tagged error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a Kind and a message, preserving err as the cause.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, msg: msg, err: err}
}

// Generic, non-Kind-tagged helpers re-exported from pkg/errors for call
// sites that just need an annotated error without a Kind (mirrors how the
// teacher's internal/errors package re-exports errors.Wrap/errors.Errorf).

// Wrapf annotates err with a formatted message, without a Kind.
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Errorf formats an error without a Kind.
func Errorf(format string, args ...interface{}) error {
	return pkgerrors.Errorf(format, args...)
}
