// Package calcerr defines the error taxonomy shared by every calculator.
//
// Calculators never panic on user input. They return one of three kinds:
//
//   - KindMissing: an input is absent or not a number; callers show no result.
//   - KindOutOfDomain: the input is well-formed but outside what the formula
//     accepts (Roman numeral above 3999, a digit invalid for the radix, a
//     degenerate triangle, a zero quadratic coefficient, a reversed date range).
//   - KindBounds: the input exceeds a representation limit (number-to-words
//     above the trillions, radix strings past the length cap).
package calcerr

import (
	"errors"
	"fmt"
)

// Kind classifies a calculator failure.
type Kind int

const (
	KindMissing Kind = iota + 1
	KindOutOfDomain
	KindBounds
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindOutOfDomain:
		return "out_of_domain"
	case KindBounds:
		return "bounds"
	default:
		return "unknown"
	}
}

// Error is a calculator failure with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Missing reports an absent or non-numeric input.
func Missing(format string, args ...any) error {
	return &Error{Kind: KindMissing, Message: fmt.Sprintf(format, args...)}
}

// OutOfDomain reports an input the formula does not accept.
func OutOfDomain(format string, args ...any) error {
	return &Error{Kind: KindOutOfDomain, Message: fmt.Sprintf(format, args...)}
}

// Bounds reports an input past a representation limit.
func Bounds(format string, args ...any) error {
	return &Error{Kind: KindBounds, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the taxonomy kind of err, or 0 if err is nil or not a
// calculator error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// Is reports whether err is a calculator error of kind k.
func Is(err error, k Kind) bool { return KindOf(err) == k }
