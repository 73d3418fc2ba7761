// Package formula holds the closed-form calculators: quadratic roots,
// Heron's triangle area, loan EMI and body-composition estimates.
//
// Each function validates its inputs into the calcerr taxonomy before
// evaluating the expression.
package formula

import (
	"math"

	"calcbox/internal/calc/calcerr"
)

// RootKind classifies the roots of a quadratic.
type RootKind string

const (
	TwoReal RootKind = "two_real"
	OneReal RootKind = "one_real"
	Complex RootKind = "complex"
)

// QuadraticRoots is the solution of ax² + bx + c = 0.
//
// For TwoReal, Root1 < Root2. For OneReal, Root1 == Root2. For Complex, the
// roots are Real ± Imag·i and Root1/Root2 are nil. Fields a kind does not set
// are nil so that a zero root still appears in JSON.
type QuadraticRoots struct {
	Discriminant float64  `json:"discriminant"`
	Kind         RootKind `json:"kind"`
	Root1        *float64 `json:"root1,omitempty"`
	Root2        *float64 `json:"root2,omitempty"`
	Real         *float64 `json:"real,omitempty"`
	Imag         *float64 `json:"imag,omitempty"`
}

// SolveQuadratic solves ax² + bx + c = 0. a == 0 is not a quadratic and is
// rejected rather than solved as a linear equation.
func SolveQuadratic(a, b, c float64) (QuadraticRoots, error) {
	if err := finite(a, b, c); err != nil {
		return QuadraticRoots{}, err
	}
	if a == 0 {
		return QuadraticRoots{}, calcerr.OutOfDomain("coefficient a must not be zero (not a quadratic equation)")
	}
	d := b*b - 4*a*c
	if err := representable(d); err != nil {
		return QuadraticRoots{}, err
	}
	r := QuadraticRoots{Discriminant: d}
	switch {
	case d > 0:
		sq := math.Sqrt(d)
		x1, x2 := (-b-sq)/(2*a), (-b+sq)/(2*a)
		if err := representable(x1, x2); err != nil {
			return QuadraticRoots{}, err
		}
		r.Kind, r.Root1, r.Root2 = TwoReal, ptr(noNegZero(math.Min(x1, x2))), ptr(noNegZero(math.Max(x1, x2)))
	case d == 0:
		x := noNegZero(-b / (2 * a))
		if err := representable(x); err != nil {
			return QuadraticRoots{}, err
		}
		r.Kind, r.Root1, r.Root2 = OneReal, ptr(x), ptr(x)
	default:
		re, im := noNegZero(-b/(2*a)), math.Abs(math.Sqrt(-d)/(2*a))
		if err := representable(re, im); err != nil {
			return QuadraticRoots{}, err
		}
		r.Kind, r.Real, r.Imag = Complex, ptr(re), ptr(im)
	}
	return r, nil
}

func ptr(v float64) *float64 { return &v }

func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// representable rejects results that overflowed to ±Inf or collapsed to NaN.
func representable(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return calcerr.Bounds("result is too large to represent")
		}
	}
	return nil
}

func finite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return calcerr.Missing("every input must be a number")
		}
	}
	return nil
}

func positive(names []string, vs ...float64) error {
	if err := finite(vs...); err != nil {
		return err
	}
	for i, v := range vs {
		if err := calcerr.Positive(names[i], v); err != nil {
			return err
		}
	}
	return nil
}
