// Package calculator runs catalog tools.
//
// Every runnable catalog slug maps to a declared parameter list and a run
// function that parses its string arguments, calls the matching calc package
// and renders a display string. Input problems surface as Outcome errors in
// the missing / out_of_domain / bounds taxonomy; they are never Go errors.
package calculator
