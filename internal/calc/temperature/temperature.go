// Package temperature converts between Celsius, Fahrenheit, Kelvin and
// Rankine. The scales are affine, so conversion pivots through Celsius
// instead of using a shared factor table.
package temperature

import (
	"math"
	"strings"

	"calcbox/internal/calc/calcerr"
)

// Scale is a temperature scale.
type Scale string

const (
	Celsius    Scale = "C"
	Fahrenheit Scale = "F"
	Kelvin     Scale = "K"
	Rankine    Scale = "R"
)

// Scales lists the supported scales in display order.
var Scales = []Scale{Celsius, Fahrenheit, Kelvin, Rankine}

// Name returns the display name of the scale.
func (s Scale) Name() string {
	switch s {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "Kelvin"
	case Rankine:
		return "Rankine"
	}
	return string(s)
}

// ParseScale accepts a scale symbol or name in any case ("f", "°F", "kelvin").
func ParseScale(s string) (Scale, error) {
	s = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "°"))
	switch s {
	case "C", "CELSIUS":
		return Celsius, nil
	case "F", "FAHRENHEIT":
		return Fahrenheit, nil
	case "K", "KELVIN":
		return Kelvin, nil
	case "R", "RANKINE":
		return Rankine, nil
	case "":
		return "", calcerr.Missing("temperature scale is required")
	}
	return "", calcerr.OutOfDomain("unknown temperature scale %q", s)
}

// Convert converts v from one scale to another.
func Convert(v float64, from, to Scale) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerr.Missing("temperature must be a number")
	}
	var c float64
	switch from {
	case Celsius:
		c = v
	case Fahrenheit:
		c = (v - 32) * 5 / 9
	case Kelvin:
		c = v - 273.15
	case Rankine:
		c = (v - 491.67) * 5 / 9
	default:
		return 0, calcerr.OutOfDomain("unknown temperature scale %q", from)
	}
	var out float64
	switch to {
	case Celsius:
		out = c
	case Fahrenheit:
		out = c*9/5 + 32
	case Kelvin:
		out = c + 273.15
	case Rankine:
		out = c*9/5 + 491.67
	default:
		return 0, calcerr.OutOfDomain("unknown temperature scale %q", to)
	}
	if math.IsInf(out, 0) {
		return 0, calcerr.Bounds("temperature is too large to convert")
	}
	return out, nil
}
