package calcerr

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseFloat parses a user-supplied number. Blank, non-numeric, NaN and
// infinite inputs are all KindMissing.
func ParseFloat(name, s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, Missing("%s is required", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Missing("%s must be a number", name)
	}
	return v, nil
}

// ParseInt parses a user-supplied integer.
func ParseInt(name, s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, Missing("%s is required", name)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, Bounds("%s is too large", name)
		}
		return 0, Missing("%s must be a whole number", name)
	}
	return v, nil
}

// Positive rejects values that are not strictly greater than zero.
func Positive(name string, v float64) error {
	if v <= 0 {
		return OutOfDomain("%s must be greater than zero", name)
	}
	return nil
}
