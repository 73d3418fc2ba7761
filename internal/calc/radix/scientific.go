package radix

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"calcbox/internal/calc/calcerr"
)

// Scientific is m × 10^e with 1 <= |m| < 10, or 0 × 10^0.
type Scientific struct {
	Mantissa float64 `json:"mantissa"`
	Exponent int     `json:"exponent"`
}

// String renders the value as "1.5 × 10^3".
func (s Scientific) String() string {
	return fmt.Sprintf("%s × 10^%d", strconv.FormatFloat(s.Mantissa, 'f', -1, 64), s.Exponent)
}

// E renders the value in e-notation ("1.5e3").
func (s Scientific) E() string {
	return fmt.Sprintf("%se%d", strconv.FormatFloat(s.Mantissa, 'f', -1, 64), s.Exponent)
}

// ToScientific splits x into mantissa and exponent, exponent = floor(log10|x|).
// The mantissa keeps 15 significant digits.
func ToScientific(x float64) (Scientific, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Scientific{}, calcerr.Missing("value must be a number")
	}
	if x == 0 {
		return Scientific{}, nil
	}
	// Decimal formatting keeps 1 <= |m| < 10 even for subnormals, where
	// dividing by a power of ten loses the invariant.
	str := strconv.FormatFloat(x, 'e', 14, 64)
	i := strings.LastIndexByte(str, 'e')
	m, err := strconv.ParseFloat(str[:i], 64)
	if err != nil {
		return Scientific{}, err
	}
	e, err := strconv.Atoi(str[i+1:])
	if err != nil {
		return Scientific{}, err
	}
	return Scientific{Mantissa: m, Exponent: e}, nil
}

var sciPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d*)?|[+-]?\.\d+)\s*(?:[eE]\s*([+-]?\d+)|(?:[x×*·]\s*10\s*(?:\^|\*\*)\s*\(?\s*([+-]?\d+)\s*\)?))?$`)

// ToStandard parses "1.5e3", "1.5 × 10^3", "1.5*10^-3" or a plain number.
func ToStandard(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, calcerr.Missing("number is required")
	}
	m := sciPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, calcerr.OutOfDomain("%q is not in scientific notation", s)
	}
	mant, err := strconv.ParseFloat(m[1], 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, calcerr.Bounds("value overflows a double")
	}
	if err != nil {
		return 0, calcerr.OutOfDomain("invalid mantissa %q", m[1])
	}
	expStr := m[2]
	if expStr == "" {
		expStr = m[3]
	}
	if expStr == "" {
		return mant, nil
	}
	if _, err := strconv.Atoi(expStr); err != nil {
		return 0, calcerr.Bounds("exponent %q is too large", expStr)
	}
	if mant == 0 {
		return 0, nil
	}
	// Scaling in decimal avoids 10^e overflowing on its own.
	v, err := strconv.ParseFloat(m[1]+"e"+expStr, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerr.Bounds("value overflows a double")
	}
	return v, nil
}
