// Package radix converts non-negative integers between bases 2, 8, 10 and 16
// and between standard and scientific notation.
//
// Integers are arbitrary precision; the only limit is the input length.
package radix

import (
	"math/big"
	"strings"

	"calcbox/internal/calc/calcerr"
)

// MaxDigits caps the accepted input length.
const MaxDigits = 1024

// Radices lists the supported bases.
var Radices = []int{2, 8, 10, 16}

// Name returns the display name of a supported base.
func Name(base int) string {
	switch base {
	case 2:
		return "binary"
	case 8:
		return "octal"
	case 10:
		return "decimal"
	case 16:
		return "hexadecimal"
	}
	return ""
}

// ParseRadix accepts a number or a name ("hex", "binary").
func ParseRadix(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "bin", "binary":
		return 2, nil
	case "8", "oct", "octal":
		return 8, nil
	case "10", "dec", "decimal":
		return 10, nil
	case "16", "hex", "hexadecimal":
		return 16, nil
	case "":
		return 0, calcerr.Missing("base is required")
	}
	return 0, calcerr.OutOfDomain("unsupported base %q (use 2, 8, 10 or 16)", s)
}

// Parse reads input as a non-negative integer in base from. Surrounding
// whitespace, underscores and a matching 0b/0o/0x prefix are accepted.
func Parse(input string, from int) (*big.Int, error) {
	if Name(from) == "" {
		return nil, calcerr.OutOfDomain("unsupported base %d", from)
	}
	s := strings.ReplaceAll(strings.TrimSpace(input), "_", "")
	s = trimPrefix(s, from)
	if s == "" {
		return nil, calcerr.Missing("number is required")
	}
	if len(s) > MaxDigits {
		return nil, calcerr.Bounds("number is longer than %d digits", MaxDigits)
	}
	for _, r := range s {
		if digitValue(r) >= from {
			return nil, calcerr.OutOfDomain("invalid digit %q for base %d", r, from)
		}
	}
	n, ok := new(big.Int).SetString(s, from)
	if !ok {
		return nil, calcerr.OutOfDomain("invalid number %q for base %d", input, from)
	}
	return n, nil
}

// Convert converts input from base from to base to. Output is lowercase
// without a prefix.
func Convert(input string, from, to int) (string, error) {
	if Name(to) == "" {
		return "", calcerr.OutOfDomain("unsupported base %d", to)
	}
	n, err := Parse(input, from)
	if err != nil {
		return "", err
	}
	return n.Text(to), nil
}

// ConvertAll renders input in every supported base, keyed by base.
func ConvertAll(input string, from int) (map[int]string, error) {
	n, err := Parse(input, from)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(Radices))
	for _, r := range Radices {
		out[r] = n.Text(r)
	}
	return out, nil
}

func trimPrefix(s string, base int) string {
	if len(s) < 2 || s[0] != '0' {
		return s
	}
	p := s[1] | 0x20
	if (base == 2 && p == 'b') || (base == 8 && p == 'o') || (base == 16 && p == 'x') {
		return s[2:]
	}
	return s
}

// digitValue returns the value of r as a base-36 digit, or 99.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	}
	return 99
}
