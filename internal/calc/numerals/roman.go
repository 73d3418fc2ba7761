// Package numerals converts integers to and from Roman numerals and renders
// integers as English words.
package numerals

import (
	"strings"

	"calcbox/internal/calc/calcerr"
)

const (
	MinRoman = 1
	MaxRoman = 3999
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

var romanValues = map[rune]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

// ToRoman renders n in standard subtractive notation. Only 1 to 3999 have a
// standard form.
func ToRoman(n int) (string, error) {
	if n < MinRoman || n > MaxRoman {
		return "", calcerr.OutOfDomain("Roman numerals are limited to %d-%d", MinRoman, MaxRoman)
	}
	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			b.WriteString(e.symbol)
			n -= e.value
		}
	}
	return b.String(), nil
}

// FromRoman parses a Roman numeral, case-insensitively. A symbol smaller than
// its successor is subtracted, otherwise added. Non-canonical spellings such
// as "IIII" or "IC" are rejected.
func FromRoman(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, calcerr.Missing("Roman numeral is required")
	}
	runes := []rune(s)
	total := 0
	for i, r := range runes {
		v, ok := romanValues[r]
		if !ok {
			return 0, calcerr.OutOfDomain("invalid Roman numeral symbol %q", r)
		}
		if i+1 < len(runes) && v < romanValues[runes[i+1]] {
			total -= v
		} else {
			total += v
		}
	}
	if canonical, err := ToRoman(total); err != nil || canonical != s {
		return 0, calcerr.OutOfDomain("%q is not a valid Roman numeral", s)
	}
	return total, nil
}
