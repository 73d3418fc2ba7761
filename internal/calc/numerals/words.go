package numerals

import (
	"strings"

	"calcbox/internal/calc/calcerr"
)

// MaxWords is the largest magnitude ToWords renders.
const MaxWords int64 = 999_999_999_999_999

var (
	ones = []string{
		"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tens   = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	scales = []string{"", "thousand", "million", "billion", "trillion"}
)

// ToWords renders n in English: 1234 is "one thousand two hundred
// thirty-four". Magnitudes past the trillions are rejected.
func ToWords(n int64) (string, error) {
	if n == 0 {
		return "zero", nil
	}
	if n > MaxWords || n < -MaxWords {
		return "", calcerr.Bounds("numbers beyond %d are not supported", MaxWords)
	}
	neg := n < 0
	if neg {
		n = -n
	}

	var groups []string
	for scale := 0; n > 0; scale++ {
		g := int(n % 1000)
		n /= 1000
		if g == 0 {
			continue
		}
		w := groupWords(g)
		if scales[scale] != "" {
			w += " " + scales[scale]
		}
		groups = append(groups, w)
	}
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	out := strings.Join(groups, " ")
	if neg {
		out = "minus " + out
	}
	return out, nil
}

// groupWords renders 1..999.
func groupWords(n int) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, ones[h]+" hundred")
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 20:
		parts = append(parts, ones[rest])
	case rest%10 == 0:
		parts = append(parts, tens[rest/10])
	default:
		parts = append(parts, tens[rest/10]+"-"+ones[rest%10])
	}
	return strings.Join(parts, " ")
}
