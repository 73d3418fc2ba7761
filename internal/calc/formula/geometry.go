package formula

import (
	"math"

	"calcbox/internal/calc/calcerr"
)

// Triangle is the result of TriangleArea.
type Triangle struct {
	SemiPerimeter float64 `json:"semi_perimeter"`
	Perimeter     float64 `json:"perimeter"`
	Area          float64 `json:"area"`
}

// TriangleArea applies Heron's formula after checking the triangle
// inequality. Degenerate triangles (a+b == c) are rejected.
func TriangleArea(a, b, c float64) (Triangle, error) {
	if err := positive([]string{"side a", "side b", "side c"}, a, b, c); err != nil {
		return Triangle{}, err
	}
	if !(a+b > c && a+c > b && b+c > a) {
		return Triangle{}, calcerr.OutOfDomain("sides %g, %g, %g do not form a triangle", a, b, c)
	}
	s := (a + b + c) / 2
	t := Triangle{
		SemiPerimeter: s,
		Perimeter:     a + b + c,
		Area:          math.Sqrt(s * (s - a) * (s - b) * (s - c)),
	}
	if err := representable(t.SemiPerimeter, t.Perimeter, t.Area); err != nil {
		return Triangle{}, err
	}
	return t, nil
}
