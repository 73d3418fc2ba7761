package units_test

import (
	"math"
	"testing"

	"calcbox/internal/calc/calcerr"
	"calcbox/internal/calc/units"
)

func approx(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestConvert_RoundTripAllPairs(t *testing.T) {
	values := []float64{0.001, 1, 2.5, 42, 1234.5678, 1e9}
	for _, tbl := range units.Tables() {
		for _, a := range tbl.Units {
			for _, b := range tbl.Units {
				for _, v := range values {
					there, err := units.Convert(v, a.Key, b.Key, tbl)
					if err != nil {
						t.Fatalf("%s %s->%s: %v", tbl.Family, a.Key, b.Key, err)
					}
					back, err := units.Convert(there, b.Key, a.Key, tbl)
					if err != nil {
						t.Fatalf("%s %s->%s: %v", tbl.Family, b.Key, a.Key, err)
					}
					if !approx(back, v) {
						t.Fatalf("%s %v %s->%s->%s = %v", tbl.Family, v, a.Key, b.Key, a.Key, back)
					}
				}
			}
		}
	}
}

func TestConvert_KnownFactors(t *testing.T) {
	cases := []struct {
		family, from, to string
		in, want         float64
	}{
		{"area", "acre", "m2", 1, 4046.86},
		{"volume", "gal", "l", 1, 3.78541},
		{"length", "km", "m", 2.5, 2500},
		{"length", "ft", "in", 1, 12},
		{"weight", "kg", "g", 1, 1000},
		{"data", "GB", "MB", 1, 1024},
		{"time", "h", "min", 2, 120},
		{"time", "century", "year", 1, 100},
		{"time", "decade", "ms", 1, 3.154e11},
	}
	for _, c := range cases {
		tbl, err := units.Lookup(c.family)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", c.family, err)
		}
		got, err := units.Convert(c.in, c.from, c.to, tbl)
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if !approx(got, c.want) {
			t.Errorf("%v %s -> %s = %v, want %v", c.in, c.from, c.to, got, c.want)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	tbl, _ := units.Lookup("length")
	if _, err := units.Convert(1e306, "km", "mm", tbl); !calcerr.Is(err, calcerr.KindBounds) {
		t.Fatalf("overflow: want bounds, got %v", err)
	}
	if _, err := units.Convert(math.NaN(), "m", "km", tbl); !calcerr.Is(err, calcerr.KindMissing) {
		t.Fatalf("NaN: want missing, got %v", err)
	}
	if _, err := units.Convert(1, "parsec", "km", tbl); !calcerr.Is(err, calcerr.KindOutOfDomain) {
		t.Fatalf("unknown unit: want out_of_domain, got %v", err)
	}
}

func TestTables_Validate(t *testing.T) {
	for _, tbl := range units.Tables() {
		if err := tbl.Validate(); err != nil {
			t.Errorf("%s: %v", tbl.Family, err)
		}
	}
	bad := units.Table{Family: "x", Base: "a", Units: []units.Definition{{Key: "a", Factor: 2}}}
	if err := bad.Validate(); err == nil {
		t.Fatal("base factor != 1 should fail validation")
	}
}

func TestFamilyOf(t *testing.T) {
	tbl, err := units.FamilyOf("mi", "km")
	if err != nil || tbl.Family != "length" {
		t.Fatalf("FamilyOf(mi, km) = %q, %v", tbl.Family, err)
	}
	if _, err := units.FamilyOf("kg", "km"); err == nil {
		t.Fatal("mixed families should fail")
	}
}
