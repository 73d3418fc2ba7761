package calcerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("run bmi: %w", OutOfDomain("height must be greater than zero"))
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 0},
		{"missing", Missing("x is required"), KindMissing},
		{"bounds", Bounds("too big"), KindBounds},
		{"wrapped", wrapped, KindOutOfDomain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf = %v, want %v", got, tc.want)
			}
		})
	}
	if !Is(wrapped, KindOutOfDomain) || Is(wrapped, KindMissing) {
		t.Fatal("Is mismatch")
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindMissing:     "missing",
		KindOutOfDomain: "out_of_domain",
		KindBounds:      "bounds",
		Kind(0):         "unknown",
	} {
		if k.String() != want {
			t.Errorf("%d: %q", k, k.String())
		}
	}
}

func TestParseFloat(t *testing.T) {
	if v, err := ParseFloat("n", " 1,234.5 "); err != nil || v != 1234.5 {
		t.Fatalf("%v, %v", v, err)
	}
	for _, in := range []string{"", "abc", "NaN", "Inf"} {
		if _, err := ParseFloat("n", in); !Is(err, KindMissing) {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestParseInt(t *testing.T) {
	if v, err := ParseInt("n", "42"); err != nil || v != 42 {
		t.Fatalf("%v, %v", v, err)
	}
	if _, err := ParseInt("n", "1.5"); !Is(err, KindMissing) {
		t.Errorf("fraction: %v", err)
	}
	if _, err := ParseInt("n", "99999999999999999999"); !Is(err, KindBounds) {
		t.Errorf("overflow: %v", err)
	}
	if err := Positive("n", 0); !Is(err, KindOutOfDomain) {
		t.Errorf("positive: %v", err)
	}
}
