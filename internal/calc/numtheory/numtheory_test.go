package numtheory_test

import (
	"math"
	"slices"
	"testing"

	"calcbox/internal/calc/calcerr"
	"calcbox/internal/calc/numtheory"
)

func TestGCDLCMIdentity(t *testing.T) {
	for a := int64(1); a <= 60; a++ {
		for b := int64(1); b <= 60; b++ {
			l, err := numtheory.LCM(a, b)
			if err != nil {
				t.Fatal(err)
			}
			if numtheory.GCD(a, b)*l != a*b {
				t.Fatalf("gcd(%d,%d)*lcm != a*b", a, b)
			}
		}
	}
}

func TestGCDAll_LCMAll(t *testing.T) {
	g, err := numtheory.GCDAll([]int64{48, 180, 66})
	if err != nil || g != 6 {
		t.Fatalf("GCDAll = %d, %v", g, err)
	}
	l, err := numtheory.LCMAll([]int64{4, 6, 10})
	if err != nil || l != 60 {
		t.Fatalf("LCMAll = %d, %v", l, err)
	}
	if _, err := numtheory.GCDAll([]int64{5}); !calcerr.Is(err, calcerr.KindMissing) {
		t.Fatalf("single input: %v", err)
	}
	if _, err := numtheory.LCMAll([]int64{5, 0}); !calcerr.Is(err, calcerr.KindOutOfDomain) {
		t.Fatalf("zero input: %v", err)
	}
	if _, err := numtheory.LCM(math.MaxInt64, math.MaxInt64-1); !calcerr.Is(err, calcerr.KindBounds) {
		t.Fatalf("overflow: %v", err)
	}
}

func TestPrimes(t *testing.T) {
	for n, want := range map[int64]bool{0: false, 1: false, 2: true, 3: true, 4: false, 25: false, 97: true, 7919: true, 7917: false} {
		if got := numtheory.IsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v", n, got)
		}
	}
	f, err := numtheory.PrimeFactors(360)
	if err != nil || !slices.Equal(f, []int64{2, 2, 2, 3, 3, 5}) {
		t.Fatalf("PrimeFactors(360) = %v, %v", f, err)
	}
	ps, err := numtheory.PrimesUpTo(30)
	if err != nil || !slices.Equal(ps, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}) {
		t.Fatalf("PrimesUpTo(30) = %v, %v", ps, err)
	}
}

func TestFactorial(t *testing.T) {
	f, err := numtheory.Factorial(20)
	if err != nil || f.String() != "2432902008176640000" {
		t.Fatalf("20! = %v, %v", f, err)
	}
	if f, _ := numtheory.Factorial(0); f.Int64() != 1 {
		t.Fatalf("0! = %v", f)
	}
	if _, err := numtheory.Factorial(numtheory.MaxFactorial + 1); !calcerr.Is(err, calcerr.KindBounds) {
		t.Fatalf("bounds: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	s, err := numtheory.Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != 5 || s.Median != 4.5 || s.StdDev != 2 || s.Range != 7 {
		t.Fatalf("got %+v", s)
	}
	if !slices.Equal(s.Modes, []float64{4}) {
		t.Fatalf("modes = %v", s.Modes)
	}
	s, _ = numtheory.Summarize([]float64{1, 2, 3})
	if len(s.Modes) != 0 {
		t.Fatalf("no mode expected, got %v", s.Modes)
	}
	if _, err := numtheory.Summarize(nil); !calcerr.Is(err, calcerr.KindMissing) {
		t.Fatalf("empty: %v", err)
	}
}
