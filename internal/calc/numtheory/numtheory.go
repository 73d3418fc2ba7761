// Package numtheory provides GCD/LCM, primality, factorials and descriptive
// statistics.
package numtheory

import (
	"math/big"
	"math/bits"

	"calcbox/internal/calc/calcerr"
)

const (
	// MaxFactorial bounds Factorial's input.
	MaxFactorial = 1000
	// MaxSieve bounds PrimesUpTo's input.
	MaxSieve = 10_000_000
)

// GCD returns the greatest common divisor of a and b by Euclid's algorithm.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns a*b/gcd(a,b). Both inputs must be >= 1.
func LCM(a, b int64) (int64, error) {
	if a < 1 || b < 1 {
		return 0, calcerr.OutOfDomain("inputs must be positive integers")
	}
	q := uint64(a / GCD(a, b))
	hi, lo := bits.Mul64(q, uint64(b))
	if hi != 0 || lo > uint64(1<<63-1) {
		return 0, calcerr.Bounds("least common multiple overflows 64 bits")
	}
	return int64(lo), nil
}

// GCDAll folds GCD over ns left to right. At least two inputs >= 1 are required.
func GCDAll(ns []int64) (int64, error) {
	if err := checkList(ns); err != nil {
		return 0, err
	}
	g := ns[0]
	for _, n := range ns[1:] {
		g = GCD(g, n)
	}
	return g, nil
}

// LCMAll folds LCM over ns left to right.
func LCMAll(ns []int64) (int64, error) {
	if err := checkList(ns); err != nil {
		return 0, err
	}
	l := ns[0]
	for _, n := range ns[1:] {
		var err error
		if l, err = LCM(l, n); err != nil {
			return 0, err
		}
	}
	return l, nil
}

func checkList(ns []int64) error {
	if len(ns) < 2 {
		return calcerr.Missing("at least two numbers are required")
	}
	for _, n := range ns {
		if n < 1 {
			return calcerr.OutOfDomain("inputs must be positive integers")
		}
	}
	return nil
}

// IsPrime reports whether n is prime by 6k±1 trial division.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 || n%3 == 0 {
		return n == 2 || n == 3
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// PrimeFactors returns the prime factorisation of n in ascending order, with
// repeats.
func PrimeFactors(n int64) ([]int64, error) {
	if n < 2 {
		return nil, calcerr.OutOfDomain("number must be at least 2")
	}
	var out []int64
	for p := int64(2); p <= n/p; p++ {
		for n%p == 0 {
			out = append(out, p)
			n /= p
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out, nil
}

// PrimesUpTo returns every prime <= n using a sieve of Eratosthenes.
func PrimesUpTo(n int) ([]int, error) {
	if n > MaxSieve {
		return nil, calcerr.Bounds("limit must be at most %d", MaxSieve)
	}
	if n < 2 {
		return nil, nil
	}
	composite := make([]bool, n+1)
	var out []int
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return out, nil
}

// Factorial returns n! exactly.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, calcerr.OutOfDomain("factorial is undefined for negative numbers")
	}
	if n > MaxFactorial {
		return nil, calcerr.Bounds("factorial input must be at most %d", MaxFactorial)
	}
	return new(big.Int).MulRange(1, int64(max(n, 1))), nil
}
