package numtheory

import (
	"math"
	"slices"

	"calcbox/internal/calc/calcerr"
)

// Summary describes a sample.
type Summary struct {
	Count          int       `json:"count"`
	Sum            float64   `json:"sum"`
	Mean           float64   `json:"mean"`
	Median         float64   `json:"median"`
	Modes          []float64 `json:"modes"`
	Min            float64   `json:"min"`
	Max            float64   `json:"max"`
	Range          float64   `json:"range"`
	Variance       float64   `json:"variance"`
	StdDev         float64   `json:"std_dev"`
	SampleVariance float64   `json:"sample_variance"`
	SampleStdDev   float64   `json:"sample_std_dev"`
}

// Summarize computes descriptive statistics. Modes is empty when every value
// occurs once. Sample variance is zero for a single value.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, calcerr.Missing("at least one number is required")
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Summary{}, calcerr.Missing("every value must be a number")
		}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Summary{Count: len(sorted), Min: sorted[0], Max: sorted[len(sorted)-1]}
	s.Range = s.Max - s.Min
	for _, v := range sorted {
		s.Sum += v
	}
	s.Mean = s.Sum / float64(s.Count)

	mid := s.Count / 2
	if s.Count%2 == 1 {
		s.Median = sorted[mid]
	} else {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	var sq float64
	for _, v := range sorted {
		sq += (v - s.Mean) * (v - s.Mean)
	}
	s.Variance = sq / float64(s.Count)
	s.StdDev = math.Sqrt(s.Variance)
	if s.Count > 1 {
		s.SampleVariance = sq / float64(s.Count-1)
		s.SampleStdDev = math.Sqrt(s.SampleVariance)
	}

	s.Modes = modes(sorted)
	return s, nil
}

// modes expects sorted input and returns values in ascending order.
func modes(sorted []float64) []float64 {
	best, run := 1, 1
	var out []float64
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1] {
			run++
			continue
		}
		switch {
		case run > best:
			best = run
			out = []float64{sorted[i-1]}
		case run == best && best > 1:
			out = append(out, sorted[i-1])
		}
		run = 1
	}
	return out
}
