package formula

import (
	"math"
	"strings"

	"calcbox/internal/calc/calcerr"
)

// Outputs here are point estimates and are not clamped to physiological
// ranges.

// Sex selects the sex-specific coefficients of a formula.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male"/"female" or "m"/"f".
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	case "":
		return "", calcerr.Missing("sex is required")
	}
	return "", calcerr.OutOfDomain("sex must be male or female")
}

// BMIResult is a body-mass index with its WHO category.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// BMI returns weight / height² for weight in kg and height in cm.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if err := positive([]string{"weight", "height"}, weightKg, heightCm); err != nil {
		return BMIResult{}, err
	}
	m := heightCm / 100
	bmi := weightKg / (m * m)
	if err := representable(bmi); err != nil {
		return BMIResult{}, err
	}
	var cat string
	switch {
	case bmi < 18.5:
		cat = "underweight"
	case bmi < 25:
		cat = "normal"
	case bmi < 30:
		cat = "overweight"
	default:
		cat = "obese"
	}
	return BMIResult{BMI: bmi, Category: cat}, nil
}

// ActivityFactors scale BMR to daily energy expenditure.
var ActivityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day:
// 10·kg + 6.25·cm − 5·age + 5 (male) or − 161 (female).
func BMR(sex Sex, weightKg, heightCm, ageYears float64) (float64, error) {
	if err := positive([]string{"weight", "height", "age"}, weightKg, heightCm, ageYears); err != nil {
		return 0, err
	}
	base := 10*weightKg + 6.25*heightCm - 5*ageYears
	if err := representable(base); err != nil {
		return 0, err
	}
	switch sex {
	case Male:
		return base + 5, nil
	case Female:
		return base - 161, nil
	}
	return 0, calcerr.OutOfDomain("sex must be male or female")
}

// BodyFatNavy estimates body-fat percentage with the US Navy circumference
// method. All lengths are in cm; hipCm is used for females only.
func BodyFatNavy(sex Sex, heightCm, neckCm, waistCm, hipCm float64) (float64, error) {
	if err := positive([]string{"height", "neck", "waist"}, heightCm, neckCm, waistCm); err != nil {
		return 0, err
	}
	switch sex {
	case Male:
		if waistCm <= neckCm {
			return 0, calcerr.OutOfDomain("waist must be larger than neck")
		}
		return finiteOr(495/(1.0324-0.19077*math.Log10(waistCm-neckCm)+0.15456*math.Log10(heightCm)) - 450)
	case Female:
		if err := positive([]string{"hip"}, hipCm); err != nil {
			return 0, err
		}
		if waistCm+hipCm <= neckCm {
			return 0, calcerr.OutOfDomain("waist plus hip must be larger than neck")
		}
		return finiteOr(495/(1.29579-0.35004*math.Log10(waistCm+hipCm-neckCm)+0.22100*math.Log10(heightCm)) - 450)
	}
	return 0, calcerr.OutOfDomain("sex must be male or female")
}

func finiteOr(v float64) (float64, error) {
	if err := representable(v); err != nil {
		return 0, err
	}
	return v, nil
}

// IdealWeights holds the four historical ideal-weight formulas, in kg.
type IdealWeights struct {
	Robinson float64 `json:"robinson"`
	Miller   float64 `json:"miller"`
	Devine   float64 `json:"devine"`
	Hamwi    float64 `json:"hamwi"`
}

// IdealWeight evaluates the Robinson (1983), Miller (1983), Devine (1974)
// and Hamwi (1964) formulas. Each is base + increment per inch over 5 ft;
// heights under 5 ft use the base alone.
func IdealWeight(sex Sex, heightCm float64) (IdealWeights, error) {
	if err := positive([]string{"height"}, heightCm); err != nil {
		return IdealWeights{}, err
	}
	in := math.Max(heightCm/2.54-60, 0)
	var w IdealWeights
	switch sex {
	case Male:
		w = IdealWeights{
			Robinson: 52 + 1.9*in,
			Miller:   56.2 + 1.41*in,
			Devine:   50 + 2.3*in,
			Hamwi:    48 + 2.7*in,
		}
	case Female:
		w = IdealWeights{
			Robinson: 49 + 1.7*in,
			Miller:   53.1 + 1.36*in,
			Devine:   45.5 + 2.3*in,
			Hamwi:    45.5 + 2.2*in,
		}
	default:
		return IdealWeights{}, calcerr.OutOfDomain("sex must be male or female")
	}
	if err := representable(w.Robinson, w.Miller, w.Devine, w.Hamwi); err != nil {
		return IdealWeights{}, err
	}
	return w, nil
}
