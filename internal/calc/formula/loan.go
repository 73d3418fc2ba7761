package formula

import (
	"math"

	"calcbox/internal/calc/calcerr"
)

// Loan is the result of EMI.
type Loan struct {
	Payment       float64 `json:"payment"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

// Installment is one row of an amortization schedule.
type Installment struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// MaxPeriods bounds the number of payment periods.
const MaxPeriods = 1200

// MonthlyRate converts an annual percentage rate to a monthly fraction.
func MonthlyRate(annualPercent float64) float64 { return annualPercent / 12 / 100 }

// EMI returns the equal periodic payment P·r·(1+r)^n / ((1+r)^n − 1) for
// principal p, per-period rate r and n periods. A zero rate has no interest
// and the payment is p/n.
func EMI(p, r float64, n int) (Loan, error) {
	if err := finite(p, r); err != nil {
		return Loan{}, err
	}
	if err := calcerr.Positive("principal", p); err != nil {
		return Loan{}, err
	}
	if r < 0 {
		return Loan{}, calcerr.OutOfDomain("interest rate must not be negative")
	}
	if n < 1 {
		return Loan{}, calcerr.OutOfDomain("number of periods must be at least 1")
	}
	if n > MaxPeriods {
		return Loan{}, calcerr.Bounds("number of periods must be at most %d", MaxPeriods)
	}

	var pay float64
	if r == 0 {
		pay = p / float64(n)
	} else {
		f := math.Pow(1+r, float64(n))
		pay = p * r * f / (f - 1)
	}
	total := pay * float64(n)
	if err := representable(pay, total, total-p); err != nil {
		return Loan{}, err
	}
	return Loan{Payment: pay, TotalPayment: total, TotalInterest: total - p}, nil
}

// Amortize returns the payment schedule for the same inputs as EMI. The last
// row absorbs rounding so the balance ends at zero.
func Amortize(p, r float64, n int) ([]Installment, error) {
	loan, err := EMI(p, r, n)
	if err != nil {
		return nil, err
	}
	out := make([]Installment, 0, n)
	bal := p
	for i := 1; i <= n; i++ {
		interest := bal * r
		principal := loan.Payment - interest
		if i == n {
			principal = bal
		}
		bal -= principal
		out = append(out, Installment{
			Period:    i,
			Payment:   principal + interest,
			Principal: principal,
			Interest:  interest,
			Balance:   math.Max(bal, 0),
		})
	}
	return out, nil
}
