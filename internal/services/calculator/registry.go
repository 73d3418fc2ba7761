package calculator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"calcbox/internal/calc/calcerr"
	"calcbox/internal/calc/dates"
	"calcbox/internal/calc/formula"
	"calcbox/internal/calc/numerals"
	"calcbox/internal/calc/numtheory"
	"calcbox/internal/calc/radix"
	"calcbox/internal/calc/temperature"
	"calcbox/internal/calc/text"
	"calcbox/internal/calc/units"
	"calcbox/internal/domain"
	"calcbox/internal/format"
)

// env is the per-run context a tool may read.
type env struct {
	locale string
	now    time.Time
}

func (e env) num(x float64) string { return format.Number(e.locale, x, format.DefaultPlaces) }

func (e env) numN(x float64, places int) string { return format.Number(e.locale, x, places) }

func (e env) date(t time.Time) string { return format.Date(t, "Monday, 2 January 2006", e.locale) }

type runFunc func(e env, a args) (value any, display string, err error)

type tool struct {
	params []domain.Param
	run    runFunc
}

func param(name, desc string) domain.Param {
	return domain.Param{Name: name, Description: desc, Required: true}
}

func optional(name, desc, def string) domain.Param {
	return domain.Param{Name: name, Description: desc, Default: def}
}

// registry maps catalog slugs to runnable tools.
func registry() map[string]tool {
	r := map[string]tool{
		"temperature-converter": {
			params: []domain.Param{
				param("value", "temperature to convert"),
				param("from", "source scale: C, F, K or R"),
				param("to", "target scale: C, F, K or R"),
			},
			run: runTemperature,
		},
		"base-converter": {
			params: []domain.Param{
				param("value", "non-negative integer"),
				optional("from", "base of value: 2, 8, 10 or 16", "10"),
				optional("to", "target base; blank converts to every base", ""),
			},
			run: runBase,
		},
		"scientific-notation": {
			params: []domain.Param{
				param("value", "number, or scientific notation such as 1.5e3 or 1.5 x 10^3"),
				optional("direction", "to (scientific) or from (standard)", "to"),
			},
			run: runScientific,
		},
		"roman-numerals": {
			params: []domain.Param{param("value", "integer 1-3999 or a Roman numeral")},
			run:    runRoman,
		},
		"number-to-words": {
			params: []domain.Param{param("value", "whole number")},
			run:    runWords,
		},
		"age-calculator": {
			params: []domain.Param{
				param("birthdate", "date of birth"),
				optional("as_of", "date to measure to; blank is today", ""),
			},
			run: runAge,
		},
		"date-difference": {
			params: []domain.Param{param("start", "start date"), param("end", "end date")},
			run:    runDateDifference,
		},
		"date-add": {
			params: []domain.Param{
				param("date", "start date"),
				optional("years", "years to add (negative subtracts)", "0"),
				optional("months", "months to add (negative subtracts)", "0"),
				optional("days", "days to add (negative subtracts)", "0"),
			},
			run: runDateAdd,
		},
		"leap-year": {
			params: []domain.Param{optional("year", "year; blank is this year", "")},
			run:    runLeapYear,
		},
		"week-number": {
			params: []domain.Param{optional("date", "date; blank is today", "")},
			run:    runWeekNumber,
		},
		"workday-calculator": {
			params: []domain.Param{param("start", "first day"), param("end", "last day")},
			run:    runWorkdays,
		},
		"countdown-timer": {
			params: []domain.Param{param("target", "event date and time")},
			run:    runCountdown,
		},
		"gcd-lcm": {
			params: []domain.Param{param("numbers", "two or more positive integers")},
			run:    runGCDLCM,
		},
		"prime-checker": {
			params: []domain.Param{param("n", "integer to test")},
			run:    runPrimeCheck,
		},
		"prime-generator": {
			params: []domain.Param{param("limit", "largest candidate")},
			run:    runPrimes,
		},
		"factorial": {
			params: []domain.Param{param("n", "integer 0-1000")},
			run:    runFactorial,
		},
		"statistics": {
			params: []domain.Param{param("numbers", "data set")},
			run:    runStatistics,
		},
		"quadratic-solver": {
			params: []domain.Param{param("a", "x² coefficient"), param("b", "x coefficient"), param("c", "constant")},
			run:    runQuadratic,
		},
		"triangle-area": {
			params: []domain.Param{param("a", "side a"), param("b", "side b"), param("c", "side c")},
			run:    runTriangle,
		},
		"loan-emi": {
			params: []domain.Param{
				param("principal", "loan amount"),
				param("rate", "annual interest rate in percent"),
				param("months", "tenure in months"),
				optional("schedule", "include the amortization schedule (true/false)", "false"),
			},
			run: runEMI,
		},
		"bmi": {
			params: []domain.Param{param("weight", "weight in kg"), param("height", "height in cm")},
			run:    runBMI,
		},
		"bmr": {
			params: []domain.Param{
				param("sex", "male or female"),
				param("weight", "weight in kg"),
				param("height", "height in cm"),
				param("age", "age in years"),
			},
			run: runBMR,
		},
		"body-fat": {
			params: []domain.Param{
				param("sex", "male or female"),
				param("height", "height in cm"),
				param("neck", "neck circumference in cm"),
				param("waist", "waist circumference in cm"),
				optional("hip", "hip circumference in cm (female)", ""),
			},
			run: runBodyFat,
		},
		"ideal-weight": {
			params: []domain.Param{param("sex", "male or female"), param("height", "height in cm")},
			run:    runIdealWeight,
		},
		"text-case": {
			params: []domain.Param{
				param("text", "text to convert"),
				param("mode", "upper, lower, title, sentence, reverse, slug, camel or snake"),
			},
			run: runTextCase,
		},
		"word-counter": {
			params: []domain.Param{param("text", "text to count")},
			run:    runWordCount,
		},
	}
	for _, family := range units.Families() {
		slug := family + "-converter"
		if family == "data" {
			slug = "data-size-converter"
		}
		r[slug] = unitTool(family)
	}
	return r
}

func unitTool(family string) tool {
	table, _ := units.Lookup(family)
	keys := make([]string, len(table.Units))
	for i, u := range table.Units {
		keys[i] = u.Key
	}
	list := strings.Join(keys, ", ")
	return tool{
		params: []domain.Param{
			param("value", "amount to convert"),
			param("from", "source unit: "+list),
			param("to", "target unit: "+list),
		},
		run: func(e env, a args) (any, string, error) {
			v, err := a.float("value")
			if err != nil {
				return nil, "", err
			}
			r, err := units.Convert(v, a.text("from"), a.text("to"), table)
			if err != nil {
				return nil, "", err
			}
			from, _ := table.Find(a.text("from"))
			to, _ := table.Find(a.text("to"))
			value := map[string]any{"value": r, "from": from.Key, "to": to.Key}
			display := fmt.Sprintf("%s %s = %s %s", e.numN(v, 4), from.Key, e.numN(r, 4), to.Key)
			if family == "data" {
				value["human"] = format.Bytes(v * from.Factor)
			}
			return value, display, nil
		},
	}
}

func scaleLabel(s temperature.Scale) string {
	if s == temperature.Kelvin {
		return "K"
	}
	return "°" + string(s)
}

func runTemperature(e env, a args) (any, string, error) {
	v, err := a.float("value")
	if err != nil {
		return nil, "", err
	}
	from, err := temperature.ParseScale(a.text("from"))
	if err != nil {
		return nil, "", err
	}
	to, err := temperature.ParseScale(a.text("to"))
	if err != nil {
		return nil, "", err
	}
	r, err := temperature.Convert(v, from, to)
	if err != nil {
		return nil, "", err
	}
	return r, fmt.Sprintf("%s %s = %s %s", e.num(v), scaleLabel(from), e.num(r), scaleLabel(to)), nil
}

func runBase(_ env, a args) (any, string, error) {
	in, err := a.required("value")
	if err != nil {
		return nil, "", err
	}
	from, err := radix.ParseRadix(a.text("from"))
	if err != nil {
		return nil, "", err
	}
	if a.text("to") != "" {
		to, err := radix.ParseRadix(a.text("to"))
		if err != nil {
			return nil, "", err
		}
		out, err := radix.Convert(in, from, to)
		if err != nil {
			return nil, "", err
		}
		return out, fmt.Sprintf("%s (%s) = %s (%s)", in, radix.Name(from), out, radix.Name(to)), nil
	}
	all, err := radix.ConvertAll(in, from)
	if err != nil {
		return nil, "", err
	}
	value := make(map[string]string, len(all))
	parts := make([]string, 0, len(radix.Radices))
	for _, r := range radix.Radices {
		value[radix.Name(r)] = all[r]
		parts = append(parts, radix.Name(r)+" "+all[r])
	}
	return value, strings.Join(parts, ", "), nil
}

func runScientific(_ env, a args) (any, string, error) {
	switch strings.ToLower(a.text("direction")) {
	case "", "to":
		v, err := a.float("value")
		if err != nil {
			return nil, "", err
		}
		s, err := radix.ToScientific(v)
		if err != nil {
			return nil, "", err
		}
		return s, s.String(), nil
	case "from":
		in, err := a.required("value")
		if err != nil {
			return nil, "", err
		}
		v, err := radix.ToStandard(in)
		if err != nil {
			return nil, "", err
		}
		return v, format.Decimal(v, 8), nil
	}
	return nil, "", calcerr.OutOfDomain("direction must be to or from")
}

func runRoman(_ env, a args) (any, string, error) {
	in, err := a.required("value")
	if err != nil {
		return nil, "", err
	}
	if n, perr := strconv.Atoi(in); perr == nil {
		r, err := numerals.ToRoman(n)
		if err != nil {
			return nil, "", err
		}
		return r, fmt.Sprintf("%d = %s", n, r), nil
	}
	n, err := numerals.FromRoman(in)
	if err != nil {
		return nil, "", err
	}
	return n, fmt.Sprintf("%s = %d", strings.ToUpper(in), n), nil
}

func runWords(_ env, a args) (any, string, error) {
	n, err := a.integer("value")
	if err != nil {
		return nil, "", err
	}
	w, err := numerals.ToWords(n)
	if err != nil {
		return nil, "", err
	}
	return w, w, nil
}

func describeBreakdown(b dates.Breakdown) string {
	return fmt.Sprintf("%d years, %d months, %d days", b.Years, b.Months, b.Days)
}

func runAge(e env, a args) (any, string, error) {
	birth, err := a.date("birthdate")
	if err != nil {
		return nil, "", err
	}
	asOf, err := a.dateOr("as_of", e.now)
	if err != nil {
		return nil, "", err
	}
	b, err := dates.AgeBreakdown(birth, asOf)
	if err != nil {
		return nil, "", err
	}
	next := dates.DaysUntilBirthday(birth, asOf)
	value := struct {
		dates.Breakdown
		DaysUntilBirthday int `json:"days_until_birthday"`
	}{b, next}
	return value, fmt.Sprintf("%s (next birthday in %d days)", describeBreakdown(b), next), nil
}

func runDateDifference(_ env, a args) (any, string, error) {
	start, err := a.date("start")
	if err != nil {
		return nil, "", err
	}
	end, err := a.date("end")
	if err != nil {
		return nil, "", err
	}
	b, err := dates.Difference(start, end)
	if err != nil {
		return nil, "", err
	}
	return b, fmt.Sprintf("%s (%d days)", describeBreakdown(b), b.TotalDays), nil
}

func runDateAdd(e env, a args) (any, string, error) {
	t, err := a.date("date")
	if err != nil {
		return nil, "", err
	}
	var n [3]int
	for i, name := range []string{"years", "months", "days"} {
		if a.text(name) == "" {
			continue
		}
		if n[i], err = a.whole(name); err != nil {
			return nil, "", err
		}
	}
	r, err := dates.Add(t, n[0], n[1], n[2])
	if err != nil {
		return nil, "", err
	}
	return r.Format("2006-01-02"), e.date(r), nil
}

func runLeapYear(e env, a args) (any, string, error) {
	year := e.now.Year()
	if a.text("year") != "" {
		y, err := a.whole("year")
		if err != nil {
			return nil, "", err
		}
		year = y
	}
	value := struct {
		Year     int  `json:"year"`
		Leap     bool `json:"leap"`
		Previous int  `json:"previous"`
		Next     int  `json:"next"`
	}{year, dates.IsLeapYear(year), dates.PreviousLeapYear(year), dates.NextLeapYear(year)}
	verdict := "is not"
	if value.Leap {
		verdict = "is"
	}
	return value, fmt.Sprintf("%d %s a leap year (previous %d, next %d)", year, verdict, value.Previous, value.Next), nil
}

func runWeekNumber(e env, a args) (any, string, error) {
	t, err := a.dateOr("date", e.now)
	if err != nil {
		return nil, "", err
	}
	w := dates.WeekNumber(t)
	return w, fmt.Sprintf("Week %d of %d", w, t.Year()), nil
}

func runWorkdays(e env, a args) (any, string, error) {
	start, err := a.date("start")
	if err != nil {
		return nil, "", err
	}
	end, err := a.date("end")
	if err != nil {
		return nil, "", err
	}
	w, err := dates.CountWorkdays(start, end)
	if err != nil {
		return nil, "", err
	}
	return w, fmt.Sprintf("%d workdays, %d weekend days of %d (%s%%)",
		w.Workdays, w.Weekends, w.TotalDays, e.num(w.Percentage)), nil
}

func runCountdown(e env, a args) (any, string, error) {
	target, err := a.date("target")
	if err != nil {
		return nil, "", err
	}
	r := dates.Countdown(target, e.now)
	if r.Done {
		return r, "the countdown has finished", nil
	}
	return r, fmt.Sprintf("%dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds), nil
}

func runGCDLCM(_ env, a args) (any, string, error) {
	ns, err := a.integers("numbers")
	if err != nil {
		return nil, "", err
	}
	g, err := numtheory.GCDAll(ns)
	if err != nil {
		return nil, "", err
	}
	l, err := numtheory.LCMAll(ns)
	if err != nil {
		return nil, "", err
	}
	value := struct {
		GCD int64 `json:"gcd"`
		LCM int64 `json:"lcm"`
	}{g, l}
	return value, fmt.Sprintf("GCD %d, LCM %d", g, l), nil
}

func joinInts[T int | int64](ns []T, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	return strings.Join(parts, sep)
}

func runPrimeCheck(_ env, a args) (any, string, error) {
	n, err := a.integer("n")
	if err != nil {
		return nil, "", err
	}
	value := struct {
		N       int64   `json:"n"`
		Prime   bool    `json:"prime"`
		Factors []int64 `json:"factors,omitempty"`
	}{N: n, Prime: numtheory.IsPrime(n)}
	switch {
	case value.Prime:
		return value, fmt.Sprintf("%d is prime", n), nil
	case n < 2:
		return value, fmt.Sprintf("%d is not prime", n), nil
	}
	if value.Factors, err = numtheory.PrimeFactors(n); err != nil {
		return nil, "", err
	}
	return value, fmt.Sprintf("%d is not prime: %d = %s", n, n, joinInts(value.Factors, " × ")), nil
}

// maxListedPrimes caps how many primes appear in the display string.
const maxListedPrimes = 25

func runPrimes(_ env, a args) (any, string, error) {
	limit, err := a.whole("limit")
	if err != nil {
		return nil, "", err
	}
	ps, err := numtheory.PrimesUpTo(limit)
	if err != nil {
		return nil, "", err
	}
	value := struct {
		Count  int   `json:"count"`
		Primes []int `json:"primes"`
	}{len(ps), ps}
	shown := ps
	suffix := ""
	if len(shown) > maxListedPrimes {
		shown, suffix = shown[:maxListedPrimes], ", ..."
	}
	return value, fmt.Sprintf("%d primes up to %d: %s%s", len(ps), limit, joinInts(shown, ", "), suffix), nil
}

func runFactorial(_ env, a args) (any, string, error) {
	n, err := a.whole("n")
	if err != nil {
		return nil, "", err
	}
	f, err := numtheory.Factorial(n)
	if err != nil {
		return nil, "", err
	}
	s := f.String()
	display := fmt.Sprintf("%d! = %s", n, s)
	if len(s) > 60 {
		display = fmt.Sprintf("%d! = %s... (%d digits)", n, s[:30], len(s))
	}
	return s, display, nil
}

func runStatistics(e env, a args) (any, string, error) {
	vs, err := a.floats("numbers")
	if err != nil {
		return nil, "", err
	}
	s, err := numtheory.Summarize(vs)
	if err != nil {
		return nil, "", err
	}
	return s, fmt.Sprintf("n %d, mean %s, median %s, std dev %s",
		s.Count, e.num(s.Mean), e.num(s.Median), e.num(s.StdDev)), nil
}

func floatArgs(a args, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, err := a.float(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func runQuadratic(e env, a args) (any, string, error) {
	v, err := floatArgs(a, "a", "b", "c")
	if err != nil {
		return nil, "", err
	}
	r, err := formula.SolveQuadratic(v[0], v[1], v[2])
	if err != nil {
		return nil, "", err
	}
	switch r.Kind {
	case formula.TwoReal:
		return r, fmt.Sprintf("x = %s, x = %s", e.numN(*r.Root1, 4), e.numN(*r.Root2, 4)), nil
	case formula.OneReal:
		return r, fmt.Sprintf("x = %s (repeated)", e.numN(*r.Root1, 4)), nil
	}
	return r, fmt.Sprintf("x = %s ± %si", e.numN(*r.Real, 4), e.numN(*r.Imag, 4)), nil
}

func runTriangle(e env, a args) (any, string, error) {
	v, err := floatArgs(a, "a", "b", "c")
	if err != nil {
		return nil, "", err
	}
	t, err := formula.TriangleArea(v[0], v[1], v[2])
	if err != nil {
		return nil, "", err
	}
	return t, fmt.Sprintf("area %s, perimeter %s", e.num(t.Area), e.num(t.Perimeter)), nil
}

func runEMI(e env, a args) (any, string, error) {
	p, err := a.float("principal")
	if err != nil {
		return nil, "", err
	}
	rate, err := a.float("rate")
	if err != nil {
		return nil, "", err
	}
	n, err := a.whole("months")
	if err != nil {
		return nil, "", err
	}
	loan, err := formula.EMI(p, formula.MonthlyRate(rate), n)
	if err != nil {
		return nil, "", err
	}
	display := fmt.Sprintf("EMI %s, total interest %s, total payment %s",
		e.num(loan.Payment), e.num(loan.TotalInterest), e.num(loan.TotalPayment))

	withSchedule, _ := strconv.ParseBool(a.text("schedule"))
	if !withSchedule {
		return loan, display, nil
	}
	rows, err := formula.Amortize(p, formula.MonthlyRate(rate), n)
	if err != nil {
		return nil, "", err
	}
	value := struct {
		formula.Loan
		Schedule []formula.Installment `json:"schedule"`
	}{loan, rows}
	return value, display, nil
}

func runBMI(e env, a args) (any, string, error) {
	w, err := a.float("weight")
	if err != nil {
		return nil, "", err
	}
	h, err := a.float("height")
	if err != nil {
		return nil, "", err
	}
	r, err := formula.BMI(w, h)
	if err != nil {
		return nil, "", err
	}
	return r, fmt.Sprintf("%s (%s)", e.num(r.BMI), r.Category), nil
}

func runBMR(e env, a args) (any, string, error) {
	sex, err := formula.ParseSex(a.text("sex"))
	if err != nil {
		return nil, "", err
	}
	v, err := floatArgs(a, "weight", "height", "age")
	if err != nil {
		return nil, "", err
	}
	bmr, err := formula.BMR(sex, v[0], v[1], v[2])
	if err != nil {
		return nil, "", err
	}
	daily := make(map[string]float64, len(formula.ActivityFactors))
	for level, f := range formula.ActivityFactors {
		daily[level] = bmr * f
	}
	value := struct {
		BMR   float64            `json:"bmr"`
		Daily map[string]float64 `json:"daily_calories"`
	}{bmr, daily}
	return value, fmt.Sprintf("%s kcal/day", e.num(bmr)), nil
}

func runBodyFat(e env, a args) (any, string, error) {
	sex, err := formula.ParseSex(a.text("sex"))
	if err != nil {
		return nil, "", err
	}
	v, err := floatArgs(a, "height", "neck", "waist")
	if err != nil {
		return nil, "", err
	}
	var hip float64
	if sex == formula.Female {
		if hip, err = a.float("hip"); err != nil {
			return nil, "", err
		}
	}
	pct, err := formula.BodyFatNavy(sex, v[0], v[1], v[2], hip)
	if err != nil {
		return nil, "", err
	}
	return pct, e.numN(pct, 1) + "%", nil
}

func runIdealWeight(e env, a args) (any, string, error) {
	sex, err := formula.ParseSex(a.text("sex"))
	if err != nil {
		return nil, "", err
	}
	h, err := a.float("height")
	if err != nil {
		return nil, "", err
	}
	w, err := formula.IdealWeight(sex, h)
	if err != nil {
		return nil, "", err
	}
	return w, fmt.Sprintf("Robinson %s kg, Miller %s kg, Devine %s kg, Hamwi %s kg",
		e.numN(w.Robinson, 1), e.numN(w.Miller, 1), e.numN(w.Devine, 1), e.numN(w.Hamwi, 1)), nil
}

func runTextCase(_ env, a args) (any, string, error) {
	mode := text.Mode(strings.ToLower(a.text("mode")))
	if mode == "" {
		return nil, "", calcerr.Missing("mode is required")
	}
	out, err := text.Transform(mode, a["text"])
	if err != nil {
		return nil, "", err
	}
	return out, out, nil
}

func runWordCount(_ env, a args) (any, string, error) {
	if strings.TrimSpace(a["text"]) == "" {
		return nil, "", calcerr.Missing("text is required")
	}
	st := text.Analyze(a["text"])
	return st, fmt.Sprintf("%d words, %d characters, %d lines, %d sentences",
		st.Words, st.Characters, st.Lines, st.Sentences), nil
}
