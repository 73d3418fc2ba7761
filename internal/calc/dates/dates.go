// Package dates implements calendar arithmetic for the date tools: age and
// date-difference breakdowns, leap years, week numbers, workday counts, date
// addition and live countdowns.
//
// A Breakdown carries two independent decompositions of a range. Years,
// Months and Days are calendar-aware: components are subtracted separately
// and a negative day or month borrows from the next larger unit. The Total*
// fields divide elapsed wall-clock time by fixed ratios. The two are not
// expected to reconcile exactly.
package dates

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"calcbox/internal/calc/calcerr"
)

// maxRangeDays bounds the day-by-day iteration in CountWorkdays.
const maxRangeDays = 100 * 366

// Breakdown is the result of Difference and AgeBreakdown.
type Breakdown struct {
	Years        int   `json:"years"`
	Months       int   `json:"months"`
	Days         int   `json:"days"`
	TotalDays    int64 `json:"total_days"`
	TotalWeeks   int64 `json:"total_weeks"`
	TotalHours   int64 `json:"total_hours"`
	TotalMinutes int64 `json:"total_minutes"`
}

// Workdays is the result of CountWorkdays.
type Workdays struct {
	TotalDays  int     `json:"total_days"`
	Workdays   int     `json:"workdays"`
	Weekends   int     `json:"weekends"`
	Percentage float64 `json:"percentage"`
}

// Parse reads a free-form date ("2024-01-31", "Jan 31, 2024", "31/01/2024").
// Inputs without a zone are taken as UTC. Ambiguous slashed dates are read
// month first, then day first when that fails ("01/02/2024" is January 2).
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, calcerr.Missing("date is required")
	}
	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(true))
	if err != nil {
		// dateparse's own swap retry parses in time.Local, so retry here.
		t, err = dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(false))
	}
	if err != nil {
		return time.Time{}, calcerr.Missing("%q is not a valid date", s)
	}
	return t, nil
}

// Difference returns the breakdown of the range [start, end].
func Difference(start, end time.Time) (Breakdown, error) {
	if start.IsZero() || end.IsZero() {
		return Breakdown{}, calcerr.Missing("both dates are required")
	}
	if start.After(end) {
		return Breakdown{}, calcerr.OutOfDomain("start date is after end date")
	}

	y := end.Year() - start.Year()
	m := int(end.Month()) - int(start.Month())
	d := end.Day() - start.Day()
	if d < 0 {
		m--
		// Borrow the month preceding end's month. A start day past that
		// month's length clamps to its last day.
		py, pm := end.Year(), end.Month()-1
		if pm < time.January {
			py, pm = py-1, time.December
		}
		d = max(DaysInMonth(py, pm)-start.Day(), 0) + end.Day()
	}
	if m < 0 {
		y--
		m += 12
	}

	elapsed := end.Sub(start)
	minutes := int64(math.Floor(elapsed.Minutes()))
	hours := int64(math.Floor(elapsed.Hours()))
	days := hours / 24
	return Breakdown{
		Years:        y,
		Months:       m,
		Days:         d,
		TotalDays:    days,
		TotalWeeks:   days / 7,
		TotalHours:   hours,
		TotalMinutes: minutes,
	}, nil
}

// AgeBreakdown returns the age of someone born on birth as of asOf.
func AgeBreakdown(birth, asOf time.Time) (Breakdown, error) {
	if birth.After(asOf) {
		return Breakdown{}, calcerr.OutOfDomain("birth date is in the future")
	}
	return Difference(birth, asOf)
}

// DaysUntilBirthday returns the whole days from asOf to the next anniversary
// of birth; zero on the birthday itself. Feb 29 birthdays fall on Mar 1 in
// common years.
func DaysUntilBirthday(birth, asOf time.Time) int {
	asOf = truncateDay(asOf)
	next := time.Date(asOf.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, asOf.Location())
	if next.Before(asOf) {
		next = time.Date(asOf.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, asOf.Location())
	}
	return int(next.Sub(asOf).Hours() / 24)
}

// Add adds calendar years, months and days to t. Overflowing days roll into
// the next month the same way time.AddDate does (Jan 31 + 1 month = Mar 2 or 3).
func Add(t time.Time, years, months, days int) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, calcerr.Missing("date is required")
	}
	out := t.AddDate(years, months, days)
	if out.Year() < 1 || out.Year() > 9999 {
		return time.Time{}, calcerr.Bounds("resulting date is outside years 1-9999")
	}
	return out, nil
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// NextLeapYear returns the first leap year strictly after year.
func NextLeapYear(year int) int {
	y := year + 1
	for !IsLeapYear(y) {
		y++
	}
	return y
}

// PreviousLeapYear returns the last leap year strictly before year.
func PreviousLeapYear(year int) int {
	y := year - 1
	for !IsLeapYear(y) {
		y--
	}
	return y
}

// DaysInMonth returns the number of days in month m of year y.
func DaysInMonth(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekNumber returns ceil(daysSinceJan1 / 7), where January 1 itself is 0
// days elapsed and so week 0. This is a simple count of seven-day blocks,
// not ISO-8601 week numbering.
func WeekNumber(t time.Time) int {
	elapsed := t.YearDay() - 1
	return (elapsed + 6) / 7
}

// CountWorkdays classifies every calendar day of the inclusive range
// [start, end]. Saturdays and Sundays are weekend days.
func CountWorkdays(start, end time.Time) (Workdays, error) {
	if start.IsZero() || end.IsZero() {
		return Workdays{}, calcerr.Missing("both dates are required")
	}
	start, end = truncateDay(start), truncateDay(end)
	if start.After(end) {
		return Workdays{}, calcerr.OutOfDomain("start date is after end date")
	}
	if end.Sub(start).Hours()/24 > maxRangeDays {
		return Workdays{}, calcerr.Bounds("date range is longer than 100 years")
	}

	var w Workdays
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		w.TotalDays++
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			w.Weekends++
		default:
			w.Workdays++
		}
	}
	w.Percentage = float64(w.Workdays) / float64(w.TotalDays) * 100
	return w, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
