package calculator

import (
	"strings"
	"time"

	"calcbox/internal/calc/calcerr"
	"calcbox/internal/calc/dates"
)

// args are the raw string arguments of one tool run, keyed by parameter name.
type args map[string]string

func (a args) text(name string) string { return strings.TrimSpace(a[name]) }

func (a args) required(name string) (string, error) {
	v := a.text(name)
	if v == "" {
		return "", calcerr.Missing("%s is required", name)
	}
	return v, nil
}

func (a args) float(name string) (float64, error) { return calcerr.ParseFloat(name, a[name]) }

func (a args) integer(name string) (int64, error) { return calcerr.ParseInt(name, a[name]) }

// whole parses a small integer such as a year or a period count.
func (a args) whole(name string) (int, error) {
	v, err := calcerr.ParseInt(name, a[name])
	if err != nil {
		return 0, err
	}
	if v > 1<<31-1 || v < -(1<<31) {
		return 0, calcerr.Bounds("%s is too large", name)
	}
	return int(v), nil
}

func (a args) date(name string) (time.Time, error) {
	if a.text(name) == "" {
		return time.Time{}, calcerr.Missing("%s is required", name)
	}
	return dates.Parse(a[name])
}

// dateOr parses name, falling back to today's date in UTC when it is blank.
func (a args) dateOr(name string, now time.Time) (time.Time, error) {
	if a.text(name) == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return dates.Parse(a[name])
}

// list splits a list argument on commas, semicolons and whitespace.
func (a args) list(name string) ([]string, error) {
	fields := strings.FieldsFunc(a[name], func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, calcerr.Missing("%s is required", name)
	}
	return fields, nil
}

func (a args) floats(name string) ([]float64, error) {
	fields, err := a.list(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		if out[i], err = calcerr.ParseFloat(name, f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (a args) integers(name string) ([]int64, error) {
	fields, err := a.list(name)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(fields))
	for i, f := range fields {
		if out[i], err = calcerr.ParseInt(name, f); err != nil {
			return nil, err
		}
	}
	return out, nil
}
