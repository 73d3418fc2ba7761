package dates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"calcbox/internal/calc/calcerr"
	"calcbox/internal/calc/dates"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDifference(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		y, m, d    int
		totalDays  int64
	}{
		{"four years", day(2020, 1, 1), day(2024, 1, 1), 4, 0, 0, 1461},
		{"borrow month", day(2024, 1, 15), day(2024, 3, 10), 0, 1, 24, 55},
		{"borrow year", day(2023, 11, 20), day(2024, 2, 5), 0, 2, 16, 77},
		{"clamped start day", day(2024, 1, 31), day(2024, 3, 1), 0, 1, 1, 30},
		{"same day", day(2024, 6, 1), day(2024, 6, 1), 0, 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := dates.Difference(c.start, c.end)
			if err != nil {
				t.Fatalf("Difference: %v", err)
			}
			if got.Years != c.y || got.Months != c.m || got.Days != c.d {
				t.Fatalf("got %dy %dm %dd, want %dy %dm %dd", got.Years, got.Months, got.Days, c.y, c.m, c.d)
			}
			if got.TotalDays != c.totalDays {
				t.Fatalf("TotalDays = %d, want %d", got.TotalDays, c.totalDays)
			}
			if got.TotalWeeks != c.totalDays/7 || got.TotalHours != c.totalDays*24 || got.TotalMinutes != c.totalDays*1440 {
				t.Fatalf("fixed-ratio totals inconsistent: %+v", got)
			}
		})
	}
}

func TestDifference_Reversed(t *testing.T) {
	_, err := dates.Difference(day(2024, 1, 2), day(2024, 1, 1))
	if !calcerr.Is(err, calcerr.KindOutOfDomain) {
		t.Fatalf("want out_of_domain, got %v", err)
	}
}

func TestAgeBreakdown(t *testing.T) {
	got, err := dates.AgeBreakdown(day(1990, 5, 20), day(2024, 5, 19))
	if err != nil {
		t.Fatal(err)
	}
	if got.Years != 33 || got.Months != 11 || got.Days != 29 {
		t.Fatalf("got %+v", got)
	}
	if _, err := dates.AgeBreakdown(day(2030, 1, 1), day(2024, 1, 1)); err == nil {
		t.Fatal("future birth date should fail")
	}
}

func TestDaysUntilBirthday(t *testing.T) {
	if got := dates.DaysUntilBirthday(day(1990, 5, 20), day(2024, 5, 19)); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := dates.DaysUntilBirthday(day(1990, 5, 20), day(2024, 5, 20)); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestLeapYears(t *testing.T) {
	for year, want := range map[int]bool{2000: true, 1900: false, 2024: true, 2023: false} {
		if got := dates.IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v", year, got)
		}
	}
	if got := dates.NextLeapYear(2024); got != 2028 {
		t.Errorf("NextLeapYear(2024) = %d", got)
	}
	if got := dates.NextLeapYear(2097); got != 2104 {
		t.Errorf("NextLeapYear(2097) = %d", got)
	}
	if got := dates.PreviousLeapYear(2024); got != 2020 {
		t.Errorf("PreviousLeapYear(2024) = %d", got)
	}
}

func TestWeekNumber(t *testing.T) {
	cases := map[time.Time]int{
		day(2024, 1, 1):   0,
		day(2024, 1, 2):   1,
		day(2024, 1, 8):   1,
		day(2024, 1, 9):   2,
		day(2023, 12, 31): 52,
		day(2024, 12, 31): 53,
	}
	for d, want := range cases {
		if got := dates.WeekNumber(d); got != want {
			t.Errorf("WeekNumber(%s) = %d, want %d", d.Format(time.DateOnly), got, want)
		}
	}
}

func TestCountWorkdays(t *testing.T) {
	// 2024-06-03 is a Monday.
	w, err := dates.CountWorkdays(day(2024, 6, 3), day(2024, 6, 7))
	if err != nil {
		t.Fatal(err)
	}
	if w.Workdays != 5 || w.Weekends != 0 || w.TotalDays != 5 || w.Percentage != 100 {
		t.Fatalf("got %+v", w)
	}
	w, err = dates.CountWorkdays(day(2024, 6, 3), day(2024, 6, 16))
	if err != nil {
		t.Fatal(err)
	}
	if w.Workdays != 10 || w.Weekends != 4 {
		t.Fatalf("two weeks: got %+v", w)
	}
	if _, err := dates.CountWorkdays(day(2024, 6, 7), day(2024, 6, 3)); !calcerr.Is(err, calcerr.KindOutOfDomain) {
		t.Fatalf("reversed range: %v", err)
	}
}

func TestAdd(t *testing.T) {
	got, err := dates.Add(day(2024, 1, 31), 0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(day(2024, 3, 2)) {
		t.Fatalf("got %s", got)
	}
	got, _ = dates.Add(day(2024, 2, 29), 1, 0, 0)
	if !got.Equal(day(2025, 3, 1)) {
		t.Fatalf("leap day + 1y = %s", got)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01-31":   day(2024, 1, 31),
		"Jan 31, 2024": day(2024, 1, 31),
		"31/01/2024":   day(2024, 1, 31),
		"01/02/2024":   day(2024, 1, 2),
	}
	for in, want := range cases {
		got, err := dates.Parse(in)
		if err != nil || !got.Equal(want) {
			t.Errorf("Parse(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := dates.Parse(""); !calcerr.Is(err, calcerr.KindMissing) {
		t.Fatalf("blank: %v", err)
	}
	if _, err := dates.Parse("not a date"); !calcerr.Is(err, calcerr.KindMissing) {
		t.Fatalf("garbage: %v", err)
	}
}

func TestCountdown(t *testing.T) {
	now := day(2024, 1, 1)
	r := dates.Countdown(now.Add(26*time.Hour+3*time.Minute+4*time.Second), now)
	if r.Days != 1 || r.Hours != 2 || r.Minutes != 3 || r.Seconds != 4 || r.Done {
		t.Fatalf("got %+v", r)
	}
	if r := dates.Countdown(now, now); !r.Done {
		t.Fatalf("target reached should be done: %+v", r)
	}
}

func TestWatch_StopsWhenTargetPasses(t *testing.T) {
	var calls int
	err := dates.Watch(context.Background(), time.Now().Add(-time.Second), time.Millisecond, nil, func(r dates.Remaining) {
		calls++
		if !r.Done {
			t.Errorf("want done, got %+v", r)
		}
	})
	if err != nil || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestWatch_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls int
	err := dates.Watch(ctx, time.Now().Add(time.Hour), time.Millisecond, nil, func(dates.Remaining) {
		calls++
		if calls == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
