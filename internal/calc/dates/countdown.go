package dates

import (
	"context"
	"time"
)

// Remaining is the time left until a countdown target.
type Remaining struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Done    bool  `json:"done"`
}

// Countdown returns the time left from now until target. Once target has
// passed the result is all zeros with Done set.
func Countdown(target, now time.Time) Remaining {
	left := target.Sub(now)
	if left <= 0 {
		return Remaining{Done: true}
	}
	secs := int64(left / time.Second)
	return Remaining{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}

// Watch recomputes the countdown every interval and hands it to fn, starting
// immediately. It returns nil once the target passes (after delivering the
// final Done value) and ctx.Err() if ctx is cancelled first. now defaults to
// time.Now.
func Watch(ctx context.Context, target time.Time, interval time.Duration, now func() time.Time, fn func(Remaining)) error {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = time.Second
	}

	r := Countdown(target, now())
	fn(r)
	if r.Done {
		return nil
	}

	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			r := Countdown(target, now())
			fn(r)
			if r.Done {
				return nil
			}
		}
	}
}
