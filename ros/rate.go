package ros

import (
	"context"
	"time"
)

// Rate paces a loop at a fixed frequency. Unlike sleeping for a fixed
// period, it accounts for the time spent in the loop body.
type Rate struct {
	actualCycleTime   Duration
	expectedCycleTime Duration
	start             Time
}

func NewRate(frequency float64) Rate {
	return CycleTime(DurationFromSec(1.0 / frequency))
}

func CycleTime(d Duration) Rate {
	return Rate{expectedCycleTime: d, start: Now()}
}

// CycleTime is the measured length of the last cycle.
func (r *Rate) CycleTime() Duration {
	return r.actualCycleTime
}

func (r *Rate) ExpectedCycleTime() Duration {
	return r.expectedCycleTime
}

func (r *Rate) Reset() {
	r.actualCycleTime = Duration{}
	r.start = Now()
}

// Sleep waits out the rest of the current cycle, or returns the context's
// error if it is cancelled first.
func (r *Rate) Sleep(ctx context.Context) error {
	diff := Now().Diff(r.start)
	var remaining Duration
	if r.expectedCycleTime.Cmp(diff) >= 0 {
		remaining = r.expectedCycleTime.Sub(diff)
	}
	if remaining.ToNSec() > 0 {
		timer := time.NewTimer(remaining.ToGoDuration())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	now := Now()
	r.actualCycleTime = now.Diff(r.start)
	r.start = r.start.Add(r.expectedCycleTime)
	if now.Diff(r.start).ToNSec() > r.expectedCycleTime.ToNSec() {
		// Fell more than a cycle behind; do not try to catch up.
		r.start = now
	}
	return nil
}
