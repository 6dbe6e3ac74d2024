package core

import "time"

// RefreshTimer throttles overlay refreshes with an accumulate-and-compare
// counter fed by host tick deltas.
type RefreshTimer struct {
	interval    time.Duration
	accumulator time.Duration
}

// NewRefreshTimer constructs a timer that fires once per interval.
func NewRefreshTimer(interval time.Duration) *RefreshTimer {
	if interval <= 0 {
		interval = time.Second
	}
	return &RefreshTimer{interval: interval}
}

// Advance adds delta to the accumulated time and reports whether the
// interval has elapsed. Firing does not reset the timer; the caller resets
// after acting on it.
func (t *RefreshTimer) Advance(delta time.Duration) bool {
	t.accumulator += delta
	return t.accumulator >= t.interval
}

// Reset clears the accumulated time.
func (t *RefreshTimer) Reset() {
	t.accumulator = 0
}
