package core

import "time"

// Timer accumulates frame deltas and latches Ready once its duration has elapsed
// Wall-clock time never enters a Timer; only deltas passed to Update count
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	ready    bool
}

// NewTimer creates a timer that becomes ready after d
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// Update advances the timer, returns Ready
func (t *Timer) Update(delta time.Duration) bool {
	if t.ready {
		return true
	}
	t.elapsed += delta
	if t.elapsed >= t.duration {
		t.ready = true
	}
	return t.ready
}

// Ready reports whether the duration has elapsed since the last Reset
func (t *Timer) Ready() bool {
	return t.ready
}

// Reset restarts the countdown from zero
func (t *Timer) Reset() {
	t.elapsed = 0
	t.ready = false
}

// SetDuration replaces the duration and restarts the countdown
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
	t.Reset()
}

// Duration returns the configured duration
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns time left until ready, zero once ready
func (t *Timer) Remaining() time.Duration {
	if t.ready {
		return 0
	}
	return t.duration - t.elapsed
}
