package world

import "time"

// TimerMode controls what happens when a timer reaches its duration.
type TimerMode uint8

const (
	// TimerOnce saturates at the duration and stays finished until Reset.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps around and reports finished on the tick it wrapped.
	TimerRepeating
)

// Timer accumulates frame time. It is advanced cooperatively by the owning
// system and never fires on its own.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	justFinished bool
}

// NewTimer creates a timer with the given duration and mode.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	if t.Mode == TimerOnce {
		wasFinished := t.Finished()
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
		}
		t.justFinished = !wasFinished && t.Finished()
		return
	}

	t.Elapsed += dt
	t.justFinished = false
	if t.Duration <= 0 {
		t.justFinished = true
		t.Elapsed = 0
		return
	}
	if t.Elapsed >= t.Duration {
		t.justFinished = true
		t.Elapsed %= t.Duration
	}
}

// Finished reports whether the timer has completed. Once timers stay
// finished until reset; repeating timers only on the tick they wrapped.
func (t *Timer) Finished() bool {
	if t.Mode == TimerOnce {
		return t.Elapsed >= t.Duration
	}
	return t.justFinished
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Reset rewinds the timer to zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.justFinished = false
}

// SetElapsed overrides the elapsed time, clamped to the duration.
func (t *Timer) SetElapsed(d time.Duration) {
	if d > t.Duration {
		d = t.Duration
	}
	if d < 0 {
		d = 0
	}
	t.Elapsed = d
}

// Fraction returns progress through the current interval in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}
