package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerOnceSaturates(t *testing.T) {
	tm := NewTimer(time.Second, TimerOnce)

	tm.Tick(600 * time.Millisecond)
	assert.False(t, tm.Finished())
	assert.InDelta(t, 0.6, tm.Fraction(), 1e-9)

	tm.Tick(600 * time.Millisecond)
	assert.True(t, tm.Finished())
	assert.True(t, tm.JustFinished())
	assert.Equal(t, time.Second, tm.Elapsed)

	tm.Tick(time.Millisecond)
	assert.True(t, tm.Finished())
	assert.False(t, tm.JustFinished())

	tm.Reset()
	assert.False(t, tm.Finished())
	assert.Zero(t, tm.Elapsed)
}

func TestTimerRepeatingWraps(t *testing.T) {
	tm := NewTimer(time.Second, TimerRepeating)

	tm.Tick(900 * time.Millisecond)
	assert.False(t, tm.JustFinished())

	tm.Tick(300 * time.Millisecond)
	assert.True(t, tm.JustFinished())
	assert.Equal(t, 200*time.Millisecond, tm.Elapsed)

	tm.Tick(100 * time.Millisecond)
	assert.False(t, tm.Finished())
}

func TestTimerSetElapsedClamps(t *testing.T) {
	tm := NewTimer(time.Second, TimerOnce)

	tm.SetElapsed(5 * time.Second)
	assert.Equal(t, time.Second, tm.Elapsed)
	assert.True(t, tm.Finished())

	tm.SetElapsed(-time.Second)
	assert.Zero(t, tm.Elapsed)
}
