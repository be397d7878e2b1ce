package hint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleBounce_RisesAndReturns(t *testing.T) {
	now := time.Now()
	c := New()

	c.TriggerBounce(now)
	require.True(t, c.Bouncing())

	c.Advance(now.Add(200 * time.Millisecond))
	assert.InDelta(t, singleAmplitude, c.Offset(), 0.05, "peak at midpoint")

	c.Advance(now.Add(400 * time.Millisecond))
	assert.Zero(t, c.Offset())
	c.Advance(now.Add(420 * time.Millisecond))
	assert.False(t, c.Bouncing())
}

func TestHintLoop_RepeatsEveryInterval(t *testing.T) {
	now := time.Now()
	c := New()

	c.StartHints(now)
	require.True(t, c.Hinting())

	// First beat fires immediately.
	assert.True(t, c.Advance(now))
	assert.True(t, c.Bouncing())
	c.Advance(now.Add(200 * time.Millisecond))
	assert.InDelta(t, hintAmplitude, c.Offset(), 0.1, "hint bounce is taller")

	// Finish the bounce; loop stays alive but quiet until the beat.
	c.Advance(now.Add(500 * time.Millisecond))
	assert.True(t, c.Advance(now.Add(600*time.Millisecond)))
	assert.False(t, c.Bouncing())

	// Next beat at +2s.
	c.Advance(now.Add(2100 * time.Millisecond))
	assert.True(t, c.Bouncing())
}

func TestStopHints_NoFurtherBounces(t *testing.T) {
	now := time.Now()
	c := New()

	c.StartHints(now)
	c.Advance(now)
	c.Advance(now.Add(500 * time.Millisecond)) // bounce done

	c.StopHints()
	assert.False(t, c.Advance(now.Add(3*time.Second)))
	assert.False(t, c.Bouncing())
	assert.Zero(t, c.Offset())
}

func TestManualBounce_TakesPriorityOverHintLoop(t *testing.T) {
	now := time.Now()
	c := New()

	c.StartHints(now)
	c.Advance(now) // hint bounce starts
	require.True(t, c.Bouncing())

	// A manual event mid-hint replaces the bounce and defers the loop.
	c.TriggerBounce(now.Add(100 * time.Millisecond))
	c.Advance(now.Add(300 * time.Millisecond))
	assert.LessOrEqual(t, c.Offset(), singleAmplitude+0.01,
		"manual amplitude in effect")

	// The loop resumes on its own schedule: 2s after the manual event.
	c.Advance(now.Add(600 * time.Millisecond)) // manual bounce done
	c.Advance(now.Add(1 * time.Second))
	assert.False(t, c.Bouncing(), "no hint before the deferred beat")
	c.Advance(now.Add(2200 * time.Millisecond))
	assert.True(t, c.Bouncing())
}

func TestStartHints_DeferredWhileManualBounceInFlight(t *testing.T) {
	now := time.Now()
	c := New()

	c.TriggerBounce(now)
	c.StartHints(now.Add(50 * time.Millisecond))

	// While the manual bounce runs, no hint bounce may replace it.
	c.Advance(now.Add(100 * time.Millisecond))
	assert.LessOrEqual(t, c.Offset(), singleAmplitude+0.01)

	// After it finishes, the first hint beat fires.
	c.Advance(now.Add(450 * time.Millisecond))
	c.Advance(now.Add(500 * time.Millisecond))
	assert.True(t, c.Bouncing())
}

func TestStartHints_Idempotent(t *testing.T) {
	now := time.Now()
	c := New()

	c.StartHints(now)
	c.Advance(now)
	require.True(t, c.Bouncing())
	beatBusy := c.nextHint

	c.StartHints(now.Add(100 * time.Millisecond))
	assert.Equal(t, beatBusy, c.nextHint, "second StartHints must not reschedule")
}

func TestBounceShape_ZeroAtRestingValue(t *testing.T) {
	assert.Zero(t, bounceShape(0))
	assert.Zero(t, bounceShape(1))
	assert.InDelta(t, 1.0, bounceShape(0.5), 1e-9)
}
