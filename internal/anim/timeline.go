// Package anim provides the frame-driven animation primitives shared by
// the player UI: normalized timelines, easing curves and a gesture
// velocity tracker. Timelines never block; callers advance them once per
// frame from the update loop.
package anim

import "time"

// Timeline holds a normalized value driven either by a timed animation
// toward a target or directly by gesture input via Set.
type Timeline struct {
	value      float64
	start      float64
	target     float64
	startTime  time.Time
	duration   time.Duration
	curve      Curve
	animating  bool
	onComplete func()
}

// NewTimeline creates a timeline resting at the given value.
func NewTimeline(value float64) *Timeline {
	return &Timeline{value: value, target: value, curve: Linear}
}

// Value returns the current value.
func (t *Timeline) Value() float64 { return t.value }

// Target returns the value the timeline is heading toward. When idle
// this equals Value.
func (t *Timeline) Target() float64 { return t.target }

// Animating reports whether a timed animation is in flight.
func (t *Timeline) Animating() bool { return t.animating }

// OnComplete registers a callback invoked when a timed animation
// reaches its target. Replaces any previous callback.
func (t *Timeline) OnComplete(fn func()) { t.onComplete = fn }

// AnimateTo starts a timed animation from the current value to target.
// Calling it while already resting at target is a no-op: the animation
// is not restarted and the completion callback does not fire again.
func (t *Timeline) AnimateTo(target float64, d time.Duration, curve Curve, now time.Time) {
	if !t.animating && t.value == target {
		return
	}
	if curve == nil {
		curve = Linear
	}
	if d <= 0 {
		t.value = target
		t.target = target
		t.animating = false
		if t.onComplete != nil {
			t.onComplete()
		}
		return
	}
	t.start = t.value
	t.target = target
	t.startTime = now
	t.duration = d
	t.curve = curve
	t.animating = true
}

// Set moves the timeline directly to value, cancelling any timed
// animation without firing its completion callback. Used while a
// gesture drives the value.
func (t *Timeline) Set(value float64) {
	t.value = value
	t.target = value
	t.animating = false
}

// Advance moves a timed animation forward to now. It returns true while
// the animation is still running. On completion the value snaps exactly
// to the target and the completion callback, if any, fires once.
func (t *Timeline) Advance(now time.Time) bool {
	if !t.animating {
		return false
	}
	elapsed := now.Sub(t.startTime)
	if elapsed >= t.duration {
		t.value = t.target
		t.animating = false
		if t.onComplete != nil {
			t.onComplete()
		}
		return false
	}
	frac := float64(elapsed) / float64(t.duration)
	if frac < 0 {
		frac = 0
	}
	t.value = t.start + (t.target-t.start)*t.curve(frac)
	return true
}
