// Package hint animates small vertical bounces of the collapsed player:
// a one-shot bounce acknowledging explicit events, and a repeating
// taller bounce teaching the swipe gesture on first run. Both write the
// same offset channel; manual bounces take priority over the hint loop.
package hint

import (
	"time"

	"github.com/lmercier/resound/internal/anim"
)

const (
	bounceDuration = 400 * time.Millisecond
	hintInterval   = 2 * time.Second

	singleAmplitude = 1.0 // rows
	hintAmplitude   = 2.0
)

type bounceKind int

const (
	bounceNone bounceKind = iota
	bounceSingle
	bounceHint
)

// Controller owns the bounce offset channel.
type Controller struct {
	tl        *anim.Timeline
	kind      bounceKind
	hinting   bool
	nextHint  time.Time
	amplitude float64
}

// New creates an idle controller.
func New() *Controller {
	return &Controller{tl: anim.NewTimeline(0)}
}

// Offset returns the current vertical displacement in rows.
func (c *Controller) Offset() float64 {
	return c.amplitude * bounceShape(c.tl.Value())
}

// Bouncing reports whether a bounce animation is in flight.
func (c *Controller) Bouncing() bool { return c.tl.Animating() }

// Hinting reports whether the discovery hint loop is active.
func (c *Controller) Hinting() bool { return c.hinting }

// TriggerBounce starts a one-shot bounce. It replaces any in-flight
// hint bounce and pushes the next hint beat past its own duration, so
// the two never overlap; the hint loop resumes on its own schedule.
func (c *Controller) TriggerBounce(now time.Time) {
	c.startBounce(bounceSingle, singleAmplitude, now)
	if c.hinting {
		c.nextHint = now.Add(hintInterval)
	}
}

// StartHints activates the discovery hint loop. The first hint bounce
// fires on the next Advance, or after any manual bounce currently in
// flight finishes.
func (c *Controller) StartHints(now time.Time) {
	if c.hinting {
		return
	}
	c.hinting = true
	c.nextHint = now
	if c.kind == bounceSingle && c.tl.Animating() {
		c.nextHint = now.Add(bounceDuration)
	}
}

// StopHints deactivates the hint loop. An in-flight hint bounce
// finishes its cycle; no new one starts.
func (c *Controller) StopHints() { c.hinting = false }

// Advance drives the bounce animation and the hint beat. Returns true
// while the controller needs further frames.
func (c *Controller) Advance(now time.Time) bool {
	if c.tl.Advance(now) {
		return true
	}
	if c.kind != bounceNone {
		c.kind = bounceNone
		c.amplitude = 0
	}
	if c.hinting && !now.Before(c.nextHint) {
		c.startBounce(bounceHint, hintAmplitude, now)
		c.nextHint = now.Add(hintInterval)
		return true
	}
	return c.hinting
}

func (c *Controller) startBounce(kind bounceKind, amplitude float64, now time.Time) {
	c.kind = kind
	c.amplitude = amplitude
	c.tl.Set(0)
	c.tl.AnimateTo(1, bounceDuration, anim.Linear, now)
}

// bounceShape maps bounce progress to displacement: rise to the full
// amplitude in the first half, settle back in the second, eased out in
// both directions.
func bounceShape(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	if t < 0.5 {
		return anim.EaseOutCubic(t * 2)
	}
	return anim.EaseOutCubic(2 - t*2)
}
