// Package expansion drives the collapsed/expanded morph of the player
// surface. A single timeline owns the expansion progress; every visual
// property of the morph is a pure function of that progress plus the
// screen size, so the two layouts stay geometrically continuous.
package expansion

import (
	"time"

	"github.com/lmercier/resound/internal/anim"
)

const morphDuration = 300 * time.Millisecond

// Controller owns the expansion timeline.
type Controller struct {
	tl          *anim.Timeline
	onCollapsed func()
	onExpanded  func()
}

// New creates a collapsed controller.
func New() *Controller {
	c := &Controller{tl: anim.NewTimeline(0)}
	c.tl.OnComplete(c.completed)
	return c
}

// Progress returns the expansion progress in [0,1].
func (c *Controller) Progress() float64 { return c.tl.Value() }

// IsExpanded reports whether the surface is logically expanded.
func (c *Controller) IsExpanded() bool { return c.tl.Value() > 0.5 }

// Animating reports whether a morph is in flight.
func (c *Controller) Animating() bool { return c.tl.Animating() }

// Expand animates toward the full-screen layout. Calling it while
// already expanded is a no-op.
func (c *Controller) Expand(now time.Time) {
	c.tl.AnimateTo(1, morphDuration, anim.EaseOutCubic, now)
}

// Collapse animates back to the mini layout. On completion the
// collapsed callback fires so dependent chrome (the queue panel) can
// hard-reset.
func (c *Controller) Collapse(now time.Time) {
	c.tl.AnimateTo(0, morphDuration, anim.EaseInCubic, now)
}

// Toggle expands or collapses based on the current logical state.
func (c *Controller) Toggle(now time.Time) {
	if c.IsExpanded() {
		c.Collapse(now)
	} else {
		c.Expand(now)
	}
}

// OnCollapsed registers a callback fired when the morph settles fully
// collapsed.
func (c *Controller) OnCollapsed(fn func()) { c.onCollapsed = fn }

// OnExpanded registers a callback fired when the morph settles fully
// expanded.
func (c *Controller) OnExpanded(fn func()) { c.onExpanded = fn }

// Advance moves the morph forward to now; returns true while animating.
func (c *Controller) Advance(now time.Time) bool { return c.tl.Advance(now) }

func (c *Controller) completed() {
	switch c.tl.Value() {
	case 0:
		if c.onCollapsed != nil {
			c.onCollapsed()
		}
	case 1:
		if c.onExpanded != nil {
			c.onExpanded()
		}
	}
}
