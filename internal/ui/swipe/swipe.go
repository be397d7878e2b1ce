// Package swipe interprets horizontal drag gestures on the collapsed
// player as a target-switch preview. While dragging, a signed offset in
// [-1,1] tracks the gesture and resolves a peek target; releasing either
// commits the switch (animate out, select, settle) or cancels (spring
// back). The whole machine is frame-driven and never blocks.
package swipe

import (
	"time"

	"github.com/lmercier/resound/internal/anim"
	"github.com/lmercier/resound/internal/remote"
)

const (
	commitDuration = 150 * time.Millisecond
	cancelDuration = 300 * time.Millisecond

	// unknownTrackHoldFrames keeps the peek content mounted after a
	// switch to a target with no cached track, so the "nothing
	// playing" chrome can mount underneath before the peek tears
	// down. Without it the first frame after reset renders empty.
	unknownTrackHoldFrames = 2
)

// Phase is the gesture state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
	PhaseCancelling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	case PhaseCancelling:
		return "cancelling"
	}
	return "unknown"
}

// Service is the slice of the remote contract the gesture needs.
type Service interface {
	SelectedTarget() *remote.Target
	AvailableTargets() []remote.Target
	CachedTrack(targetID string) *remote.Track
	CurrentTrack() *remote.Track
	SelectTarget(id string)
}

// Config tunes gesture resolution.
type Config struct {
	EdgeMargin        int     // dead-zone columns at each edge
	CommitThreshold   float64 // |offset| beyond which release commits
	VelocityThreshold float64 // cells/s beyond which release commits
}

// Controller is the swipe-switch state machine.
type Controller struct {
	svc Service
	cfg Config

	phase      Phase
	width      int
	startX     int
	holdFrames int

	tl *anim.Timeline
	vt anim.VelocityTracker

	peekTarget *remote.Target
	peekTrack  *remote.Track

	onCommitted func(target remote.Target)
}

// New creates an idle controller.
func New(svc Service, cfg Config) *Controller {
	return &Controller{
		svc: svc,
		cfg: cfg,
		tl:  anim.NewTimeline(0),
	}
}

// SetWidth sets the gesture container width in columns. Deltas are
// normalized against it.
func (c *Controller) SetWidth(w int) { c.width = w }

// Offset returns the signed drag progress in [-1,1]. Negative values
// slide toward the next target, positive toward the previous one.
func (c *Controller) Offset() float64 { return c.tl.Value() }

// Phase returns the current gesture phase.
func (c *Controller) Phase() Phase { return c.phase }

// Dragging reports whether a live drag is in progress.
func (c *Controller) Dragging() bool { return c.phase == PhaseDragging }

// Animating reports whether a commit/cancel resolution is running,
// including the post-commit hold frames.
func (c *Controller) Animating() bool {
	return c.phase == PhaseCommitting || c.phase == PhaseCancelling
}

// Peek returns the previewed target and its last-known track. The
// track is nil for targets with nothing cached; callers render a
// device glyph instead.
func (c *Controller) Peek() (*remote.Target, *remote.Track) {
	return c.peekTarget, c.peekTrack
}

// OnCommitted registers a callback fired when a switch is committed,
// right after the selection command is issued.
func (c *Controller) OnCommitted(fn func(target remote.Target)) { c.onCommitted = fn }

// DragStart begins a gesture at column x. Starts are ignored while a
// resolution animates and inside the edge dead zones. A dead-zone
// start poisons the whole gesture regardless of later movement: the
// controller never leaves idle, so the moves and release that follow
// fall through without touching state.
func (c *Controller) DragStart(x int, now time.Time) {
	if c.Animating() || c.phase == PhaseDragging {
		return
	}
	if c.width <= 0 || x < c.cfg.EdgeMargin || x >= c.width-c.cfg.EdgeMargin {
		return
	}
	c.phase = PhaseDragging
	c.startX = x
	c.peekTarget = nil
	c.peekTrack = nil
	c.vt.Reset()
	c.vt.AddSample(float64(x), now)
	c.tl.Set(0)
}

// DragMove updates the gesture position. Moves without a matching
// start are ignored.
func (c *Controller) DragMove(x int, now time.Time) {
	if c.phase != PhaseDragging {
		return
	}
	c.vt.AddSample(float64(x), now)

	offset := clamp(float64(x-c.startX)/float64(c.width), -1, 1)
	if offset == c.tl.Value() {
		return
	}
	c.tl.Set(offset)
	c.resolvePeek(peekDirection(offset))
}

// DragEnd resolves the gesture into a commit or a cancel.
func (c *Controller) DragEnd(now time.Time) {
	if c.phase != PhaseDragging {
		return
	}

	offset := c.tl.Value()
	velocity := c.vt.Estimate(now)

	shouldCommit := abs(offset) > c.cfg.CommitThreshold ||
		abs(velocity) > c.cfg.VelocityThreshold

	dir := peekDirection(offset)
	if dir == 0 {
		// Stationary offset: take direction from the flick. A
		// leftward flick (negative velocity) means "next".
		dir = peekDirection(velocity)
	}
	c.resolvePeek(dir)

	if shouldCommit && c.peekTarget != nil {
		c.phase = PhaseCommitting
		target := -1.0
		if dir < 0 {
			target = 1.0
		}
		c.tl.OnComplete(c.commitLanded)
		c.tl.AnimateTo(target, commitDuration, anim.EaseOutCubic, now)
		return
	}

	c.phase = PhaseCancelling
	c.tl.OnComplete(c.cancelLanded)
	c.tl.AnimateTo(0, cancelDuration, anim.EaseOutBack, now)
}

// Advance drives resolution animations and the post-commit hold.
// Returns true while the controller still needs frames.
func (c *Controller) Advance(now time.Time) bool {
	if c.tl.Advance(now) {
		return true
	}
	if c.phase == PhaseCommitting {
		if c.holdFrames > 0 {
			c.holdFrames--
			return true
		}
		c.reset()
	}
	return false
}

// Reset abandons any in-flight gesture or resolution immediately.
func (c *Controller) Reset() {
	c.tl.Set(0)
	c.reset()
}

func (c *Controller) commitLanded() {
	peek := c.peekTarget
	if peek == nil {
		// Should not happen; resolve as a cancel.
		c.reset()
		return
	}
	c.svc.SelectTarget(peek.ID)
	if c.onCommitted != nil {
		c.onCommitted(*peek)
	}
	if c.svc.CurrentTrack() != nil {
		// The new target's content is already known: swap it in on
		// the next frame.
		c.holdFrames = 0
	} else {
		c.holdFrames = unknownTrackHoldFrames
	}
}

func (c *Controller) cancelLanded() {
	c.reset()
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.holdFrames = 0
	c.peekTarget = nil
	c.peekTrack = nil
	c.tl.OnComplete(nil)
	c.tl.Set(0)
}

// resolvePeek recomputes the previewed target for the given direction
// and refreshes its cached track only when the target changed.
func (c *Controller) resolvePeek(dir int) {
	if dir == 0 {
		c.peekTarget = nil
		c.peekTrack = nil
		return
	}
	selected := c.svc.SelectedTarget()
	if selected == nil {
		c.peekTarget = nil
		c.peekTrack = nil
		return
	}
	next := remote.AdjacentTarget(c.svc.AvailableTargets(), selected.ID, dir)
	if next == nil {
		c.peekTarget = nil
		c.peekTrack = nil
		return
	}
	if c.peekTarget != nil && c.peekTarget.ID == next.ID {
		c.peekTarget = next
		return
	}
	c.peekTarget = next
	c.peekTrack = c.svc.CachedTrack(next.ID)
}

// peekDirection maps a signed offset or velocity to a list direction:
// negative input (slide left) previews the next target.
func peekDirection(v float64) int {
	switch {
	case v < 0:
		return 1
	case v > 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
