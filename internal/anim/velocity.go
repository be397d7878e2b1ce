package anim

import "time"

// velocityWindow bounds how far back samples count toward the estimate.
// Older samples describe a different phase of the gesture.
const velocityWindow = 100 * time.Millisecond

const maxVelocitySamples = 20

type velocitySample struct {
	position float64
	at       time.Time
}

// VelocityTracker estimates gesture velocity from recent position
// samples. Feed it every drag update, then query Estimate at drag end.
type VelocityTracker struct {
	samples []velocitySample
}

// AddSample records a gesture position at the given time.
func (v *VelocityTracker) AddSample(position float64, now time.Time) {
	v.samples = append(v.samples, velocitySample{position: position, at: now})
	if len(v.samples) > maxVelocitySamples {
		v.samples = v.samples[len(v.samples)-maxVelocitySamples:]
	}
}

// Estimate returns the velocity in position units per second over the
// recent sample window, or 0 if there are not enough samples.
func (v *VelocityTracker) Estimate(now time.Time) float64 {
	cutoff := now.Add(-velocityWindow)
	first := -1
	for i, s := range v.samples {
		if !s.at.Before(cutoff) {
			first = i
			break
		}
	}
	if first < 0 || len(v.samples)-first < 2 {
		return 0
	}
	oldest := v.samples[first]
	newest := v.samples[len(v.samples)-1]
	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (newest.position - oldest.position) / dt
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
