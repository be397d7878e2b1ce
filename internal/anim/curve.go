package anim

// Curve maps linear progress [0,1] to eased progress.
// Curves may overshoot outside [0,1] (see EaseOutBack).
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// EaseInCubic starts slow and accelerates.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic starts fast and decelerates.
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

// EaseOutBack decelerates with a slight overshoot past the target
// before settling, giving a spring-back feel.
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}
