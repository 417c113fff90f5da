package backdrop

import "math"

// DefaultSmoothing closes 5% of the remaining distance to a target per tick.
const DefaultSmoothing = 0.05

// Damp moves current toward target by factor of the remaining distance.
// When current == target the result is exactly current.
func Damp(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// DampVec3 applies Damp component-wise.
func DampVec3(current, target Vec3, factor float64) Vec3 {
	return Vec3{
		X: Damp(current.X, target.X, factor),
		Y: Damp(current.Y, target.Y, factor),
		Z: Damp(current.Z, target.Z, factor),
	}
}

// Oscillate returns sin(elapsed*frequency)*amplitude.
func Oscillate(elapsed, frequency, amplitude float64) float64 {
	return math.Sin(elapsed*frequency) * amplitude
}

// ClampFactor restricts a smoothing factor to (0, 1]. Non-positive or
// non-finite factors fall back to DefaultSmoothing.
func ClampFactor(f float64) float64 {
	if math.IsNaN(f) || f <= 0 {
		return DefaultSmoothing
	}
	if f > 1 {
		return 1
	}
	return f
}

// RemainingAfter returns the fraction of the initial distance to a fixed
// target still left after n ticks of Damp with factor f.
func RemainingAfter(f float64, n int) float64 {
	return math.Pow(1-f, float64(n))
}
