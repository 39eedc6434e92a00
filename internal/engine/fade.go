package engine

import "math"

// EqualPower returns the fade-in and fade-out gains for a crossfade position
// x in [0, 1], following a sine/cosine quarter period so that
// in² + out² = 1 across the whole fade. Positions outside [0, 1] clamp.
func EqualPower(x float64) (in, out float64) {
	switch {
	case !(x > 0):
		return 0, 1
	case x >= 1:
		return 1, 0
	}
	in, out = math.Sincos(x * quarterPeriod)
	return in, out
}
