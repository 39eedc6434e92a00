package engine

import "math"

// Range mapping constants
const (
	// Unbounded is the end-time sentinel meaning "play to the end of the array".
	// Any end time at or above it maps to the array length.
	Unbounded = math.MaxFloat32

	// fadeHalfDivisor caps the fade window to half of the playback range,
	// so the fade-in and the fade-out tail never overlap.
	fadeHalfDivisor = 2
)

// Cubic (Hermite) interpolation constants
const (
	// Hermite interpolation coefficients for smooth C1 continuity
	// Formula: y = ((a*x + b)*x + c)*x + d
	// coefA := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	hermiteCoeff0_5 = 0.5
	hermiteCoeff1_5 = 1.5
	hermiteCoeff2_5 = 2.5
)

// Crossfade constants
const (
	// quarterPeriod maps a [0, 1] fade position onto [0, π/2].
	quarterPeriod = math.Pi / 2
)

// Median constants
const (
	medianHalfDivisor = 2
)
