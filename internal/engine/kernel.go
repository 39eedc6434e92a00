// Package engine implements the sample-domain arithmetic behind the
// table player and the median filter: range mapping, interpolation,
// crossfade gains and selection.
package engine

import "math"

// Interpolate reads data at a fractional sample position using 4-point, 3rd
// order Hermite (Catmull-Rom) interpolation between data[i] and data[i+1],
// with data[i-1] and data[i+2] as outer neighbours.
//
// Positions outside [0, len(data)) and NaN fall back to index 0. Outer taps
// past either end of the slice replicate the edge sample, so Interpolate never
// reads out of bounds. An empty slice yields 0.
func Interpolate(data []float32, phase float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	i := 0
	x := 0.0
	if phase >= 0 && phase < float64(n) {
		fi := math.Floor(phase)
		i = int(fi)
		x = phase - fi
	}

	last := n - 1
	y0 := float64(data[max(i-1, 0)])
	y1 := float64(data[i])
	y2 := float64(data[min(i+1, last)])
	y3 := float64(data[min(i+2, last)])

	return hermite(y0, y1, y2, y3, x)
}

// hermite evaluates y = ((a*x + b)*x + c)*x + d for the 4-point window.
func hermite(y0, y1, y2, y3, x float64) float64 {
	coefA := -hermiteCoeff0_5*y0 + hermiteCoeff1_5*y1 - hermiteCoeff1_5*y2 + hermiteCoeff0_5*y3
	coefB := y0 - hermiteCoeff2_5*y1 + 2*y2 - hermiteCoeff0_5*y3
	coefC := -hermiteCoeff0_5*y0 + hermiteCoeff0_5*y2
	coefD := y1

	return ((coefA*x+coefB)*x+coefC)*x + coefD
}
