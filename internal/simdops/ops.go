// Package simdops provides SIMD-accelerated block operations on the float32
// sample buffers produced by the players.
package simdops

import (
	"github.com/tphakala/simd/f32"
)

// Ops provides SIMD-accelerated float32 operations.
// Function pointers let tests swap in reference implementations.
type Ops struct {
	// Interleave2 interleaves two slices: dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float32)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float32, s float32)

	// Sum returns the sum of all elements.
	Sum func(a []float32) float32
}

// ops32 is package-level to avoid repeated allocation.
var ops32 = Ops{
	Interleave2: f32.Interleave2,
	Scale:       f32.Scale,
	Sum:         f32.Sum,
}

// Float32Ops returns the float32 SIMD operations.
func Float32Ops() *Ops {
	return &ops32
}

// Interleave writes planar channels into dst frame by frame and returns the
// number of frames written. dst must hold frames*len(channels) samples; the
// frame count is the shortest channel.
func Interleave(dst []float32, channels [][]float32) int {
	nch := len(channels)
	if nch == 0 {
		return 0
	}
	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}
	frames = min(frames, len(dst)/nch)

	switch nch {
	case 1:
		copy(dst, channels[0][:frames])
	case 2:
		ops32.Interleave2(dst[:2*frames], channels[0][:frames], channels[1][:frames])
	default:
		for i := range frames {
			for ch := range nch {
				dst[i*nch+ch] = channels[ch][i]
			}
		}
	}
	return frames
}

// Gain scales every channel in place.
func Gain(channels [][]float32, g float32) {
	if g == 1 {
		return
	}
	for _, ch := range channels {
		ops32.Scale(ch, ch, g)
	}
}

// Mean returns the average of a.
func Mean(a []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return ops32.Sum(a) / float32(len(a))
}
