package engine

import "math"

// Range is the sample-domain playback window derived from millisecond
// parameters. A Range is immutable once computed; the player publishes a
// fresh value whenever one of its inputs changes.
type Range struct {
	// Millisecond inputs, kept so the range can be recomputed against a new array.
	StartMs float64
	EndMs   float64
	FadeMs  float64

	// Start and End are absolute sample positions, 0 <= Start <= End <= Frames.
	Start float64
	End   float64

	// Length is End - Start.
	Length float64

	// Fade is the crossfade window in samples, 0 <= Fade <= Length/2.
	Fade float64

	// Frames is the array length the range was computed against.
	Frames int
}

// Recompute maps millisecond start, end and fade times onto an array of
// frames samples recorded at sourceKHz samples per millisecond.
//
// The result always satisfies 0 <= Start <= End <= frames and
// 0 <= Fade <= Length/2. Inverted start/end pairs are swapped, an end time at
// or above Unbounded means the end of the array, and negative fades clamp to
// zero. Recompute is pure and idempotent.
func Recompute(frames int, startMs, endMs, fadeMs, sourceKHz float64) Range {
	r := Range{
		StartMs: startMs,
		EndMs:   endMs,
		FadeMs:  fadeMs,
		Frames:  max(frames, 0),
	}

	if r.Frames == 0 || !(sourceKHz > 0) {
		return r
	}

	limit := float64(r.Frames)

	start := clampSamples(startMs*sourceKHz, limit)

	end := limit
	if endMs < Unbounded {
		end = clampSamples(endMs*sourceKHz, limit)
	}

	if start > end {
		start, end = end, start
	}

	r.Start = start
	r.End = end
	r.Length = end - start

	fade := fadeMs * sourceKHz
	if !(fade > 0) {
		fade = 0
	}
	r.Fade = math.Min(fade, r.Length/fadeHalfDivisor)

	return r
}

// PastEnd reports whether phase has run off the end of the range during forward playback.
func (r *Range) PastEnd(phase float64) bool {
	return phase >= r.End
}

// BeforeStart reports whether phase has run off the start of the range during reverse playback.
func (r *Range) BeforeStart(phase float64) bool {
	return phase < r.Start
}

// Wrap folds phase back into [Start, End) by whole multiples of Length.
func (r *Range) Wrap(phase float64) float64 {
	if r.Length <= 0 {
		return r.Start
	}
	off := math.Mod(phase-r.Start, r.Length)
	if off < 0 {
		off += r.Length
	}
	return r.Start + off
}

// clampSamples clamps a sample position into [0, limit]; NaN maps to 0.
func clampSamples(v, limit float64) float64 {
	switch {
	case !(v > 0):
		return 0
	case v > limit:
		return limit
	default:
		return v
	}
}
