package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const kernelTolerance = 1e-9

func TestInterpolate_IntegerPhaseReturnsSample(t *testing.T) {
	data := []float32{0.5, -0.25, 1, 0.75, -1, 0.125}
	for i, want := range data {
		assert.InDelta(t, float64(want), Interpolate(data, float64(i)), kernelTolerance, "index %d", i)
	}
}

// TestInterpolate_LinearDataIsExact verifies that Catmull-Rom reproduces a
// straight line away from the edges.
func TestInterpolate_LinearDataIsExact(t *testing.T) {
	data := make([]float32, 16)
	for i := range data {
		data[i] = float32(i)
	}

	for phase := 1.0; phase < 13; phase += 0.125 {
		assert.InDelta(t, phase, Interpolate(data, phase), kernelTolerance, "phase %v", phase)
	}
}

func TestInterpolate_ConstantData(t *testing.T) {
	data := []float32{0.3, 0.3, 0.3, 0.3}
	for phase := 0.0; phase < 4; phase += 0.1 {
		assert.InDelta(t, 0.3, Interpolate(data, phase), 1e-6, "phase %v", phase)
	}
}

func TestInterpolate_OutOfRangeFallsBackToIndexZero(t *testing.T) {
	data := []float32{0.5, 1, 2, 3}

	for _, phase := range []float64{-1, -0.001, 4, 4.5, 1e12, math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.InDelta(t, 0.5, Interpolate(data, phase), kernelTolerance, "phase %v", phase)
	}
}

func TestInterpolate_EdgesReplicate(t *testing.T) {
	data := []float32{1, 1, 1, 5}

	// Last interval: taps i+1 and i+2 both replicate data[3], so the window
	// is {1, 5, 5, 5} at x = 0.5
	v := Interpolate(data, 3.5)
	assert.InDelta(t, hermite(1, 5, 5, 5, 0.5), v, kernelTolerance)
	assert.InDelta(t, 5.25, v, kernelTolerance)

	// First interval: tap i-1 replicates data[0]
	assert.InDelta(t, hermite(1, 1, 1, 1, 0.25), Interpolate(data, 0.25), kernelTolerance)

	// Single sample array
	assert.InDelta(t, 2, Interpolate([]float32{2}, 0.75), kernelTolerance)
}

// TestInterpolate_TailIntervalsInterpolate covers the last three intervals,
// where the full 4-point window no longer fits. They interpolate instead of
// falling back to index 0.
func TestInterpolate_TailIntervalsInterpolate(t *testing.T) {
	data := make([]float32, 8)
	for i := range data {
		data[i] = float32(i)
	}

	// i+2 is still in bounds, so linear data stays exact.
	for _, phase := range []float64{5, 5.25, 5.5, 5.75} {
		assert.InDelta(t, phase, Interpolate(data, phase), kernelTolerance, "phase %v", phase)
	}

	// Past that the outer taps replicate data[7].
	assert.InDelta(t, hermite(5, 6, 7, 7, 0.5), Interpolate(data, 6.5), kernelTolerance)
	assert.InDelta(t, hermite(6, 7, 7, 7, 0.5), Interpolate(data, 7.5), kernelTolerance)
	assert.Greater(t, Interpolate(data, 7.5), 6.0)
}

func TestInterpolate_EmptyData(t *testing.T) {
	assert.Zero(t, Interpolate(nil, 0))
	assert.Zero(t, Interpolate([]float32{}, 1.5))
}

func TestInterpolate_Continuous(t *testing.T) {
	data := make([]float32, 256)
	for i := range data {
		data[i] = float32(math.Sin(2 * math.Pi * float64(i) / 64))
	}

	prev := Interpolate(data, 0)
	for phase := 0.01; phase < 255; phase += 0.01 {
		v := Interpolate(data, phase)
		assert.Less(t, math.Abs(v-prev), 0.01, "jump at phase %v", phase)
		prev = v
	}
}

func BenchmarkInterpolate(b *testing.B) {
	data := make([]float32, 4096)
	for i := range data {
		data[i] = float32(math.Sin(float64(i) * 0.01))
	}
	b.ReportAllocs()
	b.ResetTimer()

	phase := 0.0
	var sink float64
	for b.Loop() {
		sink += Interpolate(data, phase)
		phase += 0.73
		if phase >= 4095 {
			phase = 0
		}
	}
	_ = sink
}
