package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualPower_Endpoints(t *testing.T) {
	in, out := EqualPower(0)
	assert.Zero(t, in)
	assert.Equal(t, 1.0, out)

	in, out = EqualPower(1)
	assert.Equal(t, 1.0, in)
	assert.Zero(t, out)
}

func TestEqualPower_ConstantPower(t *testing.T) {
	for x := 0.0; x <= 1; x += 0.01 {
		in, out := EqualPower(x)
		assert.InDelta(t, 1, in*in+out*out, 1e-12, "x=%v", x)
	}

	in, out := EqualPower(0.5)
	assert.InDelta(t, math.Sqrt2/2, in, 1e-12)
	assert.InDelta(t, math.Sqrt2/2, out, 1e-12)
}

func TestEqualPower_Monotonic(t *testing.T) {
	prevIn, prevOut := EqualPower(0)
	for x := 0.05; x <= 1; x += 0.05 {
		in, out := EqualPower(x)
		assert.Greater(t, in, prevIn)
		assert.Less(t, out, prevOut)
		prevIn, prevOut = in, out
	}
}

func TestEqualPower_Clamps(t *testing.T) {
	in, out := EqualPower(-3)
	assert.Equal(t, [2]float64{0, 1}, [2]float64{in, out})

	in, out = EqualPower(7)
	assert.Equal(t, [2]float64{1, 0}, [2]float64{in, out})

	in, out = EqualPower(math.NaN())
	assert.Equal(t, [2]float64{0, 1}, [2]float64{in, out})
}
