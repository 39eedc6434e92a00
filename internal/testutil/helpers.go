// Package testutil provides reusable test helper functions for player and filter tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-6
	SampleTolerance  = 1e-4
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(float64(v)) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(float64(v), 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float32, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if float64(v) < minVal || float64(v) > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertSilent verifies that every element is exactly zero.
func AssertSilent(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v != 0 {
			return assert.Fail(t, "signal not silent", "s[%d]=%f", i, v)
		}
	}
	return true
}

// AssertMaxStep verifies that consecutive samples never differ by more than maxStep.
func AssertMaxStep(t *testing.T, s []float32, maxStep float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if d := math.Abs(float64(s[i] - s[i-1])); d > maxStep {
			return assert.Fail(t, "discontinuity",
				"|s[%d]-s[%d]| = %f exceeds %f", i, i-1, d, maxStep)
		}
	}
	return true
}

// Ramp returns n samples rising from 0 by step.
func Ramp(n int, step float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(i) * step
	}
	return s
}

// Sine returns n samples of a unit sine with the given period in samples.
func Sine(n int, period float64) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = float32(math.Sin(2 * math.Pi * float64(i) / period))
	}
	return s
}
