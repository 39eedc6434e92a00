// Package param implements the plugin parameter model: named parameters with
// a normalized [0, 1] value shared between the host and the patch.
package param

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// Common errors returned by the param package.
var (
	// ErrInvalid indicates a malformed parameter description.
	ErrInvalid = errors.New("invalid parameter")

	// ErrDuplicate indicates a name or binding already used by another parameter.
	ErrDuplicate = errors.New("duplicate parameter")
)

// Parameter is a plugin parameter. Its normalized value is stored atomically
// so it can be read from the audio thread while the host writes it.
type Parameter struct {
	Name    string
	Label   string
	Receive string
	Send    string
	Min     float64
	Max     float64
	Default float64
	Steps   int

	value atomic.Uint64
}

// New creates a parameter ranging from minVal to maxVal and sets it to its default.
// minVal may be greater than maxVal, which inverts the mapping.
func New(name string, minVal, maxVal, def float64, steps int) (*Parameter, error) {
	p := &Parameter{Name: name, Min: minVal, Max: maxVal, Default: def, Steps: steps}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Reset()
	return p, nil
}

// Validate checks the parameter description.
func (p *Parameter) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalid)
	}
	if math.IsNaN(p.Min) || math.IsNaN(p.Max) || math.IsInf(p.Min, 0) || math.IsInf(p.Max, 0) {
		return fmt.Errorf("%w: %s: bounds must be finite", ErrInvalid, p.Name)
	}
	if p.Steps < 0 {
		return fmt.Errorf("%w: %s: negative step count", ErrInvalid, p.Name)
	}
	return nil
}

// Value returns the current normalized value (0-1).
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue sets the normalized value, clamped to [0, 1] and quantized to the step count.
func (p *Parameter) SetValue(normalized float64) {
	p.value.Store(math.Float64bits(p.quantize(clamp01(normalized))))
}

// PlainValue returns the current value mapped onto [Min, Max].
func (p *Parameter) PlainValue() float64 {
	return p.Denormalize(p.Value())
}

// SetPlainValue sets the value from a plain value.
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.Normalize(plain))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.SetPlainValue(p.Default)
}

// Normalize converts a plain value to the normalized range. The mapping is
// linear, and inverse-linear when Min > Max.
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max == p.Min {
		return 0
	}
	return clamp01((plain - p.Min) / (p.Max - p.Min))
}

// Denormalize converts a normalized value to the plain range.
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + clamp01(normalized)*(p.Max-p.Min)
}

// Text formats the current value with its label.
func (p *Parameter) Text() string {
	var s string
	if p.Steps > 0 {
		s = strconv.FormatFloat(p.PlainValue(), 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(p.PlainValue(), 'f', 2, 64)
	}
	if p.Label != "" {
		s += " " + p.Label
	}
	return s
}

func (p *Parameter) quantize(n float64) float64 {
	if p.Steps < 2 {
		return n
	}
	intervals := float64(p.Steps - 1)
	return math.Round(n*intervals) / intervals
}

func clamp01(v float64) float64 {
	switch {
	case !(v > 0):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
