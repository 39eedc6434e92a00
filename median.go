package camomile

import (
	"fmt"

	"github.com/pierreguillot/Camomile-sub001/internal/engine"
)

// MedianFilter is a sliding-window median over a signal. The window starts
// filled with zeros. Process does not allocate.
type MedianFilter struct {
	history []float32
	scratch []float32
	pos     int
}

// NewMedianFilter creates a filter over the last size samples.
func NewMedianFilter(size int) (*MedianFilter, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %s window size must be at least 1", ErrInvalidConfig, medianName)
	}
	return &MedianFilter{
		history: make([]float32, size),
		scratch: make([]float32, size),
	}, nil
}

// Size returns the window size.
func (m *MedianFilter) Size() int {
	return len(m.history)
}

// Process writes the running median of in to out. out may alias in.
func (m *MedianFilter) Process(in, out []float32) {
	n := min(len(in), len(out))
	for i := range n {
		m.history[m.pos] = in[i]
		m.pos++
		if m.pos == len(m.history) {
			m.pos = 0
		}
		copy(m.scratch, m.history)
		out[i] = engine.SelectMedian(m.scratch)
	}
}

// Reset clears the window.
func (m *MedianFilter) Reset() {
	for i := range m.history {
		m.history[i] = 0
	}
	m.pos = 0
}
