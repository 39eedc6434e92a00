package param

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultValue(t *testing.T) {
	p, err := New("Gain", 0, 10, 2.5, 0)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, p.Value(), 1e-12)
	assert.InDelta(t, 2.5, p.PlainValue(), 1e-12)
}

func TestParameter_ClampsNormalized(t *testing.T) {
	p, err := New("Mix", 0, 1, 0, 0)
	require.NoError(t, err)

	p.SetValue(1.5)
	assert.Equal(t, 1.0, p.Value())
	p.SetValue(-0.5)
	assert.Equal(t, 0.0, p.Value())
}

func TestParameter_InverseRange(t *testing.T) {
	p, err := New("Inverted", 100, -100, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, p.Value(), 1e-12)

	p.SetValue(0)
	assert.Equal(t, 100.0, p.PlainValue())
	p.SetValue(1)
	assert.Equal(t, -100.0, p.PlainValue())

	p.SetPlainValue(50)
	assert.InDelta(t, 0.25, p.Value(), 1e-12)
}

func TestParameter_Steps(t *testing.T) {
	p, err := New("Mode", 0, 4, 0, 5)
	require.NoError(t, err)

	p.SetValue(0.3)
	assert.InDelta(t, 0.25, p.Value(), 1e-12)
	assert.Equal(t, "1", p.Text())

	p.SetValue(0.9)
	assert.InDelta(t, 1.0, p.Value(), 1e-12)
}

func TestParameter_DegenerateRange(t *testing.T) {
	p, err := New("Flat", 3, 3, 3, 0)
	require.NoError(t, err)
	assert.Zero(t, p.Value())
	assert.Equal(t, 3.0, p.PlainValue())
}

func TestParameter_Text(t *testing.T) {
	p, err := New("Cutoff", 20, 20000, 1000, 0)
	require.NoError(t, err)
	p.Label = "Hz"
	assert.Equal(t, "1000.00 Hz", p.Text())
}

func TestParameter_Validate(t *testing.T) {
	_, err := New("", 0, 1, 0, 0)
	require.ErrorIs(t, err, ErrInvalid)

	_, err = New("x", 0, 1, 0, -1)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParameter_ConcurrentAccess(t *testing.T) {
	p, err := New("Gain", 0, 1, 0, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			p.SetValue(float64(i) / 1000)
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			v := p.Value()
			assert.True(t, v >= 0 && v <= 1)
		}
	}()
	wg.Wait()
}
