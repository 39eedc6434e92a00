package table

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWAV_FileNotFound(t *testing.T) {
	_, err := LoadWAV("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestLoadWAV_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = LoadWAV(invalidFile)
	require.ErrorIs(t, err, ErrInvalidWAV)
}

func TestEncodeDecodeWAV_Stereo16(t *testing.T) {
	const frames = 1000
	left := make([]float32, frames)
	right := make([]float32, frames)
	for i := range frames {
		left[i] = float32(0.8 * math.Sin(2*math.Pi*float64(i)/100))
		right[i] = -left[i] / 2
	}
	src, err := New(48000, left, right)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stereo.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, EncodeWAV(f, src, 16))
	require.NoError(t, f.Close())

	got, err := LoadWAV(path)
	require.NoError(t, err)

	assert.Equal(t, frames, got.Len())
	assert.Equal(t, 2, got.Channels())
	assert.Equal(t, 48000.0, got.SampleRate())

	// One 16-bit quantization step
	const tolerance = 1.0 / 32768
	for ch := range 2 {
		want := src.Channel(ch)
		have := got.Channel(ch)
		for i := range frames {
			require.InDelta(t, want[i], have[i], tolerance, "channel %d sample %d", ch, i)
		}
	}
}

func TestEncodeWAV_ClipsAndRejects(t *testing.T) {
	src, err := New(44100, []float32{2, -2, 0})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, EncodeWAV(f, src, 0))
	require.NoError(t, f.Close())

	got, err := LoadWAV(path)
	require.NoError(t, err)
	assert.InDelta(t, 1, got.Channel(0)[0], 1.0/16384)
	assert.InDelta(t, -1, got.Channel(0)[1], 1e-9)
	assert.Zero(t, got.Channel(0)[2])

	f, err = os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.ErrorIs(t, EncodeWAV(f, src, 12), ErrInvalidWAV)
}
