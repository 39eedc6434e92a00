package table

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Supported PCM bit depths
const (
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// 8-bit WAV samples are unsigned and centered on 128.
	unsigned8Offset = 128
)

// LoadWAV reads a PCM WAV file into a new array.
func LoadWAV(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	a, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// DecodeWAV decodes PCM WAV data into a planar float32 array with samples
// normalized to [-1, 1).
func DecodeWAV(r io.ReadSeeker) (*Array, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV stream", ErrInvalidWAV)
	}
	if decoder.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: unsupported audio format %d", ErrInvalidWAV, decoder.WavAudioFormat)
	}

	bitDepth := int(decoder.BitDepth)
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidWAV)
	}

	frames := len(buf.Data) / channels
	data := make([][]float32, channels)
	for ch := range channels {
		data[ch] = make([]float32, frames)
	}

	for i := range frames {
		for ch := range channels {
			v := buf.Data[i*channels+ch]
			if bitDepth == bitsPerSample8 {
				v -= unsigned8Offset
			}
			data[ch][i] = float32(float64(v) * scale)
		}
	}

	return New(float64(buf.Format.SampleRate), data...)
}

// EncodeWAV writes a as PCM WAV with the given bit depth (16 when zero).
// Samples are clipped to [-1, 1].
func EncodeWAV(w io.WriteSeeker, a *Array, bitDepth int) error {
	if bitDepth == 0 {
		bitDepth = defaultBitDepth
	}
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return err
	}
	if a.Channels() == 0 {
		return fmt.Errorf("%w: no channels to encode", ErrInvalidArray)
	}

	maxVal := 1 / scale
	channels := a.Channels()
	frames := a.Len()
	rate := int(math.Round(a.SampleRate()))

	buf := &audio.IntBuffer{
		Data:           make([]int, frames*channels),
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: bitDepth,
	}
	for ch := range channels {
		src := a.Channel(ch)
		for i, s := range src {
			v := math.Round(math.Max(-1, math.Min(1, float64(s))) * maxVal)
			v = math.Min(v, maxVal-1)
			if bitDepth == bitsPerSample8 {
				v += unsigned8Offset
			}
			buf.Data[i*channels+ch] = int(v)
		}
	}

	encoder := wav.NewEncoder(w, rate, bitDepth, channels, wavFormatPCM)
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return encoder.Close()
}

// pcmScale returns the factor mapping integer PCM samples of the given bit
// depth onto [-1, 1).
func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample8, bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return 1 / math.Ldexp(1, bitDepth-1), nil
	default:
		return 0, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidWAV, bitDepth)
	}
}
