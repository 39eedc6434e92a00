// Package table holds the sample arrays played back by the table player.
//
// An Array is immutable once built: replacing the contents of a named array
// means putting a new Array into the Store under the same name. Players keep
// a non-owning pointer and pick up replacements through Store subscriptions.
package table

import (
	"errors"
	"fmt"
)

// Common errors returned by the table package.
var (
	// ErrInvalidArray indicates malformed array contents or attributes.
	ErrInvalidArray = errors.New("invalid array")

	// ErrInvalidWAV indicates a file that could not be decoded as PCM WAV.
	ErrInvalidWAV = errors.New("invalid WAV data")
)

// Array is a planar, multi-channel block of 32-bit float samples together
// with the sample rate of the material it holds.
type Array struct {
	data [][]float32
	rate float64
}

// New builds an array from planar channel data recorded at rate Hz.
// All channels must have the same length. The slices are used as-is and
// must not be modified afterwards.
func New(rate float64, channels ...[]float32) (*Array, error) {
	if !(rate > 0) {
		return nil, fmt.Errorf("%w: sample rate must be positive", ErrInvalidArray)
	}
	if len(channels) > maxChannels {
		return nil, fmt.Errorf("%w: too many channels (max %d)", ErrInvalidArray, maxChannels)
	}
	for ch := 1; ch < len(channels); ch++ {
		if len(channels[ch]) != len(channels[0]) {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalidArray, ch, len(channels[ch]), len(channels[0]))
		}
	}
	return &Array{data: channels, rate: rate}, nil
}

// Len returns the number of sample frames.
func (a *Array) Len() int {
	if a == nil || len(a.data) == 0 {
		return 0
	}
	return len(a.data[0])
}

// Channels returns the channel count.
func (a *Array) Channels() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// Channel returns the samples of channel ch, or nil if there is no such channel.
func (a *Array) Channel(ch int) []float32 {
	if a == nil || ch < 0 || ch >= len(a.data) {
		return nil
	}
	return a.data[ch]
}

// SampleRate returns the sample rate of the material in Hz.
func (a *Array) SampleRate() float64 {
	if a == nil {
		return 0
	}
	return a.rate
}

// KHz returns the sample rate in samples per millisecond.
func (a *Array) KHz() float64 {
	return a.SampleRate() / msPerSecond
}

// Playable reports whether the array holds at least one sample frame.
func (a *Array) Playable() bool {
	return a.Len() > 0 && a.rate > 0
}
