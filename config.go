package camomile

import (
	"errors"
	"fmt"
)

// Common errors returned by the players and filters.
var (
	// ErrInvalidConfig indicates invalid configuration or construction arguments.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrImproperArgs indicates a control message with a malformed argument list.
	ErrImproperArgs = errors.New("improper args")

	// ErrUnknownMessage indicates a selector the object does not understand.
	ErrUnknownMessage = errors.New("no method for message")

	// ErrNoSuchArray indicates a set message naming an array that does not exist.
	ErrNoSuchArray = errors.New("no such array")
)

// Config holds the audio processing configuration handed over by the host.
type Config struct {
	// Channels is the number of signal outputs.
	Channels int

	// BlockSize is the number of samples per processing block.
	BlockSize int

	// SampleRate is the engine processing rate in Hz.
	SampleRate float64
}

// DefaultConfig returns a configuration with the Pure Data defaults for the
// given channel count.
func DefaultConfig(channels int) Config {
	return Config{
		Channels:   channels,
		BlockSize:  DefaultBlockSize,
		SampleRate: DefaultSampleRate,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !(c.SampleRate > 0) {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	if c.Channels < 1 {
		return fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}

	if c.Channels > MaxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, MaxChannels)
	}

	if c.BlockSize < 1 || c.BlockSize > maxBlockSize {
		return fmt.Errorf("%w: block size must be in [1, %d]", ErrInvalidConfig, maxBlockSize)
	}

	return nil
}
