package camomile

import (
	"io"

	"github.com/pierreguillot/Camomile-sub001/internal/table"
)

// Array is an immutable multi-channel sample array with its own sample rate.
type Array = table.Array

// Store holds named arrays shared by the players of an instance. Players
// bound to a name follow replacements and deletions of that array.
type Store = table.Store

// Array errors.
var (
	// ErrInvalidArray indicates an array that cannot be built or stored.
	ErrInvalidArray = table.ErrInvalidArray

	// ErrInvalidWAV indicates a file that is not a supported PCM WAV file.
	ErrInvalidWAV = table.ErrInvalidWAV
)

// NewStore creates an empty array store.
func NewStore() *Store {
	return table.NewStore()
}

// NewArray builds an array recorded at rate Hz from planar channel data.
// All channels must have the same length. The slices are used as is and must
// not be modified afterwards.
func NewArray(rate float64, channels ...[]float32) (*Array, error) {
	return table.New(rate, channels...)
}

// LoadWAV reads a PCM WAV file into an array.
func LoadWAV(path string) (*Array, error) {
	return table.LoadWAV(path)
}

// DecodeWAV reads PCM WAV data into an array.
func DecodeWAV(r io.ReadSeeker) (*Array, error) {
	return table.DecodeWAV(r)
}

// EncodeWAV writes a as PCM WAV with the given bit depth (16 when zero).
func EncodeWAV(w io.WriteSeeker, a *Array, bitDepth int) error {
	return table.EncodeWAV(w, a, bitDepth)
}
