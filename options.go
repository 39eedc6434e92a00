package camomile

import (
	"fmt"
	"math"
	"strings"
)

// Construction flags
const (
	flagLoop = "-loop"
	flagFade = "-fade"
)

// Options are the construction arguments of a table player:
//
//	<array-name> [-loop] [-fade <ms>] [channel-count]
type Options struct {
	// ArrayName is the array to bind at construction. Empty leaves the player unbound.
	ArrayName string

	// Loop starts the player in looping mode.
	Loop bool

	// FadeMs is the initial loop crossfade time.
	FadeMs float64

	// Channels is the number of signal outputs (1 when zero).
	Channels int
}

// ParseOptions parses construction arguments. Flags may appear anywhere;
// the first symbol is the array name and a number is the channel count.
// Anything else is rejected with ErrImproperArgs.
func ParseOptions(args []Atom) (Options, error) {
	opts := Options{Channels: defaultChannels}
	haveChannels := false

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case !a.IsFloat() && a.Symbol == flagLoop:
			opts.Loop = true

		case !a.IsFloat() && a.Symbol == flagFade:
			if i+1 >= len(args) || !args[i+1].IsFloat() {
				return Options{}, fmt.Errorf("%w: %s expects a time in ms", ErrImproperArgs, flagFade)
			}
			i++
			opts.FadeMs = math.Max(args[i].Float, 0)

		case !a.IsFloat() && strings.HasPrefix(a.Symbol, "-"):
			return Options{}, fmt.Errorf("%w: unknown flag '%s'", ErrImproperArgs, a.Symbol)

		case !a.IsFloat():
			if opts.ArrayName != "" {
				return Options{}, fmt.Errorf("%w: unexpected argument '%s'", ErrImproperArgs, a.Symbol)
			}
			opts.ArrayName = a.Symbol

		default:
			if haveChannels {
				return Options{}, fmt.Errorf("%w: unexpected argument '%s'", ErrImproperArgs, a)
			}
			haveChannels = true
			opts.Channels = int(a.Float)
			if float64(opts.Channels) != a.Float || opts.Channels < 1 || opts.Channels > MaxChannels {
				return Options{}, fmt.Errorf("%w: channel count must be an integer in [1, %d]",
					ErrImproperArgs, MaxChannels)
			}
		}
	}

	return opts, nil
}
