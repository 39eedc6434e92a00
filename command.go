package camomile

import "fmt"

// Message selectors understood by the table player.
const (
	selectorSet    = "set"
	selectorPlay   = "play"
	selectorStop   = "stop"
	selectorPause  = "pause"
	selectorResume = "resume"
	selectorReset  = "reset"
	selectorStart  = "start"
	selectorEnd    = "end"
	selectorRange  = "range"
	selectorSpeed  = "speed"
	selectorLoop   = "loop"
	selectorFade   = "fade"
	selectorBang   = "bang"
	selectorFloat  = "float"
)

// Command is a control message for the table player. The set of commands is
// closed: only the types declared in this package implement it.
type Command interface {
	command()
}

// Set binds the player to the named array.
type Set struct{ Name string }

// Play (re)starts playback. N tells how many of the optional arguments were
// given; missing trailing arguments keep their current value.
type Play struct {
	N            int
	StartMs      float64
	EndMs        float64
	SpeedPercent float64
}

// Stop stops playback.
type Stop struct{}

// Pause freezes playback at the current position.
type Pause struct{}

// Resume continues paused playback.
type Resume struct{}

// Reset restores the full array range and unity speed.
type Reset struct{}

// Start sets the range start in milliseconds.
type Start struct{ Ms float64 }

// End sets the range end in milliseconds.
type End struct{ Ms float64 }

// Range sets both range boundaries in milliseconds.
type Range struct {
	StartMs float64
	EndMs   float64
}

// Speed sets the playback speed in percent; negative values play backwards.
type Speed struct{ Percent float64 }

// Loop turns looping on or off.
type Loop struct{ On bool }

// Fade sets the loop crossfade time in milliseconds.
type Fade struct{ Ms float64 }

// Bang starts playback from the range boundary.
type Bang struct{}

// Float is a number on the main inlet: nonzero plays, zero stops.
type Float struct{ Value float64 }

func (Set) command()    {}
func (Play) command()   {}
func (Stop) command()   {}
func (Pause) command()  {}
func (Resume) command() {}
func (Reset) command()  {}
func (Start) command()  {}
func (End) command()    {}
func (Range) command()  {}
func (Speed) command()  {}
func (Loop) command()   {}
func (Fade) command()   {}
func (Bang) command()   {}
func (Float) command()  {}

// ParseCommand validates a selector and its arguments and returns the
// matching command. Wrong argument counts or types yield ErrImproperArgs,
// unknown selectors ErrUnknownMessage.
func ParseCommand(selector string, args []Atom) (Command, error) {
	switch selector {
	case selectorSet:
		if len(args) != singleArg || args[0].IsFloat() {
			return nil, improperArgs(selector, args)
		}
		return Set{Name: args[0].Symbol}, nil

	case selectorPlay:
		if len(args) > playMaxArgs || !allFloats(args) {
			return nil, improperArgs(selector, args)
		}
		cmd := Play{N: len(args)}
		if cmd.N >= playStartArg {
			cmd.StartMs = args[0].Float
		}
		if cmd.N >= playEndArg {
			cmd.EndMs = args[1].Float
		}
		if cmd.N >= playRateArg {
			cmd.SpeedPercent = args[2].Float
		}
		return cmd, nil

	case selectorStop, selectorPause, selectorResume, selectorReset, selectorBang:
		if len(args) != noArgs {
			return nil, improperArgs(selector, args)
		}
		switch selector {
		case selectorStop:
			return Stop{}, nil
		case selectorPause:
			return Pause{}, nil
		case selectorResume:
			return Resume{}, nil
		case selectorReset:
			return Reset{}, nil
		default:
			return Bang{}, nil
		}

	case selectorStart, selectorEnd, selectorSpeed, selectorLoop, selectorFade, selectorFloat:
		if len(args) != singleArg || !args[0].IsFloat() {
			return nil, improperArgs(selector, args)
		}
		v := args[0].Float
		switch selector {
		case selectorStart:
			return Start{Ms: v}, nil
		case selectorEnd:
			return End{Ms: v}, nil
		case selectorSpeed:
			return Speed{Percent: v}, nil
		case selectorLoop:
			return Loop{On: v != 0}, nil
		case selectorFade:
			return Fade{Ms: v}, nil
		default:
			return Float{Value: v}, nil
		}

	case selectorRange:
		if len(args) != rangeArgs || !allFloats(args) {
			return nil, improperArgs(selector, args)
		}
		return Range{StartMs: args[0].Float, EndMs: args[1].Float}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMessage, selector)
	}
}

func allFloats(args []Atom) bool {
	for _, a := range args {
		if !a.IsFloat() {
			return false
		}
	}
	return true
}

func improperArgs(selector string, args []Atom) error {
	return fmt.Errorf("%w for '%s' (%d given)", ErrImproperArgs, selector, len(args))
}
