package camomile

import (
	"fmt"

	"github.com/pierreguillot/Camomile-sub001/internal/console"
	"github.com/pierreguillot/Camomile-sub001/internal/param"
	"github.com/pierreguillot/Camomile-sub001/internal/table"
)

// Parameter is a plugin parameter exposed by an instance.
type Parameter = param.Parameter

// ParameterSet holds the parameters of an instance in declaration order.
type ParameterSet = param.Collection

// Parameter errors.
var (
	// ErrInvalidParameter indicates a malformed parameter description.
	ErrInvalidParameter = param.ErrInvalid

	// ErrDuplicateParameter indicates a parameter name or binding already in use.
	ErrDuplicateParameter = param.ErrDuplicate
)

// NewParameter creates a parameter ranging from minVal to maxVal, set to def.
func NewParameter(name string, minVal, maxVal, def float64, steps int) (*Parameter, error) {
	return param.New(name, minVal, maxVal, def, steps)
}

// Console is the message history of an instance.
type Console = console.Console

// ConsoleMessage is one console entry.
type ConsoleMessage = console.Message

// ConsoleLevel is the severity of a console message.
type ConsoleLevel = console.Level

// Console levels, most severe first.
const (
	LevelFatal  = console.LevelFatal
	LevelError  = console.LevelError
	LevelNormal = console.LevelNormal
	LevelLog    = console.LevelLog
)

// NewConsole creates a console keeping at most capacity messages
// (a default capacity when zero).
func NewConsole(capacity int) *Console {
	return console.New(capacity)
}

// Patch is the embedded patch engine as seen by an instance. Loading the
// patch and running its DSP are the engine's business; the instance only
// sends it messages.
type Patch interface {
	Send(receiver, selector string, args ...Atom) error
}

// Instance ties a patch to the state the plugin keeps around it: named
// arrays, parameters and the console.
type Instance struct {
	patch   Patch
	arrays  *table.Store
	params  *param.Collection
	console *console.Console
}

// NewInstance creates an instance driving patch. patch may be nil, in which
// case parameter changes are kept but not forwarded.
func NewInstance(patch Patch) *Instance {
	return &Instance{
		patch:   patch,
		arrays:  table.NewStore(),
		params:  param.NewCollection(),
		console: console.New(0),
	}
}

// Arrays returns the array store shared by the instance's players.
func (in *Instance) Arrays() *Store { return in.arrays }

// Console returns the instance console.
func (in *Instance) Console() *Console { return in.console }

// Parameters returns the parameter collection.
func (in *Instance) Parameters() *ParameterSet { return in.params }

// LoadArray reads a WAV file into the array called name.
func (in *Instance) LoadArray(name, path string) error {
	a, err := table.LoadWAV(path)
	if err == nil {
		err = in.arrays.Put(name, a)
	}
	if err != nil {
		in.console.Errorf("soundfiler: %v", err)
		return err
	}
	in.console.Logf("soundfiler: %s: %d frames, %d channels, %g Hz", name, a.Len(), a.Channels(), a.SampleRate())
	return nil
}

// AddParameter parses a parameter description and registers it. Invalid or
// duplicate parameters are reported and rejected.
func (in *Instance) AddParameter(desc ...string) (int, error) {
	p, err := param.Parse(desc)
	if err != nil {
		in.console.Errorf("param: %v", err)
		return -1, err
	}
	index, err := in.params.Add(p)
	if err != nil {
		in.console.Errorf("param: %v", err)
		return -1, err
	}
	return index, nil
}

// SetParameter sets parameter index from the host side and forwards the
// plain value to the patch through the parameter's receive name.
func (in *Instance) SetParameter(index int, normalized float64) error {
	p := in.params.Get(index)
	if p == nil {
		return fmt.Errorf("%w: no parameter at index %d", param.ErrInvalid, index)
	}
	p.SetValue(normalized)

	if in.patch == nil || p.Receive == "" {
		return nil
	}
	if err := in.patch.Send(p.Receive, selectorFloat, FloatAtom(p.PlainValue())); err != nil {
		in.console.Errorf("param %s: %v", p.Name, err)
		return err
	}
	return nil
}

// ReceiveParameter applies a plain value sent by the patch on a parameter's
// send name.
func (in *Instance) ReceiveParameter(binding string, plain float64) error {
	index, ok := in.params.Bound(binding)
	if !ok {
		return fmt.Errorf("%w: no parameter bound to %q", param.ErrInvalid, binding)
	}
	in.params.Get(index).SetPlainValue(plain)
	return nil
}

// NewTabPlayer creates a table player from construction arguments, using the
// instance's arrays and console. Malformed arguments are reported and yield nil.
func (in *Instance) NewTabPlayer(args ...Atom) *TabPlayer {
	opts, err := ParseOptions(args)
	if err != nil {
		in.console.Errorf("%s: %v", tabplayerName, err)
		return nil
	}
	p, err := NewTabPlayer(in.arrays, opts, in.console)
	if err != nil {
		in.console.Errorf("%s: %v", tabplayerName, err)
		return nil
	}
	return p
}

// NewMedianFilter creates a median filter, reporting an invalid size and
// returning nil for it.
func (in *Instance) NewMedianFilter(size int) *MedianFilter {
	m, err := NewMedianFilter(size)
	if err != nil {
		in.console.Errorf("%s: %v", medianName, err)
		return nil
	}
	return m
}
