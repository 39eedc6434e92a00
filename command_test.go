package camomile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floats(vs ...float64) []Atom {
	atoms := make([]Atom, len(vs))
	for i, v := range vs {
		atoms[i] = FloatAtom(v)
	}
	return atoms
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		selector string
		args     []Atom
		want     Command
	}{
		{"set", []Atom{SymbolAtom("drums")}, Set{Name: "drums"}},
		{"play", nil, Play{}},
		{"play", floats(100), Play{N: 1, StartMs: 100}},
		{"play", floats(100, 200), Play{N: 2, StartMs: 100, EndMs: 200}},
		{"play", floats(100, 200, -50), Play{N: 3, StartMs: 100, EndMs: 200, SpeedPercent: -50}},
		{"stop", nil, Stop{}},
		{"pause", nil, Pause{}},
		{"resume", nil, Resume{}},
		{"reset", nil, Reset{}},
		{"bang", nil, Bang{}},
		{"start", floats(12.5), Start{Ms: 12.5}},
		{"end", floats(900), End{Ms: 900}},
		{"range", floats(900, 100), Range{StartMs: 900, EndMs: 100}},
		{"speed", floats(-200), Speed{Percent: -200}},
		{"loop", floats(1), Loop{On: true}},
		{"loop", floats(0), Loop{On: false}},
		{"loop", floats(-3), Loop{On: true}},
		{"fade", floats(20), Fade{Ms: 20}},
		{"float", floats(0), Float{Value: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := ParseCommand(tt.selector, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_ImproperArgs(t *testing.T) {
	tests := []struct {
		selector string
		args     []Atom
		message  string
	}{
		{"set", nil, "improper args for 'set' (0 given)"},
		{"set", floats(1), "improper args for 'set' (1 given)"},
		{"set", []Atom{SymbolAtom("a"), SymbolAtom("b")}, "improper args for 'set' (2 given)"},
		{"play", floats(1, 2, 3, 4), "improper args for 'play' (4 given)"},
		{"play", []Atom{SymbolAtom("now")}, "improper args for 'play' (1 given)"},
		{"pause", floats(1), "improper args for 'pause' (1 given)"},
		{"start", nil, "improper args for 'start' (0 given)"},
		{"end", []Atom{SymbolAtom("x")}, "improper args for 'end' (1 given)"},
		{"range", floats(1), "improper args for 'range' (1 given)"},
		{"range", floats(1, 2, 3), "improper args for 'range' (3 given)"},
		{"speed", floats(1, 2), "improper args for 'speed' (2 given)"},
		{"fade", []Atom{SymbolAtom("long")}, "improper args for 'fade' (1 given)"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			cmd, err := ParseCommand(tt.selector, tt.args)
			require.ErrorIs(t, err, ErrImproperArgs)
			assert.Nil(t, cmd)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestParseCommand_UnknownSelector(t *testing.T) {
	_, err := ParseCommand("rewind", nil)
	require.ErrorIs(t, err, ErrUnknownMessage)
	assert.Contains(t, err.Error(), "rewind")
}
