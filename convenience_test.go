package camomile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pierreguillot/Camomile-sub001/internal/table"
	"github.com/pierreguillot/Camomile-sub001/internal/testutil"
)

func TestNewStereoPlayer(t *testing.T) {
	store := newTestStore(t, "a", RateCD, make([]float32, 10), make([]float32, 10))
	p, err := NewStereoPlayer(store, "a")
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 2, p.Channels())
	assert.False(t, p.Looping())
	assert.Equal(t, float64(DefaultSampleRate), p.sampleRate)
}

func TestNewLooper(t *testing.T) {
	store := newTestStore(t, "a", RateCD, make([]float32, RateCD))
	p, err := NewLooper(store, "a", 1, 20)
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.Looping())
	assert.InDelta(t, 882, p.Range().Fade, 1e-9)

	_, err = NewLooper(store, "a", MaxChannels+1, 20)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseScript(t *testing.T) {
	script := `
# warm-up
500 stop
0 range 0 1000
0 play
250.5 speed -100
`
	events, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, "0 range 0 1000", events[0].String())
	assert.Equal(t, "0 play", events[1].String())
	assert.Equal(t, "250.5 speed -100", events[2].String())
	assert.Equal(t, "500 stop", events[3].String())
}

func TestParseScript_TabSeparated(t *testing.T) {
	events, err := ParseScript(strings.NewReader("0\tplay\n10\t range\t0  100\n"))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "0 play", events[0].String())
	assert.Equal(t, "10 range 0 100", events[1].String())
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"bad time", "soon play", "line 1: invalid time"},
		{"negative time", "0 play\n-5 stop", "line 2: invalid time"},
		{"improper args", "0 range 1", "line 1: improper args for 'range'"},
		{"unknown selector", "10 rewind", "line 1: no method for message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_EventsAtBlockBoundaries(t *testing.T) {
	store := table.NewStore()
	a, err := table.New(testRate, testutil.Ramp(1000, 1))
	require.NoError(t, err)
	require.NoError(t, store.Put("a", a))

	p, err := NewTabPlayer(store, Options{ArrayName: "a"}, nil)
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, p.Configure(Config{Channels: 1, BlockSize: 64, SampleRate: testRate}))

	events, err := ParseScript(strings.NewReader("70 play\n200 stop"))
	require.NoError(t, err)

	out, err := Render(p, 256, events)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0], 256)

	// play at 70 ms lands before the second block, stop at 200 ms before the fourth.
	testutil.AssertSilent(t, out[0][:64])
	assert.Equal(t, float32(0), out[0][64])
	assert.Equal(t, float32(63), out[0][127])
	assert.Equal(t, float32(127), out[0][191])
	testutil.AssertSilent(t, out[0][192:])
}

func TestRender_ReturnsRejectedEvents(t *testing.T) {
	store := newTestStore(t, "a", testRate, testutil.Ramp(1000, 1))
	p, err := NewTabPlayer(store, Options{ArrayName: "a"}, nil)
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, p.Configure(Config{Channels: 1, BlockSize: 64, SampleRate: testRate}))

	events := []Event{
		{AtMs: 0, Selector: "play"},
		{AtMs: 10, Selector: "speed"},
		{AtMs: 100, Selector: "set", Args: []Atom{SymbolAtom("missing")}},
	}

	out, err := Render(p, 128, events)
	require.ErrorIs(t, err, ErrImproperArgs)
	require.ErrorIs(t, err, ErrNoSuchArray)
	assert.Contains(t, err.Error(), "10 speed")
	assert.Contains(t, err.Error(), "100 set missing")

	// The render runs to the end; the failed set unbinds the player from the
	// second block on.
	require.Len(t, out[0], 128)
	assert.Equal(t, float32(0), out[0][0])
	assert.Equal(t, float32(63), out[0][63])
	testutil.AssertSilent(t, out[0][64:])
}
