package camomile

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/pierreguillot/Camomile-sub001/internal/engine"
	"github.com/pierreguillot/Camomile-sub001/internal/table"
)

// PlaybackRange is the sample-domain playback window of a player.
type PlaybackRange = engine.Range

// Unbounded is the end time meaning "until the end of the array".
const Unbounded = engine.Unbounded

// Done is emitted when playback ends or wraps around.
type Done struct {
	// Looped is true for a loop wrap and false when playback stopped.
	Looped bool
}

// Reporter receives diagnostics for rejected messages.
// *console.Console implements it.
type Reporter interface {
	Errorf(format string, args ...any)
}

// TabPlayer plays a range of a multi-channel array at a variable, signed
// speed, with optional looping and an equal-power crossfade across the loop
// seam.
//
// Two goroutines drive a player. The audio goroutine calls Process once per
// block; it never blocks, allocates or logs. The control goroutine calls
// Handle, Send and the setters; calls on the control side must be serialized
// by the caller. The two sides share only atomically published values: the
// bound array, the derived PlaybackRange, the speed and the state flags.
// A multi-field change such as a new range together with a new speed may be
// observed half-applied for one block; the next block sees both.
type TabPlayer struct {
	store    *Store
	reporter Reporter
	cancel   func()
	channels int

	// Control side, guarded by mu. The audio goroutine never takes mu.
	mu      sync.Mutex
	name    string
	startMs float64
	endMs   float64
	fadeMs  float64

	// Shared between control and audio.
	array   atomic.Pointer[table.Array]
	rng     atomic.Pointer[engine.Range]
	rate    atomic.Uint64
	looping atomic.Bool
	playing atomic.Bool
	paused  atomic.Bool
	restart atomic.Bool
	onDone  atomic.Pointer[func(Done)]

	// Audio side.
	sampleRate    float64
	blockSize     int
	phase         float64
	firstLoopRamp bool
}

// NewTabPlayer creates a player bound to opts.ArrayName in store. An array
// name that is not (yet) in the store leaves the player silent until the
// array appears or another one is set. reporter may be nil.
func NewTabPlayer(store *Store, opts Options, reporter Reporter) (*TabPlayer, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil array store", ErrInvalidConfig)
	}
	if opts.Channels == 0 {
		opts.Channels = defaultChannels
	}

	cfg := DefaultConfig(opts.Channels)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &TabPlayer{
		store:      store,
		reporter:   reporter,
		channels:   cfg.Channels,
		sampleRate: cfg.SampleRate,
		blockSize:  cfg.BlockSize,
		name:       opts.ArrayName,
		endMs:      Unbounded,
		fadeMs:     math.Max(opts.FadeMs, 0),
	}
	p.setRate(defaultRate)
	p.looping.Store(opts.Loop)

	p.mu.Lock()
	if a, ok := store.Get(p.name); ok {
		p.array.Store(a)
	}
	p.recompute()
	p.mu.Unlock()

	p.cancel = store.Subscribe(p.arrayChanged)
	return p, nil
}

// Configure applies the host's processing configuration. It must not run
// concurrently with Process.
func (p *TabPlayer) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.channels = cfg.Channels
	p.blockSize = cfg.BlockSize
	p.sampleRate = cfg.SampleRate
	return nil
}

// Close releases the store subscription. The player stays usable but no
// longer follows replacements of its array.
func (p *TabPlayer) Close() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// OnDone registers fn to be called when playback stops or loops. fn runs on
// the audio goroutine for natural ends and loop wraps, and on the control
// goroutine for an explicit stop. It must not block. A nil fn removes the
// handler.
func (p *TabPlayer) OnDone(fn func(Done)) {
	if fn == nil {
		p.onDone.Store(nil)
		return
	}
	p.onDone.Store(&fn)
}

// Send parses and handles a control message. Rejected messages are reported
// and leave the player unchanged.
func (p *TabPlayer) Send(selector string, args ...Atom) error {
	cmd, err := ParseCommand(selector, args)
	if err == nil {
		err = p.Handle(cmd)
	}
	if err != nil {
		p.report(err)
	}
	return err
}

// Handle applies a control command.
func (p *TabPlayer) Handle(cmd Command) error {
	switch c := cmd.(type) {
	case Set:
		return p.setArray(c.Name)

	case Play:
		p.mu.Lock()
		if c.N >= playStartArg {
			p.startMs = c.StartMs
		}
		if c.N >= playEndArg {
			p.endMs = c.EndMs
		}
		if c.N >= playRateArg {
			p.setRate(c.SpeedPercent / percentScale)
		}
		if c.N > noArgs {
			p.recompute()
		}
		p.mu.Unlock()
		p.play()

	case Bang:
		p.play()

	case Float:
		if c.Value != 0 {
			p.play()
		} else {
			p.stop()
		}

	case Stop:
		p.stop()

	case Pause:
		if p.playing.Load() {
			p.paused.Store(true)
		}

	case Resume:
		p.paused.Store(false)

	case Reset:
		p.mu.Lock()
		p.startMs = 0
		p.endMs = Unbounded
		p.setRate(defaultRate)
		p.recompute()
		p.mu.Unlock()

	case Start:
		p.mu.Lock()
		p.startMs = c.Ms
		p.recompute()
		p.mu.Unlock()

	case End:
		p.mu.Lock()
		p.endMs = c.Ms
		p.recompute()
		p.mu.Unlock()

	case Range:
		p.mu.Lock()
		p.startMs = c.StartMs
		p.endMs = c.EndMs
		p.recompute()
		p.mu.Unlock()

	case Speed:
		p.setRate(c.Percent / percentScale)

	case Loop:
		p.looping.Store(c.On)

	case Fade:
		p.mu.Lock()
		p.fadeMs = c.Ms
		p.recompute()
		p.mu.Unlock()

	default:
		return fmt.Errorf("%w: %T", ErrUnknownMessage, cmd)
	}
	return nil
}

// Range returns the current playback range.
func (p *TabPlayer) Range() PlaybackRange {
	if r := p.rng.Load(); r != nil {
		return *r
	}
	return PlaybackRange{}
}

// ArrayName returns the name of the array the player is set to.
func (p *TabPlayer) ArrayName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// Speed returns the playback speed in percent.
func (p *TabPlayer) Speed() float64 {
	return p.loadRate() * percentScale
}

// Playing reports whether playback is running or paused.
func (p *TabPlayer) Playing() bool { return p.playing.Load() }

// Paused reports whether playback is paused.
func (p *TabPlayer) Paused() bool { return p.paused.Load() }

// Looping reports whether looping is on.
func (p *TabPlayer) Looping() bool { return p.looping.Load() }

// Channels returns the number of signal outputs.
func (p *TabPlayer) Channels() int { return p.channels }

// BlockSize returns the configured block size.
func (p *TabPlayer) BlockSize() int { return p.blockSize }

// Phase returns the current playback position in samples. It belongs to the
// audio goroutine and is only meaningful between calls to Process.
func (p *TabPlayer) Phase() float64 { return p.phase }

// Process renders n samples into out, one slice per output channel. When in
// is non-nil and the player is not playing, in drives the position directly:
// each value in [0, 1] selects a point of the playback range.
//
// Output channel c reads array channel c; outputs beyond the array's channel
// count, and every output while no playable array is bound, are silent.
//
// The crossfade window sits at the side of the range that playback starts
// from: Start when moving forward, End in reverse. A speed sign change inside
// a window therefore drops the mixed-in tail at once, and the gain returns to
// unity in one sample.
func (p *TabPlayer) Process(n int, in []float32, out [][]float32) {
	for ch := range out {
		n = min(n, len(out[ch]))
	}
	if n <= 0 {
		return
	}

	arr := p.array.Load()
	rng := p.rng.Load()
	if arr == nil || !arr.Playable() || rng == nil || rng.Frames != arr.Len() {
		silence(out, 0, n)
		return
	}

	if !p.playing.Load() {
		if in != nil {
			p.processIndexed(arr, rng, in[:min(n, len(in))], out)
			silence(out, len(in), n)
			return
		}
		silence(out, 0, n)
		return
	}

	step := arr.SampleRate() / p.sampleRate * p.loadRate()

	// Reverse playback covers [Start, End) like forward playback, so it
	// starts one step below End.
	if p.restart.CompareAndSwap(true, false) {
		if step < 0 {
			p.phase = math.Max(rng.End+step, rng.Start)
		} else {
			p.phase = rng.Start
		}
		p.firstLoopRamp = p.looping.Load()
	}

	if p.paused.Load() {
		silence(out, 0, n)
		return
	}

	if rng.Length < 1 {
		p.finish()
		silence(out, 0, n)
		return
	}

	last := float64(arr.Len() - 1)
	loop := p.looping.Load()
	crossfade := loop && rng.Fade > 0

	for i := 0; i < n; i++ {
		forward := step >= 0

		switch {
		case forward && rng.PastEnd(p.phase), !forward && rng.BeforeStart(p.phase):
			if !loop {
				p.finish()
				silence(out, i, n)
				return
			}
			p.phase = rng.Wrap(p.phase)
			p.firstLoopRamp = false
			p.emit(Done{Looped: true})

		case forward && p.phase < rng.Start:
			p.phase = rng.Start

		case !forward && p.phase >= rng.End:
			p.phase = math.Max(rng.End+step, rng.Start)
		}

		gainIn, gainOut := 1.0, 0.0
		tail := 0.0
		if crossfade {
			var x float64
			if forward {
				x = (p.phase - rng.Start) / rng.Fade
				tail = p.phase + rng.Length
			} else {
				x = (rng.End - p.phase) / rng.Fade
				tail = p.phase - rng.Length
			}
			if x < 1 {
				gainIn, gainOut = engine.EqualPower(x)
				if p.firstLoopRamp {
					gainOut = 0
				}
				tail = math.Max(0, math.Min(tail, last))
			}
		}

		pos := math.Min(p.phase, last)
		for ch := range out {
			data := arr.Channel(ch)
			if data == nil {
				out[ch][i] = 0
				continue
			}
			v := gainIn * engine.Interpolate(data, pos)
			if gainOut > 0 {
				v += gainOut * engine.Interpolate(data, tail)
			}
			out[ch][i] = float32(v)
		}

		p.phase += step
	}
}

// processIndexed reads the positions given by in, with no crossfade.
func (p *TabPlayer) processIndexed(arr *table.Array, rng *engine.Range, in []float32, out [][]float32) {
	last := float64(arr.Len() - 1)
	for i, v := range in {
		x := math.Max(0, math.Min(float64(v), 1))
		pos := math.Min(rng.Start+x*rng.Length, last)
		for ch := range out {
			data := arr.Channel(ch)
			if data == nil {
				out[ch][i] = 0
				continue
			}
			out[ch][i] = float32(engine.Interpolate(data, pos))
		}
	}
}

func (p *TabPlayer) play() {
	p.paused.Store(false)
	p.restart.Store(true)
	p.playing.Store(true)
}

func (p *TabPlayer) stop() {
	p.restart.Store(false)
	p.finish()
}

// finish ends playback and emits Done if playback was running. Only one of
// the audio and control goroutines wins the transition.
func (p *TabPlayer) finish() {
	if p.playing.CompareAndSwap(true, false) {
		p.paused.Store(false)
		p.emit(Done{})
	}
}

func (p *TabPlayer) emit(d Done) {
	if fn := p.onDone.Load(); fn != nil {
		(*fn)(d)
	}
}

func (p *TabPlayer) setArray(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.name = name
	a, ok := p.store.Get(name)
	if !ok {
		p.array.Store(nil)
		p.recompute()
		return fmt.Errorf("%w: %s", ErrNoSuchArray, name)
	}
	p.array.Store(a)
	p.recompute()
	return nil
}

// arrayChanged follows replacements and deletions of the bound array.
func (p *TabPlayer) arrayChanged(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if name != p.name {
		return
	}
	a, _ := p.store.Get(name)
	p.array.Store(a)
	p.recompute()
}

// recompute republishes the derived range. Callers hold mu.
func (p *TabPlayer) recompute() {
	a := p.array.Load()
	r := engine.Recompute(a.Len(), p.startMs, p.endMs, p.fadeMs, a.KHz())
	p.rng.Store(&r)
}

func (p *TabPlayer) setRate(rate float64) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = defaultRate
	}
	p.rate.Store(math.Float64bits(rate))
}

func (p *TabPlayer) loadRate() float64 {
	return math.Float64frombits(p.rate.Load())
}

func (p *TabPlayer) report(err error) {
	if p.reporter != nil {
		p.reporter.Errorf("%s: %v", tabplayerName, err)
	}
}

// silence zeroes samples [from, to) of every output.
func silence(out [][]float32, from, to int) {
	for ch := range out {
		if from < to && to <= len(out[ch]) {
			for i := from; i < to; i++ {
				out[ch][i] = 0
			}
		}
	}
}
