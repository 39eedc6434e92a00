package camomile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Common sample rates for convenience functions.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000
)

// stereoChannels is the output count of NewStereoPlayer.
const stereoChannels = 2

// msPerSecond converts between seconds and milliseconds.
const msPerSecond = 1000.0

// NewStereoPlayer creates a two-output player for the named array.
func NewStereoPlayer(store *Store, arrayName string) (*TabPlayer, error) {
	return NewTabPlayer(store, Options{ArrayName: arrayName, Channels: stereoChannels}, nil)
}

// NewLooper creates a looping player with the given crossfade time.
func NewLooper(store *Store, arrayName string, channels int, fadeMs float64) (*TabPlayer, error) {
	return NewTabPlayer(store, Options{
		ArrayName: arrayName,
		Loop:      true,
		FadeMs:    fadeMs,
		Channels:  channels,
	}, nil)
}

// Event is a control message scheduled at a time offset.
type Event struct {
	AtMs     float64
	Selector string
	Args     []Atom
}

// String formats the event as a script line.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(e.AtMs, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(e.Selector)
	for _, a := range e.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return b.String()
}

// ParseScript reads one event per line in the form
//
//	<time-ms> <selector> [args...]
//
// Fields are separated by any whitespace.
// Blank lines and lines starting with '#' are skipped. Every message is
// checked with ParseCommand so a bad script fails before rendering starts.
func ParseScript(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		ms, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || ms < 0 || math.IsInf(ms, 0) {
			return nil, fmt.Errorf("line %d: invalid time %q", line, fields[0])
		}

		selector, args := ParseMessage(strings.Join(fields[1:], " "))
		if _, err := ParseCommand(selector, args); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, Event{AtMs: ms, Selector: selector, Args: args})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	slices.SortStableFunc(events, func(a, b Event) int {
		switch {
		case a.AtMs < b.AtMs:
			return -1
		case a.AtMs > b.AtMs:
			return 1
		default:
			return 0
		}
	})
	return events, nil
}

// Render runs p offline for frames samples and returns one slice per output.
// Events are delivered between blocks, before the first block that contains
// their time, the way a patch scheduler delivers messages. A rejected event
// does not stop the render; all rejections are returned joined, each prefixed
// with its event.
func Render(p *TabPlayer, frames int, events []Event) ([][]float32, error) {
	out := make([][]float32, p.Channels())
	for ch := range out {
		out[ch] = make([]float32, frames)
	}

	var errs []error
	block := make([][]float32, len(out))
	blockSize := p.BlockSize()
	next := 0
	for pos := 0; pos < frames; pos += blockSize {
		n := min(blockSize, frames-pos)
		end := float64(pos+n) / p.sampleRate * msPerSecond
		for next < len(events) && events[next].AtMs < end {
			e := events[next]
			if err := p.Send(e.Selector, e.Args...); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", e, err))
			}
			next++
		}
		for ch := range out {
			block[ch] = out[ch][pos : pos+n]
		}
		p.Process(n, nil, block)
	}
	return out, errors.Join(errs...)
}
