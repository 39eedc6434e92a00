// Command tabplayer-render plays a WAV file through a table player offline and
// writes the result to another WAV file.
//
// Usage:
//
//	tabplayer-render input.wav output.wav
//	tabplayer-render -loop -fade 20 -duration 8000 loop.wav out.wav
//	tabplayer-render -script moves.txt -rate 48 input.wav out.wav
//
// A script holds one timed control message per line, for example
//
//	0    range 250 1250
//	0    play
//	2000 speed -100
//	4000 stop
//
// Without a script the player starts at time 0 and plays once through.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	camomile "github.com/pierreguillot/Camomile-sub001"
	"github.com/pierreguillot/Camomile-sub001/internal/simdops"
)

const (
	// arrayName is the name the input file is stored under.
	arrayName = "input"

	// CLI defaults
	defaultRateKHz  = 44.1
	defaultBitDepth = 16
	minRequiredArgs = 2

	// Conversion constants
	kHzToHz     = 1000
	msPerSecond = 1000.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Engine sample rate in kHz")
	block := flag.Int("block", camomile.DefaultBlockSize, "Processing block size in samples")
	channels := flag.Int("channels", 0, "Output channels (default: channels of the input)")
	loop := flag.Bool("loop", false, "Start in looping mode")
	fadeMs := flag.Float64("fade", 0, "Loop crossfade in ms")
	durationMs := flag.Float64("duration", 0, "Output length in ms (default: length of the input)")
	script := flag.String("script", "", "Control script with one '<ms> <message>' per line")
	gainDB := flag.Float64("gain", 0, "Output gain in dB")
	bits := flag.Int("bits", defaultBitDepth, "Output bit depth: 8, 16, 24 or 32")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]
	sampleRate := *rateKHz * kHzToHz

	arr, err := camomile.LoadWAV(inputPath)
	if err != nil {
		return err
	}
	if *channels == 0 {
		*channels = arr.Channels()
	}

	events, err := loadScript(*script)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Input: %s (%d frames, %d channels, %g Hz)", inputPath, arr.Len(), arr.Channels(), arr.SampleRate())
		log.Printf("Output: %s (%d channels, %d-bit)", outputPath, *channels, *bits)
		log.Printf("Engine rate: %g Hz, block size: %d", sampleRate, *block)
		log.Printf("Events: %d", len(events))
	}

	store := camomile.NewStore()
	if err := store.Put(arrayName, arr); err != nil {
		return err
	}

	cons := camomile.NewConsole(0)
	if *verbose {
		cons.SetMirror(log.Default())
	}

	p, err := camomile.NewTabPlayer(store, camomile.Options{
		ArrayName: arrayName,
		Loop:      *loop,
		FadeMs:    *fadeMs,
		Channels:  *channels,
	}, cons)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Configure(camomile.Config{Channels: *channels, BlockSize: *block, SampleRate: sampleRate}); err != nil {
		return err
	}

	var loops int
	p.OnDone(func(d camomile.Done) {
		if d.Looped {
			loops++
		}
	})

	frames := outputFrames(*durationMs, arr, sampleRate)

	start := time.Now()
	out, renderErr := camomile.Render(p, frames, events)
	simdops.Gain(out, dbToLinear(*gainDB))
	elapsed := time.Since(start)

	if err := writeOutput(outputPath, out, sampleRate, *bits); err != nil {
		return err
	}

	fmt.Printf("Rendered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d frames at %g Hz (%d channels), %d loop wraps\n", frames, sampleRate, *channels, loops)
	for ch, s := range summarize(out) {
		fmt.Printf("  ch%d: peak %.1f dBFS, rms %.1f dBFS, dc %+.4f\n", ch, linearToDB(s.peak), linearToDB(s.rms), s.dc)
	}
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(), float64(frames)/sampleRate/elapsed.Seconds())

	if renderErr != nil {
		return fmt.Errorf("script messages were rejected:\n%w", renderErr)
	}
	return nil
}
