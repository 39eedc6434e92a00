// Command tabplayer plays a WAV file live through a table player and takes
// control messages on standard input.
//
// Usage:
//
//	tabplayer loop.wav
//	tabplayer -rate 48000 loop.wav -loop -fade 20 2
//
// Arguments after the file are the player's construction arguments
// ([-loop] [-fade <ms>] [channel-count]). Each input line is one message:
//
//	range 250 1250
//	speed -50
//	play
//	quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	camomile "github.com/pierreguillot/Camomile-sub001"
)

const (
	// arrayName is the name the input file is stored under.
	arrayName = "input"

	// CLI defaults
	defaultSampleRate = camomile.RateDAT
	minRequiredArgs   = 1

	// doneQueueSize bounds the done events waiting to be printed.
	doneQueueSize = 16
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	sampleRate := flag.Int("rate", defaultSampleRate, "Output sample rate in Hz")
	block := flag.Int("block", camomile.DefaultBlockSize, "Processing block size in samples")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav [-loop] [-fade ms] [channels]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	inst := camomile.NewInstance(nil)
	inst.Console().SetMirror(log.Default())

	if err := inst.LoadArray(arrayName, args[0]); err != nil {
		return err
	}

	atoms := append([]camomile.Atom{camomile.SymbolAtom(arrayName)}, camomile.ParseAtoms(args[1:])...)
	p := inst.NewTabPlayer(atoms...)
	if p == nil {
		return fmt.Errorf("could not create player from %v", args[1:])
	}
	defer p.Close()

	cfg := camomile.Config{Channels: p.Channels(), BlockSize: *block, SampleRate: float64(*sampleRate)}
	if err := p.Configure(cfg); err != nil {
		return err
	}

	done := make(chan camomile.Done, doneQueueSize)
	p.OnDone(func(d camomile.Done) {
		select {
		case done <- d:
		default:
		}
	})

	out, err := newOutput(*sampleRate, newBlockReader(p))
	if err != nil {
		return err
	}
	defer out.Close()
	out.Start()

	if *verbose {
		log.Printf("Playing %s at %d Hz, %d channels, block %d", args[0], *sampleRate, cfg.Channels, cfg.BlockSize)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return readControl(gctx, os.Stdin, os.Stdout, p, interactive)
	})
	g.Go(func() error {
		return reportDone(gctx, done, os.Stdout)
	})
	return g.Wait()
}
