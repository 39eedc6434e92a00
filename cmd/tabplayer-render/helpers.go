package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"

	camomile "github.com/pierreguillot/Camomile-sub001"
	"github.com/pierreguillot/Camomile-sub001/internal/simdops"
)

// defaultScript plays the whole array once.
const defaultScript = "0 play"

// dbFloor is reported for silent channels.
const dbFloor = -144.0

// loadScript reads the control script at path, or returns the default script
// when path is empty.
func loadScript(path string) ([]camomile.Event, error) {
	if path == "" {
		return camomile.ParseScript(strings.NewReader(defaultScript))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	events, err := camomile.ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// outputFrames converts the requested duration to engine frames. A zero
// duration renders the time the array takes to play once at unity speed.
func outputFrames(durationMs float64, arr *camomile.Array, sampleRate float64) int {
	if durationMs <= 0 {
		durationMs = float64(arr.Len()) / arr.KHz()
	}
	return int(math.Ceil(durationMs * sampleRate / msPerSecond))
}

// writeOutput encodes the rendered channels as a WAV file.
func writeOutput(path string, out [][]float32, sampleRate float64, bits int) error {
	arr, err := camomile.NewArray(sampleRate, out...)
	if err != nil {
		return fmt.Errorf("nothing to write: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := camomile.EncodeWAV(f, arr, bits); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// channelStats summarizes one rendered channel.
type channelStats struct {
	peak float64
	rms  float64
	dc   float64
}

func summarize(out [][]float32) []channelStats {
	stats := make([]channelStats, len(out))
	for ch, samples := range out {
		if len(samples) == 0 {
			continue
		}
		x := make([]float64, len(samples))
		for i, s := range samples {
			x[i] = float64(s)
		}
		stats[ch] = channelStats{
			peak: floats.Norm(x, math.Inf(1)),
			rms:  floats.Norm(x, 2) / math.Sqrt(float64(len(x))),
			dc:   float64(simdops.Mean(samples)),
		}
	}
	return stats
}

func dbToLinear(db float64) float32 {
	return float32(math.Pow(10, db/20))
}

func linearToDB(v float64) float64 {
	if v <= 0 {
		return dbFloor
	}
	return math.Max(20*math.Log10(v), dbFloor)
}
