package main

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	camomile "github.com/pierreguillot/Camomile-sub001"
	"github.com/pierreguillot/Camomile-sub001/internal/simdops"
)

const (
	bytesPerFloat32 = 4
	deviceBuffer    = 20 * time.Millisecond
)

// blockReader renders the player block by block and serves the result as
// interleaved little-endian float32 bytes. Read runs on the audio device
// goroutine and does not allocate.
type blockReader struct {
	player  *camomile.TabPlayer
	planar  [][]float32
	frames  []float32
	bytes   []byte
	pending []byte
}

func newBlockReader(p *camomile.TabPlayer) *blockReader {
	channels := p.Channels()
	block := p.BlockSize()

	planar := make([][]float32, channels)
	for ch := range planar {
		planar[ch] = make([]float32, block)
	}
	return &blockReader{
		player: p,
		planar: planar,
		frames: make([]float32, channels*block),
		bytes:  make([]byte, channels*block*bytesPerFloat32),
	}
}

// Read implements io.Reader.
func (r *blockReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.pending) == 0 {
			r.render()
		}
		c := copy(p[n:], r.pending)
		r.pending = r.pending[c:]
		n += c
	}
	return n, nil
}

func (r *blockReader) render() {
	r.player.Process(len(r.planar[0]), nil, r.planar)
	frames := simdops.Interleave(r.frames, r.planar)
	samples := r.frames[:frames*len(r.planar)]
	for i, s := range samples {
		binary.LittleEndian.PutUint32(r.bytes[i*bytesPerFloat32:], math.Float32bits(s))
	}
	r.pending = r.bytes[:len(samples)*bytesPerFloat32]
}

// output owns the audio device.
type output struct {
	ctx    *oto.Context
	player *oto.Player
}

func newOutput(sampleRate int, r *blockReader) (*output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: len(r.planar),
		Format:       oto.FormatFloat32LE,
		BufferSize:   deviceBuffer,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	return &output{ctx: ctx, player: ctx.NewPlayer(r)}, nil
}

func (o *output) Start() {
	o.player.Play()
}

func (o *output) Close() {
	_ = o.player.Close()
}
