package audio

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"
)

const otoFrameSize = 8 // two float32 channels

// OtoPlayer plays an engine through oto, which pulls samples with Read.
type OtoPlayer struct {
	*output
	ctx    *oto.Context
	player *oto.Player
	frames [2][]float32
	view   [][]float32
	state  runState
}

func NewOtoPlayer(e *Engine, props *Props, bufferSize int) (*OtoPlayer, error) {
	out, err := newOutput(e, props, bufferSize)
	if err != nil {
		return nil, err
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(e.Clock().Rate),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	p := &OtoPlayer{
		output: out,
		ctx:    ctx,
		view:   make([][]float32, 2),
	}
	for c := range p.frames {
		p.frames[c] = make([]float32, bufferSize)
	}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// Read renders interleaved little endian float32 frames into b.
func (p *OtoPlayer) Read(b []byte) (int, error) {
	frames := len(b) / otoFrameSize
	for done := 0; done < frames; {
		n := frames - done
		if n > len(p.frames[0]) {
			n = len(p.frames[0])
		}
		p.view[0] = p.frames[0][:n]
		p.view[1] = p.frames[1][:n]
		p.process(p.view)
		for i := 0; i < n; i++ {
			off := (done + i) * otoFrameSize
			binary.LittleEndian.PutUint32(b[off:], math.Float32bits(p.view[0][i]))
			binary.LittleEndian.PutUint32(b[off+4:], math.Float32bits(p.view[1][i]))
		}
		done += n
	}
	return frames * otoFrameSize, nil
}

func (p *OtoPlayer) Start() error {
	return p.state.start(func() error {
		p.player.Play()
		return nil
	})
}

func (p *OtoPlayer) Stop() error {
	return p.state.stop(func() error {
		p.player.Pause()
		return nil
	})
}

func (p *OtoPlayer) Close() error {
	p.Stop()
	return p.player.Close()
}
