package audio

import (
	"github.com/gordonklaus/portaudio"
)

// Sink plays an engine through the default portaudio output device.
type Sink struct {
	*output
	stream *portaudio.Stream
	state  runState
}

func NewSink(e *Engine, props *Props, bufferSize int) (*Sink, error) {
	out, err := newOutput(e, props, bufferSize)
	if err != nil {
		return nil, err
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	s := &Sink{output: out}
	stream, err := portaudio.OpenDefaultStream(0, 2, e.Clock().Rate, bufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	s.stream = stream
	return s, nil
}

// Start is a no-op on a running stream.
func (s *Sink) Start() error {
	return s.state.start(s.stream.Start)
}

func (s *Sink) Stop() error {
	return s.state.stop(s.stream.Stop)
}

func (s *Sink) Close() error {
	s.Stop()
	s.stream.Close()
	return portaudio.Terminate()
}
