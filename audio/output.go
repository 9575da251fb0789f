package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"
)

const (
	PropLevel = "level" // output gain in dB
	PropMute  = "mute"
)

// Backend plays an engine on an audio device.
type Backend interface {
	Start() error
	Stop() error
	Close() error
	Control(Event) error
	Status() Status
}

// ErrQueueFull is returned by Control when the audio thread has not picked
// up earlier events, e.g. because the stream is stopped.
var ErrQueueFull = errors.New("event queue full")

// output is the host side of an audio callback. It applies transport events,
// pulls samples from the engine, and applies gain and a hard limit. It is
// shared by all backends.
type output struct {
	engine *Engine
	events *eventBuffer
	level  *atomic.Value
	mute   *atomic.Value
	buf    []float64
	paused bool

	mu     sync.Mutex
	status Status
}

func newOutput(e *Engine, props *Props, bufferSize int) (*output, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("buffer size must be positive: %d", bufferSize)
	}
	return &output{
		engine: e,
		events: newEventBuffer(16),
		level:  props.MustRegister(PropLevel, setLevel, 0.),
		mute:   props.MustRegister(PropMute, setBool, false),
		buf:    make([]float64, bufferSize),
		status: e.Status(),
	}, nil
}

// Control queues ev for the audio thread. It never blocks.
func (o *output) Control(ev Event) error {
	if !o.events.push(ev) {
		return fmt.Errorf("%v: %w", ev, ErrQueueFull)
	}
	return nil
}

// Status returns the sequencer state as of the end of the last callback.
func (o *output) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *output) handle(ev Event) {
	switch ev {
	case EventReset:
		o.engine.Reset()
	case EventPause:
		o.paused = true
	case EventResume:
		o.paused = false
	default:
		log.Printf("output: ignoring unknown event %d", ev)
	}
}

// process writes the same mono signal to every channel of samples.
func (o *output) process(samples [][]float32) {
	o.events.drain(o.handle)

	gain := math.Pow(10, o.level.Load().(float64)/20.0)
	if o.mute.Load().(bool) {
		gain = 0
	}
	frames := len(samples[0])
	for start := 0; start < frames; start += len(o.buf) {
		n := frames - start
		if n > len(o.buf) {
			n = len(o.buf)
		}
		buf := o.buf[:n]
		if o.paused {
			for i := range buf {
				buf[i] = 0
			}
		} else {
			o.engine.Render(buf)
		}
		for i, v := range buf {
			sample := float32(clamp(v*gain, -1, 1))
			for c := range samples {
				samples[c][start+i] = sample
			}
		}
	}

	o.mu.Lock()
	o.status = o.engine.Status()
	o.mu.Unlock()
}

// runState tracks whether a stream is playing so that Start and Stop can be
// called in any order. The callbacks run under the lock.
type runState struct {
	mu      sync.Mutex
	started bool
}

func (r *runState) start(f func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return nil
	}
	if err := f(); err != nil {
		return err
	}
	r.started = true
	return nil
}

func (r *runState) stop(f func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return nil
	}
	if err := f(); err != nil {
		return err
	}
	r.started = false
	return nil
}
