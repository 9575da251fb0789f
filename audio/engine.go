package audio

import "errors"

// ErrConfig is wrapped by every error returned for an engine configuration
// that can't be rendered.
var ErrConfig = errors.New("invalid engine config")

// Config holds the values fixed for the lifetime of an engine. Changing any
// of them means building a new engine.
type Config struct {
	SampleRate float64
	Clock      int     // steps per second
	Feedback   float64 // delay feedback, in [0,1)
}

func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Clock:      9,
		Feedback:   0.35,
	}
}

// Engine renders the piece one sample at a time: bass and lead are summed
// with a delayed copy of the lead.
type Engine struct {
	config  Config
	clock   SampleClock
	bass    bass
	lead    lead
	delay   *delay
	elapsed uint64
}

// New validates cfg and allocates all state the engine will ever need.
func New(cfg Config) (*Engine, error) {
	clock, err := newClock(cfg.SampleRate, cfg.Clock)
	if err != nil {
		return nil, err
	}
	delay, err := newDelay(clock, cfg.Feedback)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		config: cfg,
		clock:  clock,
		delay:  delay,
	}
	e.Reset()
	return e, nil
}

// Tick renders the next sample. The delay reads the lead sample from the
// same tick.
func (e *Engine) Tick() float64 {
	b := e.bass.tick()
	l := e.lead.tick()
	d := e.delay.tick(l)
	e.elapsed++
	return b + l + d
}

// Render fills dst with consecutive samples.
func (e *Engine) Render(dst []float64) {
	for n := range dst {
		dst[n] = e.Tick()
	}
}

// Reset puts the engine back at the start of the piece without allocating.
func (e *Engine) Reset() {
	e.bass = newBass(e.clock)
	e.lead = newLead(e.clock)
	e.delay.reset()
	e.elapsed = 0
}

func (e *Engine) Config() Config { return e.config }

func (e *Engine) Clock() SampleClock { return e.clock }

// DelayTime is the length of the delay line in samples.
func (e *Engine) DelayTime() int { return e.delay.time }

// Elapsed returns the number of samples rendered since the last reset.
func (e *Engine) Elapsed() uint64 { return e.elapsed }

// Status is a snapshot of the sequencers.
type Status struct {
	Elapsed  uint64
	LeadStep int
	LeadNote float64
	Gate     bool
	BassStep int
	BassRoot int
	BassNote int
}

func (e *Engine) Status() Status {
	return Status{
		Elapsed:  e.elapsed,
		LeadStep: e.lead.seq.step.index(),
		LeadNote: e.lead.seq.note(),
		Gate:     e.lead.seq.gate,
		BassStep: e.bass.seq.step.index(),
		BassRoot: e.bass.seq.root.index(),
		BassNote: e.bass.seq.note,
	}
}
