package audio

const (
	bassPWMRate = 0.25 // Hz
	bassSubDuty = 0.7
	bassLevel   = 0.3
)

// bass plays a pulse wave with a slowly sweeping width over a phase
// distortion sub oscillator an octave down. Only the pulse is enveloped.
type bass struct {
	seq    bassSequencer
	env    decay
	lfo    phase
	osc1   phase
	osc2   phase
	period float64
}

func newBass(c SampleClock) bass {
	return bass{
		seq:    newBassSequencer(c),
		env:    newDecay(c.QuarterNote),
		period: c.Period,
	}
}

func (v *bass) tick() float64 {
	if v.seq.tick() {
		v.env.trigger()
	}
	freq := midiToFreq(float64(v.seq.note))
	width := 0.1 + 0.8*triangle(v.lfo.advance(bassPWMRate*v.period))
	p1 := v.osc1.advance(freq * v.period)
	p2 := v.osc2.advance(freq / 2 * v.period)

	return pulse(p1, width)*bassLevel*v.env.value() + pdSaw(p2, bassSubDuty)*bassLevel
}
