package audio

import "math"

const (
	leadAttack      = 4   // envelope rate in units of the sample period
	leadVibratoRate = 5.0 // Hz
	leadVibrato     = 0.1 // semitones at full envelope
	leadDetune      = 0.1 // semitones
	leadLevel       = 0.15
)

// lead is two detuned phase distortion oscillators with a swelling envelope
// and vibrato that deepens with the envelope.
type lead struct {
	seq    leadSequencer
	env    ramp
	lfo    phase
	osc1   phase
	osc2   phase
	period float64
}

func newLead(c SampleClock) lead {
	return lead{
		seq:    newLeadSequencer(c),
		env:    newRamp(leadAttack * c.Period),
		period: c.Period,
	}
}

func (v *lead) tick() float64 {
	if v.seq.tick() {
		v.env.restrike()
	}
	env := v.env.value() * v.seq.gateLevel()

	vibrato := math.Sin(v.lfo.advance(leadVibratoRate*v.period)*twoPi) * leadVibrato * env
	note := v.seq.note() + vibrato
	p1 := v.osc1.advance(midiToFreq(note) * v.period)
	p2 := v.osc2.advance(midiToFreq(note+leadDetune) * v.period)

	return (pdSaw(p1, 0.9)*leadLevel + pdSaw(p2, 0.91)*leadLevel) * env
}
