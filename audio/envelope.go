package audio

type envelopeState int

const (
	stateInit envelopeState = iota
	stateAttack
	stateSustain
	stateDecay
)

// ramp rises linearly from 0 to 1 after each strike and holds there. The
// output goes through a one-pole smoother so restrikes don't click.
type ramp struct {
	rate     float64
	val      float64
	smoothed float64
	state    envelopeState
}

func newRamp(rate float64) ramp {
	return ramp{rate: rate, state: stateAttack}
}

func (r *ramp) restrike() {
	r.val = 0
	r.state = stateAttack
}

func (r *ramp) value() float64 {
	if r.state == stateAttack {
		r.val += r.rate
		if r.val >= 1 {
			r.val = 1
			r.state = stateSustain
		}
	}
	return smooth(&r.smoothed, clamp(r.val, 0, 1))
}

// decay starts at 1 on every trigger and falls to 0 in a straight line.
type decay struct {
	rate  float64
	val   float64
	state envelopeState
}

func newDecay(samples int) decay {
	return decay{rate: 1 / float64(samples)}
}

func (d *decay) trigger() {
	d.val = 1
	d.state = stateDecay
}

// value returns the current level and then moves the envelope one sample on.
func (d *decay) value() float64 {
	v := d.val
	if d.state == stateDecay {
		d.val -= d.rate
		if d.val <= 0 {
			d.val = 0
			d.state = stateInit
		}
	}
	return v
}
