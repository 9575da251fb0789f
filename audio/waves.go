package audio

import "math"

const twoPi = 2 * math.Pi

// wrap returns the fractional part of x in [0,1).
func wrap(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		// x was a tiny negative number and the subtraction rounded up
		return 0
	}
	return x
}

// pdSaw is a phase distortion oscillator. The phase is warped through two
// linear segments that meet at duty before it is fed to a cosine, which gets
// closer to a sawtooth as duty approaches 1.
func pdSaw(phase, duty float64) float64 {
	duty = clamp(duty, 0.001, 0.999)
	var pd float64
	if phase < duty {
		pd = 0.5 * phase / duty
	} else {
		pd = 0.5 + 0.5*(phase-duty)/(1-duty)
	}
	return -math.Cos(pd * twoPi)
}

// pulse returns a bipolar pulse wave which is high for the last width of
// each cycle.
func pulse(phase, width float64) float64 {
	width = clamp(width, 0.01, 0.99)
	return (phase-wrap(phase+width)+width)*2 - 1
}

// triangle is a unipolar triangle in the range [0,1].
func triangle(phase float64) float64 {
	return 1 - math.Abs(phase*2-1)
}

// smooth is a one-pole lowpass. It updates state and returns the new value.
func smooth(state *float64, in float64) float64 {
	*state = in*0.01 + *state*0.99
	return *state
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func midiToFreq(note float64) float64 {
	return math.Pow(2, (note-69)/12.0) * 440
}
