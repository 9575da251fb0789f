package audio

// phase is the position of an oscillator within one cycle, in [0,1).
type phase float64

// advance moves the phase forward by inc cycles and returns the new position.
func (p *phase) advance(inc float64) float64 {
	*p = phase(wrap(float64(*p) + inc))
	return float64(*p)
}
