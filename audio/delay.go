package audio

import (
	"fmt"
	"math"
)

// delayFactor stretches the delay slightly past four steps; an exact
// multiple of the step length combs with the sequenced notes.
const delayFactor = 3.98

// delay is a feedback delay line over a fixed circular buffer.
type delay struct {
	buf      []float64
	cursor   counter
	time     int
	feedback float64
}

// newDelay allocates one second of buffer at the clock's rate.
func newDelay(c SampleClock, feedback float64) (*delay, error) {
	if !(feedback >= 0 && feedback < 1) {
		return nil, fmt.Errorf("%w: feedback must be in [0,1): %v", ErrConfig, feedback)
	}
	capacity := int(math.Ceil(c.Rate))
	time := int(math.Floor(c.Rate / float64(c.Divisor) * delayFactor))
	if time >= capacity {
		return nil, fmt.Errorf("%w: delay of %d samples does not fit in buffer of %d", ErrConfig, time, capacity)
	}
	return &delay{
		buf:      make([]float64, capacity),
		cursor:   newCounter(capacity),
		time:     time,
		feedback: feedback,
	}, nil
}

// tick returns the sample written time samples ago and stores in plus the
// fed back output.
func (d *delay) tick(in float64) float64 {
	read := d.cursor.index() - d.time
	if read < 0 {
		read += len(d.buf)
	}
	out := d.buf[read]
	d.buf[d.cursor.index()] = in + d.feedback*out
	d.cursor.next()
	return out
}

func (d *delay) reset() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.cursor = newCounter(len(d.buf))
}
