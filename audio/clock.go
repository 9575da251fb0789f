package audio

import (
	"fmt"
	"math"
)

// MaxSampleRate is the highest rate an engine accepts.
const MaxSampleRate = 384000

// SampleClock holds the timing constants derived from the sample rate. The
// divisor sets the length of a sequencer step ("quarter note") as a
// fraction of a second.
type SampleClock struct {
	Rate        float64
	Period      float64
	Divisor     int
	QuarterNote int // samples per step
}

func newClock(rate float64, divisor int) (SampleClock, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return SampleClock{}, fmt.Errorf("%w: sample rate must be positive: %v", ErrConfig, rate)
	}
	if rate > MaxSampleRate {
		return SampleClock{}, fmt.Errorf("%w: sample rate %v above %d", ErrConfig, rate, MaxSampleRate)
	}
	if divisor <= 0 {
		return SampleClock{}, fmt.Errorf("%w: clock divisor must be positive: %d", ErrConfig, divisor)
	}
	qn := int(math.Floor(rate / float64(divisor)))
	if qn < 1 {
		return SampleClock{}, fmt.Errorf("%w: clock divisor %d too large for sample rate %v", ErrConfig, divisor, rate)
	}
	return SampleClock{
		Rate:        rate,
		Period:      1 / rate,
		Divisor:     divisor,
		QuarterNote: qn,
	}, nil
}
