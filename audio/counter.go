package audio

import "fmt"

// counter is an index that can only move forward by one and wraps at mod,
// so it can't point outside of a table of length mod.
type counter struct {
	n   int
	mod int
}

func newCounter(mod int) counter {
	if mod <= 0 {
		panic(fmt.Sprintf("counter modulus must be positive: %d", mod))
	}
	return counter{mod: mod}
}

func (c counter) index() int { return c.n }

// next advances the counter and reports whether it wrapped around to zero.
func (c *counter) next() bool {
	c.n++
	if c.n >= c.mod {
		c.n = 0
		return true
	}
	return false
}
