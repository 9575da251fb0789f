package audio

import "testing"

func TestCounter(t *testing.T) {
	c := newCounter(3)
	var wraps []bool
	var indices []int
	for i := 0; i < 7; i++ {
		wraps = append(wraps, c.next())
		indices = append(indices, c.index())
	}
	wantWraps := []bool{false, false, true, false, false, true, false}
	wantIndices := []int{1, 2, 0, 1, 2, 0, 1}
	for i := range wantWraps {
		if wraps[i] != wantWraps[i] || indices[i] != wantIndices[i] {
			t.Fatalf("step %d: want (%v, %v), got (%v, %v)",
				i, wantIndices[i], wantWraps[i], indices[i], wraps[i])
		}
	}
}

func TestCounterModulusOne(t *testing.T) {
	c := newCounter(1)
	for i := 0; i < 3; i++ {
		if !c.next() || c.index() != 0 {
			t.Fatalf("counter with modulus 1 should wrap on every step")
		}
	}
}

func TestCounterPanics(t *testing.T) {
	for _, mod := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for modulus %d", mod)
				}
			}()
			newCounter(mod)
		}()
	}
}
