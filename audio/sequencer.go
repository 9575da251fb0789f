package audio

// stepper divides the sample stream into steps of equal length and counts
// steps modulo the pattern length.
type stepper struct {
	quantum counter // position within the current step, in samples
	step    counter
	running bool
}

func newStepper(samplesPerStep, steps int) stepper {
	return stepper{
		quantum: newCounter(samplesPerStep),
		step:    newCounter(steps),
	}
}

// tick advances one sample. It reports whether the sample starts a new step
// and whether the step index wrapped around to get there. The first sample
// starts step 0 without wrapping.
func (s *stepper) tick() (start, wrapped bool) {
	if s.quantum.index() == 0 {
		if s.running {
			wrapped = s.step.next()
		}
		s.running = true
		start = true
	}
	s.quantum.next()
	return start, wrapped
}

type leadSequencer struct {
	stepper
	pitch counter
	armed bool

	// gate stays closed until the pattern has played through once, so the
	// lead only comes in on the second pass.
	gate bool
}

func newLeadSequencer(c SampleClock) leadSequencer {
	return leadSequencer{
		stepper: newStepper(c.QuarterNote, leadSteps),
		pitch:   newCounter(len(leadPitches)),
		armed:   true,
	}
}

// tick advances one sample and reports whether the lead was restruck.
func (s *leadSequencer) tick() bool {
	start, wrapped := s.stepper.tick()
	if wrapped {
		s.gate = true
	}
	if !start {
		return false
	}
	if leadTriggers[s.step.index()] == 0 {
		s.armed = true
		return false
	}
	if !s.armed {
		return false
	}
	s.armed = false
	s.pitch.next()
	return true
}

func (s *leadSequencer) note() float64 {
	return float64(leadPitches[s.pitch.index()])
}

func (s *leadSequencer) gateLevel() float64 {
	if s.gate {
		return 1
	}
	return 0
}

type bassSequencer struct {
	stepper
	root counter
	note int
}

func newBassSequencer(c SampleClock) bassSequencer {
	return bassSequencer{
		stepper: newStepper(c.QuarterNote, bassSteps),
		root:    newCounter(len(bassRoots)),
	}
}

// tick advances one sample and reports whether a new bass note starts. Every
// step is a new note; the root moves once per pass of the pattern.
func (s *bassSequencer) tick() bool {
	start, wrapped := s.stepper.tick()
	if wrapped {
		s.root.next()
	}
	if start {
		s.note = bassArpeggio[s.step.index()%len(bassArpeggio)] + bassRoots[s.root.index()] - 12
	}
	return start
}
