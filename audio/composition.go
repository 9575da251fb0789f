package audio

// The piece is fixed. All tables are read-only after package init and are
// indexed through counters whose modulus matches the table length.

const (
	leadSteps = 256
	bassSteps = 32
)

// leadTriggers marks the steps where the lead is struck. Runs of 1s hold a
// single note; a 0 re-arms the sequencer for the next run.
var leadTriggers = [leadSteps]uint8{
	1, 1, 1, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1, 1, 0, 0,
	1, 1, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0,
	1, 1, 1, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1, 1, 0, 0,
	1, 1, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0,
	1, 0, 1, 0, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 0, 1, 1, 1, 0,
	1, 0, 1, 0, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0,
	1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 1, 0,
	1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0,
	1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1, 0, 1, 1, 0,
	1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 0,
	1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0,
	1, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0,
	1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
}

// leadPitches is stepped through once per strike, independently of the
// trigger pattern, so the melody drifts against it.
var leadPitches = [...]int{69, 72, 76, 74, 72, 71, 72, 69, 67, 69, 71, 72, 74, 76, 79}

var bassArpeggio = [...]int{57, 57, 59, 60}

// bassRoots transposes the arpeggio, one entry per pass of the bass pattern.
var bassRoots = [...]int{0, 0, -4, -4, -7, -7, -5, -5}

// LeadPattern returns a copy of the lead trigger pattern.
func LeadPattern() [leadSteps]uint8 { return leadTriggers }
