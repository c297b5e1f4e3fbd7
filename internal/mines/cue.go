package mines

// Cue is the feedback a front end plays after a move.
type Cue uint8

const (
	CueNone Cue = iota
	CueClick
	CueCascade
	CueFlag
	CueMine
	CueVictory
)

// CascadeThreshold is the smallest reveal that counts as a cascade.
const CascadeThreshold = 3

var cueNames = [...]string{"none", "click", "cascade", "flag", "mine", "victory"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Classify picks the cue for a reveal given the status before and after it
// and the number of cells it opened.
func Classify(before, after Status, opened int) Cue {
	switch {
	case before != Active:
		return CueNone
	case after == Lost:
		return CueMine
	case after == Won:
		return CueVictory
	case opened >= CascadeThreshold:
		return CueCascade
	case opened > 0:
		return CueClick
	default:
		return CueNone
	}
}

// ClassifyFlag picks the cue for a flag toggle. Toggles on a finished game or
// a revealed cell change nothing and get [CueNone].
func ClassifyFlag(before Status, changed bool) Cue {
	if before != Active || !changed {
		return CueNone
	}
	return CueFlag
}
