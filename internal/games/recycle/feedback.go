package recycle

// Cue is a sound cue emitted by the session.
type Cue int

const (
	CueStart Cue = iota
	CueCorrect
	CueWrong
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// CueSink receives sound cues. Calls are fire-and-forget and must not block.
type CueSink interface {
	PlayCue(Cue)
}

// NopCues discards every cue.
type NopCues struct{}

// PlayCue implements CueSink.
func (NopCues) PlayCue(Cue) {}

// Outcome is the result of a resolution as shown on the target bin.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == OutcomeCorrect {
		return "correct"
	}
	return "wrong"
}

// BinHighlighter receives a short visual pulse request for a bin.
type BinHighlighter interface {
	HighlightBin(Category, Outcome)
}

type nopHighlighter struct{}

func (nopHighlighter) HighlightBin(Category, Outcome) {}
