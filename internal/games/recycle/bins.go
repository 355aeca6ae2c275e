package recycle

import (
	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
)

// Bins partitions the play-area width into three contiguous half-open zones:
// [0, Edges[0]) is plastic, [Edges[0], Edges[1]) glass and [Edges[1], 100] metal.
type Bins struct {
	Edges [2]float64
}

// NewBins creates the bin partition from config.
func NewBins(cfg config.BinsConfig) Bins {
	return Bins{Edges: cfg.Edges}
}

// Target returns the bin category below horizontal position x.
func (b Bins) Target(x float64) Category {
	switch {
	case x < b.Edges[0]:
		return Plastic
	case x < b.Edges[1]:
		return Glass
	default:
		return Metal
	}
}

// Span returns the horizontal extent [lo, hi) of a bin.
func (b Bins) Span(c Category) (lo, hi float64) {
	switch c {
	case Plastic:
		return 0, b.Edges[0]
	case Glass:
		return b.Edges[0], b.Edges[1]
	default:
		return b.Edges[1], 100
	}
}

// Resolution is the judgement of an item that crossed the bin line.
type Resolution struct {
	Item    Item
	Target  Category
	Correct bool
	Delta   int
}

// Outcome returns the highlight outcome for the resolution.
func (r Resolution) Outcome() Outcome {
	if r.Correct {
		return OutcomeCorrect
	}
	return OutcomeWrong
}

// Resolve judges an item by its horizontal position alone.
func Resolve(bins Bins, scoring config.ScoringConfig, it Item) Resolution {
	target := bins.Target(it.X)
	res := Resolution{
		Item:    it,
		Target:  target,
		Correct: target == it.Category,
	}
	if res.Correct {
		res.Delta = scoring.Correct
	} else {
		res.Delta = scoring.Wrong
	}
	return res
}
