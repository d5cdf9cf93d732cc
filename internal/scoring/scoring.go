// Package scoring turns complete answer vectors into totals and severity
// bands using the instruments' published cut-off tables. All functions are
// pure and total over valid input.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/philippoppel/findmytherapy-sub000/internal/catalog"
	"github.com/philippoppel/findmytherapy-sub000/internal/model"
)

// ErrIncompleteAnswerVector is returned when scoring is attempted before all
// required items, including padding, are present. Reaching it indicates an
// ordering bug in the caller, not user input.
var ErrIncompleteAnswerVector = errors.New("incomplete answer vector")

// Score sums a complete answer vector for one instrument
func Score(kind model.InstrumentKind, answers []int) (int, error) {
	ins := catalog.Get(kind)
	if len(answers) != ins.ItemCount() {
		return 0, fmt.Errorf("scoring %s: got %d answers, need %d: %w",
			kind, len(answers), ins.ItemCount(), ErrIncompleteAnswerVector)
	}
	total := 0
	for _, v := range answers {
		total += v
	}
	return total, nil
}

// Classify resolves a total score to its severity band. Bands are contiguous
// and non-overlapping by construction, so every score in range resolves
// unambiguously. The well-being total is transformed to its 0-100 form before
// the lookup.
func Classify(kind model.InstrumentKind, totalScore int) model.Severity {
	ins := catalog.Get(kind)
	score := totalScore
	if kind == model.InstrumentWellBeing {
		score = TransformWellBeing(totalScore)
	}
	for _, b := range ins.Bands {
		if score >= b.MinScore && score <= b.MaxScore {
			return b.Band
		}
	}
	// Unreachable for scores within [0, MaxScore]; clamp out-of-range input
	// to the nearest band rather than inventing one.
	if score < 0 {
		return ins.Bands[0].Band
	}
	return ins.Bands[len(ins.Bands)-1].Band
}

// TransformWellBeing maps the raw WHO-5 total (0-25) to its percentage form
func TransformWellBeing(raw int) int {
	return int(math.Round(float64(raw) / 25.0 * 100.0))
}

// Evaluate scores and classifies in one step
func Evaluate(kind model.InstrumentKind, answers []int) (model.ScoreResult, error) {
	total, err := Score(kind, answers)
	if err != nil {
		return model.ScoreResult{}, err
	}
	return model.ScoreResult{
		Instrument: kind,
		TotalScore: total,
		Severity:   Classify(kind, total),
	}, nil
}

// Sum adds up a possibly partial answer vector. Used for screener sub-scores,
// where the vector is shorter than the instrument by design.
func Sum(answers []int) int {
	total := 0
	for _, v := range answers {
		total += v
	}
	return total
}
