// Package session drives the question-by-question assessment flow: which
// item is up next, how answers accumulate, when a screener expands into its
// full instrument, and when the crisis flag is raised.
//
// All operations are synchronous and mutate only the session they are given.
// A session is owned by exactly one caller at a time.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/philippoppel/findmytherapy-sub000/internal/adaptive"
	"github.com/philippoppel/findmytherapy-sub000/internal/catalog"
	"github.com/philippoppel/findmytherapy-sub000/internal/model"
	"github.com/philippoppel/findmytherapy-sub000/internal/scoring"
)

// ErrInvalidAnswerValue is returned when an answer falls outside the
// instrument's response scale. The session is left unchanged; the caller
// should re-prompt.
var ErrInvalidAnswerValue = errors.New("answer value outside the response scale")

// ErrInvalidPhaseTransition is returned for operations that are not legal in
// the session's current phase, such as answering after completion or going
// back past the first item. It is a caller error, not a session fault.
var ErrInvalidPhaseTransition = errors.New("invalid phase transition")

// New creates a fresh session positioned at the first depression screener
// item.
func New() *model.Session {
	return &model.Session{
		ID:        uuid.NewString(),
		Phase:     model.PhaseDepressionScreener,
		ItemIndex: 0,
		Answers: map[model.InstrumentKind][]int{
			model.InstrumentDepression: {},
			model.InstrumentAnxiety:    {},
		},
		StartedAt: time.Now().UTC(),
	}
}

// phaseInstrument maps an answering phase to the instrument it administers
// and the absolute item offset of the phase's first item.
func phaseInstrument(p model.Phase) (kind model.InstrumentKind, offset int, ok bool) {
	switch p {
	case model.PhaseDepressionScreener:
		return model.InstrumentDepression, 0, true
	case model.PhaseDepressionRemainder:
		return model.InstrumentDepression, catalog.Get(model.InstrumentDepression).ScreenerSize, true
	case model.PhaseAnxietyScreener:
		return model.InstrumentAnxiety, 0, true
	case model.PhaseAnxietyRemainder:
		return model.InstrumentAnxiety, catalog.Get(model.InstrumentAnxiety).ScreenerSize, true
	}
	return "", 0, false
}

// phaseLength returns the number of items administered in an answering phase
func phaseLength(p model.Phase) int {
	switch p {
	case model.PhaseDepressionScreener:
		return catalog.Get(model.InstrumentDepression).ScreenerSize
	case model.PhaseDepressionRemainder:
		return catalog.Get(model.InstrumentDepression).RemainderSize()
	case model.PhaseAnxietyScreener:
		return catalog.Get(model.InstrumentAnxiety).ScreenerSize
	case model.PhaseAnxietyRemainder:
		return catalog.Get(model.InstrumentAnxiety).RemainderSize()
	}
	return 0
}

// CurrentItem returns the item definition the session is positioned at.
// ok is false in the preferences and terminal phases, which administer no
// items.
func CurrentItem(s *model.Session) (model.Item, bool) {
	kind, offset, ok := phaseInstrument(s.Phase)
	if !ok {
		return model.Item{}, false
	}
	ins := catalog.Get(kind)
	return ins.Items[offset+s.ItemIndex], true
}

// RecordAnswer records value for the current item and advances the flow,
// re-evaluating the expansion decision whenever the second item of a
// screener is answered.
//
// The crisis flag is set synchronously, within this call, when the
// depression crisis item is answered with a value of 1 or more. It is
// observable by the caller immediately afterwards, before the session
// reaches completion.
func RecordAnswer(s *model.Session, value int) error {
	kind, offset, ok := phaseInstrument(s.Phase)
	if !ok {
		return fmt.Errorf("cannot answer in phase %q: %w", s.Phase, ErrInvalidPhaseTransition)
	}

	ins := catalog.Get(kind)
	if !ins.Scale.Contains(value) {
		return fmt.Errorf("value %d not in [%d,%d] for %s: %w",
			value, ins.Scale.Min, ins.Scale.Max, kind, ErrInvalidAnswerValue)
	}

	absIndex := offset + s.ItemIndex
	setAnswer(s, kind, absIndex, value)

	if absIndex == ins.CrisisIndex && value >= 1 {
		s.CrisisFlag = true
	}

	advance(s)
	return nil
}

// setAnswer writes value at the absolute item index, overwriting a previous
// answer when the caller navigated back.
func setAnswer(s *model.Session, kind model.InstrumentKind, index, value int) {
	vec := s.Answers[kind]
	if index < len(vec) {
		vec[index] = value
	} else {
		vec = append(vec, value)
	}
	s.Answers[kind] = vec
}

// advance moves the session forward after an answer was recorded
func advance(s *model.Session) {
	if s.ItemIndex < phaseLength(s.Phase)-1 {
		s.ItemIndex++
		return
	}

	// Last item of the phase was just answered
	switch s.Phase {
	case model.PhaseDepressionScreener:
		if expand(s, model.InstrumentDepression) {
			s.Phase = model.PhaseDepressionRemainder
		} else {
			s.Phase = model.PhaseAnxietyScreener
		}
	case model.PhaseDepressionRemainder:
		s.Phase = model.PhaseAnxietyScreener
	case model.PhaseAnxietyScreener:
		if expand(s, model.InstrumentAnxiety) {
			s.Phase = model.PhaseAnxietyRemainder
		} else {
			s.Phase = model.PhasePreferences
		}
	case model.PhaseAnxietyRemainder:
		s.Phase = model.PhasePreferences
	}
	s.ItemIndex = 0
}

// expand evaluates the adaptive branch decision on the instrument's screener
// sum. When a revised screener no longer meets the threshold, answers from a
// previous forward pass through the remainder are discarded so the vector
// length stays an accurate record of whether expansion happened. The crisis
// flag, once set, survives that truncation.
func expand(s *model.Session, kind model.InstrumentKind) bool {
	ins := catalog.Get(kind)
	screener := s.Answers[kind][:ins.ScreenerSize]
	if adaptive.ShouldExpand(scoring.Sum(screener)) {
		return true
	}
	if len(s.Answers[kind]) > ins.ScreenerSize {
		s.Answers[kind] = s.Answers[kind][:ins.ScreenerSize]
	}
	return false
}

// GoBack steps to the previous item. From the first item of a non-initial
// phase it re-enters the previous phase at its last item, skipping remainder
// phases that were never expanded into (their answer vectors hold only the
// screener entries).
func GoBack(s *model.Session) error {
	if s.ItemIndex > 0 {
		s.ItemIndex--
		return nil
	}

	switch s.Phase {
	case model.PhaseDepressionScreener:
		return fmt.Errorf("cannot go back past the first item: %w", ErrInvalidPhaseTransition)
	case model.PhaseDepressionRemainder:
		enter(s, model.PhaseDepressionScreener)
	case model.PhaseAnxietyScreener:
		if expanded(s, model.InstrumentDepression) {
			enter(s, model.PhaseDepressionRemainder)
		} else {
			enter(s, model.PhaseDepressionScreener)
		}
	case model.PhaseAnxietyRemainder:
		enter(s, model.PhaseAnxietyScreener)
	case model.PhasePreferences:
		if expanded(s, model.InstrumentAnxiety) {
			enter(s, model.PhaseAnxietyRemainder)
		} else {
			enter(s, model.PhaseAnxietyScreener)
		}
	default:
		return fmt.Errorf("cannot go back from phase %q: %w", s.Phase, ErrInvalidPhaseTransition)
	}
	return nil
}

// expanded reports whether the instrument's remainder was administered on the
// way forward
func expanded(s *model.Session, kind model.InstrumentKind) bool {
	return len(s.Answers[kind]) > catalog.Get(kind).ScreenerSize
}

// enter positions the session at the last item of the given phase
func enter(s *model.Session, p model.Phase) {
	s.Phase = p
	s.ItemIndex = phaseLength(p) - 1
}

// FinalizePreferences stores the multi-select preference groups. Selections
// are free-form and never scored.
func FinalizePreferences(s *model.Session, selections map[string][]string) error {
	if s.Phase != model.PhasePreferences {
		return fmt.Errorf("preferences not collectable in phase %q: %w", s.Phase, ErrInvalidPhaseTransition)
	}
	s.Preferences = selections
	return nil
}

// Complete moves the session out of the preferences phase. The preferences
// phase has no last-item auto-advance; completion is always an explicit
// caller signal.
func Complete(s *model.Session) error {
	if s.Phase != model.PhasePreferences {
		return fmt.Errorf("cannot complete from phase %q: %w", s.Phase, ErrInvalidPhaseTransition)
	}
	now := time.Now().UTC()
	s.CompletedAt = &now
	s.Phase = model.PhaseComplete
	return nil
}

// MarkSubmitted moves a completed session into its final state. Submission
// is terminal, so a second submission of the same session is structurally
// impossible.
func MarkSubmitted(s *model.Session) error {
	if s.Phase != model.PhaseComplete {
		return fmt.Errorf("cannot submit from phase %q: %w", s.Phase, ErrInvalidPhaseTransition)
	}
	s.Phase = model.PhaseSubmitted
	return nil
}

// Progress describes how far along the flow a session is
type Progress struct {
	Phase     model.Phase `json:"phase"`
	ItemIndex int         `json:"itemIndex"`
	Answered  int         `json:"answered"`
	// Planned is the number of questionnaire items currently known to be
	// administered; it grows when a screener expands.
	Planned int `json:"planned"`
}

// ProgressOf computes progress from the accumulated answers and the
// expansion decisions taken so far
func ProgressOf(s *model.Session) Progress {
	answered := len(s.Answers[model.InstrumentDepression]) + len(s.Answers[model.InstrumentAnxiety])

	planned := catalog.Get(model.InstrumentDepression).ScreenerSize +
		catalog.Get(model.InstrumentAnxiety).ScreenerSize
	if expanded(s, model.InstrumentDepression) || s.Phase == model.PhaseDepressionRemainder {
		planned += catalog.Get(model.InstrumentDepression).RemainderSize()
	}
	if expanded(s, model.InstrumentAnxiety) || s.Phase == model.PhaseAnxietyRemainder {
		planned += catalog.Get(model.InstrumentAnxiety).RemainderSize()
	}

	return Progress{
		Phase:     s.Phase,
		ItemIndex: s.ItemIndex,
		Answered:  answered,
		Planned:   planned,
	}
}
