package model

import "time"

// Phase is the current position of a session in the assessment flow
type Phase string

const (
	PhaseDepressionScreener  Phase = "depression_screener"
	PhaseDepressionRemainder Phase = "depression_remainder"
	PhaseAnxietyScreener     Phase = "anxiety_screener"
	PhaseAnxietyRemainder    Phase = "anxiety_remainder"
	PhasePreferences         Phase = "preferences"
	PhaseComplete            Phase = "complete"
	// PhaseSubmitted is terminal; entering it is what enforces the
	// at-most-one-submission invariant
	PhaseSubmitted Phase = "submitted"
)

// Terminal reports whether no further answers can be recorded in this phase
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseSubmitted
}

// Session is the mutable root aggregate for one assessment attempt. It is
// owned by a single caller at a time and is never mutated concurrently.
type Session struct {
	ID        string `json:"id"`
	Phase     Phase  `json:"phase"`
	ItemIndex int    `json:"itemIndex"`

	// Answers holds one vector per administered instrument. A vector may be
	// shorter than the instrument's item count while the session is mid-flow.
	Answers map[InstrumentKind][]int `json:"answers"`

	// Preferences are free-form, non-scored selections grouped by key
	Preferences map[string][]string `json:"preferences,omitempty"`

	// CrisisFlag is sticky: once set it is never cleared for the remainder
	// of the session, even if the triggering answer is later revised.
	CrisisFlag bool `json:"crisisFlag"`

	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
