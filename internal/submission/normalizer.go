// Package submission shapes a finished (or abandoned) session into the
// canonical fixed-shape payload consumed downstream.
package submission

import (
	"time"

	"github.com/philippoppel/findmytherapy-sub000/internal/catalog"
	"github.com/philippoppel/findmytherapy-sub000/internal/model"
	"github.com/philippoppel/findmytherapy-sub000/internal/risk"
	"github.com/philippoppel/findmytherapy-sub000/internal/scoring"
)

// Normalize converts a session's possibly partial answer vectors into the
// canonical submission payload.
//
// The assessment is "screening" when neither instrument was ever expanded;
// such payloads expose only the 2-item screener sums and omit the full
// scores, severities and answer vectors entirely. Otherwise it is "full":
// any instrument still screener-only is padded with zeros to its item count
// before scoring. A padded zero means "not clinically indicated to ask",
// not "unknown", so a padded instrument scores exactly its real answers.
func Normalize(s *model.Session) (*model.Submission, error) {
	depAnswers := s.Answers[model.InstrumentDepression]
	anxAnswers := s.Answers[model.InstrumentAnxiety]

	depExpanded := len(depAnswers) > catalog.Get(model.InstrumentDepression).ScreenerSize
	anxExpanded := len(anxAnswers) > catalog.Get(model.InstrumentAnxiety).ScreenerSize

	if !depExpanded && !anxExpanded {
		return screeningSubmission(s, depAnswers, anxAnswers), nil
	}
	return fullSubmission(s, depAnswers, anxAnswers)
}

func screeningSubmission(s *model.Session, depAnswers, anxAnswers []int) *model.Submission {
	depSum := scoring.Sum(depAnswers)
	anxSum := scoring.Sum(anxAnswers)

	// The crisis item is never administered in a screening-only flow, so the
	// risk assessment runs on the padded-equivalent totals alone.
	r := risk.Assess(depSum, anxSum, 0)

	return &model.Submission{
		SessionID:               s.ID,
		AssessmentType:          model.AssessmentScreening,
		DepressionScreenerScore: &depSum,
		AnxietyScreenerScore:    &anxSum,
		RiskLevel:               r.Level,
		RiskColor:               r.Color,
		RequiresEmergency:       r.RequiresEmergency,
		HasCrisisSignal:         r.HasCrisisSignal,
		Preferences:             s.Preferences,
		SubmittedAt:             time.Now().UTC(),
	}
}

func fullSubmission(s *model.Session, depAnswers, anxAnswers []int) (*model.Submission, error) {
	// Padding must happen before scoring
	dep := pad(depAnswers, catalog.Get(model.InstrumentDepression).ItemCount())
	anx := pad(anxAnswers, catalog.Get(model.InstrumentAnxiety).ItemCount())

	depResult, err := scoring.Evaluate(model.InstrumentDepression, dep)
	if err != nil {
		return nil, err
	}
	anxResult, err := scoring.Evaluate(model.InstrumentAnxiety, anx)
	if err != nil {
		return nil, err
	}

	crisisValue := dep[catalog.Get(model.InstrumentDepression).CrisisIndex]
	r := risk.Assess(depResult.TotalScore, anxResult.TotalScore, crisisValue)

	return &model.Submission{
		SessionID:          s.ID,
		AssessmentType:     model.AssessmentFull,
		DepressionAnswers:  dep,
		AnxietyAnswers:     anx,
		DepressionScore:    &depResult.TotalScore,
		AnxietyScore:       &anxResult.TotalScore,
		DepressionSeverity: depResult.Severity,
		AnxietySeverity:    anxResult.Severity,
		RiskLevel:          r.Level,
		RiskColor:          r.Color,
		RequiresEmergency:  r.RequiresEmergency,
		HasCrisisSignal:    r.HasCrisisSignal,
		CrisisItemValue:    crisisValue,
		Preferences:        s.Preferences,
		SubmittedAt:        time.Now().UTC(),
	}, nil
}

// pad appends neutral zeros for un-administered items. The input slice is
// never modified.
func pad(answers []int, itemCount int) []int {
	out := make([]int, itemCount)
	copy(out, answers)
	return out
}
