package service

import (
	"context"
	"fmt"
	"log"

	"github.com/philippoppel/findmytherapy-sub000/internal/cache"
	"github.com/philippoppel/findmytherapy-sub000/internal/catalog"
	"github.com/philippoppel/findmytherapy-sub000/internal/model"
	"github.com/philippoppel/findmytherapy-sub000/internal/repository"
	"github.com/philippoppel/findmytherapy-sub000/internal/scoring"
	"github.com/philippoppel/findmytherapy-sub000/internal/session"
	"github.com/philippoppel/findmytherapy-sub000/internal/submission"
)

// AssessmentService orchestrates the assessment flow against the session
// store and persists normalized submissions. It carries no decision logic of
// its own; all flow rules live in the session, risk and submission packages.
type AssessmentService struct {
	sessions    cache.SessionStore
	submissions repository.SubmissionRepo
	broadcaster Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(sessions cache.SessionStore, submissions repository.SubmissionRepo) *AssessmentService {
	return &AssessmentService{
		sessions:    sessions,
		submissions: submissions,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates and stores a fresh session
func (s *AssessmentService) Start(ctx context.Context) (*model.Session, error) {
	sess := session.New()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save new session: %w", err)
	}
	return sess, nil
}

// Get loads a session by ID
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Session, error) {
	return s.sessions.Load(ctx, id)
}

// RecordAnswer records one answer and returns the advanced session. The
// crisis flag on the returned session is already up to date: detection
// happens inside the same call that records the triggering answer, never
// deferred.
func (s *AssessmentService) RecordAnswer(ctx context.Context, id string, value int) (*model.Session, error) {
	sess, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	hadCrisis := sess.CrisisFlag
	phaseBefore := sess.Phase

	if err := session.RecordAnswer(sess, value); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session %s: %w", id, err)
	}

	if sess.CrisisFlag && !hadCrisis {
		log.Printf("crisis signal raised in session %s", sess.ID)
		s.broadcastToSession(sess.ID, "crisis_detected", map[string]bool{"crisisFlag": true})
	}
	if sess.Phase != phaseBefore {
		s.broadcastToSession(sess.ID, "phase_changed", map[string]model.Phase{"phase": sess.Phase})
	}
	s.broadcastToSession(sess.ID, "answer_recorded", session.ProgressOf(sess))

	return sess, nil
}

// GoBack steps the session to the previous item
func (s *AssessmentService) GoBack(ctx context.Context, id string) (*model.Session, error) {
	sess, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.GoBack(sess); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session %s: %w", id, err)
	}
	return sess, nil
}

// SetPreferences stores the preference selections collected after the
// questionnaires
func (s *AssessmentService) SetPreferences(ctx context.Context, id string, selections map[string][]string) (*model.Session, error) {
	sess, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.FinalizePreferences(sess, selections); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session %s: %w", id, err)
	}
	return sess, nil
}

// Complete moves the session out of the preferences phase
func (s *AssessmentService) Complete(ctx context.Context, id string) (*model.Session, error) {
	sess, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Complete(sess); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session %s: %w", id, err)
	}
	return sess, nil
}

// Submit normalizes a completed session, persists the payload and marks the
// session submitted. The submitted phase is terminal, so a session can be
// submitted at most once.
func (s *AssessmentService) Submit(ctx context.Context, id string) (*model.Submission, error) {
	sess, err := s.sessions.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Phase != model.PhaseComplete {
		return nil, fmt.Errorf("cannot submit from phase %q: %w", sess.Phase, session.ErrInvalidPhaseTransition)
	}

	payload, err := submission.Normalize(sess)
	if err != nil {
		return nil, err
	}
	if err := s.submissions.Create(ctx, payload); err != nil {
		return nil, err
	}

	if err := session.MarkSubmitted(sess); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session %s: %w", id, err)
	}

	s.broadcastToSession(sess.ID, "session_submitted", payload)
	return payload, nil
}

// Result fetches the persisted submission for a session
func (s *AssessmentService) Result(ctx context.Context, id string) (*model.Submission, error) {
	return s.submissions.GetBySessionID(ctx, id)
}

// Discard drops a session. Nothing is persisted by the flow itself, so
// discarding is the whole cancellation story.
func (s *AssessmentService) Discard(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// ScoreWellBeing scores a standalone WHO-5 check. The well-being instrument
// is never part of the adaptive flow and is always administered in full.
func (s *AssessmentService) ScoreWellBeing(answers []int) (model.ScoreResult, error) {
	scale := catalog.Get(model.InstrumentWellBeing).Scale
	for _, v := range answers {
		if !scale.Contains(v) {
			return model.ScoreResult{}, fmt.Errorf("value %d not in [%d,%d]: %w",
				v, scale.Min, scale.Max, session.ErrInvalidAnswerValue)
		}
	}
	return scoring.Evaluate(model.InstrumentWellBeing, answers)
}

func (s *AssessmentService) broadcastToSession(id, msgType string, payload interface{}) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToSession(id, msgType, payload)
}
