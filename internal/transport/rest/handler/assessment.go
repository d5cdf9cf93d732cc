package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/philippoppel/findmytherapy-sub000/internal/cache"
	"github.com/philippoppel/findmytherapy-sub000/internal/model"
	"github.com/philippoppel/findmytherapy-sub000/internal/repository"
	"github.com/philippoppel/findmytherapy-sub000/internal/scoring"
	"github.com/philippoppel/findmytherapy-sub000/internal/service"
	"github.com/philippoppel/findmytherapy-sub000/internal/session"
)

// AssessmentHandler handles the assessment flow endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// SessionResponse is the session view returned by every flow endpoint. The
// crisis flag is always present so a caller sees it the moment it is raised,
// in whatever phase the session is in.
type SessionResponse struct {
	SessionID   string              `json:"sessionId"`
	Phase       model.Phase         `json:"phase"`
	ItemIndex   int                 `json:"itemIndex"`
	Item        *model.Item         `json:"item,omitempty"`
	Progress    session.Progress    `json:"progress"`
	CrisisFlag  bool                `json:"crisisFlag"`
	Preferences map[string][]string `json:"preferences,omitempty"`
}

func sessionResponse(s *model.Session) SessionResponse {
	resp := SessionResponse{
		SessionID:   s.ID,
		Phase:       s.Phase,
		ItemIndex:   s.ItemIndex,
		Progress:    session.ProgressOf(s),
		CrisisFlag:  s.CrisisFlag,
		Preferences: s.Preferences,
	}
	if item, ok := session.CurrentItem(s); ok {
		resp.Item = &item
	}
	return resp
}

// Start handles POST /v1/assessments
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess, err := h.assessmentSvc.Start(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse(sess))
}

// Get handles GET /v1/assessments/{sessionId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.assessmentSvc.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

// AnswerRequest is the request body for recording an answer
type AnswerRequest struct {
	Value int `json:"value"`
}

// Answer handles POST /v1/assessments/{sessionId}/answers
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.assessmentSvc.RecordAnswer(r.Context(), mux.Vars(r)["sessionId"], req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

// Back handles POST /v1/assessments/{sessionId}/back
func (h *AssessmentHandler) Back(w http.ResponseWriter, r *http.Request) {
	sess, err := h.assessmentSvc.GoBack(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

// PreferencesRequest is the request body for the preference selections
type PreferencesRequest struct {
	Selections map[string][]string `json:"selections"`
}

// Preferences handles PUT /v1/assessments/{sessionId}/preferences
func (h *AssessmentHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	var req PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := h.assessmentSvc.SetPreferences(r.Context(), mux.Vars(r)["sessionId"], req.Selections)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

// Complete handles POST /v1/assessments/{sessionId}/complete
func (h *AssessmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sess, err := h.assessmentSvc.Complete(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(sess))
}

// Submit handles POST /v1/assessments/{sessionId}/submit
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	payload, err := h.assessmentSvc.Submit(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payload)
}

// Result handles GET /v1/assessments/{sessionId}/result
func (h *AssessmentHandler) Result(w http.ResponseWriter, r *http.Request) {
	payload, err := h.assessmentSvc.Result(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Discard handles DELETE /v1/assessments/{sessionId}
func (h *AssessmentHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.assessmentSvc.Discard(r.Context(), mux.Vars(r)["sessionId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps core error kinds to HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cache.ErrSessionNotFound),
		errors.Is(err, repository.ErrSubmissionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrInvalidAnswerValue),
		errors.Is(err, scoring.ErrIncompleteAnswerVector):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, session.ErrInvalidPhaseTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
