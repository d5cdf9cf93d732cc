package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/philippoppel/findmytherapy-sub000/internal/catalog"
	"github.com/philippoppel/findmytherapy-sub000/internal/service"
)

// InstrumentHandler exposes the compiled-in questionnaire catalog and the
// standalone well-being check
type InstrumentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewInstrumentHandler creates a new instrument handler
func NewInstrumentHandler(assessmentSvc *service.AssessmentService) *InstrumentHandler {
	return &InstrumentHandler{assessmentSvc: assessmentSvc}
}

// List handles GET /v1/instruments
func (h *InstrumentHandler) List(w http.ResponseWriter, r *http.Request) {
	kinds := catalog.Kinds()
	instruments := make([]interface{}, 0, len(kinds))
	for _, kind := range kinds {
		instruments = append(instruments, catalog.Get(kind))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"instruments": instruments})
}

// Get handles GET /v1/instruments/{kind}
func (h *InstrumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ins, ok := catalog.Lookup(mux.Vars(r)["kind"])
	if !ok {
		writeError(w, http.StatusNotFound, "unknown instrument")
		return
	}
	writeJSON(w, http.StatusOK, ins)
}

// PreferenceGroups handles GET /v1/preferences
func (h *InstrumentHandler) PreferenceGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"groups": catalog.PreferenceGroups()})
}

// WellBeingRequest is the request body for the one-shot well-being check
type WellBeingRequest struct {
	Answers []int `json:"answers"`
}

// ScoreWellBeing handles POST /v1/wellbeing/score
func (h *InstrumentHandler) ScoreWellBeing(w http.ResponseWriter, r *http.Request) {
	var req WellBeingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assessmentSvc.ScoreWellBeing(req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
