package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/philippoppel/findmytherapy-sub000/internal/service"
	"github.com/philippoppel/findmytherapy-sub000/internal/transport/rest/handler"
	"github.com/philippoppel/findmytherapy-sub000/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AssessmentService *service.AssessmentService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	instrumentHandler := handler.NewInstrumentHandler(c.AssessmentService)
	wsHandler := ws.NewHandler(c.WSHub, c.AssessmentService)

	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Catalog
	v1.HandleFunc("/instruments", instrumentHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/instruments/{kind}", instrumentHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/preferences", instrumentHandler.PreferenceGroups).Methods("GET", "OPTIONS")

	// Standalone well-being check
	v1.HandleFunc("/wellbeing/score", instrumentHandler.ScoreWellBeing).Methods("POST", "OPTIONS")

	// Assessment flow
	v1.HandleFunc("/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}", assessmentHandler.Discard).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}/answers", assessmentHandler.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}/back", assessmentHandler.Back).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}/preferences", assessmentHandler.Preferences).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}/complete", assessmentHandler.Complete).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}/submit", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{sessionId}/result", assessmentHandler.Result).Methods("GET", "OPTIONS")

	// WebSocket event stream
	v1.HandleFunc("/ws/assessments/{sessionId}", wsHandler.SessionWS).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
