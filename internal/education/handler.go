package education

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/tms-recovery/backend/internal/middleware"
	"github.com/tms-recovery/backend/internal/models"
	"github.com/tms-recovery/backend/internal/progress"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListModules handles GET /education/modules with an optional ?category=.
func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	summaries, err := h.service.ListModules(userID, r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("[education] failed to list modules: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list modules"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"modules": summaries})
}

// GetModule handles GET /education/modules/{id}.
func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	module, err := h.service.GetModule(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Module not found"})
		return
	}

	writeJSON(w, http.StatusOK, module)
}

// GetRecommended handles GET /education/recommended.
func (h *Handler) GetRecommended(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	recommended, err := h.service.Recommended(userID)
	if err != nil {
		log.Printf("[education] failed to build recommendations: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to build recommendations"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recommended": recommended})
}

// SubmitQuiz handles POST /education/modules/{id}/quiz.
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	moduleID := mux.Vars(r)["id"]

	var submission models.QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if len(submission.Answers) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "At least one answer is required"})
		return
	}

	result, err := h.service.SubmitQuiz(userID, moduleID, submission)
	if err != nil {
		writeJSON(w, statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CompleteModule handles POST /education/modules/{id}/complete for modules
// without a quiz.
func (h *Handler) CompleteModule(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	moduleID := mux.Vars(r)["id"]

	var req struct {
		TimeSpent int `json:"time_spent"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	event, err := h.service.MarkCompleted(userID, moduleID, req.TimeSpent)
	if err != nil {
		writeJSON(w, statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"module_id":    moduleID,
		"gamification": event,
	})
}

func statusForError(err error) int {
	switch {
	case progress.IsNotFound(err):
		return http.StatusNotFound
	case strings.Contains(err.Error(), "not found"):
		return http.StatusNotFound
	case strings.Contains(err.Error(), "locked"),
		strings.Contains(err.Error(), "no quiz"),
		strings.Contains(err.Error(), "requires passing"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
