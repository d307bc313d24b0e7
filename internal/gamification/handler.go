package gamification

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tms-recovery/backend/internal/middleware"
	"github.com/tms-recovery/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	resp, err := h.service.GetStats(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetLevel(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	resp, err := h.service.GetStats(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"level":    resp.Level,
		"progress": resp.LevelProgress,
	})
}

func (h *Handler) CreateWeeklyGoals(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	goal, err := h.service.CreateWeeklyGoals(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create weekly goals"})
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.service.RecentActivity(userID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load activity"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"activity": entries})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
