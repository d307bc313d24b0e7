package progress

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tms-recovery/backend/internal/middleware"
	"github.com/tms-recovery/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateProfile handles POST /profiles. It is the one unauthenticated
// write: the generated profile ID becomes the caller's user ID.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	profile, err := h.service.CreateProfile(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// GetProfile handles GET /profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.service.GetProfile(userID)
	if err != nil {
		if IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
			return
		}
		log.Printf("[progress] failed to load profile: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load profile"})
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	profile, err := h.service.UpdateProfile(userID, req)
	if err != nil {
		if IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
			return
		}
		log.Printf("[progress] failed to update profile: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update profile"})
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// AddJournalEntry handles POST /journal.
func (h *Handler) AddJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.JournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	entry, event, err := h.service.AddJournalEntry(userID, req)
	if err != nil {
		if IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"entry":        entry,
		"gamification": event,
	})
}

// LogPain handles POST /pain-logs.
func (h *Handler) LogPain(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.PainLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, event, alerts, err := h.service.LogPain(userID, req)
	if err != nil {
		if IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session":      session,
		"gamification": event,
		"alerts":       alerts,
	})
}

// AddMilestone handles POST /milestones.
func (h *Handler) AddMilestone(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	milestone, event, err := h.service.AddMilestone(userID, req.Type, req.Description)
	if err != nil {
		if IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"milestone":    milestone,
		"gamification": event,
	})
}

// GetProgress handles GET /progress.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	prog, err := h.service.GetProgress(userID)
	if err != nil {
		if IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Progress not found"})
			return
		}
		log.Printf("[progress] failed to load progress: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load progress"})
		return
	}

	writeJSON(w, http.StatusOK, prog)
}

// Export handles GET /export.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	data, err := h.service.Export(userID)
	if err != nil {
		if IsNotFound(err) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
			return
		}
		log.Printf("[progress] export failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Export failed"})
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// Import handles POST /import.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var data models.ExportedData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.Import(userID, data); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
