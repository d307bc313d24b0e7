package safety

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

func (h *Handler) RunScreening(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if len(req.Responses) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Screening responses are required"})
		return
	}

	resp, err := h.service.RunScreening(userID, req.Responses)
	if err != nil {
		log.Printf("[safety] screening failed for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to run screening"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) MonitorSymptoms(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.MonitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	alerts, err := h.service.MonitorSymptoms(userID, req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to evaluate symptoms"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"alerts": alerts})
}

func (h *Handler) EvaluateEmergency(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.EmergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	evaluation, err := h.service.EvaluateEmergency(userID, req)
	if err != nil {
		log.Printf("[safety] emergency evaluation failed for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to evaluate emergency status"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"evaluation": evaluation,
		"resources":  EmergencyResources,
	})
}

func (h *Handler) GetSafetyProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.service.GetSafetyProfile(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load safety profile"})
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) GetEligibility(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	result, recommendations, err := h.service.Eligibility(userID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"eligibility":     result,
		"recommendations": recommendations,
	})
}

func (h *Handler) ListDisclaimers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"disclaimers": Disclaimers})
}

func (h *Handler) AcknowledgeDisclaimer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.AcknowledgeDisclaimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DisclaimerID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "disclaimer_id is required"})
		return
	}

	if err := h.service.AcknowledgeDisclaimer(userID, req.DisclaimerID); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"acknowledged": req.DisclaimerID})
}

func (h *Handler) AcknowledgeRedFlag(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req struct {
		FlagID string `json:"flag_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FlagID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "flag_id is required"})
		return
	}

	if err := h.service.AcknowledgeRedFlag(userID, req.FlagID); err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"acknowledged": req.FlagID})
}

func (h *Handler) SetMedicalClearance(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var clearance models.MedicalClearance
	if err := json.NewDecoder(r.Body).Decode(&clearance); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.SetMedicalClearance(userID, clearance); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"status": "recorded"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
