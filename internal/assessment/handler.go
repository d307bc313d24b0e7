package assessment

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tms-recovery/backend/internal/gamification"
	"github.com/tms-recovery/backend/internal/middleware"
	"github.com/tms-recovery/backend/internal/models"
	"github.com/tms-recovery/backend/internal/progress"
	"github.com/tms-recovery/backend/internal/safety"
)

type Handler struct {
	service    *Service
	profiles   *progress.Store
	safety     *safety.Service
	gamService *gamification.Service
}

func NewHandler(service *Service, profiles *progress.Store, safetyService *safety.Service) *Handler {
	return &Handler{service: service, profiles: profiles, safety: safetyService}
}

// SetGamificationService injects the gamification service for assessment XP.
func (h *Handler) SetGamificationService(gs *gamification.Service) {
	h.gamService = gs
}

type scoreResponse struct {
	Result          models.TMSAssessmentResult `json:"result"`
	Recommendations []string                   `json:"recommendations"`
	Eligibility     models.EligibilityResult   `json:"eligibility"`
}

// Score evaluates the stored profile, persists the result onto it, and
// awards assessment experience.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	profile, err := h.profiles.GetProfile(userID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Profile not found"})
		return
	}

	if len(profile.PainHistory.PrimarySymptoms) == 0 && len(profile.PainHistory.PainLocations) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Profile is incomplete: pain history is required before scoring"})
		return
	}

	result := h.service.Evaluate(profile)
	profile.Assessment = &result

	if err := h.profiles.SaveProfile(profile); err != nil {
		log.Printf("[assessment] failed to save result for %s: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save assessment"})
		return
	}

	if h.gamService != nil {
		_, err := h.gamService.ProcessEvent(userID, models.GamificationEvent{
			Type:           models.EventAssessmentCompleted,
			AssessmentType: "initial",
			Score:          result.TMSLikelihood,
		})
		if err != nil {
			log.Printf("[assessment] gamification event failed for %s: %v", userID, err)
		}
	}

	writeJSON(w, http.StatusOK, scoreResponse{
		Result:          result,
		Recommendations: h.service.GenerateRecommendations(profile),
		Eligibility:     h.safety.CheckTMSEligibility(profile),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
