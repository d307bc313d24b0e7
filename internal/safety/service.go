package safety

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/tms-recovery/backend/internal/models"
)

// ProfileSource supplies the user records the safety evaluations read.
// Implemented by the progress store.
type ProfileSource interface {
	GetProfile(userID uuid.UUID) (*models.UserProfile, error)
	GetProgress(userID uuid.UUID) (*models.TreatmentProgress, error)
}

type Service struct {
	monitor  *Monitor
	store    *Store
	profiles ProfileSource
}

func NewService(monitor *Monitor, store *Store) *Service {
	return &Service{monitor: monitor, store: store}
}

// SetProfileSource injects the profile/progress reader; wired in main after
// both packages are constructed.
func (s *Service) SetProfileSource(src ProfileSource) {
	s.profiles = src
}

// RunScreening evaluates questionnaire responses, persists any triggered
// flags and the completed check, and classifies the outcome. The returned
// flag list reflects every trigger that fired, including repeats.
func (s *Service) RunScreening(userID uuid.UUID, responses map[string]any) (*models.ScreeningResponse, error) {
	flags := s.monitor.CheckAssessmentRedFlags(responses)
	outcome := s.monitor.ClassifyOutcome(flags)

	if err := s.store.RecordRedFlags(userID, flags); err != nil {
		return nil, fmt.Errorf("persist red flags: %w", err)
	}
	if err := s.store.RecordCompletedCheck(userID, "pre_assessment_screening", responses, outcome); err != nil {
		return nil, fmt.Errorf("persist screening: %w", err)
	}

	requiresCare := false
	for _, f := range flags {
		if f.MedicalConsultationRequired {
			requiresCare = true
			break
		}
	}

	return &models.ScreeningResponse{
		TriggeredFlags:      flags,
		Outcome:             outcome,
		RequiresMedicalCare: requiresCare,
	}, nil
}

// MonitorSymptoms runs the ongoing detectors. Pain levels fall back to the
// user's logged sessions when the request omits them.
func (s *Service) MonitorSymptoms(userID uuid.UUID, req models.MonitorRequest) ([]models.SafetyAlert, error) {
	var progress *models.TreatmentProgress
	if s.profiles != nil {
		var err error
		progress, err = s.profiles.GetProgress(userID)
		if err != nil {
			log.Printf("[safety] no treatment progress for %s: %v", userID, err)
		}
	}

	painLevels := req.PainLevels
	if len(painLevels) == 0 && progress != nil {
		for _, session := range progress.Sessions {
			painLevels = append(painLevels, session.PainLevel)
		}
	}

	alerts := s.monitor.MonitorOngoingSymptoms(painLevels, req.SymptomChanges, progress)

	// A worsening-trend alert also logs the duration red flag.
	for _, alert := range alerts {
		if alert.Title == "Symptoms Worsening" {
			if flag, ok := s.monitor.flagByID("worsening_despite_treatment"); ok {
				if err := s.store.RecordRedFlags(userID, []models.RedFlag{flag}); err != nil {
					log.Printf("[safety] failed to record worsening flag: %v", err)
				}
			}
		}
	}

	return alerts, nil
}

// EvaluateEmergency runs the emergency criteria and persists any flags it
// surfaces.
func (s *Service) EvaluateEmergency(userID uuid.UUID, req models.EmergencyRequest) (*models.EmergencyEvaluation, error) {
	evaluation := s.monitor.EvaluateEmergencyStatus(req.Symptoms, req.Responses)

	if len(evaluation.RedFlags) > 0 {
		if err := s.store.RecordRedFlags(userID, evaluation.RedFlags); err != nil {
			return nil, fmt.Errorf("persist emergency flags: %w", err)
		}
	}

	return &evaluation, nil
}

func (s *Service) GetSafetyProfile(userID uuid.UUID) (*models.UserSafetyProfile, error) {
	return s.store.GetSafetyProfile(userID)
}

// CheckTMSEligibility is exposed for other packages; it never errors, an
// unknown profile just reads as eligible with no history.
func (s *Service) CheckTMSEligibility(profile *models.UserProfile) models.EligibilityResult {
	return s.monitor.CheckTMSEligibility(profile)
}

// Eligibility loads the stored profile and evaluates it, including safety
// recommendations.
func (s *Service) Eligibility(userID uuid.UUID) (*models.EligibilityResult, []string, error) {
	if s.profiles == nil {
		return nil, nil, fmt.Errorf("profile source not configured")
	}

	profile, err := s.profiles.GetProfile(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load profile: %w", err)
	}

	progress, err := s.profiles.GetProgress(userID)
	if err != nil {
		progress = nil
	}

	result := s.monitor.CheckTMSEligibility(profile)
	recommendations := s.monitor.SafetyRecommendations(profile, progress)
	return &result, recommendations, nil
}

func (s *Service) AcknowledgeDisclaimer(userID uuid.UUID, disclaimerID string) error {
	found := false
	for _, d := range Disclaimers {
		if d.ID == disclaimerID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown disclaimer: %s", disclaimerID)
	}
	return s.store.AcknowledgeDisclaimer(userID, disclaimerID)
}

func (s *Service) AcknowledgeRedFlag(userID uuid.UUID, flagID string) error {
	return s.store.AcknowledgeRedFlag(userID, flagID)
}

func (s *Service) SetMedicalClearance(userID uuid.UUID, clearance models.MedicalClearance) error {
	if clearance.ProvidedBy == "" {
		return fmt.Errorf("provided_by is required")
	}
	return s.store.SetMedicalClearance(userID, clearance)
}
