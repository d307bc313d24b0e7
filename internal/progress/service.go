package progress

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tms-recovery/backend/internal/gamification"
	"github.com/tms-recovery/backend/internal/models"
	"github.com/tms-recovery/backend/internal/safety"
)

type Service struct {
	store        *Store
	gamification *gamification.Service
	safety       *safety.Service
	now          func() time.Time
}

func NewService(store *Store, gamService *gamification.Service, safetyService *safety.Service) *Service {
	return &Service{
		store:        store,
		gamification: gamService,
		safety:       safetyService,
		now:          time.Now,
	}
}

// CreateProfile builds a new profile from the intake request and persists
// it together with an empty progress document.
func (s *Service) CreateProfile(req models.CreateProfileRequest) (*models.UserProfile, error) {
	if req.PersonalInfo.Age <= 0 {
		return nil, fmt.Errorf("personal_info.age is required")
	}

	now := s.now()
	profile := &models.UserProfile{
		ID:             uuid.New().String(),
		CreatedAt:      now,
		LastActive:     now,
		PersonalInfo:   req.PersonalInfo,
		Psychological:  req.Psychological,
		PainHistory:    req.PainHistory,
		MedicalHistory: req.MedicalHistory,
	}

	if err := s.store.CreateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) GetProfile(userID uuid.UUID) (*models.UserProfile, error) {
	return s.store.GetProfile(userID)
}

// UpdateProfile replaces the intake sections and bumps last-active. The
// assessment result, if any, is carried over untouched.
func (s *Service) UpdateProfile(userID uuid.UUID, req models.CreateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.store.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.PersonalInfo = req.PersonalInfo
	profile.Psychological = req.Psychological
	profile.PainHistory = req.PainHistory
	profile.MedicalHistory = req.MedicalHistory
	profile.LastActive = s.now()

	if err := s.store.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddJournalEntry appends an entry and awards XP for it.
func (s *Service) AddJournalEntry(userID uuid.UUID, req models.JournalEntryRequest) (*models.JournalEntry, *models.EventResult, error) {
	if strings.TrimSpace(req.Response) == "" {
		return nil, nil, fmt.Errorf("response is required")
	}

	prog, err := s.store.GetProgress(userID)
	if err != nil {
		return nil, nil, err
	}

	entry := models.JournalEntry{
		Date:          s.now(),
		Prompt:        req.Prompt,
		Response:      req.Response,
		EmotionalTags: req.EmotionalTags,
	}
	prog.JournalEntries = append(prog.JournalEntries, entry)

	if err := s.store.SaveProgress(prog); err != nil {
		return nil, nil, err
	}

	event, err := s.gamification.ProcessEvent(userID, models.GamificationEvent{
		Type:         models.EventJournalEntryCreated,
		EntryID:      fmt.Sprintf("entry_%d", len(prog.JournalEntries)),
		WordCount:    len(strings.Fields(req.Response)),
		Breakthrough: req.Breakthrough,
	})
	if err != nil {
		log.Printf("[progress] failed to process journal event: %v", err)
		event = &models.EventResult{}
	}

	return &entry, event, nil
}

// LogPain appends a tracking session, awards XP, and runs the ongoing
// safety monitors over the updated history. Improvement means a lower
// level than the previous session.
func (s *Service) LogPain(userID uuid.UUID, req models.PainLogRequest) (*models.TreatmentSession, *models.EventResult, []models.SafetyAlert, error) {
	if req.PainLevel < 1 || req.PainLevel > 10 {
		return nil, nil, nil, fmt.Errorf("pain_level must be between 1 and 10")
	}

	prog, err := s.store.GetProgress(userID)
	if err != nil {
		return nil, nil, nil, err
	}

	improvement := false
	if n := len(prog.Sessions); n > 0 {
		improvement = req.PainLevel < prog.Sessions[n-1].PainLevel
	}

	session := models.TreatmentSession{
		Date:           s.now(),
		PainLevel:      req.PainLevel,
		EmotionalState: req.EmotionalState,
		Insights:       req.Insights,
		Activities:     req.Activities,
	}
	prog.Sessions = append(prog.Sessions, session)

	if err := s.store.SaveProgress(prog); err != nil {
		return nil, nil, nil, err
	}

	event, err := s.gamification.ProcessEvent(userID, models.GamificationEvent{
		Type:        models.EventPainLevelLogged,
		PainLevel:   req.PainLevel,
		Improvement: improvement,
	})
	if err != nil {
		log.Printf("[progress] failed to process pain event: %v", err)
		event = &models.EventResult{}
	}

	alerts, err := s.safety.MonitorSymptoms(userID, models.MonitorRequest{
		SymptomChanges: req.SymptomChanges,
	})
	if err != nil {
		log.Printf("[progress] symptom monitoring failed: %v", err)
		alerts = nil
	}

	return &session, event, alerts, nil
}

// AddMilestone appends a recovery milestone and awards the milestone bonus.
func (s *Service) AddMilestone(userID uuid.UUID, milestoneType, description string) (*models.ProgressMilestone, *models.EventResult, error) {
	if milestoneType == "" || description == "" {
		return nil, nil, fmt.Errorf("type and description are required")
	}

	prog, err := s.store.GetProgress(userID)
	if err != nil {
		return nil, nil, err
	}

	milestone := models.ProgressMilestone{
		Date:        s.now(),
		Type:        milestoneType,
		Description: description,
	}
	prog.Milestones = append(prog.Milestones, milestone)

	if err := s.store.SaveProgress(prog); err != nil {
		return nil, nil, err
	}

	event, err := s.gamification.ProcessEvent(userID, models.GamificationEvent{
		Type:        models.EventMilestoneAchieved,
		MilestoneID: fmt.Sprintf("milestone_%d", len(prog.Milestones)),
		Category:    milestoneType,
	})
	if err != nil {
		log.Printf("[progress] failed to process milestone event: %v", err)
		event = &models.EventResult{}
	}

	return &milestone, event, nil
}

func (s *Service) GetProgress(userID uuid.UUID) (*models.TreatmentProgress, error) {
	return s.store.GetProgress(userID)
}

// Export bundles the profile and progress for download.
func (s *Service) Export(userID uuid.UUID) (*models.ExportedData, error) {
	profile, err := s.store.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	prog, err := s.store.GetProgress(userID)
	if err != nil {
		return nil, err
	}

	return &models.ExportedData{
		UserProfile:       profile,
		TreatmentProgress: prog,
		ExportDate:        s.now(),
	}, nil
}

// Import restores a previously exported bundle onto the current user,
// rewriting the embedded IDs to match.
func (s *Service) Import(userID uuid.UUID, data models.ExportedData) error {
	if data.UserProfile == nil || data.TreatmentProgress == nil {
		return fmt.Errorf("export bundle must contain a profile and progress")
	}

	profile := *data.UserProfile
	profile.ID = userID.String()
	profile.LastActive = s.now()

	prog := *data.TreatmentProgress
	prog.UserID = userID.String()

	if err := s.store.SaveProfile(&profile); err != nil {
		if IsNotFound(err) {
			if err := s.store.CreateProfile(&profile); err != nil {
				return err
			}
		} else {
			return err
		}
	}

	return s.store.SaveProgress(&prog)
}
