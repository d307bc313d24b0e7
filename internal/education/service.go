package education

import (
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/tms-recovery/backend/internal/gamification"
	"github.com/tms-recovery/backend/internal/models"
	"github.com/tms-recovery/backend/internal/progress"
)

type Service struct {
	progress     *progress.Store
	gamification *gamification.Service
}

func NewService(progressStore *progress.Store, gamService *gamification.Service) *Service {
	return &Service{progress: progressStore, gamification: gamService}
}

// ListModules returns summaries for every module, or one category, with
// per-user completion and unlock state filled in.
func (s *Service) ListModules(userID uuid.UUID, category string) ([]models.ModuleSummary, error) {
	completed, err := s.completedModules(userID)
	if err != nil {
		return nil, err
	}

	modules := Modules
	if category != "" {
		modules = ModulesByCategory(category)
	}

	summaries := []models.ModuleSummary{}
	for _, m := range modules {
		summaries = append(summaries, summarize(m, completed))
	}
	return summaries, nil
}

func (s *Service) GetModule(id string) (*models.EducationalModule, error) {
	module := ModuleByID(id)
	if module == nil {
		return nil, fmt.Errorf("module %s not found", id)
	}
	return module, nil
}

// Recommended returns up to three uncompleted modules whose prerequisites
// are all met, in curriculum order.
func (s *Service) Recommended(userID uuid.UUID) ([]models.ModuleSummary, error) {
	completed, err := s.completedModules(userID)
	if err != nil {
		return nil, err
	}

	recommended := []models.ModuleSummary{}
	for _, m := range Modules {
		if len(recommended) == 3 {
			break
		}
		if contains(completed, m.ID) {
			continue
		}
		if prerequisitesMet(m, completed) {
			recommended = append(recommended, summarize(m, completed))
		}
	}
	return recommended, nil
}

// SubmitQuiz grades a quiz attempt. A passing attempt completes the module
// and fires the gamification event; repeats of an already-completed module
// are graded but not re-awarded.
func (s *Service) SubmitQuiz(userID uuid.UUID, moduleID string, submission models.QuizSubmission) (*models.QuizResult, error) {
	module := ModuleByID(moduleID)
	if module == nil {
		return nil, fmt.Errorf("module %s not found", moduleID)
	}
	if module.Quiz == nil {
		return nil, fmt.Errorf("module %s has no quiz", moduleID)
	}

	prog, err := s.progress.GetProgress(userID)
	if err != nil {
		return nil, err
	}
	if !prerequisitesMet(*module, prog.ReadingProgress.CompletedModules) {
		return nil, fmt.Errorf("module %s is locked: complete its prerequisites first", moduleID)
	}

	result := gradeQuiz(module, submission)

	if result.Passed && !contains(prog.ReadingProgress.CompletedModules, moduleID) {
		event, err := s.completeModule(userID, prog, moduleID, result.Score, submission.TimeSpent)
		if err != nil {
			return nil, err
		}
		result.Event = *event
	}

	return result, nil
}

// MarkCompleted records completion for a module without a quiz. Modules
// that carry a quiz must be completed by passing it.
func (s *Service) MarkCompleted(userID uuid.UUID, moduleID string, timeSpent int) (*models.EventResult, error) {
	module := ModuleByID(moduleID)
	if module == nil {
		return nil, fmt.Errorf("module %s not found", moduleID)
	}
	if module.Quiz != nil {
		return nil, fmt.Errorf("module %s requires passing its quiz", moduleID)
	}

	prog, err := s.progress.GetProgress(userID)
	if err != nil {
		return nil, err
	}
	if !prerequisitesMet(*module, prog.ReadingProgress.CompletedModules) {
		return nil, fmt.Errorf("module %s is locked: complete its prerequisites first", moduleID)
	}
	if contains(prog.ReadingProgress.CompletedModules, moduleID) {
		return &models.EventResult{}, nil
	}

	return s.completeModule(userID, prog, moduleID, 0, timeSpent)
}

// completeModule merges the completion into reading progress and fires the
// education event.
func (s *Service) completeModule(userID uuid.UUID, prog *models.TreatmentProgress, moduleID string, score, timeSpent int) (*models.EventResult, error) {
	prog.ReadingProgress.CompletedModules = append(prog.ReadingProgress.CompletedModules, moduleID)
	if score > 0 {
		if prog.ReadingProgress.ComprehensionScores == nil {
			prog.ReadingProgress.ComprehensionScores = make(map[string]int)
		}
		prog.ReadingProgress.ComprehensionScores[moduleID] = score
	}
	if prog.ReadingProgress.CurrentModule == moduleID {
		prog.ReadingProgress.CurrentModule = ""
	}

	if err := s.progress.SaveProgress(prog); err != nil {
		return nil, err
	}

	event, err := s.gamification.ProcessEvent(userID, models.GamificationEvent{
		Type:      models.EventEducationModuleDone,
		ModuleID:  moduleID,
		Score:     score,
		TimeSpent: timeSpent,
	})
	if err != nil {
		log.Printf("[education] failed to process completion event: %v", err)
		return &models.EventResult{}, nil
	}
	return event, nil
}

func (s *Service) completedModules(userID uuid.UUID) ([]string, error) {
	prog, err := s.progress.GetProgress(userID)
	if err != nil {
		if progress.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return prog.ReadingProgress.CompletedModules, nil
}

// gradeQuiz scores an attempt as the percentage of available points earned.
func gradeQuiz(module *models.EducationalModule, submission models.QuizSubmission) *models.QuizResult {
	earned, total := 0, 0
	for _, q := range module.Quiz.Questions {
		total += q.Points
		if submission.Answers[q.ID] == q.CorrectAnswer {
			earned += q.Points
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(earned) / float64(total) * 100))
	}

	return &models.QuizResult{
		ModuleID:     module.ID,
		Score:        score,
		Passed:       score >= module.Quiz.PassingScore,
		PointsEarned: earned,
		PointsTotal:  total,
	}
}

func summarize(m models.EducationalModule, completed []string) models.ModuleSummary {
	return models.ModuleSummary{
		ID:                  m.ID,
		Title:               m.Title,
		Category:            m.Category,
		Description:         m.Description,
		EstimatedReadTime:   m.EstimatedReadTime,
		Difficulty:          m.Difficulty,
		PrerequisiteModules: m.PrerequisiteModules,
		Completed:           contains(completed, m.ID),
		Unlocked:            prerequisitesMet(m, completed),
	}
}

func prerequisitesMet(m models.EducationalModule, completed []string) bool {
	for _, prereq := range m.PrerequisiteModules {
		if !contains(completed, prereq) {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
