package gamification

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/tms-recovery/backend/internal/models"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ProcessEvent loads the user's stats, applies the event, and persists the
// result.
func (s *Service) ProcessEvent(userID uuid.UUID, event models.GamificationEvent) (*models.EventResult, error) {
	stats, err := s.store.GetOrCreateStats(userID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	engine := NewEngine(stats)
	result, milestoneDays := applyEvent(engine, event)
	if milestoneDays > 0 {
		log.Printf("[gamification] streak milestone for %s: %d days", userID, milestoneDays)
	}

	if err := s.store.SaveStats(userID, stats); err != nil {
		return nil, fmt.Errorf("save stats: %w", err)
	}

	return &result, nil
}

// applyEvent runs one event through the engine. A streak crossing a weekly
// boundary earns its own bonus event, folded into the returned result;
// streaks advance at most once per day, so this cannot double-fire. The
// second return value is the streak length when a milestone fired, 0
// otherwise.
func applyEvent(engine *Engine, event models.GamificationEvent) (models.EventResult, int) {
	before := engine.Stats().Streaks[models.StreakOverall].Current
	result := engine.ProcessEvent(event)
	after := engine.Stats().Streaks[models.StreakOverall].Current

	if event.Type == models.EventStreakMilestone || after == before || after <= 0 || after%7 != 0 {
		return result, 0
	}

	bonus := engine.ProcessEvent(models.GamificationEvent{
		Type:        models.EventStreakMilestone,
		StreakType:  models.StreakOverall,
		StreakCount: after,
	})
	result.ExperienceGained += bonus.ExperienceGained
	result.NewBadges = append(result.NewBadges, bonus.NewBadges...)
	result.NewAchievements = append(result.NewAchievements, bonus.NewAchievements...)
	if bonus.LevelUp {
		result.LevelUp = true
		result.NewLevel = bonus.NewLevel
	}
	return result, after
}

func (s *Service) GetStats(userID uuid.UUID) (*models.StatsResponse, error) {
	stats, err := s.store.GetOrCreateStats(userID)
	if err != nil {
		return nil, err
	}

	engine := NewEngine(stats)
	return &models.StatsResponse{
		Stats:         *stats,
		Level:         LevelInfo(stats.CurrentLevel),
		LevelProgress: engine.ProgressToNextLevel(),
	}, nil
}

// CreateWeeklyGoals opens this ISO week's goal set, persisting it if new.
func (s *Service) CreateWeeklyGoals(userID uuid.UUID) (*models.WeeklyGoal, error) {
	stats, err := s.store.GetOrCreateStats(userID)
	if err != nil {
		return nil, err
	}

	engine := NewEngine(stats)
	goal := engine.CreateWeeklyGoal()

	if err := s.store.SaveStats(userID, stats); err != nil {
		return nil, err
	}
	return &goal, nil
}

// RecentActivity returns the newest entries first, capped at limit.
func (s *Service) RecentActivity(userID uuid.UUID, limit int) ([]models.ActivityEntry, error) {
	stats, err := s.store.GetOrCreateStats(userID)
	if err != nil {
		return nil, err
	}

	history := stats.ActivityHistory
	if limit <= 0 {
		limit = 20
	}

	entries := []models.ActivityEntry{}
	for i := len(history) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, history[i])
	}
	return entries, nil
}
