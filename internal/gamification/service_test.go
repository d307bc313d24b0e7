package gamification

import (
	"testing"
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

// A streak milestone runs a second engine event for the bonus XP. Everything
// that bonus event produces, including level-ups and badges, must surface in
// the merged result handed back to the caller.
func TestStreakMilestoneBonusMergedIntoResult(t *testing.T) {
	e := NewEngine(&models.UserStats{UserID: "test-user", TotalExperience: 60, CurrentLevel: 1})
	advance := fixedClock(e, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	painLog := models.GamificationEvent{Type: models.EventPainLevelLogged, PainLevel: 5}

	// Six days of pain logs: streak builds, no milestone, no level-up.
	for day := 0; day < 6; day++ {
		result, days := applyEvent(e, painLog)
		if days != 0 {
			t.Fatalf("day %d: milestone fired at streak %d", day+1, days)
		}
		if result.LevelUp {
			t.Fatalf("day %d: unexpected level up", day+1)
		}
		advance(1)
	}

	// Day seven crosses the weekly boundary. The base event alone leaves the
	// total at 95 XP; the 10 XP bonus pushes it past the level-2 threshold,
	// and the 7-day streak unlocks week_streak during the bonus pass.
	result, days := applyEvent(e, painLog)
	if days != 7 {
		t.Fatalf("milestone days = %d, want 7", days)
	}
	if result.ExperienceGained != 15 {
		t.Errorf("got %d XP, want 15 (5 base + 10 weekly bonus)", result.ExperienceGained)
	}
	if !result.LevelUp || result.NewLevel != 2 {
		t.Errorf("level-up from the bonus event not reported: %+v", result)
	}

	found := false
	for _, b := range result.NewBadges {
		if b.ID == "week_streak" {
			found = true
		}
	}
	if !found {
		t.Error("week_streak badge unlocked by the bonus event missing from result")
	}

	if e.Stats().TotalExperience != 105 {
		t.Errorf("total experience = %d, want 105", e.Stats().TotalExperience)
	}
}

// The milestone bonus never chains off another milestone event.
func TestStreakMilestoneDoesNotRefire(t *testing.T) {
	e := newTestEngine()
	fixedClock(e, time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC))
	e.stats.Streaks[models.StreakOverall].Current = 6
	yesterday := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	e.stats.Streaks[models.StreakOverall].LastActivity = &yesterday

	// This event advances the overall streak to 7 and earns the bonus once.
	_, days := applyEvent(e, models.GamificationEvent{Type: models.EventPainLevelLogged, PainLevel: 3})
	if days != 7 {
		t.Fatalf("milestone days = %d, want 7", days)
	}

	// Feeding a milestone event directly must not trigger another bonus.
	_, days = applyEvent(e, models.GamificationEvent{
		Type:        models.EventStreakMilestone,
		StreakType:  models.StreakOverall,
		StreakCount: 7,
	})
	if days != 0 {
		t.Errorf("milestone event re-fired the bonus (days=%d)", days)
	}
}
