package gamification

import (
	"fmt"
	"math"
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

// Engine applies gamification events to one user's stats. It is not safe
// for concurrent use; callers serialize through the service layer.
type Engine struct {
	stats *models.UserStats
	now   func() time.Time
}

func NewEngine(stats *models.UserStats) *Engine {
	if stats.Streaks == nil {
		stats.Streaks = map[string]*models.ProgressStreak{}
	}
	for _, t := range []string{
		models.StreakDailyCheckin,
		models.StreakJournal,
		models.StreakEducation,
		models.StreakPainTracking,
		models.StreakOverall,
	} {
		if stats.Streaks[t] == nil {
			stats.Streaks[t] = &models.ProgressStreak{Type: t}
		}
	}
	if stats.CurrentLevel == 0 {
		stats.CurrentLevel = 1
	}
	return &Engine{stats: stats, now: time.Now}
}

func (e *Engine) Stats() *models.UserStats {
	return e.stats
}

// ProcessEvent scores an event, updates level/badges/achievements, and
// advances streaks. Streak multipliers use the streak value from before
// this event is counted.
func (e *Engine) ProcessEvent(event models.GamificationEvent) models.EventResult {
	result := models.EventResult{
		NewBadges:       []models.Badge{},
		NewAchievements: []models.Achievement{},
	}

	previousLevel := e.stats.CurrentLevel

	switch event.Type {
	case models.EventJournalEntryCreated:
		result.ExperienceGained = e.scoreJournalEntry(event)
	case models.EventEducationModuleDone:
		result.ExperienceGained = e.scoreEducationModule(event)
	case models.EventPainLevelLogged:
		result.ExperienceGained = e.scorePainTracking(event)
	case models.EventStreakMilestone:
		result.ExperienceGained = e.scoreStreakMilestone(event)
	case models.EventWeeklyGoalCompleted:
		result.ExperienceGained = e.scoreWeeklyGoal(event)
	case models.EventAssessmentCompleted:
		result.ExperienceGained = e.scoreAssessment(event)
	case models.EventMilestoneAchieved:
		result.ExperienceGained = e.scoreMilestone(event)
	}

	e.stats.TotalExperience += result.ExperienceGained
	e.stats.CurrentLevel = LevelForExperience(e.stats.TotalExperience)
	if e.stats.CurrentLevel > previousLevel {
		result.LevelUp = true
		result.NewLevel = e.stats.CurrentLevel
	}

	result.NewBadges = e.unlockNewBadges()
	result.NewAchievements = e.unlockNewAchievements()

	e.updateStreaks(event)

	return result
}

func (e *Engine) scoreJournalEntry(event models.GamificationEvent) int {
	wordBonus := int(math.Min(float64(event.WordCount/100*5), 25))
	multiplier := StreakMultiplier(e.stats.Streaks[models.StreakJournal].Current)
	total := ApplyStreakMultiplier(JournalEntryXP+wordBonus, multiplier)

	e.recordActivity(models.ActivityEntry{
		ID:               "journal_" + event.EntryID,
		Type:             models.ActivityJournal,
		Timestamp:        e.now(),
		ExperienceGained: total,
		Description:      fmt.Sprintf("Wrote journal entry (%d words)", event.WordCount),
		Metadata:         map[string]any{"word_count": event.WordCount, "breakthrough": event.Breakthrough},
	})

	return total
}

func (e *Engine) scoreEducationModule(event models.GamificationEvent) int {
	scoreBonus := int(math.Round(float64(event.Score) / 100 * 20))
	speedBonus := 0
	if event.TimeSpent < 15 {
		speedBonus = 10
	}
	multiplier := StreakMultiplier(e.stats.Streaks[models.StreakEducation].Current)
	total := ApplyStreakMultiplier(EducationXP+scoreBonus+speedBonus, multiplier)

	e.recordActivity(models.ActivityEntry{
		ID:               "education_" + event.ModuleID,
		Type:             models.ActivityEducation,
		Timestamp:        e.now(),
		ExperienceGained: total,
		Description:      fmt.Sprintf("Completed education module (%d%% score)", event.Score),
		Metadata:         map[string]any{"module_id": event.ModuleID, "score": event.Score, "time_spent": event.TimeSpent},
	})

	return total
}

func (e *Engine) scorePainTracking(event models.GamificationEvent) int {
	improvementBonus := 0
	suffix := ""
	if event.Improvement {
		improvementBonus = 10
		suffix = " (improvement noted)"
	}
	multiplier := StreakMultiplier(e.stats.Streaks[models.StreakPainTracking].Current)
	total := ApplyStreakMultiplier(PainTrackingXP+improvementBonus, multiplier)

	e.recordActivity(models.ActivityEntry{
		ID:               fmt.Sprintf("pain_%d", e.now().UnixMilli()),
		Type:             models.ActivityPainTracker,
		Timestamp:        e.now(),
		ExperienceGained: total,
		Description:      fmt.Sprintf("Logged pain level: %d/10%s", event.PainLevel, suffix),
		Metadata:         map[string]any{"level": event.PainLevel, "improvement": event.Improvement},
	})

	return total
}

func (e *Engine) scoreStreakMilestone(event models.GamificationEvent) int {
	// Bonus grows for every full week of streak.
	return StreakBonusXP * (event.StreakCount/7 + 1)
}

func (e *Engine) scoreWeeklyGoal(event models.GamificationEvent) int {
	for i := range e.stats.WeeklyGoals {
		goal := &e.stats.WeeklyGoals[i]
		if goal.ID != event.WeekID || goal.IsCompleted {
			continue
		}
		goal.IsCompleted = true
		completedAt := e.now()
		goal.CompletedAt = &completedAt
		if goal.Reward.Experience > 0 {
			return goal.Reward.Experience
		}
		return 50
	}
	return 0
}

func (e *Engine) scoreAssessment(event models.GamificationEvent) int {
	scoreBonus := int(math.Round(float64(event.Score) / 100 * 20))
	total := AssessmentBaseXP + scoreBonus

	e.recordActivity(models.ActivityEntry{
		ID:               fmt.Sprintf("assessment_%d", e.now().UnixMilli()),
		Type:             models.ActivityAssessment,
		Timestamp:        e.now(),
		ExperienceGained: total,
		Description:      fmt.Sprintf("Completed %s assessment (%d%% score)", event.AssessmentType, event.Score),
		Metadata:         map[string]any{"assessment_type": event.AssessmentType, "score": event.Score},
	})

	return total
}

func (e *Engine) scoreMilestone(event models.GamificationEvent) int {
	for i := range e.stats.Milestones {
		m := &e.stats.Milestones[i]
		if m.ID != event.MilestoneID || m.IsAchieved {
			continue
		}
		m.IsAchieved = true
		achievedAt := e.now()
		m.AchievedAt = &achievedAt
		return m.Reward.Experience
	}
	return MilestoneBonusXP
}

func (e *Engine) recordActivity(entry models.ActivityEntry) {
	e.stats.ActivityHistory = append(e.stats.ActivityHistory, entry)
}

func (e *Engine) unlockNewBadges() []models.Badge {
	unlocked := []models.Badge{}
	owned := map[string]bool{}
	for _, b := range e.stats.Badges {
		owned[b.ID] = true
	}

	for _, badge := range Badges {
		if owned[badge.ID] {
			continue
		}
		check, ok := badgeUnlocks[badge.ID]
		if !ok || !check(e.stats) {
			continue
		}
		badge.UnlockedAt = timePtr(e.now())
		e.stats.Badges = append(e.stats.Badges, badge)
		unlocked = append(unlocked, badge)
	}

	return unlocked
}

func (e *Engine) unlockNewAchievements() []models.Achievement {
	unlocked := []models.Achievement{}
	owned := map[string]bool{}
	for _, a := range e.stats.Achievements {
		owned[a.ID] = true
	}

	for _, achievement := range Achievements {
		if owned[achievement.ID] || !e.meetsCriteria(achievement.Criteria) {
			continue
		}
		achievement.UnlockedAt = timePtr(e.now())

		// Badge rewards are granted alongside the achievement.
		if achievement.Reward.Type == "badge" {
			if badge, ok := badgeByID(achievement.Reward.Value); ok && !e.hasBadge(badge.ID) {
				badge.UnlockedAt = timePtr(e.now())
				e.stats.Badges = append(e.stats.Badges, badge)
			}
		}

		e.stats.Achievements = append(e.stats.Achievements, achievement)
		unlocked = append(unlocked, achievement)
	}

	return unlocked
}

func (e *Engine) hasBadge(id string) bool {
	for _, b := range e.stats.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (e *Engine) meetsCriteria(c models.AchievementCriteria) bool {
	switch c.Metric {
	case "journal_streak":
		return compare(float64(e.stats.Streaks[models.StreakJournal].Current), c.Operator, float64(c.Value))

	case "education_average_score":
		count := 0
		sum := 0
		for _, a := range e.stats.ActivityHistory {
			if a.Type == models.ActivityEducation {
				count++
				sum += metadataInt(a.Metadata, "score")
			}
		}
		if count == 0 {
			return false
		}
		return compare(float64(sum)/float64(count), c.Operator, float64(c.Value))

	case "pain_reduction_percentage":
		// Needs longitudinal pain analysis; not derivable from stats alone.
		return false

	case "modules_completion_time":
		var recent []models.ActivityEntry
		for _, a := range e.stats.ActivityHistory {
			if a.Type == models.ActivityEducation {
				recent = append(recent, a)
			}
		}
		if len(recent) < 3 {
			return false
		}
		recent = recent[len(recent)-3:]
		total := 0
		for _, a := range recent {
			total += metadataInt(a.Metadata, "time_spent")
		}
		return compare(float64(total), c.Operator, float64(c.Value))
	}
	return false
}

func compare(value float64, operator string, target float64) bool {
	switch operator {
	case "equals":
		return value == target
	case "greater_than":
		return value > target
	case "less_than":
		return value < target
	case "greater_equal":
		return value >= target
	case "less_equal":
		return value <= target
	}
	return false
}

func (e *Engine) updateStreaks(event models.GamificationEvent) {
	today := e.now().Format("2006-01-02")

	switch event.Type {
	case models.EventJournalEntryCreated:
		e.updateStreak(models.StreakJournal, today)
	case models.EventEducationModuleDone:
		e.updateStreak(models.StreakEducation, today)
	case models.EventPainLevelLogged:
		e.updateStreak(models.StreakPainTracking, today)
	}

	e.updateStreak(models.StreakOverall, today)
}

func (e *Engine) updateStreak(streakType, today string) {
	streak, ok := e.stats.Streaks[streakType]
	if !ok {
		return
	}

	var lastDay string
	if streak.LastActivity != nil {
		lastDay = streak.LastActivity.Format("2006-01-02")
	}

	if lastDay == today {
		// Already counted today.
		return
	}

	yesterday := e.now().AddDate(0, 0, -1).Format("2006-01-02")
	if lastDay == yesterday {
		streak.Current++
		if streak.Current > streak.Longest {
			streak.Longest = streak.Current
		}
	} else {
		// Start new streak or reset. Longest is left alone here, matching
		// the continuation-only update above.
		streak.Current = 1
	}

	streak.LastActivity = timePtr(e.now())
}

// CreateWeeklyGoal opens this week's goal set with fixed targets. Calling
// it twice in one ISO week returns the existing goal.
func (e *Engine) CreateWeeklyGoal() models.WeeklyGoal {
	year, week := e.now().ISOWeek()
	weekID := fmt.Sprintf("%d-W%02d", year, week)

	for _, g := range e.stats.WeeklyGoals {
		if g.ID == weekID {
			return g
		}
	}

	goal := models.WeeklyGoal{
		ID:                weekID,
		Week:              weekID,
		JournalEntries:    models.GoalCounter{Target: 5},
		EducationModules:  models.GoalCounter{Target: 2},
		PainTracking:      models.GoalCounter{Target: 7},
		OverallEngagement: models.GoalCounter{Target: 10},
		Reward:            models.WeeklyGoalReward{Experience: 100, Badge: "week_warrior"},
	}

	e.stats.WeeklyGoals = append(e.stats.WeeklyGoals, goal)
	return goal
}

// ProgressToNextLevel reports position within the current level band. At
// the top level the ladder is complete: required is 0 and percentage 100.
func (e *Engine) ProgressToNextLevel() models.LevelProgress {
	currentThreshold := LevelInfo(e.stats.CurrentLevel).ExperienceRequired
	current := e.stats.TotalExperience - currentThreshold

	if e.stats.CurrentLevel >= UserLevels[len(UserLevels)-1].Level {
		return models.LevelProgress{Current: current, Required: 0, Percentage: 100}
	}

	nextThreshold := LevelInfo(e.stats.CurrentLevel + 1).ExperienceRequired
	required := nextThreshold - currentThreshold

	return models.LevelProgress{
		Current:    current,
		Required:   required,
		Percentage: int(math.Round(float64(current) / float64(required) * 100)),
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
