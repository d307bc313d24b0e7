package gamification

import "github.com/tms-recovery/backend/internal/models"

// Badges is the full badge catalog. Unlock conditions live in badgeUnlocks.
var Badges = []models.Badge{
	// Learning
	{ID: "first_module", Name: "Knowledge Seeker", Description: "Complete your first educational module", Icon: "📚", Category: "learning", Rarity: models.RarityCommon},
	{ID: "education_complete", Name: "TMS Scholar", Description: "Complete all educational modules", Icon: "🎓", Category: "learning", Rarity: models.RarityEpic},
	{ID: "perfect_quiz", Name: "Quiz Master", Description: "Score 100% on any educational quiz", Icon: "🏆", Category: "learning", Rarity: models.RarityUncommon},
	{ID: "speed_learner", Name: "Speed Learner", Description: "Complete 3 modules in one day", Icon: "⚡", Category: "learning", Rarity: models.RarityRare},

	// Consistency
	{ID: "first_journal", Name: "Journal Starter", Description: "Write your first journal entry", Icon: "✍️", Category: "consistency", Rarity: models.RarityCommon},
	{ID: "week_streak", Name: "Week Warrior", Description: "Maintain a 7-day activity streak", Icon: "🔥", Category: "consistency", Rarity: models.RarityUncommon},
	{ID: "month_streak", Name: "Consistency Champion", Description: "Maintain a 30-day activity streak", Icon: "💪", Category: "consistency", Rarity: models.RarityRare},
	{ID: "hundred_days", Name: "Centurion", Description: "Maintain a 100-day activity streak", Icon: "👑", Category: "consistency", Rarity: models.RarityLegendary},

	// Progress
	{ID: "pain_tracker", Name: "Pain Tracker", Description: "Log your pain levels for 7 consecutive days", Icon: "📊", Category: "progress", Rarity: models.RarityCommon},
	{ID: "improvement_noted", Name: "Progress Pioneer", Description: "Record your first pain level improvement", Icon: "📈", Category: "progress", Rarity: models.RarityUncommon},
	{ID: "significant_improvement", Name: "Healing Hero", Description: "Achieve a 50% reduction in average pain levels", Icon: "🌟", Category: "progress", Rarity: models.RarityEpic},

	// Milestone
	{ID: "assessment_complete", Name: "Self-Aware", Description: "Complete the initial TMS assessment", Icon: "🧠", Category: "milestone", Rarity: models.RarityCommon},
	{ID: "month_journey", Name: "Monthly Milestone", Description: "Complete one month of TMS recovery work", Icon: "📅", Category: "milestone", Rarity: models.RarityUncommon},
	{ID: "recovery_graduate", Name: "Recovery Graduate", Description: "Complete the full TMS recovery program", Icon: "🎖️", Category: "milestone", Rarity: models.RarityLegendary},

	// Special
	{ID: "early_adopter", Name: "Early Adopter", Description: "Join the Virtual Sarno community", Icon: "🚀", Category: "special", Rarity: models.RarityRare},
	{ID: "breakthrough", Name: "Breakthrough Moment", Description: "Record a significant emotional breakthrough", Icon: "💡", Category: "special", Rarity: models.RarityEpic},
	{ID: "helper", Name: "Community Helper", Description: "Help another user in their recovery journey", Icon: "🤝", Category: "special", Rarity: models.RarityRare},
}

// totalEducationModules is the size of the curriculum; completing this many
// distinct education activities earns education_complete.
const totalEducationModules = 5

// badgeUnlocks maps badge IDs to their unlock predicates. Badges with no
// entry here (helper, recovery_graduate, ...) are granted through other
// paths or not yet automatable.
var badgeUnlocks = map[string]func(*models.UserStats) bool{
	"first_module": func(s *models.UserStats) bool {
		return countActivities(s, models.ActivityEducation) > 0
	},
	"education_complete": func(s *models.UserStats) bool {
		return countActivities(s, models.ActivityEducation) >= totalEducationModules
	},
	"perfect_quiz": func(s *models.UserStats) bool {
		for _, a := range s.ActivityHistory {
			if a.Type == models.ActivityEducation && metadataInt(a.Metadata, "score") == 100 {
				return true
			}
		}
		return false
	},
	"week_streak":  anyStreakAtLeast(7),
	"month_streak": anyStreakAtLeast(30),
	"hundred_days": anyStreakAtLeast(100),
	"pain_tracker": func(s *models.UserStats) bool {
		return countActivities(s, models.ActivityPainTracker) >= 7
	},
	"improvement_noted": func(s *models.UserStats) bool {
		for _, m := range s.Milestones {
			if m.Category == "recovery" && m.IsAchieved {
				return true
			}
		}
		return false
	},
	"assessment_complete": func(s *models.UserStats) bool {
		return countActivities(s, models.ActivityAssessment) > 0
	},
	"first_journal": func(s *models.UserStats) bool {
		return countActivities(s, models.ActivityJournal) > 0
	},
	"early_adopter": func(s *models.UserStats) bool {
		return true
	},
	"breakthrough": func(s *models.UserStats) bool {
		for _, a := range s.ActivityHistory {
			if a.Type == models.ActivityJournal && metadataBool(a.Metadata, "breakthrough") {
				return true
			}
		}
		return false
	},
}

// Achievements are the compound goals checked after every event. Their
// rewards grant badges as a side effect.
var Achievements = []models.Achievement{
	{
		ID:          "journal_streak_7",
		Name:        "Weekly Journalist",
		Description: "Write journal entries for 7 consecutive days",
		Type:        "streak",
		Criteria:    models.AchievementCriteria{Metric: "journal_streak", Operator: "greater_equal", Value: 7},
		Reward:      models.AchievementReward{Type: "badge", Value: "week_streak"},
	},
	{
		ID:          "education_master",
		Name:        "Education Master",
		Description: "Complete all educational modules with 90%+ average score",
		Type:        "completion",
		Criteria:    models.AchievementCriteria{Metric: "education_average_score", Operator: "greater_equal", Value: 90},
		Reward:      models.AchievementReward{Type: "badge", Value: "education_complete"},
	},
	{
		ID:          "pain_improvement",
		Name:        "Pain Reducer",
		Description: "Achieve 25% reduction in average pain levels over 2 weeks",
		Type:        "score",
		Criteria:    models.AchievementCriteria{Metric: "pain_reduction_percentage", Operator: "greater_equal", Value: 25},
		Reward:      models.AchievementReward{Type: "badge", Value: "improvement_noted"},
	},
	{
		ID:          "speed_completion",
		Name:        "Quick Learner",
		Description: "Complete 3 educational modules in under 2 hours total",
		Type:        "time",
		Criteria:    models.AchievementCriteria{Metric: "modules_completion_time", Operator: "less_than", Value: 120},
		Reward:      models.AchievementReward{Type: "badge", Value: "speed_learner"},
	},
}

func countActivities(s *models.UserStats, activityType string) int {
	count := 0
	for _, a := range s.ActivityHistory {
		if a.Type == activityType {
			count++
		}
	}
	return count
}

func anyStreakAtLeast(n int) func(*models.UserStats) bool {
	return func(s *models.UserStats) bool {
		for _, streak := range s.Streaks {
			if streak.Current >= n {
				return true
			}
		}
		return false
	}
}

// metadataInt reads a numeric metadata value; JSON round-trips store numbers
// as float64.
func metadataInt(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func metadataBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	v, _ := m[key].(bool)
	return v
}

func badgeByID(id string) (models.Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return models.Badge{}, false
}
