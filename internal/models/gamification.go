package models

import "time"

// Badge rarities.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Streak categories. Overall is updated on every event regardless of type.
const (
	StreakDailyCheckin = "daily_checkin"
	StreakJournal      = "journal_entry"
	StreakEducation    = "education"
	StreakPainTracking = "pain_tracking"
	StreakOverall      = "overall"
)

// Gamification event types.
const (
	EventJournalEntryCreated = "journal_entry_created"
	EventEducationModuleDone = "education_module_completed"
	EventPainLevelLogged     = "pain_level_logged"
	EventStreakMilestone     = "streak_milestone"
	EventWeeklyGoalCompleted = "weekly_goal_completed"
	EventAssessmentCompleted = "assessment_completed"
	EventMilestoneAchieved   = "milestone_achieved"
)

// Activity entry types recorded in history.
const (
	ActivityJournal     = "journal"
	ActivityEducation   = "education"
	ActivityPainTracker = "pain_tracker"
	ActivityAssessment  = "assessment"
	ActivityMilestone   = "milestone"
)

type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Category    string     `json:"category"` // learning, consistency, progress, milestone, special
	Rarity      string     `json:"rarity"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

type AchievementCriteria struct {
	Metric   string `json:"metric"`
	Operator string `json:"operator"` // equals, greater_than, less_than, greater_equal, less_equal
	Value    int    `json:"value"`
}

type AchievementReward struct {
	Type  string `json:"type"` // badge, points, title
	Value string `json:"value"`
}

type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Type        string              `json:"type"` // streak, completion, score, time
	Criteria    AchievementCriteria `json:"criteria"`
	Reward      AchievementReward   `json:"reward"`
	UnlockedAt  *time.Time          `json:"unlocked_at,omitempty"`
}

type ProgressStreak struct {
	Type         string     `json:"type"`
	Current      int        `json:"current"`
	Longest      int        `json:"longest"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}

type ActivityEntry struct {
	ID               string         `json:"id"`
	Type             string         `json:"type"`
	Timestamp        time.Time      `json:"timestamp"`
	ExperienceGained int            `json:"experience_gained"`
	Description      string         `json:"description"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

type GoalCounter struct {
	Target  int `json:"target"`
	Current int `json:"current"`
}

type WeeklyGoalReward struct {
	Experience int    `json:"experience"`
	Badge      string `json:"badge,omitempty"`
}

type WeeklyGoal struct {
	ID                string           `json:"id"`
	Week              string           `json:"week"` // YYYY-Www
	JournalEntries    GoalCounter      `json:"journal_entries"`
	EducationModules  GoalCounter      `json:"education_modules"`
	PainTracking      GoalCounter      `json:"pain_tracking"`
	OverallEngagement GoalCounter      `json:"overall_engagement"`
	IsCompleted       bool             `json:"is_completed"`
	CompletedAt       *time.Time       `json:"completed_at,omitempty"`
	Reward            WeeklyGoalReward `json:"reward"`
}

type MilestoneReward struct {
	Experience int    `json:"experience"`
	Badge      string `json:"badge,omitempty"`
	Title      string `json:"title,omitempty"`
}

type RecoveryMilestone struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"` // recovery, learning, engagement, time
	IsAchieved  bool            `json:"is_achieved"`
	AchievedAt  *time.Time      `json:"achieved_at,omitempty"`
	Reward      MilestoneReward `json:"reward"`
}

// UserStats is the gamification aggregate for one user. It is mutated only
// by the gamification engine: total experience and each streak's longest
// value never decrease, and unlocked badges/achievements are never removed.
type UserStats struct {
	UserID          string                     `json:"user_id"`
	TotalExperience int                        `json:"total_experience"`
	CurrentLevel    int                        `json:"current_level"`
	Badges          []Badge                    `json:"badges"`
	Achievements    []Achievement              `json:"achievements"`
	Streaks         map[string]*ProgressStreak `json:"streaks"`
	ActivityHistory []ActivityEntry            `json:"activity_history"`
	WeeklyGoals     []WeeklyGoal               `json:"weekly_goals"`
	Milestones      []RecoveryMilestone        `json:"milestones"`
}

type UserLevel struct {
	Level              int      `json:"level"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	ExperienceRequired int      `json:"experience_required"`
	Benefits           []string `json:"benefits"`
	Color              string   `json:"color"`
}

// GamificationEvent is a tagged union over the per-type payload fields; only
// the fields relevant to Type are read.
type GamificationEvent struct {
	Type string `json:"type"`

	// journal_entry_created
	EntryID      string `json:"entry_id,omitempty"`
	WordCount    int    `json:"word_count,omitempty"`
	Breakthrough bool   `json:"breakthrough,omitempty"`

	// education_module_completed
	ModuleID  string `json:"module_id,omitempty"`
	Score     int    `json:"score,omitempty"`
	TimeSpent int    `json:"time_spent,omitempty"` // minutes

	// pain_level_logged
	PainLevel   int  `json:"pain_level,omitempty"`
	Improvement bool `json:"improvement,omitempty"`

	// streak_milestone
	StreakType  string `json:"streak_type,omitempty"`
	StreakCount int    `json:"streak_count,omitempty"`

	// weekly_goal_completed / milestone_achieved
	WeekID      string `json:"week_id,omitempty"`
	MilestoneID string `json:"milestone_id,omitempty"`
	Category    string `json:"category,omitempty"`

	// assessment_completed
	AssessmentType string `json:"assessment_type,omitempty"`
}

type EventResult struct {
	ExperienceGained int           `json:"experience_gained"`
	NewBadges        []Badge       `json:"new_badges"`
	NewAchievements  []Achievement `json:"new_achievements"`
	LevelUp          bool          `json:"level_up"`
	NewLevel         int           `json:"new_level,omitempty"`
}

type LevelProgress struct {
	Current    int `json:"current"`
	Required   int `json:"required"`
	Percentage int `json:"percentage"`
}

type StatsResponse struct {
	Stats         UserStats     `json:"stats"`
	Level         UserLevel     `json:"level"`
	LevelProgress LevelProgress `json:"level_progress"`
}
