package gamification

import (
	"math"

	"github.com/tms-recovery/backend/internal/models"
)

// Base experience rates per activity.
const (
	JournalEntryXP   = 10
	EducationXP      = 50
	PainTrackingXP   = 5
	StreakBonusXP    = 5
	MilestoneBonusXP = 100
	AssessmentBaseXP = 30
)

// UserLevels is the full level ladder, ordered by experience required.
var UserLevels = []models.UserLevel{
	{
		Level:              1,
		Title:              "TMS Newcomer",
		Description:        "Just beginning your TMS recovery journey",
		ExperienceRequired: 0,
		Benefits:           []string{"Access to basic features", "Initial assessment"},
		Color:              "#94a3b8",
	},
	{
		Level:              2,
		Title:              "Pain Explorer",
		Description:        "Learning about the mind-body connection",
		ExperienceRequired: 100,
		Benefits:           []string{"Pain tracking tools", "Basic educational content"},
		Color:              "#60a5fa",
	},
	{
		Level:              3,
		Title:              "Mindful Student",
		Description:        "Actively engaging with TMS concepts",
		ExperienceRequired: 300,
		Benefits:           []string{"Advanced journaling prompts", "Progress analytics"},
		Color:              "#34d399",
	},
	{
		Level:              4,
		Title:              "Recovery Practitioner",
		Description:        "Consistently applying TMS principles",
		ExperienceRequired: 600,
		Benefits:           []string{"Personalized insights", "Advanced tracking"},
		Color:              "#fbbf24",
	},
	{
		Level:              5,
		Title:              "Healing Advocate",
		Description:        "Experienced in TMS recovery methods",
		ExperienceRequired: 1000,
		Benefits:           []string{"Community features", "Mentor tools"},
		Color:              "#f472b6",
	},
	{
		Level:              6,
		Title:              "TMS Master",
		Description:        "Expert practitioner of Dr. Sarno's methods",
		ExperienceRequired: 1500,
		Benefits:           []string{"All features unlocked", "Master insights"},
		Color:              "#a855f7",
	},
	{
		Level:              7,
		Title:              "Recovery Guru",
		Description:        "Achieved mastery in mind-body healing",
		ExperienceRequired: 2500,
		Benefits:           []string{"Guru status", "Special recognition"},
		Color:              "#ef4444",
	},
}

// streakMultipliers maps streak-length thresholds to XP multipliers. The
// highest threshold at or below the streak length wins.
var streakMultipliers = []struct {
	Threshold  int
	Multiplier float64
}{
	{100, 2.0},
	{60, 1.8},
	{30, 1.6},
	{14, 1.4},
	{7, 1.2},
}

// LevelForExperience returns the level number for a total experience value.
func LevelForExperience(experience int) int {
	for i := len(UserLevels) - 1; i >= 0; i-- {
		if experience >= UserLevels[i].ExperienceRequired {
			return UserLevels[i].Level
		}
	}
	return 1
}

// LevelInfo returns the full level record for a level number, falling back
// to level 1 for out-of-range values.
func LevelInfo(level int) models.UserLevel {
	for _, l := range UserLevels {
		if l.Level == level {
			return l
		}
	}
	return UserLevels[0]
}

// ExperienceForNextLevel returns how much more experience is needed to reach
// the next level, or 0 at the top of the ladder.
func ExperienceForNextLevel(currentExperience int) int {
	currentLevel := LevelForExperience(currentExperience)
	for _, l := range UserLevels {
		if l.Level == currentLevel+1 {
			return l.ExperienceRequired - currentExperience
		}
	}
	return 0
}

// StreakMultiplier returns the XP multiplier earned by a streak.
func StreakMultiplier(streakLength int) float64 {
	for _, m := range streakMultipliers {
		if streakLength >= m.Threshold {
			return m.Multiplier
		}
	}
	return 1.0
}

// ApplyStreakMultiplier rounds the multiplied XP to the nearest integer.
func ApplyStreakMultiplier(xp int, multiplier float64) int {
	return int(math.Round(float64(xp) * multiplier))
}
