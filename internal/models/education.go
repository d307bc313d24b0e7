package models

// Content section types.
const (
	SectionText    = "text"
	SectionQuote   = "quote"
	SectionExample = "example"
	SectionWarning = "warning"
	SectionTip     = "tip"
)

type ContentSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

type PracticalExercise struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`           // reflection, journaling, physical
	EstimatedTime int      `json:"estimated_time"` // minutes
	Instructions  []string `json:"instructions"`
}

type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Type          string   `json:"type"` // multiple_choice, true_false
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"` // option index or "true"/"false"
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
}

type ModuleQuiz struct {
	ID           string         `json:"id"`
	Questions    []QuizQuestion `json:"questions"`
	PassingScore int            `json:"passing_score"` // percentage
}

// EducationalModule is one unit of the static curriculum. Completion state
// lives in TreatmentProgress.ReadingProgress, not on the module.
type EducationalModule struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Category            string              `json:"category"` // fundamentals, personality, emotional, recovery
	Description         string              `json:"description"`
	EstimatedReadTime   int                 `json:"estimated_read_time"` // minutes
	Difficulty          string              `json:"difficulty"`          // beginner, intermediate, advanced
	PrerequisiteModules []string            `json:"prerequisite_modules,omitempty"`
	Sections            []ContentSection    `json:"sections"`
	KeyTakeaways        []string            `json:"key_takeaways"`
	PracticalExercises  []PracticalExercise `json:"practical_exercises,omitempty"`
	ReflectionQuestions []string            `json:"reflection_questions,omitempty"`
	Quiz                *ModuleQuiz         `json:"quiz,omitempty"`
}

// ── Request / Response Types ──────────────────────────────

type QuizSubmission struct {
	Answers   map[string]string `json:"answers"`    // question id -> chosen answer
	TimeSpent int               `json:"time_spent"` // minutes
}

type QuizResult struct {
	ModuleID     string      `json:"module_id"`
	Score        int         `json:"score"` // percentage of available points
	Passed       bool        `json:"passed"`
	PointsEarned int         `json:"points_earned"`
	PointsTotal  int         `json:"points_total"`
	Event        EventResult `json:"gamification,omitempty"`
}

type ModuleSummary struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	EstimatedReadTime   int      `json:"estimated_read_time"`
	Difficulty          string   `json:"difficulty"`
	PrerequisiteModules []string `json:"prerequisite_modules,omitempty"`
	Completed           bool     `json:"completed"`
	Unlocked            bool     `json:"unlocked"`
}
