package models

import "time"

// Lifestyle levels for PersonalInfo.
const (
	LifestyleSedentary  = "sedentary"
	LifestyleActive     = "active"
	LifestyleVeryActive = "very active"
)

// Pain frequency patterns.
const (
	FrequencyConstant     = "constant"
	FrequencyIntermittent = "intermittent"
	FrequencyEpisodic     = "episodic"
)

// UserProfile is the complete intake record for one user. It is created at
// assessment start, filled in through the assessment steps, and scored once
// complete. The Assessment field is only meaningful after scoring.
type UserProfile struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	LastActive     time.Time            `json:"last_active"`
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Psychological  PsychologicalProfile `json:"psychological_profile"`
	PainHistory    PainHistory          `json:"pain_history"`
	MedicalHistory MedicalHistory       `json:"medical_history"`
	Assessment     *TMSAssessmentResult `json:"tms_assessment,omitempty"`
}

type PersonalInfo struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Occupation string `json:"occupation"`
	Lifestyle  string `json:"lifestyle"`
}

type PsychologicalProfile struct {
	PersonalityTypes     []string `json:"personality_types"`
	StressFactors        []string `json:"stress_factors"`
	CopingMechanisms     []string `json:"coping_mechanisms"`
	TraumaHistory        bool     `json:"trauma_history"`
	CurrentLifeStressors []string `json:"current_life_stressors"`
	DepressionScore      int      `json:"depression_score,omitempty"`
	AnxietyScore         int      `json:"anxiety_score,omitempty"`
	SevereMentalIllness  bool     `json:"severe_mental_illness,omitempty"`
	ActiveSubstanceAbuse bool     `json:"active_substance_abuse,omitempty"`
}

type PainHistory struct {
	PrimarySymptoms    []string  `json:"primary_symptoms"`
	PainLocations      []string  `json:"pain_locations"`
	PainIntensity      int       `json:"pain_intensity"` // 1-10
	PainFrequency      string    `json:"pain_frequency"`
	OnsetDate          time.Time `json:"onset_date"`
	Triggers           []string  `json:"triggers"`
	PreviousDiagnoses  []string  `json:"previous_diagnoses"`
	PreviousTreatments []string  `json:"previous_treatments"`
	MedicalHistory     []string  `json:"medical_history"`
}

// MedicalHistory carries the boolean screening fields the eligibility check
// reads. Kept separate from PainHistory's free-text history list.
type MedicalHistory struct {
	RecentTrauma            bool `json:"recent_trauma"`
	StructuralAbnormalities bool `json:"structural_abnormalities"`
	ActiveInfection         bool `json:"active_infection"`
	CancerHistory           bool `json:"cancer_history"`
	PreviousSpinalSurgery   bool `json:"previous_spinal_surgery"`
}

type TMSAssessmentResult struct {
	TMSLikelihood      int       `json:"tms_likelihood"`      // 0-100
	SarnoCompatibility int       `json:"sarno_compatibility"` // 0-100
	RedFlags           []string  `json:"red_flags"`
	AssessmentDate     time.Time `json:"assessment_date"`
}

// TreatmentSession is one pain-tracker log entry.
type TreatmentSession struct {
	Date           time.Time `json:"date"`
	PainLevel      int       `json:"pain_level"` // 1-10
	EmotionalState string    `json:"emotional_state"`
	Insights       string    `json:"insights,omitempty"`
	Activities     []string  `json:"activities,omitempty"`
	Breakthroughs  string    `json:"breakthroughs,omitempty"`
}

type ProgressMilestone struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
}

type JournalEntry struct {
	Date          time.Time `json:"date"`
	Prompt        string    `json:"prompt,omitempty"`
	Response      string    `json:"response"`
	EmotionalTags []string  `json:"emotional_tags,omitempty"`
}

type ReadingProgress struct {
	CompletedModules    []string       `json:"completed_modules"`
	CurrentModule       string         `json:"current_module,omitempty"`
	ComprehensionScores map[string]int `json:"comprehension_scores,omitempty"`
}

// TreatmentProgress holds everything a user has logged since starting the
// program. Sessions, milestones and journal entries are append-only; reading
// progress is merge-updated.
type TreatmentProgress struct {
	UserID          string              `json:"user_id"`
	StartDate       time.Time           `json:"start_date"`
	Sessions        []TreatmentSession  `json:"sessions"`
	Milestones      []ProgressMilestone `json:"milestones"`
	JournalEntries  []JournalEntry      `json:"journal_entries"`
	ReadingProgress ReadingProgress     `json:"reading_progress"`
}

// ── Request / Response Types ──────────────────────────────

type CreateProfileRequest struct {
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Psychological  PsychologicalProfile `json:"psychological_profile"`
	PainHistory    PainHistory          `json:"pain_history"`
	MedicalHistory MedicalHistory       `json:"medical_history"`
}

type JournalEntryRequest struct {
	Prompt        string   `json:"prompt,omitempty"`
	Response      string   `json:"response"`
	EmotionalTags []string `json:"emotional_tags,omitempty"`
	Breakthrough  bool     `json:"breakthrough,omitempty"`
}

type PainLogRequest struct {
	PainLevel      int      `json:"pain_level"`
	EmotionalState string   `json:"emotional_state,omitempty"`
	Insights       string   `json:"insights,omitempty"`
	Activities     []string `json:"activities,omitempty"`
	SymptomChanges []string `json:"symptom_changes,omitempty"`
}

type ExportedData struct {
	UserProfile       *UserProfile       `json:"user_profile"`
	TreatmentProgress *TreatmentProgress `json:"treatment_progress"`
	ExportDate        time.Time          `json:"export_date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
