package models

import "time"

// Red flag categories.
const (
	FlagCategoryMedical       = "medical"
	FlagCategoryPsychological = "psychological"
	FlagCategorySymptom       = "symptom"
	FlagCategoryDuration      = "duration"
)

// Red flag severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Safety check outcomes.
const (
	OutcomeSafe            = "safe"
	OutcomeCaution         = "caution"
	OutcomeMedicalRequired = "medical_required"
	OutcomeEmergency       = "emergency"
)

// RedFlag is one entry of the static red-flag catalog. Never mutated at
// runtime.
type RedFlag struct {
	ID                          string   `json:"id"`
	Category                    string   `json:"category"`
	Severity                    string   `json:"severity"`
	Title                       string   `json:"title"`
	Description                 string   `json:"description"`
	Recommendation              string   `json:"recommendation"`
	RequiresImmediateAttention  bool     `json:"requires_immediate_attention"`
	MedicalConsultationRequired bool     `json:"medical_consultation_required"`
	Contraindications           []string `json:"contraindications,omitempty"`
}

// RedFlagTrigger maps a question answer to a catalog flag.
type RedFlagTrigger struct {
	Condition string `json:"condition"`
	FlagID    string `json:"flag_id"`
}

type SafetyQuestion struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Type     string           `json:"type"` // yes_no, multiple_choice, scale, text
	Options  []string         `json:"options,omitempty"`
	Required bool             `json:"required"`
	Triggers []RedFlagTrigger `json:"red_flag_triggers,omitempty"`
}

type SafetyAction struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	Message        string `json:"message"`
	ActionRequired bool   `json:"action_required"`
}

type SafetyCheck struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Triggers  []string         `json:"triggers"`
	Questions []SafetyQuestion `json:"questions"`
	Actions   []SafetyAction   `json:"actions"`
}

type Disclaimer struct {
	ID                     string    `json:"id"`
	Type                   string    `json:"type"`
	Title                  string    `json:"title"`
	Content                string    `json:"content"`
	RequiresAcknowledgment bool      `json:"requires_acknowledgment"`
	Version                string    `json:"version"`
	LastUpdated            time.Time `json:"last_updated"`
	ApplicablePages        []string  `json:"applicable_pages,omitempty"`
}

type TriggeredRedFlag struct {
	FlagID       string    `json:"flag_id"`
	TriggeredAt  time.Time `json:"triggered_at"`
	Acknowledged bool      `json:"acknowledged"`
}

type CompletedSafetyCheck struct {
	CheckID     string         `json:"check_id"`
	CompletedAt time.Time      `json:"completed_at"`
	Responses   map[string]any `json:"responses"`
	Outcome     string         `json:"outcome"`
}

type MedicalClearance struct {
	ProvidedBy string     `json:"provided_by"`
	Date       time.Time  `json:"date"`
	Notes      string     `json:"notes,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// UserSafetyProfile is the per-user safety log. The triggered-flag and
// completed-check lists grow monotonically across the user's session.
type UserSafetyProfile struct {
	UserID                  string                 `json:"user_id"`
	AcknowledgedDisclaimers []string               `json:"acknowledged_disclaimers"`
	RedFlagsTriggered       []TriggeredRedFlag     `json:"red_flags_triggered"`
	SafetyChecksCompleted   []CompletedSafetyCheck `json:"safety_checks_completed"`
	MedicalClearance        *MedicalClearance      `json:"medical_clearance,omitempty"`
}

type SafetyAlertAction struct {
	Label     string `json:"label"`
	Action    string `json:"action"` // acknowledge, contact_doctor, call_emergency, dismiss
	IsPrimary bool   `json:"is_primary"`
}

type SafetyAlert struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"` // warning, caution, info, emergency
	Title      string              `json:"title"`
	Message    string              `json:"message"`
	Actions    []SafetyAlertAction `json:"actions"`
	Persistent bool                `json:"persistent"`
	ExpiresAt  *time.Time          `json:"expires_at,omitempty"`
}

type ClinicalGuidelines struct {
	EligibilityIncluded          []string `json:"eligibility_included"`
	EligibilityExcluded          []string `json:"eligibility_excluded"`
	RequiresMedicalClearance     []string `json:"requires_medical_clearance"`
	RedFlagSymptoms              []string `json:"red_flag_symptoms"`
	ProgressionConcerns          []string `json:"progression_concerns"`
	EmergencySymptoms            []string `json:"emergency_symptoms"`
	MaxTreatmentWeeks            int      `json:"max_treatment_weeks"`
	RequiredBreaks               []string `json:"required_breaks"`
	ContraindicatedConditions    []string `json:"contraindicated_conditions"`
	ProfessionalReferralCriteria []string `json:"professional_referral_criteria"`
}

// ── Request / Response Types ──────────────────────────────

type ScreeningRequest struct {
	Responses map[string]any `json:"responses"`
}

type ScreeningResponse struct {
	TriggeredFlags      []RedFlag `json:"triggered_flags"`
	Outcome             string    `json:"outcome"`
	RequiresMedicalCare bool      `json:"requires_medical_care"`
}

type MonitorRequest struct {
	PainLevels     []int    `json:"pain_levels,omitempty"`
	SymptomChanges []string `json:"symptom_changes,omitempty"`
}

type EmergencyRequest struct {
	Symptoms  []string       `json:"symptoms"`
	Responses map[string]any `json:"responses,omitempty"`
}

type EmergencyEvaluation struct {
	IsEmergency       bool      `json:"is_emergency"`
	EmergencyType     string    `json:"emergency_type,omitempty"` // medical or psychological
	RecommendedAction string    `json:"recommended_action"`
	RedFlags          []RedFlag `json:"red_flags"`
}

type EligibilityResult struct {
	IsEligible               bool     `json:"is_eligible"`
	Concerns                 []string `json:"concerns"`
	RequiresMedicalClearance bool     `json:"requires_medical_clearance"`
	ExcludedReasons          []string `json:"excluded_reasons"`
}

type AcknowledgeDisclaimerRequest struct {
	DisclaimerID string `json:"disclaimer_id"`
}
