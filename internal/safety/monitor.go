package safety

import (
	"fmt"
	"strings"
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

// Monitor evaluates screening responses, symptom trends, and emergency
// criteria against the static catalog. It holds no per-user state.
type Monitor struct {
	flags      []models.RedFlag
	checks     []models.SafetyCheck
	guidelines models.ClinicalGuidelines
	now        func() time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{
		flags:      RedFlags,
		checks:     SafetyChecks,
		guidelines: Guidelines,
		now:        time.Now,
	}
}

// CheckAssessmentRedFlags evaluates questionnaire responses against the
// pre-assessment screening triggers plus the medical-history, symptom, and
// psychological response checks. A flag reachable through both paths
// appears twice in the returned list; deduplication happens when the
// triggered flags are persisted.
func (m *Monitor) CheckAssessmentRedFlags(responses map[string]any) []models.RedFlag {
	triggered := []models.RedFlag{}

	if check, ok := m.checkByID("pre_assessment_screening"); ok {
		for _, question := range check.Questions {
			response, present := responses[question.ID]
			if !present {
				continue
			}
			for _, trigger := range question.Triggers {
				if !matchesCondition(response, trigger.Condition) {
					continue
				}
				if flag, ok := m.flagByID(trigger.FlagID); ok {
					triggered = append(triggered, flag)
				}
			}
		}
	}

	triggered = m.appendMedicalHistoryFlags(responses, triggered)
	triggered = m.appendSymptomFlags(responses, triggered)
	triggered = m.appendPsychologicalFlags(responses, triggered)

	return triggered
}

func (m *Monitor) appendMedicalHistoryFlags(responses map[string]any, flags []models.RedFlag) []models.RedFlag {
	if isYes(responses["cancer_history"]) {
		flags = m.appendFlag(flags, "cancer_history")
	}
	if isYes(responses["recent_trauma"]) {
		flags = m.appendFlag(flags, "trauma_history")
	}
	return flags
}

func (m *Monitor) appendSymptomFlags(responses map[string]any, flags []models.RedFlag) []models.RedFlag {
	if isYes(responses["neurological_symptoms"]) {
		flags = m.appendFlag(flags, "progressive_neurological")
	}
	if isYes(responses["bowel_bladder"]) {
		flags = m.appendFlag(flags, "bowel_bladder_dysfunction")
	}
	if isYes(responses["fever_symptoms"]) {
		flags = m.appendFlag(flags, "fever_with_pain")
	}
	return flags
}

func (m *Monitor) appendPsychologicalFlags(responses map[string]any, flags []models.RedFlag) []models.RedFlag {
	if isYes(responses["mental_health_screening"]) || isTrue(responses["suicidal_thoughts"]) {
		flags = m.appendFlag(flags, "suicidal_ideation")
	}
	if isYes(responses["severe_depression"]) {
		flags = m.appendFlag(flags, "severe_depression")
	}
	return flags
}

func (m *Monitor) appendFlag(flags []models.RedFlag, id string) []models.RedFlag {
	if flag, ok := m.flagByID(id); ok {
		flags = append(flags, flag)
	}
	return flags
}

// ClassifyOutcome maps a triggered-flag set to a screening outcome.
func (m *Monitor) ClassifyOutcome(flags []models.RedFlag) string {
	if len(flags) == 0 {
		return models.OutcomeSafe
	}
	outcome := models.OutcomeCaution
	for _, f := range flags {
		if f.Severity == models.SeverityCritical && f.RequiresImmediateAttention {
			return models.OutcomeEmergency
		}
		if f.MedicalConsultationRequired {
			outcome = models.OutcomeMedicalRequired
		}
	}
	return outcome
}

// MonitorOngoingSymptoms runs the four trend detectors over recent pain
// levels, reported symptom changes, and the treatment timeline.
func (m *Monitor) MonitorOngoingSymptoms(painLevels []int, symptomChanges []string, progress *models.TreatmentProgress) []models.SafetyAlert {
	alerts := []models.SafetyAlert{}

	if m.isSymptomWorsening(painLevels) {
		alerts = append(alerts, m.worseningSymptomAlert())
	}

	if concerning := m.identifyConcerningSymptoms(symptomChanges); len(concerning) > 0 {
		alerts = append(alerts, m.newSymptomAlert(concerning))
	}

	if progress != nil {
		if m.exceedsTreatmentLimits(progress) {
			alerts = append(alerts, m.treatmentLimitAlert())
		}
		if m.lacksProgress(progress) {
			alerts = append(alerts, m.noProgressAlert())
		}
	}

	return alerts
}

// isSymptomWorsening compares the last week of pain levels to the week
// before; a rise of more than one full point is significant.
func (m *Monitor) isSymptomWorsening(painLevels []int) bool {
	if len(painLevels) < 7 {
		return false
	}

	recent := painLevels[len(painLevels)-7:]
	var previous []int
	if len(painLevels) >= 14 {
		previous = painLevels[len(painLevels)-14 : len(painLevels)-7]
	} else {
		previous = painLevels[:len(painLevels)-7]
	}
	if len(previous) == 0 {
		return false
	}

	return average(recent) > average(previous)+1
}

func (m *Monitor) identifyConcerningSymptoms(symptoms []string) []string {
	var concerning []string
	for _, symptom := range symptoms {
		lower := strings.ToLower(symptom)
		for _, redFlag := range m.guidelines.RedFlagSymptoms {
			if strings.Contains(lower, strings.ToLower(redFlag)) {
				concerning = append(concerning, symptom)
				break
			}
		}
	}
	return concerning
}

func (m *Monitor) exceedsTreatmentLimits(progress *models.TreatmentProgress) bool {
	weeks := int(m.now().Sub(progress.StartDate).Hours() / (24 * 7))
	return weeks > m.guidelines.MaxTreatmentWeeks
}

// lacksProgress fires once four weeks and fourteen logged sessions have
// accumulated without the recent week improving on the first.
func (m *Monitor) lacksProgress(progress *models.TreatmentProgress) bool {
	weeks := int(m.now().Sub(progress.StartDate).Hours() / (24 * 7))
	if weeks < 4 {
		return false
	}

	sessions := progress.Sessions
	if len(sessions) < 14 {
		return false
	}

	recent := sessions[len(sessions)-7:]
	initial := sessions[:7]

	var recentSum, initialSum int
	for _, s := range recent {
		recentSum += s.PainLevel
	}
	for _, s := range initial {
		initialSum += s.PainLevel
	}

	return float64(recentSum)/7 >= float64(initialSum)/7
}

// emergencySymptomFlags maps emergency-symptom list entries to the catalog
// flag raised when a reported symptom matches.
var emergencySymptomFlags = map[string]string{
	"Cauda equina syndrome signs": "bowel_bladder_dysfunction",
	"Acute neurological changes":  "progressive_neurological",
	"Signs of spinal infection":   "fever_with_pain",
	"Suicidal ideation":           "suicidal_ideation",
	"Severe psychiatric symptoms": "psychosis_symptoms",
}

// EvaluateEmergencyStatus checks reported symptoms and direct responses
// against emergency criteria.
func (m *Monitor) EvaluateEmergencyStatus(symptoms []string, responses map[string]any) models.EmergencyEvaluation {
	emergencyFlags := []models.RedFlag{}

	for _, symptom := range symptoms {
		lower := strings.ToLower(symptom)

		matched := false
		for entry, flagID := range emergencySymptomFlags {
			if strings.Contains(lower, strings.ToLower(entry)) || strings.Contains(strings.ToLower(entry), lower) {
				emergencyFlags = m.appendFlag(emergencyFlags, flagID)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// A symptom naming a critical catalog flag outright counts too.
		for _, flag := range m.flags {
			if flag.Severity != models.SeverityCritical {
				continue
			}
			if strings.Contains(lower, strings.ToLower(flag.Title)) ||
				strings.Contains(strings.ToLower(flag.Title), lower) {
				emergencyFlags = append(emergencyFlags, flag)
				break
			}
		}
	}

	if responses["suicidal_ideation"] == "yes" || isTrue(responses["suicidal_thoughts"]) {
		emergencyFlags = m.appendFlag(emergencyFlags, "suicidal_ideation")
	}

	hasMedical := false
	hasPsychological := false
	for _, f := range emergencyFlags {
		switch f.Category {
		case models.FlagCategoryMedical:
			hasMedical = true
		case models.FlagCategoryPsychological:
			hasPsychological = true
		}
	}

	emergencyType := ""
	if hasMedical {
		emergencyType = models.FlagCategoryMedical
	} else if hasPsychological {
		emergencyType = models.FlagCategoryPsychological
	}

	return models.EmergencyEvaluation{
		IsEmergency:       len(emergencyFlags) > 0,
		EmergencyType:     emergencyType,
		RecommendedAction: m.emergencyRecommendation(emergencyFlags),
		RedFlags:          emergencyFlags,
	}
}

func (m *Monitor) emergencyRecommendation(flags []models.RedFlag) string {
	hasCritical := false
	hasMedical := false
	hasPsychological := false
	for _, f := range flags {
		if f.Severity == models.SeverityCritical {
			hasCritical = true
		}
		if f.Category == models.FlagCategoryMedical {
			hasMedical = true
		}
		if f.Category == models.FlagCategoryPsychological {
			hasPsychological = true
		}
	}

	if hasCritical && hasMedical {
		return "Call 911 or go to the nearest emergency room immediately"
	}
	if hasCritical && hasPsychological {
		return "Call 988 (Suicide & Crisis Lifeline) or go to the nearest emergency room"
	}
	return "Consult with a healthcare provider as soon as possible"
}

// CheckTMSEligibility applies the exclusion and clearance criteria to a
// profile's medical and psychological history.
func (m *Monitor) CheckTMSEligibility(profile *models.UserProfile) models.EligibilityResult {
	result := models.EligibilityResult{
		Concerns:        []string{},
		ExcludedReasons: []string{},
	}

	medical := profile.MedicalHistory
	if medical.RecentTrauma {
		result.ExcludedReasons = append(result.ExcludedReasons, "Recent trauma or injury")
	}
	if medical.StructuralAbnormalities {
		result.ExcludedReasons = append(result.ExcludedReasons, "Confirmed structural abnormalities requiring treatment")
	}
	if medical.ActiveInfection {
		result.ExcludedReasons = append(result.ExcludedReasons, "Active infection or inflammation")
	}
	if medical.CancerHistory {
		result.Concerns = append(result.Concerns, "History of cancer - requires medical clearance")
		result.RequiresMedicalClearance = true
	}
	if medical.PreviousSpinalSurgery {
		result.Concerns = append(result.Concerns, "Previous spinal surgery - requires medical clearance")
		result.RequiresMedicalClearance = true
	}

	psych := profile.Psychological
	if psych.SevereMentalIllness {
		result.ExcludedReasons = append(result.ExcludedReasons, "Severe psychiatric conditions requiring immediate treatment")
	}
	if psych.ActiveSubstanceAbuse {
		result.ExcludedReasons = append(result.ExcludedReasons, "Active substance abuse")
	}

	result.IsEligible = len(result.ExcludedReasons) == 0
	return result
}

// SafetyRecommendations aggregates clearance, referral, mental-health, and
// treatment-modification guidance for a user.
func (m *Monitor) SafetyRecommendations(profile *models.UserProfile, progress *models.TreatmentProgress) []string {
	recommendations := []string{}

	if m.CheckTMSEligibility(profile).RequiresMedicalClearance {
		recommendations = append(recommendations, "Obtain medical clearance before continuing with TMS approach")
	}

	if profile.Psychological.DepressionScore > 15 || profile.Psychological.AnxietyScore > 15 {
		recommendations = append(recommendations, "Consider additional mental health support alongside TMS approach")
	}

	if progress != nil && (m.lacksProgress(progress) || m.exceedsTreatmentLimits(progress)) {
		recommendations = append(recommendations, "Consider modifying treatment approach or taking a break")
	}

	return recommendations
}

func (m *Monitor) worseningSymptomAlert() models.SafetyAlert {
	return models.SafetyAlert{
		ID:      fmt.Sprintf("worsening_%d", m.now().UnixMilli()),
		Type:    "warning",
		Title:   "Symptoms Worsening",
		Message: "Your pain levels appear to be increasing. This may indicate that the TMS approach is not suitable for your condition, or that there may be other factors to consider.",
		Actions: []models.SafetyAlertAction{
			{Label: "Contact Healthcare Provider", Action: "contact_doctor", IsPrimary: true},
			{Label: "Acknowledge", Action: "acknowledge"},
		},
		Persistent: true,
	}
}

func (m *Monitor) newSymptomAlert(symptoms []string) models.SafetyAlert {
	return models.SafetyAlert{
		ID:      fmt.Sprintf("new_symptoms_%d", m.now().UnixMilli()),
		Type:    "caution",
		Title:   "New Concerning Symptoms",
		Message: fmt.Sprintf("You have reported new symptoms that may require medical evaluation: %s", strings.Join(symptoms, ", ")),
		Actions: []models.SafetyAlertAction{
			{Label: "Seek Medical Evaluation", Action: "contact_doctor", IsPrimary: true},
			{Label: "Acknowledge", Action: "acknowledge"},
		},
		Persistent: true,
	}
}

func (m *Monitor) treatmentLimitAlert() models.SafetyAlert {
	expires := m.now().Add(7 * 24 * time.Hour)
	return models.SafetyAlert{
		ID:      fmt.Sprintf("treatment_limit_%d", m.now().UnixMilli()),
		Type:    "info",
		Title:   "Treatment Duration Limit",
		Message: "You have been using the TMS approach for an extended period. Consider taking a break and consulting with a healthcare provider.",
		Actions: []models.SafetyAlertAction{
			{Label: "Schedule Consultation", Action: "contact_doctor", IsPrimary: true},
			{Label: "Continue with Caution", Action: "acknowledge"},
		},
		ExpiresAt: &expires,
	}
}

func (m *Monitor) noProgressAlert() models.SafetyAlert {
	return models.SafetyAlert{
		ID:      fmt.Sprintf("no_progress_%d", m.now().UnixMilli()),
		Type:    "caution",
		Title:   "Limited Progress",
		Message: "You have not seen significant improvement after several weeks. The TMS approach may not be suitable for your condition.",
		Actions: []models.SafetyAlertAction{
			{Label: "Consult Healthcare Provider", Action: "contact_doctor", IsPrimary: true},
			{Label: "Continue Current Approach", Action: "acknowledge"},
		},
	}
}

func (m *Monitor) flagByID(id string) (models.RedFlag, bool) {
	for _, f := range m.flags {
		if f.ID == id {
			return f, true
		}
	}
	return models.RedFlag{}, false
}

func (m *Monitor) checkByID(id string) (models.SafetyCheck, bool) {
	for _, c := range m.checks {
		if c.ID == id {
			return c, true
		}
	}
	return models.SafetyCheck{}, false
}

func matchesCondition(value any, condition string) bool {
	switch condition {
	case "yes":
		return isYes(value)
	case "no":
		return value == "no" || value == false
	default:
		return value == condition
	}
}

func isYes(value any) bool {
	return value == "yes" || value == true
}

func isTrue(value any) bool {
	v, _ := value.(bool)
	return v
}

func average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
