package safety

import (
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

// RedFlags is the static red-flag catalog. Flags are matched by ID from
// screening triggers and by text from emergency symptom evaluation.
var RedFlags = []models.RedFlag{
	// Critical medical
	{
		ID:                          "progressive_neurological",
		Category:                    models.FlagCategoryMedical,
		Severity:                    models.SeverityCritical,
		Title:                       "Progressive Neurological Symptoms",
		Description:                 "Weakness, numbness, or loss of function that is worsening over time",
		Recommendation:              "Seek immediate medical evaluation. Do not delay.",
		RequiresImmediateAttention:  true,
		MedicalConsultationRequired: true,
		Contraindications:           []string{"TMS treatment should be suspended until medical clearance"},
	},
	{
		ID:                          "bowel_bladder_dysfunction",
		Category:                    models.FlagCategoryMedical,
		Severity:                    models.SeverityCritical,
		Title:                       "Bowel or Bladder Dysfunction",
		Description:                 "New onset incontinence or retention of urine/stool",
		Recommendation:              "This may indicate cauda equina syndrome. Seek emergency medical care immediately.",
		RequiresImmediateAttention:  true,
		MedicalConsultationRequired: true,
		Contraindications:           []string{"Emergency medical evaluation required"},
	},
	{
		ID:                          "fever_with_pain",
		Category:                    models.FlagCategoryMedical,
		Severity:                    models.SeverityHigh,
		Title:                       "Fever with Back Pain",
		Description:                 "Fever accompanying back pain, especially with night sweats",
		Recommendation:              "May indicate infection or other serious condition. Consult physician promptly.",
		RequiresImmediateAttention:  true,
		MedicalConsultationRequired: true,
	},
	{
		ID:                          "trauma_history",
		Category:                    models.FlagCategoryMedical,
		Severity:                    models.SeverityHigh,
		Title:                       "Recent Trauma or Injury",
		Description:                 "Pain following recent accident, fall, or physical trauma",
		Recommendation:              "Physical causes must be ruled out before considering TMS approach.",
		MedicalConsultationRequired: true,
	},
	{
		ID:                          "cancer_history",
		Category:                    models.FlagCategoryMedical,
		Severity:                    models.SeverityHigh,
		Title:                       "History of Cancer",
		Description:                 "Personal history of cancer, especially with new or changing pain patterns",
		Recommendation:              "Medical evaluation required to rule out metastases or recurrence.",
		MedicalConsultationRequired: true,
	},

	// Psychological
	{
		ID:                          "suicidal_ideation",
		Category:                    models.FlagCategoryPsychological,
		Severity:                    models.SeverityCritical,
		Title:                       "Suicidal Thoughts or Plans",
		Description:                 "Thoughts of self-harm or suicide",
		Recommendation:              "Contact emergency services (988 Suicide & Crisis Lifeline) or go to nearest emergency room.",
		RequiresImmediateAttention:  true,
		MedicalConsultationRequired: true,
		Contraindications:           []string{"Requires immediate professional mental health intervention"},
	},
	{
		ID:                          "severe_depression",
		Category:                    models.FlagCategoryPsychological,
		Severity:                    models.SeverityHigh,
		Title:                       "Severe Depression",
		Description:                 "Persistent feelings of hopelessness, inability to function daily",
		Recommendation:              "Professional mental health evaluation recommended before continuing TMS approach.",
		MedicalConsultationRequired: true,
	},
	{
		ID:                          "psychosis_symptoms",
		Category:                    models.FlagCategoryPsychological,
		Severity:                    models.SeverityCritical,
		Title:                       "Psychotic Symptoms",
		Description:                 "Hallucinations, delusions, or severe confusion",
		Recommendation:              "Immediate psychiatric evaluation required.",
		RequiresImmediateAttention:  true,
		MedicalConsultationRequired: true,
	},

	// Symptom-based
	{
		ID:                          "saddle_anesthesia",
		Category:                    models.FlagCategorySymptom,
		Severity:                    models.SeverityCritical,
		Title:                       "Saddle Anesthesia",
		Description:                 "Numbness in the groin, buttocks, or inner thighs",
		Recommendation:              "May indicate cauda equina syndrome. Seek emergency care immediately.",
		RequiresImmediateAttention:  true,
		MedicalConsultationRequired: true,
	},
	{
		ID:                          "bilateral_leg_weakness",
		Category:                    models.FlagCategorySymptom,
		Severity:                    models.SeverityCritical,
		Title:                       "Bilateral Leg Weakness",
		Description:                 "Weakness in both legs, difficulty walking",
		Recommendation:              "Requires immediate neurological evaluation.",
		RequiresImmediateAttention:  true,
		MedicalConsultationRequired: true,
	},
	{
		ID:                          "unexplained_weight_loss",
		Category:                    models.FlagCategorySymptom,
		Severity:                    models.SeverityHigh,
		Title:                       "Unexplained Weight Loss",
		Description:                 "Significant weight loss without trying to lose weight",
		Recommendation:              "May indicate underlying medical condition. Consult physician.",
		MedicalConsultationRequired: true,
	},

	// Duration-based
	{
		ID:                          "worsening_despite_treatment",
		Category:                    models.FlagCategoryDuration,
		Severity:                    models.SeverityMedium,
		Title:                       "Worsening Despite TMS Treatment",
		Description:                 "Symptoms getting worse after 4+ weeks of consistent TMS approach",
		Recommendation:              "Consider medical re-evaluation and alternative approaches.",
		MedicalConsultationRequired: true,
	},
}

// SafetyChecks holds the pre-assessment screening and ongoing monitoring
// questionnaires.
var SafetyChecks = []models.SafetyCheck{
	{
		ID:       "pre_assessment_screening",
		Type:     "pre_assessment",
		Triggers: []string{"initial_assessment_start"},
		Questions: []models.SafetyQuestion{
			{
				ID:       "recent_trauma",
				Question: "Have you experienced any physical trauma, accident, or injury in the past 6 months that could be related to your pain?",
				Type:     "yes_no",
				Required: true,
				Triggers: []models.RedFlagTrigger{{Condition: "yes", FlagID: "trauma_history"}},
			},
			{
				ID:       "neurological_symptoms",
				Question: "Are you experiencing any of the following: progressive weakness, numbness that is getting worse, loss of coordination, or difficulty with balance?",
				Type:     "yes_no",
				Required: true,
				Triggers: []models.RedFlagTrigger{{Condition: "yes", FlagID: "progressive_neurological"}},
			},
			{
				ID:       "bowel_bladder",
				Question: "Have you experienced any new problems with bowel or bladder control?",
				Type:     "yes_no",
				Required: true,
				Triggers: []models.RedFlagTrigger{{Condition: "yes", FlagID: "bowel_bladder_dysfunction"}},
			},
			{
				ID:       "fever_symptoms",
				Question: "Do you currently have fever, chills, or night sweats along with your pain?",
				Type:     "yes_no",
				Required: true,
				Triggers: []models.RedFlagTrigger{{Condition: "yes", FlagID: "fever_with_pain"}},
			},
			{
				ID:       "cancer_history",
				Question: "Do you have a personal history of cancer?",
				Type:     "yes_no",
				Required: true,
				Triggers: []models.RedFlagTrigger{{Condition: "yes", FlagID: "cancer_history"}},
			},
			{
				ID:       "mental_health_screening",
				Question: "In the past two weeks, have you had thoughts of hurting yourself or that you would be better off dead?",
				Type:     "yes_no",
				Required: true,
				Triggers: []models.RedFlagTrigger{{Condition: "yes", FlagID: "suicidal_ideation"}},
			},
		},
		Actions: []models.SafetyAction{
			{
				ID:             "red_flag_medical_referral",
				Type:           "redirect_to_medical",
				Priority:       "critical",
				Message:        "Based on your responses, we recommend consulting with a healthcare provider before proceeding with the TMS approach.",
				ActionRequired: true,
			},
		},
	},
	{
		ID:       "ongoing_symptom_monitoring",
		Type:     "ongoing_monitoring",
		Triggers: []string{"weekly_checkin", "symptom_change_reported"},
		Questions: []models.SafetyQuestion{
			{
				ID:       "symptom_progression",
				Question: "How have your symptoms changed in the past week?",
				Type:     "multiple_choice",
				Options:  []string{"Significantly improved", "Somewhat improved", "No change", "Somewhat worse", "Significantly worse"},
				Required: true,
				Triggers: []models.RedFlagTrigger{{Condition: "Significantly worse", FlagID: "worsening_despite_treatment"}},
			},
			{
				ID:       "new_symptoms",
				Question: "Have you developed any new symptoms since starting the TMS approach?",
				Type:     "yes_no",
				Required: true,
			},
			{
				ID:       "functional_status",
				Question: "How is your ability to perform daily activities?",
				Type:     "scale",
				Required: true,
			},
		},
		Actions: []models.SafetyAction{
			{
				ID:       "symptom_worsening_warning",
				Type:     "show_warning",
				Priority: "medium",
				Message:  "Your symptoms appear to be worsening. Consider consulting with a healthcare provider.",
			},
		},
	},
}

// Disclaimers that the UI must surface; acknowledgments are persisted
// per user.
var Disclaimers = []models.Disclaimer{
	{
		ID:    "general_medical_disclaimer",
		Type:  "medical",
		Title: "Medical Disclaimer",
		Content: `This application is for educational purposes only and is not intended to provide medical advice, diagnosis, or treatment. The information provided should not replace professional medical consultation.

The Virtual Dr. Sarno app is based on the work of Dr. John Sarno and the concept of Tension Myositis Syndrome (TMS). While many people have found relief using Dr. Sarno's approach, it is not appropriate for everyone and should not be used as a substitute for proper medical evaluation.

You should always consult with a qualified healthcare provider before making any decisions about your health or treatment. If you are experiencing severe or worsening symptoms, seek immediate medical attention.

By using this application, you acknowledge that you understand these limitations and agree to use the information provided responsibly.`,
		RequiresAcknowledgment: true,
		Version:                "1.0",
		LastUpdated:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ApplicablePages:        []string{"all"},
	},
	{
		ID:    "educational_disclaimer",
		Type:  "educational",
		Title: "Educational Content Disclaimer",
		Content: `The educational content in this application is based on Dr. John Sarno's books and research, as well as current understanding of mind-body medicine. This information is provided for educational purposes only.

Individual results may vary, and what works for one person may not work for another. The TMS approach is not scientifically proven to work for all types of pain, and some conditions require medical treatment.

This application does not provide personalized medical advice. All content should be considered general information that may or may not apply to your specific situation.`,
		RequiresAcknowledgment: true,
		Version:                "1.0",
		LastUpdated:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ApplicablePages:        []string{"education", "assessment"},
	},
	{
		ID:    "liability_disclaimer",
		Type:  "liability",
		Title: "Limitation of Liability",
		Content: `The creators and distributors of this application shall not be liable for any damages arising from the use or inability to use this application or its content.

This includes, but is not limited to, any direct, indirect, incidental, consequential, or punitive damages, even if we have been advised of the possibility of such damages.

Your use of this application is at your own risk. You are responsible for your own health decisions and should always consult with qualified healthcare providers.`,
		RequiresAcknowledgment: true,
		Version:                "1.0",
		LastUpdated:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ApplicablePages:        []string{"all"},
	},
	{
		ID:    "privacy_disclaimer",
		Type:  "privacy",
		Title: "Privacy and Data Security",
		Content: `Your privacy is important to us. All personal health information you enter into this application is stored locally and is not transmitted to external servers without your explicit consent.

However, no digital system is completely secure. You should be aware that there are inherent risks in storing personal health information digitally.

We recommend that you do not include highly sensitive medical information in your journal entries or other app content. Always maintain copies of important health information in secure, offline formats.`,
		RequiresAcknowledgment: true,
		Version:                "1.0",
		LastUpdated:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ApplicablePages:        []string{"journal", "pain-tracker", "assessment"},
	},
}

// Guidelines collects the clinical screening and monitoring criteria.
var Guidelines = models.ClinicalGuidelines{
	EligibilityIncluded: []string{
		"Chronic back pain without clear structural cause",
		"Neck and shoulder tension",
		"Tension headaches",
		"Fibromyalgia-like symptoms",
		"Repetitive strain injuries",
		"Chronic fatigue syndrome",
		"Irritable bowel syndrome",
		"Chronic pelvic pain",
	},
	EligibilityExcluded: []string{
		"Acute trauma or injury",
		"Confirmed structural abnormalities requiring treatment",
		"Active infection or inflammation",
		"Cancer-related pain",
		"Autoimmune conditions in active flare",
		"Severe psychiatric conditions requiring immediate treatment",
	},
	RequiresMedicalClearance: []string{
		"History of cancer",
		"Previous spinal surgery",
		"Significant trauma history",
		"Neurological symptoms",
		"Chronic medical conditions",
		"Current use of pain medications",
	},
	RedFlagSymptoms: []string{
		"Progressive neurological deficits",
		"Bowel or bladder dysfunction",
		"Saddle anesthesia",
		"Bilateral leg weakness",
		"Fever with back pain",
		"Severe night pain",
		"Unexplained weight loss",
	},
	ProgressionConcerns: []string{
		"Worsening pain after 4 weeks of TMS approach",
		"New neurological symptoms",
		"Functional decline",
		"Inability to perform activities of daily living",
		"Severe sleep disruption",
	},
	EmergencySymptoms: []string{
		"Cauda equina syndrome signs",
		"Acute neurological changes",
		"Signs of spinal infection",
		"Suicidal ideation",
		"Severe psychiatric symptoms",
	},
	MaxTreatmentWeeks: 12,
	RequiredBreaks: []string{
		"Medical evaluation if no improvement after 4 weeks",
		"Psychiatric consultation if psychological symptoms worsen",
		"Immediate cessation if red flag symptoms develop",
	},
	ContraindicatedConditions: []string{
		"Active psychosis",
		"Severe untreated depression with suicidal ideation",
		"Active substance abuse",
		"Acute medical conditions requiring immediate treatment",
		"Inability to understand or consent to treatment approach",
	},
	ProfessionalReferralCriteria: []string{
		"No improvement after 6 weeks of consistent TMS approach",
		"Worsening of symptoms",
		"Development of new symptoms",
		"Psychological distress that interferes with daily functioning",
		"Patient request for professional consultation",
		"Any red flag symptoms or conditions",
	},
}

// EmergencyResource is a crisis or referral contact surfaced with alerts.
type EmergencyResource struct {
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description"`
}

var EmergencyResources = []EmergencyResource{
	{Name: "Suicide & Crisis Lifeline", Phone: "988", Description: "24/7 free and confidential support for people in distress"},
	{Name: "Emergency Services", Phone: "911", Description: "For immediate medical emergencies"},
	{Name: "Find a TMS Doctor", URL: "https://www.tmswiki.org/ppd/Find_a_TMS_Doctor", Description: "Directory of practitioners familiar with the TMS approach"},
	{Name: "SAMHSA National Helpline", URL: "https://www.samhsa.gov/find-help/national-helpline", Description: "Mental health and substance abuse treatment referrals"},
}

// FlagByID looks up a catalog flag.
func FlagByID(id string) (models.RedFlag, bool) {
	for _, f := range RedFlags {
		if f.ID == id {
			return f, true
		}
	}
	return models.RedFlag{}, false
}

// CheckByID looks up a safety check.
func CheckByID(id string) (models.SafetyCheck, bool) {
	for _, c := range SafetyChecks {
		if c.ID == id {
			return c, true
		}
	}
	return models.SafetyCheck{}, false
}
