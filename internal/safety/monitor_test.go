package safety

import (
	"testing"
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

func TestCheckAssessmentRedFlagsScreeningTriggers(t *testing.T) {
	m := NewMonitor()

	tests := []struct {
		name      string
		responses map[string]any
		wantFlag  string
	}{
		{"trauma", map[string]any{"recent_trauma": "yes"}, "trauma_history"},
		{"trauma as bool", map[string]any{"recent_trauma": true}, "trauma_history"},
		{"neurological", map[string]any{"neurological_symptoms": "yes"}, "progressive_neurological"},
		{"bowel bladder", map[string]any{"bowel_bladder": "yes"}, "bowel_bladder_dysfunction"},
		{"fever", map[string]any{"fever_symptoms": "yes"}, "fever_with_pain"},
		{"cancer", map[string]any{"cancer_history": "yes"}, "cancer_history"},
		{"suicidal ideation", map[string]any{"mental_health_screening": "yes"}, "suicidal_ideation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := m.CheckAssessmentRedFlags(tt.responses)
			found := false
			for _, f := range flags {
				if f.ID == tt.wantFlag {
					found = true
				}
			}
			if !found {
				t.Errorf("expected flag %s, got %v", tt.wantFlag, flagIDs(flags))
			}
		})
	}
}

func TestCheckAssessmentRedFlagsAllClear(t *testing.T) {
	m := NewMonitor()
	responses := map[string]any{
		"recent_trauma":           "no",
		"neurological_symptoms":   "no",
		"bowel_bladder":           "no",
		"fever_symptoms":          "no",
		"cancer_history":          "no",
		"mental_health_screening": "no",
	}
	if flags := m.CheckAssessmentRedFlags(responses); len(flags) != 0 {
		t.Errorf("expected no flags, got %v", flagIDs(flags))
	}
}

// A flag reachable through the questionnaire trigger and a supplementary
// check appears twice in the returned list.
func TestCheckAssessmentRedFlagsMayRepeat(t *testing.T) {
	m := NewMonitor()
	flags := m.CheckAssessmentRedFlags(map[string]any{"cancer_history": "yes"})

	count := 0
	for _, f := range flags {
		if f.ID == "cancer_history" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected cancer_history twice (trigger + history check), got %d", count)
	}
}

func TestCheckAssessmentRedFlagsOrderStable(t *testing.T) {
	m := NewMonitor()
	responses := map[string]any{
		"recent_trauma":         "yes",
		"neurological_symptoms": "yes",
		"fever_symptoms":        "yes",
	}

	first := flagIDs(m.CheckAssessmentRedFlags(responses))
	for i := 0; i < 5; i++ {
		got := flagIDs(m.CheckAssessmentRedFlags(responses))
		if len(got) != len(first) {
			t.Fatalf("length changed between runs: %v vs %v", got, first)
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("order changed between runs: %v vs %v", got, first)
			}
		}
	}
}

func TestClassifyOutcome(t *testing.T) {
	m := NewMonitor()

	tests := []struct {
		name    string
		flagIDs []string
		want    string
	}{
		{"no flags", nil, models.OutcomeSafe},
		{"critical immediate", []string{"suicidal_ideation"}, models.OutcomeEmergency},
		{"consultation required", []string{"cancer_history"}, models.OutcomeMedicalRequired},
		{"worsening only", []string{"worsening_despite_treatment"}, models.OutcomeMedicalRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags []models.RedFlag
			for _, id := range tt.flagIDs {
				f, ok := FlagByID(id)
				if !ok {
					t.Fatalf("unknown catalog flag %s", id)
				}
				flags = append(flags, f)
			}
			if got := m.ClassifyOutcome(flags); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIsSymptomWorsening(t *testing.T) {
	m := NewMonitor()

	tests := []struct {
		name   string
		levels []int
		want   bool
	}{
		{"too few entries", []int{5, 5, 5}, false},
		{"stable", []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}, false},
		{"slightly worse", []int{4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5}, false},
		{"significantly worse", []int{3, 3, 3, 3, 3, 3, 3, 5, 5, 5, 5, 5, 5, 5}, true},
		{"improving", []int{7, 7, 7, 7, 7, 7, 7, 4, 4, 4, 4, 4, 4, 4}, false},
		{"exactly seven", []int{5, 5, 5, 5, 5, 5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.isSymptomWorsening(tt.levels); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonitorOngoingSymptomsAlerts(t *testing.T) {
	m := NewMonitor()
	m.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }

	// Started 13 weeks ago with 14 flat sessions: duration limit exceeded
	// and no progress.
	progress := &models.TreatmentProgress{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for i := 0; i < 14; i++ {
		progress.Sessions = append(progress.Sessions, models.TreatmentSession{
			Date:      progress.StartDate.AddDate(0, 0, i),
			PainLevel: 6,
		})
	}

	worsening := []int{3, 3, 3, 3, 3, 3, 3, 6, 6, 6, 6, 6, 6, 6}
	symptoms := []string{"new saddle anesthesia feeling"}

	alerts := m.MonitorOngoingSymptoms(worsening, symptoms, progress)

	titles := map[string]bool{}
	for _, a := range alerts {
		titles[a.Title] = true
	}

	for _, want := range []string{"Symptoms Worsening", "New Concerning Symptoms", "Treatment Duration Limit", "Limited Progress"} {
		if !titles[want] {
			t.Errorf("missing alert %q, got %v", want, titles)
		}
	}
}

func TestMonitorOngoingSymptomsQuiet(t *testing.T) {
	m := NewMonitor()
	m.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }

	progress := &models.TreatmentProgress{
		StartDate: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC), // under 4 weeks
	}

	alerts := m.MonitorOngoingSymptoms([]int{4, 4, 3, 3}, []string{"mild stiffness"}, progress)
	if len(alerts) != 0 {
		t.Errorf("expected no alerts, got %d", len(alerts))
	}
}

func TestEvaluateEmergencyStatus(t *testing.T) {
	m := NewMonitor()

	medical := m.EvaluateEmergencyStatus([]string{"Saddle anesthesia"}, nil)
	if !medical.IsEmergency {
		t.Fatal("expected emergency for saddle anesthesia")
	}

	psych := m.EvaluateEmergencyStatus(nil, map[string]any{"suicidal_ideation": "yes"})
	if !psych.IsEmergency {
		t.Fatal("expected emergency for suicidal ideation")
	}
	if psych.EmergencyType != models.FlagCategoryPsychological {
		t.Errorf("emergency type = %s, want psychological", psych.EmergencyType)
	}
	if psych.RecommendedAction != "Call 988 (Suicide & Crisis Lifeline) or go to the nearest emergency room" {
		t.Errorf("unexpected action: %s", psych.RecommendedAction)
	}

	none := m.EvaluateEmergencyStatus([]string{"mild soreness"}, nil)
	if none.IsEmergency {
		t.Error("mild soreness should not be an emergency")
	}
	if none.RecommendedAction != "Consult with a healthcare provider as soon as possible" {
		t.Errorf("unexpected default action: %s", none.RecommendedAction)
	}
}

// Short generic tokens escalate on purpose: the matcher errs toward
// flagging when a reported word appears inside a critical flag title.
func TestEvaluateEmergencyStatusGenericTokensEscalate(t *testing.T) {
	m := NewMonitor()

	tests := []struct {
		symptom  string
		wantFlag string
	}{
		{"weakness", "bilateral_leg_weakness"},
		{"symptoms", "psychosis_symptoms"},
	}

	for _, tt := range tests {
		eval := m.EvaluateEmergencyStatus([]string{tt.symptom}, nil)
		if !eval.IsEmergency {
			t.Errorf("%q: expected emergency classification", tt.symptom)
			continue
		}
		if len(eval.RedFlags) != 1 || eval.RedFlags[0].ID != tt.wantFlag {
			t.Errorf("%q: got flags %+v, want single %s", tt.symptom, eval.RedFlags, tt.wantFlag)
		}
	}
}

func TestCheckTMSEligibility(t *testing.T) {
	m := NewMonitor()

	clean := &models.UserProfile{}
	result := m.CheckTMSEligibility(clean)
	if !result.IsEligible {
		t.Error("empty history should be eligible")
	}

	excluded := &models.UserProfile{
		MedicalHistory: models.MedicalHistory{RecentTrauma: true, ActiveInfection: true},
	}
	result = m.CheckTMSEligibility(excluded)
	if result.IsEligible {
		t.Error("recent trauma should exclude")
	}
	if len(result.ExcludedReasons) != 2 {
		t.Errorf("expected 2 exclusion reasons, got %v", result.ExcludedReasons)
	}

	clearance := &models.UserProfile{
		MedicalHistory: models.MedicalHistory{CancerHistory: true, PreviousSpinalSurgery: true},
	}
	result = m.CheckTMSEligibility(clearance)
	if !result.IsEligible {
		t.Error("clearance-only concerns should not exclude")
	}
	if !result.RequiresMedicalClearance {
		t.Error("expected medical clearance requirement")
	}
	if len(result.Concerns) != 2 {
		t.Errorf("expected 2 concerns, got %v", result.Concerns)
	}

	psychExcluded := &models.UserProfile{
		Psychological: models.PsychologicalProfile{SevereMentalIllness: true, ActiveSubstanceAbuse: true},
	}
	result = m.CheckTMSEligibility(psychExcluded)
	if result.IsEligible {
		t.Error("severe mental illness should exclude")
	}
}

func TestSafetyRecommendations(t *testing.T) {
	m := NewMonitor()
	m.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }

	profile := &models.UserProfile{
		Psychological:  models.PsychologicalProfile{DepressionScore: 18},
		MedicalHistory: models.MedicalHistory{CancerHistory: true},
	}

	recs := m.SafetyRecommendations(profile, nil)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", recs)
	}
}

func TestCatalogIntegrity(t *testing.T) {
	if len(RedFlags) != 12 {
		t.Errorf("expected 12 red flags, got %d", len(RedFlags))
	}
	if len(SafetyChecks) != 2 {
		t.Errorf("expected 2 safety checks, got %d", len(SafetyChecks))
	}
	if len(Disclaimers) != 4 {
		t.Errorf("expected 4 disclaimers, got %d", len(Disclaimers))
	}

	// Every screening trigger must reference a real catalog flag.
	for _, check := range SafetyChecks {
		for _, q := range check.Questions {
			for _, trigger := range q.Triggers {
				if _, ok := FlagByID(trigger.FlagID); !ok {
					t.Errorf("question %s references unknown flag %s", q.ID, trigger.FlagID)
				}
			}
		}
	}

	if Guidelines.MaxTreatmentWeeks != 12 {
		t.Errorf("max treatment weeks = %d, want 12", Guidelines.MaxTreatmentWeeks)
	}
}

func flagIDs(flags []models.RedFlag) []string {
	ids := make([]string, len(flags))
	for i, f := range flags {
		ids[i] = f.ID
	}
	return ids
}
