package progress

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

// Profiles and progress documents are stored as JSON; a round trip through
// that format must reproduce every field, dates included.
func TestProfileStorageRoundTrip(t *testing.T) {
	created := time.Date(2026, 1, 5, 8, 30, 15, 0, time.UTC)
	profile := models.UserProfile{
		ID:         "3f1c9b2e-8d4a-4f6b-9c21-7e5a0d8b4c12",
		CreatedAt:  created,
		LastActive: created.AddDate(0, 0, 12),
		PersonalInfo: models.PersonalInfo{
			Name:       "Dana",
			Age:        42,
			Occupation: "project manager",
			Lifestyle:  models.LifestyleActive,
		},
		Psychological: models.PsychologicalProfile{
			PersonalityTypes:     []string{"perfectionist", "people-pleaser"},
			StressFactors:        []string{"work pressure"},
			CopingMechanisms:     []string{"workaholism"},
			TraumaHistory:        true,
			CurrentLifeStressors: []string{"deadline crunch"},
			DepressionScore:      4,
			AnxietyScore:         6,
		},
		PainHistory: models.PainHistory{
			PrimarySymptoms:    []string{"aching"},
			PainLocations:      []string{"lower back", "neck"},
			PainIntensity:      7,
			PainFrequency:      models.FrequencyIntermittent,
			OnsetDate:          time.Date(2025, 9, 18, 14, 0, 5, 0, time.UTC),
			Triggers:           []string{"stress at work"},
			PreviousDiagnoses:  []string{"muscle strain"},
			PreviousTreatments: []string{"physical therapy"},
			MedicalHistory:     []string{"none"},
		},
		MedicalHistory: models.MedicalHistory{PreviousSpinalSurgery: true},
		Assessment: &models.TMSAssessmentResult{
			TMSLikelihood:      72,
			SarnoCompatibility: 68,
			RedFlags:           []string{},
			AssessmentDate:     created.Add(45 * time.Minute),
		},
	}

	data, err := json.Marshal(&profile)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}
	var got models.UserProfile
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}

	if !reflect.DeepEqual(got, profile) {
		t.Errorf("profile changed across storage round trip:\n got: %+v\nwant: %+v", got, profile)
	}

	dates := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"created_at", got.CreatedAt, profile.CreatedAt},
		{"last_active", got.LastActive, profile.LastActive},
		{"onset_date", got.PainHistory.OnsetDate, profile.PainHistory.OnsetDate},
		{"assessment_date", got.Assessment.AssessmentDate, profile.Assessment.AssessmentDate},
	}
	for _, d := range dates {
		if !d.got.Truncate(time.Second).Equal(d.want.Truncate(time.Second)) {
			t.Errorf("%s not preserved: got %v, want %v", d.name, d.got, d.want)
		}
	}
}

func TestProgressStorageRoundTrip(t *testing.T) {
	start := time.Date(2026, 1, 5, 8, 30, 15, 0, time.UTC)
	prog := models.TreatmentProgress{
		UserID:    "3f1c9b2e-8d4a-4f6b-9c21-7e5a0d8b4c12",
		StartDate: start,
		Sessions: []models.TreatmentSession{
			{
				Date:           start.AddDate(0, 0, 1),
				PainLevel:      6,
				EmotionalState: "anxious",
				Insights:       "pain spiked before the review meeting",
				Activities:     []string{"walking"},
			},
			{
				Date:          start.AddDate(0, 0, 2),
				PainLevel:     4,
				Breakthroughs: "noticed the pattern",
			},
		},
		Milestones: []models.ProgressMilestone{
			{Date: start.AddDate(0, 0, 3), Type: "pain_reduction", Description: "first pain-free morning"},
		},
		JournalEntries: []models.JournalEntry{
			{
				Date:          start.AddDate(0, 0, 1),
				Prompt:        "What are you avoiding?",
				Response:      "the conversation with my manager",
				EmotionalTags: []string{"anger"},
			},
		},
		ReadingProgress: models.ReadingProgress{
			CompletedModules:    []string{"tms-intro"},
			CurrentModule:       "mind-body-connection",
			ComprehensionScores: map[string]int{"tms-intro": 100},
		},
	}

	data, err := json.Marshal(&prog)
	if err != nil {
		t.Fatalf("marshal progress: %v", err)
	}
	var got models.TreatmentProgress
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal progress: %v", err)
	}

	if !reflect.DeepEqual(got, prog) {
		t.Errorf("progress changed across storage round trip:\n got: %+v\nwant: %+v", got, prog)
	}
	if !got.StartDate.Truncate(time.Second).Equal(prog.StartDate.Truncate(time.Second)) {
		t.Errorf("start_date not preserved: got %v, want %v", got.StartDate, prog.StartDate)
	}
	for i := range prog.Sessions {
		if !got.Sessions[i].Date.Equal(prog.Sessions[i].Date) {
			t.Errorf("session %d date not preserved: got %v, want %v", i, got.Sessions[i].Date, prog.Sessions[i].Date)
		}
	}
}
