package assessment

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

func highTMSProfile() *models.UserProfile {
	return &models.UserProfile{
		PersonalInfo: models.PersonalInfo{
			Age:        42,
			Occupation: "Project Manager",
			Lifestyle:  models.LifestyleActive,
		},
		Psychological: models.PsychologicalProfile{
			PersonalityTypes:     []string{"perfectionist", "people-pleaser", "goodist", "self-critical", "achievement-oriented"},
			StressFactors:        []string{"work pressure", "relationship issues", "financial stress", "perfectionism"},
			CopingMechanisms:     []string{"workaholism", "perfectionism"},
			TraumaHistory:        true,
			CurrentLifeStressors: []string{"deadline crunch", "marriage tension", "aging parent"},
		},
		PainHistory: models.PainHistory{
			PrimarySymptoms:    []string{"aching", "burning"},
			PainLocations:      []string{"lower back", "neck"},
			PainIntensity:      6,
			PainFrequency:      models.FrequencyIntermittent,
			OnsetDate:          time.Now().AddDate(-2, 0, 0),
			Triggers:           []string{"work stress", "relationship issues"},
			PreviousDiagnoses:  []string{"chronic pain", "muscle strain"},
			PreviousTreatments: []string{"physical therapy", "chiropractic", "massage"},
		},
	}
}

func lowTMSProfile() *models.UserProfile {
	return &models.UserProfile{
		PersonalInfo: models.PersonalInfo{Age: 30, Occupation: "artist", Lifestyle: models.LifestyleSedentary},
		PainHistory: models.PainHistory{
			PrimarySymptoms:   []string{"sharp pain"},
			PainIntensity:     3,
			PainFrequency:     models.FrequencyConstant,
			OnsetDate:         time.Now().AddDate(0, -6, 0),
			PreviousDiagnoses: []string{"herniated disc"},
		},
	}
}

func TestTMSLikelihoodHighProfile(t *testing.T) {
	s := NewService()
	got := s.TMSLikelihood(highTMSProfile())
	if got < 60 {
		t.Errorf("expected high likelihood (>= 60), got %d", got)
	}
	if got > 100 {
		t.Errorf("likelihood exceeded 100: %d", got)
	}
}

func TestTMSLikelihoodLowProfile(t *testing.T) {
	s := NewService()
	got := s.TMSLikelihood(lowTMSProfile())
	if got >= 40 {
		t.Errorf("expected low likelihood (< 40), got %d", got)
	}
	if got < 0 {
		t.Errorf("likelihood below 0: %d", got)
	}
}

func TestTMSLikelihoodDeterministic(t *testing.T) {
	s := NewService()
	p := highTMSProfile()
	first := s.TMSLikelihood(p)
	for i := 0; i < 5; i++ {
		if got := s.TMSLikelihood(p); got != first {
			t.Fatalf("likelihood not stable: got %d, want %d", got, first)
		}
	}
}

func TestTMSLikelihoodNormalizedByMaxScore(t *testing.T) {
	s := NewService()
	for _, p := range []*models.UserProfile{highTMSProfile(), lowTMSProfile()} {
		weighted := personalityScore(&p.Psychological)*personalityWeight +
			painScore(&p.PainHistory)*painWeight +
			stressScore(&p.Psychological)*stressWeight +
			medicalScore(&p.PainHistory)*medicalWeight
		max := 100 * (personalityWeight + painWeight + stressWeight + medicalWeight)

		want := int(math.Round(weighted / max * 100))
		if got := s.TMSLikelihood(p); got != want {
			t.Errorf("likelihood = %d, want %d (weighted %.1f of max %.0f)", got, want, weighted, max)
		}
	}
}

func TestSarnoCompatibilityActiveOutranksVeryActive(t *testing.T) {
	s := NewService()

	active := highTMSProfile()
	active.PersonalInfo.Lifestyle = models.LifestyleActive

	veryActive := highTMSProfile()
	veryActive.PersonalInfo.Lifestyle = models.LifestyleVeryActive

	a := s.SarnoCompatibility(active)
	va := s.SarnoCompatibility(veryActive)
	if a <= va {
		t.Errorf("active lifestyle should score above very active: active=%d veryActive=%d", a, va)
	}
}

func TestSarnoCompatibilityOccupation(t *testing.T) {
	s := NewService()

	base := lowTMSProfile()
	base.PersonalInfo.Occupation = "artist"
	stressed := lowTMSProfile()
	stressed.PersonalInfo.Occupation = "healthcare administrator"

	if s.SarnoCompatibility(stressed) <= s.SarnoCompatibility(base) {
		t.Error("stressful occupation should raise compatibility")
	}
}

func TestIdentifyRedFlags(t *testing.T) {
	s := NewService()

	tests := []struct {
		name    string
		mutate  func(*models.UserProfile)
		wantSub string
	}{
		{
			name:    "age over 70",
			mutate:  func(p *models.UserProfile) { p.PersonalInfo.Age = 75 },
			wantSub: "Age over 70",
		},
		{
			name:    "severe intensity",
			mutate:  func(p *models.UserProfile) { p.PainHistory.PainIntensity = 9 },
			wantSub: "Severe pain intensity",
		},
		{
			name: "constant severe pain",
			mutate: func(p *models.UserProfile) {
				p.PainHistory.PainFrequency = models.FrequencyConstant
				p.PainHistory.PainIntensity = 7
			},
			wantSub: "Constant severe pain",
		},
		{
			name: "neurological symptoms",
			mutate: func(p *models.UserProfile) {
				p.PainHistory.PrimarySymptoms = append(p.PainHistory.PrimarySymptoms, "numbness in left leg")
			},
			wantSub: "Neurological symptoms",
		},
		{
			name: "recent severe onset",
			mutate: func(p *models.UserProfile) {
				p.PainHistory.OnsetDate = time.Now().AddDate(0, 0, -10)
				p.PainHistory.PainIntensity = 8
			},
			wantSub: "Recent onset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := highTMSProfile()
			tt.mutate(p)
			flags := s.IdentifyRedFlags(p)
			found := false
			for _, f := range flags {
				if strings.Contains(f, tt.wantSub) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a flag containing %q, got %v", tt.wantSub, flags)
			}
		})
	}
}

func TestIdentifyRedFlagsCleanProfile(t *testing.T) {
	s := NewService()
	if flags := s.IdentifyRedFlags(highTMSProfile()); len(flags) != 0 {
		t.Errorf("expected no red flags, got %v", flags)
	}
}

func TestGenerateRecommendationsBands(t *testing.T) {
	s := NewService()

	high := s.GenerateRecommendations(highTMSProfile())
	if len(high) == 0 || !strings.Contains(high[0], "High likelihood") {
		t.Errorf("expected high-band recommendations, got %v", high)
	}
	// Personality-specific additions ride along.
	joined := strings.Join(high, " ")
	if !strings.Contains(joined, "perfectionist") {
		t.Errorf("expected perfectionist guidance, got %v", high)
	}
	if !strings.Contains(joined, "boundaries") {
		t.Errorf("expected people-pleaser guidance, got %v", high)
	}

	low := s.GenerateRecommendations(lowTMSProfile())
	if len(low) == 0 || !strings.Contains(low[0], "Lower likelihood") {
		t.Errorf("expected low-band recommendations, got %v", low)
	}
}

func TestEvaluateStampsDate(t *testing.T) {
	s := NewService()
	before := time.Now()
	result := s.Evaluate(highTMSProfile())
	if result.AssessmentDate.Before(before) {
		t.Error("assessment date not stamped")
	}
	if result.TMSLikelihood < 0 || result.TMSLikelihood > 100 {
		t.Errorf("likelihood out of range: %d", result.TMSLikelihood)
	}
	if result.SarnoCompatibility < 0 || result.SarnoCompatibility > 100 {
		t.Errorf("compatibility out of range: %d", result.SarnoCompatibility)
	}
}
