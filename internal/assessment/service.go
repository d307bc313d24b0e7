package assessment

import (
	"math"
	"strings"
	"time"

	"github.com/tms-recovery/backend/internal/models"
)

// Weights for the four TMS likelihood components.
const (
	personalityWeight = 0.4
	painWeight        = 0.3
	stressWeight      = 0.2
	medicalWeight     = 0.1
)

var (
	highRiskPersonalities = []string{"perfectionist", "people-pleaser", "highly responsible", "goodist"}
	repressionIndicators  = []string{"workaholism", "people-pleasing", "perfectionism"}
	tmsPainLocations      = []string{"lower back", "upper back", "neck", "shoulders"}
	tmsTriggers           = []string{"stress", "emotional events", "work pressure", "relationship issues"}
	highStressFactors     = []string{"work pressure", "relationship issues", "financial stress", "perfectionism"}
	vagueDiagnosisTerms   = []string{"chronic pain", "fibromyalgia", "tension", "strain", "spasm"}
	sarnoPersonalities    = []string{"perfectionist", "people-pleaser", "highly responsible"}
	stressfulOccupations  = []string{"executive", "manager", "doctor", "lawyer", "teacher", "healthcare"}
	seriousSymptomTerms   = []string{"numbness", "weakness", "bowel", "bladder", "fever"}
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Evaluate runs the full assessment against a profile and stamps the result
// with the current time.
func (s *Service) Evaluate(profile *models.UserProfile) models.TMSAssessmentResult {
	return models.TMSAssessmentResult{
		TMSLikelihood:      s.TMSLikelihood(profile),
		SarnoCompatibility: s.SarnoCompatibility(profile),
		RedFlags:           s.IdentifyRedFlags(profile),
		AssessmentDate:     time.Now(),
	}
}

// TMSLikelihood combines four weighted component scores into a 0-100 estimate
// of how well the profile matches a tension-driven pain pattern. The maximum
// score is accumulated alongside the actual score so the percentage stays
// normalized even if the weights stop summing to 1.
func (s *Service) TMSLikelihood(profile *models.UserProfile) int {
	components := []struct {
		score  float64
		weight float64
	}{
		{personalityScore(&profile.Psychological), personalityWeight},
		{painScore(&profile.PainHistory), painWeight},
		{stressScore(&profile.Psychological), stressWeight},
		{medicalScore(&profile.PainHistory), medicalWeight},
	}

	var score, maxScore float64
	for _, c := range components {
		score += c.score * c.weight
		maxScore += 100 * c.weight
	}

	return int(math.Round(score / maxScore * 100))
}

func personalityScore(p *models.PsychologicalProfile) float64 {
	var score float64

	matched := countExact(p.PersonalityTypes, highRiskPersonalities)
	score += float64(matched) / float64(len(highRiskPersonalities)) * 60

	if contains(p.PersonalityTypes, "self-critical") {
		score += 15
	}
	if contains(p.PersonalityTypes, "achievement-oriented") {
		score += 10
	}

	matched = countSubstring(p.CopingMechanisms, repressionIndicators)
	score += float64(matched) / float64(len(repressionIndicators)) * 15

	return math.Min(score, 100)
}

func painScore(p *models.PainHistory) float64 {
	var score float64

	matched := countExact(p.PainLocations, tmsPainLocations)
	score += float64(matched) / float64(len(tmsPainLocations)) * 30

	switch p.PainFrequency {
	case models.FrequencyIntermittent:
		score += 25
	case models.FrequencyEpisodic:
		score += 20
	case models.FrequencyConstant:
		score += 10
	}

	matched = countSubstring(p.Triggers, tmsTriggers)
	score += float64(matched) / float64(len(tmsTriggers)) * 25

	if p.PainIntensity >= 6 {
		score += 10
	}
	if len(p.PainLocations) > 1 {
		score += 10
	}

	return math.Min(score, 100)
}

func stressScore(p *models.PsychologicalProfile) float64 {
	var score float64

	matched := countExact(p.StressFactors, highStressFactors)
	score += float64(matched) / float64(len(highStressFactors)) * 50

	score += math.Min(float64(len(p.CurrentLifeStressors))*10, 30)

	if p.TraumaHistory {
		score += 20
	}

	return math.Min(score, 100)
}

func medicalScore(p *models.PainHistory) float64 {
	var score float64

	if len(p.PreviousTreatments) > 2 {
		score += 30
	}

	vague := countSubstring(p.PreviousDiagnoses, vagueDiagnosisTerms)
	score += float64(vague) / math.Max(float64(len(p.PreviousDiagnoses)), 1) * 40

	if len(p.PreviousDiagnoses) == 0 {
		score += 30
	}

	return math.Min(score, 100)
}

// SarnoCompatibility scores how closely the profile matches the typical
// patient described in Dr. Sarno's work.
func (s *Service) SarnoCompatibility(profile *models.UserProfile) int {
	var score float64

	if profile.PersonalInfo.Age >= 25 && profile.PersonalInfo.Age <= 65 {
		score += 20
	}

	occupation := strings.ToLower(profile.PersonalInfo.Occupation)
	for _, occ := range stressfulOccupations {
		if strings.Contains(occupation, occ) {
			score += 15
			break
		}
	}

	// "active" intentionally outscores "very active": a moderately active
	// person pushing through pain fits the classic presentation better than
	// an athlete.
	switch profile.PersonalInfo.Lifestyle {
	case models.LifestyleVeryActive:
		score += 10
	case models.LifestyleActive:
		score += 15
	}

	matched := countExact(profile.Psychological.PersonalityTypes, sarnoPersonalities)
	score += float64(matched) / float64(len(sarnoPersonalities)) * 35

	if profile.PainHistory.PainFrequency != models.FrequencyConstant {
		score += 10
	}
	for _, trigger := range profile.PainHistory.Triggers {
		if strings.Contains(strings.ToLower(trigger), "stress") {
			score += 10
			break
		}
	}

	return int(math.Min(score, 100))
}

// IdentifyRedFlags returns human-readable warnings for findings that need
// medical review before any mind-body work begins.
func (s *Service) IdentifyRedFlags(profile *models.UserProfile) []string {
	var redFlags []string

	if profile.PersonalInfo.Age > 70 {
		redFlags = append(redFlags, "Age over 70 - increased risk of serious conditions")
	}

	if profile.PainHistory.PainIntensity >= 9 {
		redFlags = append(redFlags, "Severe pain intensity - rule out serious pathology")
	}

	if profile.PainHistory.PainFrequency == models.FrequencyConstant &&
		profile.PainHistory.PainIntensity >= 7 {
		redFlags = append(redFlags, "Constant severe pain - requires medical evaluation")
	}

	if countSubstring(profile.PainHistory.PrimarySymptoms, seriousSymptomTerms) > 0 {
		redFlags = append(redFlags, "Neurological symptoms present - medical clearance required")
	}

	if time.Since(profile.PainHistory.OnsetDate) < 30*24*time.Hour &&
		profile.PainHistory.PainIntensity >= 8 {
		redFlags = append(redFlags, "Recent onset of severe pain - rule out acute conditions")
	}

	return redFlags
}

// GenerateRecommendations produces next-step guidance keyed off the
// likelihood band plus personality-specific additions.
func (s *Service) GenerateRecommendations(profile *models.UserProfile) []string {
	var recommendations []string

	likelihood := s.TMSLikelihood(profile)
	switch {
	case likelihood >= 70:
		recommendations = append(recommendations,
			"High likelihood of TMS - begin education phase immediately",
			"Focus on understanding the mind-body connection",
			"Start daily journaling to explore emotional patterns",
		)
	case likelihood >= 40:
		recommendations = append(recommendations,
			"Moderate likelihood of TMS - continue assessment",
			"Consider medical evaluation to rule out structural issues",
			"Begin stress management techniques",
		)
	default:
		recommendations = append(recommendations,
			"Lower likelihood of TMS - medical evaluation recommended",
			"Focus on conventional treatment approaches",
			"Monitor for psychological factors",
		)
	}

	if contains(profile.Psychological.PersonalityTypes, "perfectionist") {
		recommendations = append(recommendations, "Address perfectionist tendencies through cognitive work")
	}
	if contains(profile.Psychological.PersonalityTypes, "people-pleaser") {
		recommendations = append(recommendations, "Practice setting boundaries and expressing needs")
	}

	return recommendations
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// countExact counts how many entries of values appear verbatim in allowed.
func countExact(values, allowed []string) int {
	count := 0
	for _, v := range values {
		if contains(allowed, v) {
			count++
		}
	}
	return count
}

// countSubstring counts entries of values containing any of the terms,
// case-insensitively.
func countSubstring(values, terms []string) int {
	count := 0
	for _, v := range values {
		lower := strings.ToLower(v)
		for _, term := range terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				count++
				break
			}
		}
	}
	return count
}
