package sarno

import (
	"math"
	"strings"
	"testing"

	"github.com/tms-recovery/backend/internal/models"
)

func fixedResponder() *Responder {
	r := NewResponder()
	r.rng = func(n int) int { return 0 }
	return r
}

func chatContext(sessionID string) models.ConversationContext {
	return models.ConversationContext{
		SessionID:    sessionID,
		CurrentPhase: "treatment",
		MessageCount: 3,
	}
}

func TestCrisisLanguageShortCircuits(t *testing.T) {
	r := fixedResponder()

	resp := r.GenerateResponse("Some days I feel like I can't go on anymore", chatContext("s1"))

	if resp.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", resp.Confidence)
	}
	if !strings.Contains(resp.Message, "988") {
		t.Errorf("crisis reply should point at the 988 lifeline: %q", resp.Message)
	}
	found := false
	for _, flag := range resp.RedFlags {
		if flag == "crisis_language" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected crisis_language red flag, got %v", resp.RedFlags)
	}
	if len(resp.Resources) != 1 || resp.Resources[0].URL != "tel:988" {
		t.Errorf("unexpected crisis resources: %v", resp.Resources)
	}
}

func TestMedicalKeywordsShortCircuit(t *testing.T) {
	r := fixedResponder()

	resp := r.GenerateResponse("I have had a fever with my back pain for two days", chatContext("s1"))

	if resp.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", resp.Confidence)
	}
	if len(resp.RedFlags) != 1 || resp.RedFlags[0] != "medical_emergency" {
		t.Errorf("expected medical_emergency red flag, got %v", resp.RedFlags)
	}
	if !strings.Contains(resp.Message, "immediate medical attention") {
		t.Errorf("medical reply should direct the user to care: %q", resp.Message)
	}
}

func TestCrisisWinsOverMedical(t *testing.T) {
	r := fixedResponder()

	resp := r.GenerateResponse("After the overdose I had a fever", chatContext("s1"))

	if len(resp.RedFlags) == 0 || resp.RedFlags[0] != "crisis_language" {
		t.Errorf("crisis check should run before the medical one, got %v", resp.RedFlags)
	}
}

func TestAnalyzeMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		intent   string
		category string
		urgency  string
		emotions []string
	}{
		{
			name:     "information seeking about treatment",
			message:  "What exercise routine can I resume?",
			intent:   "information_seeking",
			category: "treatment",
			urgency:  "low",
		},
		{
			name:     "fear about symptoms",
			message:  "I'm afraid my pain means something is broken",
			intent:   "fear_expression",
			category: "symptoms",
			urgency:  "low",
			emotions: []string{"fear"},
		},
		{
			name:     "worried about the doctor visit",
			message:  "I'm worried my doctor missed a cause",
			intent:   "general_question",
			category: "medical",
			urgency:  "medium",
		},
		{
			name:     "anger classified as emotions",
			message:  "I get so angry at my family for not believing me",
			intent:   "general_question",
			category: "emotions",
			urgency:  "low",
			emotions: []string{"anger"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := analyzeMessage(tt.message)
			if analysis.Intent != tt.intent {
				t.Errorf("intent = %s, want %s", analysis.Intent, tt.intent)
			}
			if analysis.Category != tt.category {
				t.Errorf("category = %s, want %s", analysis.Category, tt.category)
			}
			if analysis.Urgency != tt.urgency {
				t.Errorf("urgency = %s, want %s", analysis.Urgency, tt.urgency)
			}
			if len(tt.emotions) > 0 {
				for _, emotion := range tt.emotions {
					if !contains(analysis.Emotions, emotion) {
						t.Errorf("expected emotion %s in %v", emotion, analysis.Emotions)
					}
				}
			}
		})
	}
}

func TestFearfulSymptomMessageGetsFullResponse(t *testing.T) {
	r := fixedResponder()

	resp := r.GenerateResponse("I'm afraid to exercise because of my pain", chatContext("s1"))

	if !strings.HasPrefix(resp.Message, "I understand your fear") {
		t.Errorf("expected empathy preamble, got %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "This fear is exactly what TMS wants") {
		t.Errorf("expected the exercise-fear answer, got %q", resp.Message)
	}
	if resp.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0 after clamping", resp.Confidence)
	}
	if len(resp.Recommendations) != 2 {
		t.Errorf("expected 2 symptom recommendations, got %v", resp.Recommendations)
	}
	if len(resp.FollowUpQuestions) != 2 {
		t.Errorf("expected 2 follow-up questions, got %v", resp.FollowUpQuestions)
	}
	if len(resp.Resources) != 1 || resp.Resources[0].Title != "Talking to Your Brain" {
		t.Errorf("unexpected resources: %v", resp.Resources)
	}
	if !strings.HasSuffix(resp.Message, ClosingExpressions[0]) {
		t.Errorf("expected deterministic closing expression, got %q", resp.Message)
	}
}

func TestFirstInteractionGreeting(t *testing.T) {
	r := fixedResponder()

	ctx := chatContext("s1")
	ctx.MessageCount = 0
	ctx.UserName = "Maria"

	resp := r.GenerateResponse("tell me something", ctx)
	if !strings.Contains(resp.Message, "Hello Maria.") {
		t.Errorf("expected personalized greeting, got %q", resp.Message)
	}

	ctx.MessageCount = 4
	resp = r.GenerateResponse("tell me something", ctx)
	if strings.Contains(resp.Message, "Hello") {
		t.Errorf("greeting should only appear on the first message, got %q", resp.Message)
	}
}

func TestTeachingFallbackWhenNoQuestionMatches(t *testing.T) {
	r := fixedResponder()

	resp := r.GenerateResponse("the mind connection", chatContext("s1"))

	if !strings.Contains(resp.Message, "The mind and body are not separate entities") {
		t.Errorf("expected a core teaching snippet, got %q", resp.Message)
	}
	if math.Abs(resp.Confidence-0.85) > 1e-9 {
		t.Errorf("confidence = %v, want 0.85", resp.Confidence)
	}
}

func TestBareMessageStillGetsClosing(t *testing.T) {
	r := fixedResponder()

	resp := r.GenerateResponse("tell me something", chatContext("s1"))

	if resp.Message != ClosingExpressions[0] {
		t.Errorf("expected only the closing expression, got %q", resp.Message)
	}
	if resp.Confidence != 0.7 {
		t.Errorf("confidence = %v, want base 0.7", resp.Confidence)
	}
	if !strings.Contains(resp.Reasoning, "general_question about general") {
		t.Errorf("unexpected reasoning: %q", resp.Reasoning)
	}
}

func TestTranscriptRecording(t *testing.T) {
	r := fixedResponder()

	r.GenerateResponse("tell me something", chatContext("abc"))
	r.GenerateResponse("tell me more", chatContext("abc"))

	transcript := r.Transcript("abc")
	if len(transcript) != 4 {
		t.Fatalf("expected 4 transcript entries, got %d", len(transcript))
	}
	if transcript[0].Role != models.RoleUser || transcript[1].Role != models.RoleCounselor {
		t.Errorf("unexpected roles: %s, %s", transcript[0].Role, transcript[1].Role)
	}
	if transcript[0].Content != "tell me something" {
		t.Errorf("unexpected user turn: %q", transcript[0].Content)
	}

	r.ClearTranscript("abc")
	if len(r.Transcript("abc")) != 0 {
		t.Error("expected transcript to be cleared")
	}
}

func TestCrisisTurnsAreRecorded(t *testing.T) {
	r := fixedResponder()

	r.GenerateResponse("I think about self-harm", chatContext("s9"))

	transcript := r.Transcript("s9")
	if len(transcript) != 2 {
		t.Fatalf("expected 2 transcript entries, got %d", len(transcript))
	}
	if transcript[1].Confidence != 1.0 {
		t.Errorf("counselor turn should carry the response confidence, got %v", transcript[1].Confidence)
	}
}

func TestKnowledgeCatalogIntegrity(t *testing.T) {
	if len(CoreTeachings) != 4 {
		t.Errorf("expected 4 teaching topics, got %d", len(CoreTeachings))
	}
	if len(CommonQuestions) != 6 {
		t.Errorf("expected 6 common questions, got %d", len(CommonQuestions))
	}
	if len(CaseExamples) != 3 {
		t.Errorf("expected 3 case examples, got %d", len(CaseExamples))
	}
	if len(Contraindications) != 4 {
		t.Errorf("expected 4 contraindications, got %d", len(Contraindications))
	}
	if len(ClosingExpressions) != 11 {
		t.Errorf("expected 11 closing expressions, got %d", len(ClosingExpressions))
	}
	if len(Techniques) != 5 {
		t.Errorf("expected 5 techniques, got %d", len(Techniques))
	}
	for _, q := range CommonQuestions {
		if len(q.Keywords) == 0 {
			t.Errorf("question %q has no keywords", q.Question)
		}
	}
}
