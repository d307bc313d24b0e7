package sarno

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tms-recovery/backend/internal/models"
)

const crisisReply = `I'm very concerned about what you've shared. These feelings are serious and require immediate professional help. Please reach out for help immediately:

Crisis Resources:
- 988 Suicide & Crisis Lifeline: Call or text 988
- Emergency Services: Call 911
- Crisis Text Line: Text HOME to 741741

While TMS and emotional healing are important, your immediate safety comes first. Please contact one of these resources right now. You don't have to face this alone, and there are people who want to help you through this difficult time.

I care about your wellbeing, and I want you to get the support you need right now.`

const medicalReply = `Based on what you've described, this may require immediate medical attention. While I believe strongly in the mind-body connection and TMS, certain symptoms require immediate medical evaluation to rule out serious conditions.

Please seek medical attention if you have:
- Fever with back pain (possible infection)
- Progressive weakness or numbness
- Bowel or bladder problems
- Severe pain after trauma/injury

You can explore TMS after ensuring there's no structural emergency. Your safety comes first, and a proper medical evaluation will give you peace of mind to focus on TMS healing if appropriate.`

// teachingTopics fixes the lookup order over CoreTeachings so responses
// are deterministic for a given message.
var teachingTopics = []string{"tmstheory", "mindbody", "psychological", "treatment"}

// messageAnalysis is the classifier output the response assembly works from.
type messageAnalysis struct {
	Intent   string
	Emotions []string
	Keywords []string
	Urgency  string
	Category string
}

type relevantKnowledge struct {
	Questions []KnowledgeEntry
	Teachings [][]string // topic statements, best match first
	Cases     []CaseExample
}

// Responder assembles counselor replies from the knowledge base. It keeps
// an in-memory transcript per session in addition to the persisted log.
type Responder struct {
	mu          sync.Mutex
	transcripts map[string][]models.ChatMessage
	rng         func(n int) int
	now         func() time.Time
}

func NewResponder() *Responder {
	return &Responder{
		transcripts: make(map[string][]models.ChatMessage),
		rng:         rand.Intn,
		now:         time.Now,
	}
}

// GenerateResponse runs the safety pre-check, classifies the message,
// assembles a reply and appends both turns to the session transcript.
func (r *Responder) GenerateResponse(message string, ctx models.ConversationContext) *models.CounselorResponse {
	if resp := r.safetyResponse(message); resp != nil {
		r.record(ctx, message, resp)
		return resp
	}

	analysis := analyzeMessage(message)
	knowledge := findRelevantKnowledge(analysis)
	resp := r.craftResponse(analysis, knowledge, ctx)

	r.record(ctx, message, resp)
	return resp
}

// safetyResponse returns a fixed intervention reply when the message
// contains crisis or medical red-flag language, nil otherwise. Crisis
// language wins over medical.
func (r *Responder) safetyResponse(message string) *models.CounselorResponse {
	lower := strings.ToLower(message)

	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return &models.CounselorResponse{
				Message:    crisisReply,
				Confidence: 1.0,
				Reasoning:  "Crisis intervention required - immediate professional help needed",
				RedFlags:   []string{"crisis_language", "suicide_risk"},
				Resources:  crisisResources,
			}
		}
	}

	for _, kw := range medicalKeywords {
		if strings.Contains(lower, kw) {
			return &models.CounselorResponse{
				Message:    medicalReply,
				Confidence: 1.0,
				Reasoning:  "Medical red flags detected - professional evaluation needed",
				RedFlags:   []string{"medical_emergency"},
				Resources:  medicalResources,
			}
		}
	}

	return nil
}

func analyzeMessage(message string) messageAnalysis {
	lower := strings.ToLower(message)

	intent := "general_question"
	switch {
	case strings.Contains(lower, "how") || strings.Contains(lower, "what"):
		intent = "information_seeking"
	case strings.Contains(lower, "should i") || strings.Contains(lower, "what do"):
		intent = "advice_seeking"
	case strings.Contains(lower, "pain") && strings.Contains(lower, "worse"):
		intent = "symptom_concern"
	case strings.Contains(lower, "afraid") || strings.Contains(lower, "scared"):
		intent = "fear_expression"
	}

	var emotions []string
	if strings.Contains(lower, "frustrated") || strings.Contains(lower, "angry") {
		emotions = append(emotions, "anger")
	}
	if strings.Contains(lower, "scared") || strings.Contains(lower, "afraid") {
		emotions = append(emotions, "fear")
	}
	if strings.Contains(lower, "sad") || strings.Contains(lower, "depressed") {
		emotions = append(emotions, "sadness")
	}
	if strings.Contains(lower, "hopeless") || strings.Contains(lower, "giving up") {
		emotions = append(emotions, "despair")
	}
	if strings.Contains(lower, "better") || strings.Contains(lower, "improving") {
		emotions = append(emotions, "hope")
	}

	stopwords := map[string]bool{"that": true, "this": true, "with": true, "have": true, "been": true, "will": true}
	var keywords []string
	for _, word := range strings.Fields(lower) {
		if len(word) > 3 && !stopwords[word] {
			keywords = append(keywords, word)
		}
	}

	urgency := "low"
	if strings.Contains(lower, "urgent") || strings.Contains(lower, "emergency") {
		urgency = "high"
	} else if strings.Contains(lower, "worried") || strings.Contains(lower, "concerned") {
		urgency = "medium"
	}

	category := "general"
	switch {
	case strings.Contains(lower, "pain") || strings.Contains(lower, "symptom"):
		category = "symptoms"
	case strings.Contains(lower, "exercise") || strings.Contains(lower, "activity"):
		category = "treatment"
	case strings.Contains(lower, "emotion") || strings.Contains(lower, "angry"):
		category = "emotions"
	case strings.Contains(lower, "doctor") || strings.Contains(lower, "medical"):
		category = "medical"
	}

	return messageAnalysis{
		Intent:   intent,
		Emotions: emotions,
		Keywords: keywords,
		Urgency:  urgency,
		Category: category,
	}
}

func findRelevantKnowledge(analysis messageAnalysis) relevantKnowledge {
	var out relevantKnowledge

	for _, q := range CommonQuestions {
		if len(out.Questions) == 2 {
			break
		}
		if q.Category == analysis.Category || overlaps(q.Keywords, analysis.Keywords) {
			out.Questions = append(out.Questions, q)
		}
	}

	for _, topic := range teachingTopics {
		if len(out.Teachings) == 3 {
			break
		}
		for _, kw := range analysis.Keywords {
			if strings.Contains(topic, kw) || strings.Contains(kw, topic) {
				out.Teachings = append(out.Teachings, CoreTeachings[topic])
				break
			}
		}
	}

	for _, c := range CaseExamples {
		if len(out.Cases) == 1 {
			break
		}
		if c.Category == analysis.Category || containsAnyKeyword(c.Scenario, analysis.Keywords) {
			out.Cases = append(out.Cases, c)
		}
	}

	return out
}

func (r *Responder) craftResponse(analysis messageAnalysis, knowledge relevantKnowledge, ctx models.ConversationContext) *models.CounselorResponse {
	var b strings.Builder
	confidence := 0.7
	var recommendations []string

	switch {
	case contains(analysis.Emotions, "fear"):
		b.WriteString("I understand your fear - it's completely natural when dealing with chronic pain. ")
		confidence += 0.1
	case contains(analysis.Emotions, "anger"):
		b.WriteString("Your frustration is understandable, and actually, that anger you're feeling is very important to acknowledge. ")
		confidence += 0.1
	case contains(analysis.Emotions, "despair"):
		b.WriteString("I hear the discouragement in your words. Many of my patients have felt exactly as you do right now. ")
		confidence += 0.1
	}

	if ctx.MessageCount == 0 {
		if ctx.UserName != "" {
			fmt.Fprintf(&b, "Hello %s. ", ctx.UserName)
		} else {
			b.WriteString("Hello. ")
		}
	}

	if len(knowledge.Questions) > 0 {
		b.WriteString(knowledge.Questions[0].Response + " ")
		confidence += 0.2
	} else if len(knowledge.Teachings) > 0 {
		b.WriteString(knowledge.Teachings[0][0] + " ")
		confidence += 0.15
	}

	if len(knowledge.Cases) > 0 {
		b.WriteString("\n\n" + knowledge.Cases[0].Response)
		confidence += 0.1
	}

	switch analysis.Category {
	case "symptoms":
		recommendations = append(recommendations,
			"Resume normal physical activities gradually",
			"Practice daily emotional awareness exercises")
		b.WriteString("\n\nRemember: the pain is real, but it's not structural. Your body is not damaged.")
	case "emotions":
		recommendations = append(recommendations,
			"Start a daily emotion journal",
			"Practice the \"talking to your brain\" technique")
		b.WriteString("\n\nWhat you're feeling is the key to your healing. Don't push these emotions away - acknowledge them.")
	case "treatment":
		recommendations = append(recommendations,
			"Stop treatments that reinforce structural thinking",
			"Focus on psychological approaches instead")
	}

	b.WriteString("\n\n" + ClosingExpressions[r.rng(len(ClosingExpressions))])

	if confidence > 1.0 {
		confidence = 1.0
	}

	return &models.CounselorResponse{
		Message:    strings.TrimSpace(b.String()),
		Confidence: confidence,
		Reasoning: fmt.Sprintf("Responded to %s about %s with %d relevant knowledge pieces",
			analysis.Intent, analysis.Category, len(knowledge.Questions)+len(knowledge.Teachings)),
		Recommendations:   recommendations,
		FollowUpQuestions: followUpQuestions(analysis),
		Resources:         suggestResources(analysis),
	}
}

func followUpQuestions(analysis messageAnalysis) []string {
	switch analysis.Category {
	case "symptoms":
		return []string{
			"What emotions were you experiencing when the pain first started?",
			"Have you noticed if the pain changes with stress levels?",
		}
	case "emotions":
		return []string{
			"What situations make you feel most angry or frustrated?",
			"Do you consider yourself a perfectionist or people-pleaser?",
		}
	case "treatment":
		return []string{
			"What activities have you stopped doing because of the pain?",
			"How do you feel about the idea of resuming normal activities?",
		}
	}
	return nil
}

func suggestResources(analysis messageAnalysis) []models.ChatResource {
	switch analysis.Category {
	case "emotions":
		return []models.ChatResource{{
			Type:        "technique",
			Title:       "Emotion Journaling",
			Description: "Daily practice to identify and process repressed emotions",
			URL:         "/techniques/emotion-journaling",
		}}
	case "symptoms":
		return []models.ChatResource{{
			Type:        "exercise",
			Title:       "Talking to Your Brain",
			Description: "Direct communication with your unconscious mind",
			URL:         "/techniques/talking-to-brain",
		}}
	}
	return nil
}

// record appends the user turn and the counselor turn to the in-memory
// session transcript.
func (r *Responder) record(ctx models.ConversationContext, userMessage string, resp *models.CounselorResponse) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcripts[ctx.SessionID] = append(r.transcripts[ctx.SessionID],
		models.ChatMessage{
			ID:        uuid.New().String(),
			SessionID: ctx.SessionID,
			Role:      models.RoleUser,
			Content:   userMessage,
			Timestamp: now,
		},
		models.ChatMessage{
			ID:              uuid.New().String(),
			SessionID:       ctx.SessionID,
			Role:            models.RoleCounselor,
			Content:         resp.Message,
			Timestamp:       now,
			Confidence:      resp.Confidence,
			RedFlags:        resp.RedFlags,
			Recommendations: resp.Recommendations,
		},
	)
}

// Transcript returns the in-memory history for a session.
func (r *Responder) Transcript(sessionID string) []models.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := r.transcripts[sessionID]
	out := make([]models.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// ClearTranscript drops the in-memory history for a session.
func (r *Responder) ClearTranscript(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.transcripts, sessionID)
}

func overlaps(keywords, messageWords []string) bool {
	for _, kw := range keywords {
		if contains(messageWords, kw) {
			return true
		}
	}
	return false
}

func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
