package models

import "time"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleCounselor = "counselor"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	Confidence      float64  `json:"confidence,omitempty"`
	RedFlags        []string `json:"red_flags,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ConversationContext is supplied by the UI with every chat message.
type ConversationContext struct {
	UserID         string `json:"user_id"`
	SessionID      string `json:"session_id"`
	CurrentPhase   string `json:"current_phase"` // assessment, education, treatment, maintenance
	UserName       string `json:"user_name,omitempty"`
	EmotionalState string `json:"emotional_state,omitempty"`
	UrgencyLevel   string `json:"urgency_level,omitempty"`
	MessageCount   int    `json:"message_count"`
}

type ChatResource struct {
	Type        string `json:"type"` // book, exercise, technique, referral
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// CounselorResponse is the assembled reply. Confidence is a display hint,
// not a statistical measure.
type CounselorResponse struct {
	Message           string         `json:"message"`
	Confidence        float64        `json:"confidence"`
	Reasoning         string         `json:"reasoning"`
	Recommendations   []string       `json:"recommendations,omitempty"`
	FollowUpQuestions []string       `json:"follow_up_questions,omitempty"`
	RedFlags          []string       `json:"red_flags,omitempty"`
	Resources         []ChatResource `json:"resources,omitempty"`
}

type ChatRequest struct {
	Message string              `json:"message"`
	Context ConversationContext `json:"context"`
}
