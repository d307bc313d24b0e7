package sarno

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/tms-recovery/backend/internal/models"
)

type Service struct {
	responder *Responder
	store     *Store
}

func NewService(store *Store) *Service {
	return &Service{
		responder: NewResponder(),
		store:     store,
	}
}

// Chat generates a counselor reply and persists both turns. A missing
// session ID starts a new session.
func (s *Service) Chat(userID uuid.UUID, req models.ChatRequest) (*models.CounselorResponse, string, error) {
	if req.Message == "" {
		return nil, "", fmt.Errorf("message is required")
	}

	sessionID := req.Context.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	} else if _, err := uuid.Parse(sessionID); err != nil {
		return nil, "", fmt.Errorf("invalid session id: %w", err)
	}
	req.Context.SessionID = sessionID
	req.Context.UserID = userID.String()

	resp := s.responder.GenerateResponse(req.Message, req.Context)

	// Transcript always carries the new turns; persist them too.
	transcript := s.responder.Transcript(sessionID)
	if n := len(transcript); n >= 2 {
		for _, msg := range transcript[n-2:] {
			if err := s.store.SaveMessage(userID, msg); err != nil {
				log.Printf("[sarno] failed to persist chat message: %v", err)
			}
		}
	}

	return resp, sessionID, nil
}

func (s *Service) GetSession(userID uuid.UUID, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	return s.store.GetSessionMessages(userID, sessionID)
}

// DeleteSession clears both the persisted log and the in-memory transcript.
func (s *Service) DeleteSession(userID uuid.UUID, sessionID uuid.UUID) error {
	if err := s.store.DeleteSession(userID, sessionID); err != nil {
		return err
	}
	s.responder.ClearTranscript(sessionID.String())
	return nil
}
