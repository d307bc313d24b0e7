package sarno

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/tms-recovery/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

type messageMetadata struct {
	RedFlags        []string `json:"red_flags,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// SaveMessage persists a single chat turn.
func (s *Store) SaveMessage(userID uuid.UUID, msg models.ChatMessage) error {
	meta, err := json.Marshal(messageMetadata{
		RedFlags:        msg.RedFlags,
		Recommendations: msg.Recommendations,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message metadata: %w", err)
	}

	query := `
		INSERT INTO chat_messages (id, user_id, session_id, role, content, confidence, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = s.db.Exec(query, msg.ID, userID, msg.SessionID, msg.Role, msg.Content,
		msg.Confidence, meta, msg.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	return nil
}

// GetSessionMessages returns a session's messages in chronological order.
// Sessions belong to a user; another user's session reads back empty.
func (s *Store) GetSessionMessages(userID, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	query := `
		SELECT id, session_id, role, content, COALESCE(confidence, 0), COALESCE(metadata, '{}'), created_at
		FROM chat_messages
		WHERE user_id = $1 AND session_id = $2
		ORDER BY created_at ASC`

	rows, err := s.db.Query(query, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var msg models.ChatMessage
		var rawMeta []byte
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content,
			&msg.Confidence, &rawMeta, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		var meta messageMetadata
		if err := json.Unmarshal(rawMeta, &meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message metadata: %w", err)
		}
		msg.RedFlags = meta.RedFlags
		msg.Recommendations = meta.Recommendations
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

// DeleteSession removes a session's persisted messages.
func (s *Store) DeleteSession(userID, sessionID uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM chat_messages WHERE user_id = $1 AND session_id = $2`,
		userID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	return nil
}
