package gamification

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

// GetOrCreateStats loads the stats document for a user, initializing an
// empty one on first access.
func (s *Store) GetOrCreateStats(userID uuid.UUID) (*models.UserStats, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT data FROM user_stats WHERE user_id = $1`, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		stats := &models.UserStats{UserID: userID.String()}
		NewEngine(stats) // fill defaults
		if err := s.SaveStats(userID, stats); err != nil {
			return nil, err
		}
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	var stats models.UserStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &stats, nil
}

func (s *Store) SaveStats(userID uuid.UUID, stats *models.UserStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO user_stats (user_id, data, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = NOW()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}
