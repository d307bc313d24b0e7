package progress

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tms-recovery/backend/internal/models"
)

// ErrNotFound is returned when a profile or progress record does not exist.
var ErrNotFound = errors.New("record not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Store persists user profiles and treatment progress as whole JSONB
// documents: read, mutate, write back.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateProfile inserts a new profile and an empty progress document for it.
func (s *Store) CreateProfile(profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO user_profiles (id, data) VALUES ($1, $2)`, profile.ID, data); err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	prog := models.TreatmentProgress{
		UserID:    profile.ID,
		StartDate: profile.CreatedAt,
	}
	progData, err := json.Marshal(prog)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO treatment_progress (user_id, data) VALUES ($1, $2)`, profile.ID, progData); err != nil {
		return fmt.Errorf("failed to insert progress: %w", err)
	}

	return tx.Commit()
}

func (s *Store) GetProfile(userID uuid.UUID) (*models.UserProfile, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM user_profiles WHERE id = $1`, userID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *Store) SaveProfile(profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	result, err := s.db.Exec(`UPDATE user_profiles SET data = $2, updated_at = NOW() WHERE id = $1`,
		profile.ID, data)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetProgress(userID uuid.UUID) (*models.TreatmentProgress, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM treatment_progress WHERE user_id = $1`, userID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}

	var prog models.TreatmentProgress
	if err := json.Unmarshal(data, &prog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	return &prog, nil
}

func (s *Store) SaveProgress(prog *models.TreatmentProgress) error {
	data, err := json.Marshal(prog)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	query := `
		INSERT INTO treatment_progress (user_id, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	if _, err := s.db.Exec(query, prog.UserID, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
