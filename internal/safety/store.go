package safety

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

// RecordRedFlags persists triggered flags. The UNIQUE(user_id, flag_id)
// constraint makes re-triggering a no-op, so the stored log never holds
// duplicates even when the screening result does.
func (s *Store) RecordRedFlags(userID uuid.UUID, flags []models.RedFlag) error {
	for _, flag := range flags {
		_, err := s.db.Exec(`
			INSERT INTO safety_red_flags (user_id, flag_id, triggered_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (user_id, flag_id) DO NOTHING`,
			userID, flag.ID,
		)
		if err != nil {
			return fmt.Errorf("record red flag %s: %w", flag.ID, err)
		}
	}
	return nil
}

func (s *Store) RecordCompletedCheck(userID uuid.UUID, checkID string, responses map[string]any, outcome string) error {
	raw, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO safety_checks_completed (user_id, check_id, responses, outcome, completed_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		userID, checkID, raw, outcome,
	)
	if err != nil {
		return fmt.Errorf("record safety check: %w", err)
	}
	return nil
}

// AcknowledgeDisclaimer is idempotent per user and disclaimer.
func (s *Store) AcknowledgeDisclaimer(userID uuid.UUID, disclaimerID string) error {
	_, err := s.db.Exec(`
		INSERT INTO disclaimer_acknowledgments (user_id, disclaimer_id, acknowledged_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, disclaimer_id) DO NOTHING`,
		userID, disclaimerID,
	)
	if err != nil {
		return fmt.Errorf("acknowledge disclaimer: %w", err)
	}
	return nil
}

func (s *Store) SetMedicalClearance(userID uuid.UUID, clearance models.MedicalClearance) error {
	_, err := s.db.Exec(`
		INSERT INTO medical_clearances (user_id, provided_by, notes, cleared_at, valid_until)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			provided_by = $2, notes = $3, cleared_at = $4, valid_until = $5`,
		userID, clearance.ProvidedBy, clearance.Notes, clearance.Date, clearance.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("set medical clearance: %w", err)
	}
	return nil
}

// GetSafetyProfile assembles the full per-user safety log.
func (s *Store) GetSafetyProfile(userID uuid.UUID) (*models.UserSafetyProfile, error) {
	profile := &models.UserSafetyProfile{
		UserID:                  userID.String(),
		AcknowledgedDisclaimers: []string{},
		RedFlagsTriggered:       []models.TriggeredRedFlag{},
		SafetyChecksCompleted:   []models.CompletedSafetyCheck{},
	}

	rows, err := s.db.Query(`
		SELECT flag_id, triggered_at, acknowledged
		FROM safety_red_flags WHERE user_id = $1 ORDER BY triggered_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("load red flags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f models.TriggeredRedFlag
		if err := rows.Scan(&f.FlagID, &f.TriggeredAt, &f.Acknowledged); err != nil {
			return nil, err
		}
		profile.RedFlagsTriggered = append(profile.RedFlagsTriggered, f)
	}

	checkRows, err := s.db.Query(`
		SELECT check_id, responses, outcome, completed_at
		FROM safety_checks_completed WHERE user_id = $1 ORDER BY completed_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("load safety checks: %w", err)
	}
	defer checkRows.Close()
	for checkRows.Next() {
		var c models.CompletedSafetyCheck
		var raw []byte
		if err := checkRows.Scan(&c.CheckID, &raw, &c.Outcome, &c.CompletedAt); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			json.Unmarshal(raw, &c.Responses)
		}
		profile.SafetyChecksCompleted = append(profile.SafetyChecksCompleted, c)
	}

	ackRows, err := s.db.Query(`
		SELECT disclaimer_id FROM disclaimer_acknowledgments
		WHERE user_id = $1 ORDER BY acknowledged_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("load acknowledgments: %w", err)
	}
	defer ackRows.Close()
	for ackRows.Next() {
		var id string
		if err := ackRows.Scan(&id); err != nil {
			return nil, err
		}
		profile.AcknowledgedDisclaimers = append(profile.AcknowledgedDisclaimers, id)
	}

	var clearance models.MedicalClearance
	var validUntil sql.NullTime
	err = s.db.QueryRow(`
		SELECT provided_by, COALESCE(notes, ''), cleared_at, valid_until
		FROM medical_clearances WHERE user_id = $1`,
		userID,
	).Scan(&clearance.ProvidedBy, &clearance.Notes, &clearance.Date, &validUntil)
	if err == nil {
		if validUntil.Valid {
			t := validUntil.Time
			clearance.ValidUntil = &t
		}
		profile.MedicalClearance = &clearance
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("load medical clearance: %w", err)
	}

	return profile, nil
}

// AcknowledgeRedFlag marks one triggered flag as seen by the user.
func (s *Store) AcknowledgeRedFlag(userID uuid.UUID, flagID string) error {
	res, err := s.db.Exec(`
		UPDATE safety_red_flags SET acknowledged = TRUE
		WHERE user_id = $1 AND flag_id = $2`,
		userID, flagID,
	)
	if err != nil {
		return fmt.Errorf("acknowledge red flag: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("red flag %s not found for user", flagID)
	}
	return nil
}
