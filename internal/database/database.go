package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "tms_user")
	password := getEnv("DB_PASSWORD", "tms_password")
	dbname := getEnv("DB_NAME", "tms_recovery")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS user_profiles (
		id         UUID PRIMARY KEY,
		data       JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS treatment_progress (
		user_id    UUID PRIMARY KEY REFERENCES user_profiles(id) ON DELETE CASCADE,
		data       JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS user_stats (
		user_id    UUID PRIMARY KEY REFERENCES user_profiles(id) ON DELETE CASCADE,
		data       JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS safety_red_flags (
		id           BIGSERIAL PRIMARY KEY,
		user_id      UUID NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		flag_id      VARCHAR(100) NOT NULL,
		triggered_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		acknowledged BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE(user_id, flag_id)
	);

	CREATE TABLE IF NOT EXISTS safety_checks_completed (
		id           BIGSERIAL PRIMARY KEY,
		user_id      UUID NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		check_id     VARCHAR(100) NOT NULL,
		responses    JSONB,
		outcome      VARCHAR(30) NOT NULL,
		completed_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS disclaimer_acknowledgments (
		id              BIGSERIAL PRIMARY KEY,
		user_id         UUID NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		disclaimer_id   VARCHAR(100) NOT NULL,
		acknowledged_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, disclaimer_id)
	);

	CREATE TABLE IF NOT EXISTS medical_clearances (
		user_id     UUID PRIMARY KEY REFERENCES user_profiles(id) ON DELETE CASCADE,
		provided_by VARCHAR(255) NOT NULL,
		notes       TEXT,
		cleared_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		valid_until TIMESTAMP WITH TIME ZONE
	);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
		session_id UUID NOT NULL,
		role       VARCHAR(20) NOT NULL,
		content    TEXT NOT NULL,
		confidence REAL,
		metadata   JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_red_flags_user ON safety_red_flags(user_id);
	CREATE INDEX IF NOT EXISTS idx_checks_user ON safety_checks_completed(user_id, completed_at);
	CREATE INDEX IF NOT EXISTS idx_chat_session ON chat_messages(session_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_chat_user ON chat_messages(user_id, created_at DESC);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
