package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"go-weather/internal/infra/database"
)

const weatherRequestsDDL = `
	CREATE TABLE IF NOT EXISTS weather_requests (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		location   VARCHAR(255) NOT NULL,
		start_date DATE NULL,
		end_date   DATE NULL,
		response   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_weather_requests_user_id ON weather_requests (user_id);
`

// Open connects through lib/pq and pings the server.
func Open(ctx context.Context, cfg database.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}

// Migrate creates the weather_requests table. The users table must exist first.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, weatherRequestsDDL); err != nil {
		return fmt.Errorf("failed to migrate weather_requests: %w", err)
	}
	return nil
}
