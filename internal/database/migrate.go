package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Statements are split per driver because the auto-increment syntax
// differs. Everything else is shared SQL.
var migrations = map[string][]string{
	"postgres": {
		`CREATE TABLE IF NOT EXISTS feedback_events (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			skill_id TEXT NOT NULL DEFAULT '',
			action TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_events_user ON feedback_events (user_id)`,
		`CREATE TABLE IF NOT EXISTS feedback_event_categories (
			event_id BIGINT NOT NULL REFERENCES feedback_events(id) ON DELETE CASCADE,
			category TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_categories_event ON feedback_event_categories (event_id)`,
	},
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS feedback_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			skill_id TEXT NOT NULL DEFAULT '',
			action TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_events_user ON feedback_events (user_id)`,
		`CREATE TABLE IF NOT EXISTS feedback_event_categories (
			event_id INTEGER NOT NULL REFERENCES feedback_events(id) ON DELETE CASCADE,
			category TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_categories_event ON feedback_event_categories (event_id)`,
	},
}

// Migrate creates the feedback schema if it does not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements, ok := migrations[db.DriverName()]
	if !ok {
		return fmt.Errorf("no migrations for driver: %s", db.DriverName())
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
