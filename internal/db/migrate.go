package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements. Statements are idempotent
// (IF NOT EXISTS) so the full list re-runs safely on every start.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		thread_id  TEXT PRIMARY KEY,
		plan_json  TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS history (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		thread_id  TEXT NOT NULL REFERENCES sessions(thread_id) ON DELETE CASCADE,
		role       TEXT NOT NULL CHECK(role IN ('user', 'assistant')),
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_history_thread ON history(thread_id, id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
