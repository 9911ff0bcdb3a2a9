package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per stored document. The to-do lists live in a single row whose
	// body is the whole JSON document, replaced on every save.
	`CREATE TABLE IF NOT EXISTS documents (
		name      TEXT PRIMARY KEY,
		revision  TEXT NOT NULL,
		body      TEXT NOT NULL,
		saved_at  TEXT NOT NULL
	)`,
}
