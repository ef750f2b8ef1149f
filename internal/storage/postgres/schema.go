package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied statement by statement at startup. Every statement is
// idempotent so restarts against an existing database are no-ops.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
	id          SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	image_url   TEXT,
	tags        TEXT[],
	project_url TEXT,
	github_url  TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS skills (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	proficiency INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS messages (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
}

// EnsureSchema creates the projects, skills and messages tables if missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
