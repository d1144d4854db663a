package seeder

import (
	"context"
	"fmt"

	"freelance-desk/internal/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		skills TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		tags TEXT,
		expected_budget BIGINT,
		expected_timeline_days BIGINT,
		expected_deliverables TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id BIGSERIAL PRIMARY KEY,
		project_id BIGINT REFERENCES projects(id),
		client_id BIGINT REFERENCES clients(id),
		proposed_budget BIGINT,
		proposed_timeline_days BIGINT,
		proposed_deliverables TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id),
		project_id BIGINT REFERENCES projects(id),
		match_count INT NOT NULL,
		matched_skills TEXT,
		matched_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, project_id)
	)`,
	`CREATE TABLE IF NOT EXISTS negotiations (
		id BIGSERIAL PRIMARY KEY,
		project_id BIGINT REFERENCES projects(id),
		client_id BIGINT REFERENCES clients(id),
		result_json JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS communications (
		id BIGSERIAL PRIMARY KEY,
		negotiation_id BIGINT REFERENCES negotiations(id),
		message TEXT NOT NULL,
		tone TEXT,
		priority_json JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id BIGSERIAL PRIMARY KEY,
		negotiation_id BIGINT REFERENCES negotiations(id),
		doc_type TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates every table the application needs. Statements are
// idempotent, so running it on an already initialized database is safe.
func EnsureSchema(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
