package repository

import (
	"context"
	"strings"
	"time"

	"freelance-desk/internal/database"
)

type MatchUpsert struct {
	UserID        int64
	ProjectID     int64
	MatchCount    int
	MatchedSkills []string
	MatchedAt     time.Time
}

type MatchRepository interface {
	Upsert(ctx context.Context, m MatchUpsert) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, m MatchUpsert) error {
	if m.UserID <= 0 || m.ProjectID <= 0 {
		return nil
	}
	if m.MatchedAt.IsZero() {
		m.MatchedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO matches (user_id, project_id, match_count, matched_skills, matched_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (user_id, project_id) DO UPDATE SET
			match_count = EXCLUDED.match_count,
			matched_skills = EXCLUDED.matched_skills,
			matched_at = EXCLUDED.matched_at`,
		m.UserID,
		m.ProjectID,
		m.MatchCount,
		strings.Join(m.MatchedSkills, ", "),
		m.MatchedAt,
	)
	return err
}
