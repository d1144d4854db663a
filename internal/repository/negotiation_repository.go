package repository

import (
	"context"
	"time"

	"freelance-desk/internal/database"
)

type NegotiationInsert struct {
	ProjectID  int64
	ClientID   int64
	ResultJSON []byte
	CreatedAt  time.Time
}

type NegotiationRepository interface {
	Insert(ctx context.Context, n NegotiationInsert) (int64, error)
}

type PostgresNegotiationRepository struct {
	db database.DB
}

func NewPostgresNegotiationRepository(db database.DB) *PostgresNegotiationRepository {
	return &PostgresNegotiationRepository{db: db}
}

func (r *PostgresNegotiationRepository) Insert(ctx context.Context, n NegotiationInsert) (int64, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO negotiations (project_id, client_id, result_json, created_at)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id`,
		n.ProjectID, n.ClientID, n.ResultJSON, n.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
