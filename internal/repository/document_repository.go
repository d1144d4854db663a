package repository

import (
	"context"
	"time"

	"freelance-desk/internal/database"
)

type DocumentInsert struct {
	NegotiationID *int64
	DocType       string
	Content       string
	CreatedAt     time.Time
}

type DocumentRepository interface {
	Insert(ctx context.Context, d DocumentInsert) (int64, error)
}

type PostgresDocumentRepository struct {
	db database.DB
}

func NewPostgresDocumentRepository(db database.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

func (r *PostgresDocumentRepository) Insert(ctx context.Context, d DocumentInsert) (int64, error) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO documents (negotiation_id, doc_type, content, created_at)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id`,
		d.NegotiationID, d.DocType, d.Content, d.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
