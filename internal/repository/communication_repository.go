package repository

import (
	"context"
	"time"

	"freelance-desk/internal/database"
)

type CommunicationInsert struct {
	NegotiationID *int64
	Message       string
	Tone          string
	PriorityJSON  []byte
	CreatedAt     time.Time
}

type CommunicationRepository interface {
	Insert(ctx context.Context, c CommunicationInsert) (int64, error)
}

type PostgresCommunicationRepository struct {
	db database.DB
}

func NewPostgresCommunicationRepository(db database.DB) *PostgresCommunicationRepository {
	return &PostgresCommunicationRepository{db: db}
}

func (r *PostgresCommunicationRepository) Insert(ctx context.Context, c CommunicationInsert) (int64, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO communications (negotiation_id, message, tone, priority_json, created_at)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id`,
		c.NegotiationID, c.Message, c.Tone, c.PriorityJSON, c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
