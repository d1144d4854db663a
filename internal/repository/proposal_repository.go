package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freelance-desk/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrProposalNotFound = errors.New("proposal not found")

type Proposal struct {
	ID                   int64
	ProjectID            int64
	ClientID             int64
	ProposedBudget       *int64
	ProposedTimelineDays *int64
	ProposedDeliverables *string
	CreatedAt            time.Time
}

// ProposalListRow is a proposal joined with its project title and client name
// for listings.
type ProposalListRow struct {
	ID                   int64
	ProjectID            int64
	ProjectTitle         string
	ClientID             int64
	ClientName           string
	ProposedBudget       *int64
	ProposedTimelineDays *int64
}

type ProposalRepository interface {
	// FindLatest returns the most recent proposal for the (project, client)
	// pair. Older proposals for the same pair are ignored.
	FindLatest(ctx context.Context, projectID, clientID int64) (Proposal, error)
	ListRecent(ctx context.Context, limit int) ([]ProposalListRow, error)
	ListByProject(ctx context.Context, projectID int64) ([]ProposalListRow, error)
	Count(ctx context.Context) (int64, error)
}

type PostgresProposalRepository struct {
	db database.DB
}

func NewPostgresProposalRepository(db database.DB) *PostgresProposalRepository {
	return &PostgresProposalRepository{db: db}
}

func (r *PostgresProposalRepository) FindLatest(ctx context.Context, projectID, clientID int64) (Proposal, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, project_id, client_id, proposed_budget, proposed_timeline_days, proposed_deliverables, created_at
		 FROM proposals
		 WHERE project_id = $1 AND client_id = $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		projectID, clientID,
	)

	var p Proposal
	err := row.Scan(&p.ID, &p.ProjectID, &p.ClientID, &p.ProposedBudget, &p.ProposedTimelineDays, &p.ProposedDeliverables, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Proposal{}, ErrProposalNotFound
		}
		return Proposal{}, err
	}
	return p, nil
}

func (r *PostgresProposalRepository) ListRecent(ctx context.Context, limit int) ([]ProposalListRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.project_id, pr.title, p.client_id, COALESCE(c.name, ''), p.proposed_budget, p.proposed_timeline_days
		 FROM proposals p
		 JOIN projects pr ON pr.id = p.project_id
		 LEFT JOIN clients c ON c.id = p.client_id
		 ORDER BY p.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProposalListRows(rows)
}

func (r *PostgresProposalRepository) ListByProject(ctx context.Context, projectID int64) ([]ProposalListRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.project_id, pr.title, p.client_id, COALESCE(c.name, ''), p.proposed_budget, p.proposed_timeline_days
		 FROM proposals p
		 JOIN projects pr ON pr.id = p.project_id
		 LEFT JOIN clients c ON c.id = p.client_id
		 WHERE p.project_id = $1
		 ORDER BY p.created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProposalListRows(rows)
}

func (r *PostgresProposalRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM proposals`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanProposalListRows(rows database.Rows) ([]ProposalListRow, error) {
	out := make([]ProposalListRow, 0)
	for rows.Next() {
		var p ProposalListRow
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.ProjectTitle, &p.ClientID, &p.ClientName, &p.ProposedBudget, &p.ProposedTimelineDays); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
