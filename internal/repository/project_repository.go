package repository

import (
	"context"
	"database/sql"
	"errors"

	"freelance-desk/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrProjectNotFound = errors.New("project not found")

type Project struct {
	ID                   int64
	Title                string
	Description          string
	Tags                 string
	ExpectedBudget       *int64
	ExpectedTimelineDays *int64
	ExpectedDeliverables *string
}

type ProjectRepository interface {
	FindByID(ctx context.Context, id int64) (Project, error)
	List(ctx context.Context) ([]Project, error)
	ListRecent(ctx context.Context, limit int) ([]Project, error)
	Count(ctx context.Context) (int64, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, title, COALESCE(description, ''), COALESCE(tags, ''),
	expected_budget, expected_timeline_days, expected_deliverables`

func (r *PostgresProjectRepository) FindByID(ctx context.Context, id int64) (Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`,
		id,
	)

	var p Project
	if err := scanProject(row, &p); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) ListRecent(ctx context.Context, limit int) ([]Project, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, limit)
	for rows.Next() {
		var p Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanProject(row database.Row, p *Project) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Tags,
		&p.ExpectedBudget, &p.ExpectedTimelineDays, &p.ExpectedDeliverables,
	)
}
