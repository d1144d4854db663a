package repository

import (
	"context"
	"database/sql"
	"errors"

	"freelance-desk/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID     int64
	Name   string
	Email  string
	Skills string
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (User, error)
	ListIDs(ctx context.Context) ([]int64, error)
	ListRecent(ctx context.Context, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(skills, '') FROM users WHERE id = $1`,
		id,
	)

	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Skills); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) ListRecent(ctx context.Context, limit int) ([]User, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, COALESCE(skills, '') FROM users ORDER BY id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0, limit)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Skills); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
