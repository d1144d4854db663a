package seeder

import (
	"context"
	"fmt"

	"freelance-desk/internal/database"
)

// SeedDefaults inserts the sample users, projects, clients, and proposals
// used by local development and the CLI. Each table is seeded only when it is
// still empty.
func SeedDefaults(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	empty, err := tableEmpty(ctx, db, "users")
	if err != nil {
		return err
	}
	if empty {
		if _, err = seedUsers(ctx, db); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	empty, err = tableEmpty(ctx, db, "projects")
	if err != nil {
		return err
	}
	var projectIDs []int64
	if empty {
		if projectIDs, err = seedProjects(ctx, db); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}

	empty, err = tableEmpty(ctx, db, "clients")
	if err != nil {
		return err
	}
	var clientIDs []int64
	if empty {
		if clientIDs, err = seedClients(ctx, db); err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
	}

	empty, err = tableEmpty(ctx, db, "proposals")
	if err != nil {
		return err
	}
	if empty && len(projectIDs) > 0 && len(clientIDs) > 0 {
		if err := seedProposals(ctx, db, projectIDs, clientIDs); err != nil {
			return fmt.Errorf("seed proposals: %w", err)
		}
	}

	return nil
}

func tableEmpty(ctx context.Context, db database.DB, table string) (bool, error) {
	var n int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
