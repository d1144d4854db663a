package seeder

import (
	"context"
	"fmt"

	"freelance-desk/internal/database"

	"golang.org/x/crypto/bcrypt"
)

type defaultUser struct {
	name     string
	email    string
	password string
	skills   string
}

type defaultProject struct {
	title        string
	description  string
	tags         string
	budget       int64
	timelineDays int64
	deliverables string
}

type defaultClient struct {
	name  string
	email string
}

type defaultProposal struct {
	projectIdx   int
	clientIdx    int
	budget       int64
	timelineDays int64
	deliverables string
}

var defaultUsers = []defaultUser{
	{"Alice Johnson", "alice@email.com", "password123", "python, marketing"},
	{"Bob Chen", "bob@email.com", "securepass456", "javascript, design, photography"},
	{"Carol Davis", "carol@email.com", "mypass789", "data analysis, sql, python"},
}

var defaultProjects = []defaultProject{
	{"Personal Blog", "A simple blog website built with modern web technologies", "python, web, blog", 75000, 120, "Website, Mobile app, Admin panel"},
	{"Data Dashboard", "Interactive dashboard for visualizing sales data", "data analysis, visualization", 100000, 180, "Dashboard, API, Documentation"},
	{"Mobile Game", "Fun puzzle game for smartphones", "mobile, game, design", 25000, 45, "Game app, Graphics, Testing"},
}

var defaultClients = []defaultClient{
	{"TechCorp Ltd", "contact@techcorp.com"},
	{"StartupXYZ", "hello@startupxyz.com"},
	{"BigBusiness Inc", "projects@bigbusiness.com"},
}

var defaultProposals = []defaultProposal{
	{0, 0, 82000, 110, "Website, Mobile app, Admin panel, SEO optimization"},
	{0, 1, 70000, 135, "Website, Mobile app, Basic admin panel"},
	{1, 0, 95000, 160, "Dashboard, API, Documentation, Training"},
}

func seedUsers(ctx context.Context, db database.DB) ([]int64, error) {
	ids := make([]int64, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.email, err)
		}
		var id int64
		err = db.QueryRow(ctx,
			`INSERT INTO users (name, email, password_hash, skills)
			 VALUES ($1,$2,$3,$4)
			 RETURNING id`,
			u.name, u.email, string(hash), u.skills,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedProjects(ctx context.Context, db database.DB) ([]int64, error) {
	ids := make([]int64, 0, len(defaultProjects))
	for _, p := range defaultProjects {
		var id int64
		err := db.QueryRow(ctx,
			`INSERT INTO projects (title, description, tags, expected_budget, expected_timeline_days, expected_deliverables)
			 VALUES ($1,$2,$3,$4,$5,$6)
			 RETURNING id`,
			p.title, p.description, p.tags, p.budget, p.timelineDays, p.deliverables,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedClients(ctx context.Context, db database.DB) ([]int64, error) {
	ids := make([]int64, 0, len(defaultClients))
	for _, c := range defaultClients {
		var id int64
		err := db.QueryRow(ctx,
			`INSERT INTO clients (name, email) VALUES ($1,$2) RETURNING id`,
			c.name, c.email,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedProposals(ctx context.Context, db database.DB, projectIDs, clientIDs []int64) error {
	for _, p := range defaultProposals {
		_, err := db.Exec(ctx,
			`INSERT INTO proposals (project_id, client_id, proposed_budget, proposed_timeline_days, proposed_deliverables)
			 VALUES ($1,$2,$3,$4,$5)`,
			projectIDs[p.projectIdx], clientIDs[p.clientIdx], p.budget, p.timelineDays, p.deliverables,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
