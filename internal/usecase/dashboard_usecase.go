package usecase

import (
	"context"
	"fmt"
	"time"

	"freelance-desk/internal/repository"
)

// DashboardCache is the cache surface the dashboard needs. A nil or
// unavailable cache is bypassed silently.
type DashboardCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
	dashboardRecentN  = 5
)

type DashboardUserItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Skills string `json:"skills"`
}

type DashboardProjectItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Tags           string `json:"tags"`
	ExpectedBudget *int64 `json:"expected_budget"`
}

type DashboardProposalItem struct {
	ID             int64  `json:"id"`
	ProjectTitle   string `json:"project_title"`
	ClientName     string `json:"client_name"`
	ProposedBudget *int64 `json:"proposed_budget"`
}

type DashboardSummary struct {
	TotalUsers     int64                   `json:"total_users"`
	TotalProjects  int64                   `json:"total_projects"`
	TotalProposals int64                   `json:"total_proposals"`
	Users          []DashboardUserItem     `json:"users"`
	Projects       []DashboardProjectItem  `json:"projects"`
	Proposals      []DashboardProposalItem `json:"proposals"`
}

type DashboardUsecase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type Dashboard struct {
	users     repository.UserRepository
	projects  repository.ProjectRepository
	proposals repository.ProposalRepository
	cache     DashboardCache
}

func NewDashboardUsecase(users repository.UserRepository, projects repository.ProjectRepository, proposals repository.ProposalRepository, cache DashboardCache) *Dashboard {
	return &Dashboard{users: users, projects: projects, proposals: proposals, cache: cache}
}

func (u *Dashboard) Summary(ctx context.Context) (DashboardSummary, error) {
	if u.cache != nil {
		var cached DashboardSummary
		if ok, err := u.cache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	s, err := u.buildSummary(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, dashboardCacheKey, s, dashboardCacheTTL)
	}
	return s, nil
}

func (u *Dashboard) buildSummary(ctx context.Context) (DashboardSummary, error) {
	var s DashboardSummary
	var err error

	if s.TotalUsers, err = u.users.Count(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("%w: count users: %v", ErrStorage, err)
	}
	if s.TotalProjects, err = u.projects.Count(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("%w: count projects: %v", ErrStorage, err)
	}
	if s.TotalProposals, err = u.proposals.Count(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("%w: count proposals: %v", ErrStorage, err)
	}

	users, err := u.users.ListRecent(ctx, dashboardRecentN)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("%w: recent users: %v", ErrStorage, err)
	}
	s.Users = make([]DashboardUserItem, 0, len(users))
	for _, usr := range users {
		s.Users = append(s.Users, DashboardUserItem{ID: usr.ID, Name: usr.Name, Email: usr.Email, Skills: usr.Skills})
	}

	projects, err := u.projects.ListRecent(ctx, dashboardRecentN)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("%w: recent projects: %v", ErrStorage, err)
	}
	s.Projects = make([]DashboardProjectItem, 0, len(projects))
	for _, p := range projects {
		s.Projects = append(s.Projects, DashboardProjectItem{ID: p.ID, Title: p.Title, Tags: p.Tags, ExpectedBudget: p.ExpectedBudget})
	}

	proposals, err := u.proposals.ListRecent(ctx, dashboardRecentN)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("%w: recent proposals: %v", ErrStorage, err)
	}
	s.Proposals = make([]DashboardProposalItem, 0, len(proposals))
	for _, p := range proposals {
		s.Proposals = append(s.Proposals, DashboardProposalItem{ID: p.ID, ProjectTitle: p.ProjectTitle, ClientName: p.ClientName, ProposedBudget: p.ProposedBudget})
	}

	return s, nil
}
