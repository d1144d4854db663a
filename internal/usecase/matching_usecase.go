package usecase

import (
	"context"
	"errors"
	"fmt"

	"freelance-desk/internal/domain/matching"
	"freelance-desk/internal/repository"
)

// ErrScorerUnavailable is returned by the similarity ranking when no
// embedding scorer has been configured.
var ErrScorerUnavailable = errors.New("similarity scorer not configured")

type MatchingUsecase interface {
	// MatchProjectsForUser ranks projects for a user by exact skill/tag
	// overlap. An unknown user or one without skills yields an empty list,
	// not an error.
	MatchProjectsForUser(ctx context.Context, userID int64) ([]matching.MatchResult, error)

	// SimilarProjectsForUser ranks every project by embedding similarity.
	SimilarProjectsForUser(ctx context.Context, userID int64) ([]matching.RankedProject, error)
}

type Matching struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	matches  repository.MatchRepository
	scorer   matching.Scorer
}

// NewMatchingUsecase wires the matching engine to its repositories. scorer
// may be nil; the similarity endpoint then reports ErrScorerUnavailable.
func NewMatchingUsecase(users repository.UserRepository, projects repository.ProjectRepository, matches repository.MatchRepository, scorer matching.Scorer) *Matching {
	return &Matching{users: users, projects: projects, matches: matches, scorer: scorer}
}

func (u *Matching) MatchProjectsForUser(ctx context.Context, userID int64) ([]matching.MatchResult, error) {
	skills, ok, err := u.userSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok || len(skills) == 0 {
		return []matching.MatchResult{}, nil
	}

	candidates, err := u.candidates(ctx)
	if err != nil {
		return nil, err
	}

	results := matching.MatchProjects(skills, candidates)

	for _, res := range results {
		err := u.matches.Upsert(ctx, repository.MatchUpsert{
			UserID:        userID,
			ProjectID:     res.Project.ID,
			MatchCount:    res.MatchCount,
			MatchedSkills: res.MatchedSkills,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: persist match: %v", ErrStorage, err)
		}
	}

	return results, nil
}

func (u *Matching) SimilarProjectsForUser(ctx context.Context, userID int64) ([]matching.RankedProject, error) {
	if u.scorer == nil {
		return nil, ErrScorerUnavailable
	}

	skills, ok, err := u.userSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok || len(skills) == 0 {
		return []matching.RankedProject{}, nil
	}

	candidates, err := u.candidates(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := matching.RankProjects(ctx, u.scorer, skills, candidates)
	if err != nil {
		return nil, fmt.Errorf("similarity ranking: %w", err)
	}
	return ranked, nil
}

func (u *Matching) userSkills(ctx context.Context, userID int64) (matching.SkillSet, bool, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: load user: %v", ErrStorage, err)
	}
	return matching.ParseSkillSet(user.Skills), true, nil
}

func (u *Matching) candidates(ctx context.Context) ([]matching.Project, error) {
	projects, err := u.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %v", ErrStorage, err)
	}

	out := make([]matching.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, toMatchingProject(p))
	}
	return out, nil
}

func toMatchingProject(p repository.Project) matching.Project {
	return matching.Project{
		ID:                   p.ID,
		Title:                p.Title,
		Description:          p.Description,
		Tags:                 p.Tags,
		ExpectedBudget:       p.ExpectedBudget,
		ExpectedTimelineDays: p.ExpectedTimelineDays,
		ExpectedDeliverables: p.ExpectedDeliverables,
	}
}
