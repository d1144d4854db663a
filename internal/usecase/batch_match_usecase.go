package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"freelance-desk/internal/domain/matching"
	"freelance-desk/internal/repository"
	"freelance-desk/internal/worker"
)

const batchMatchWorkers = 4

type BatchMatchReport struct {
	UsersProcessed int `json:"users_processed"`
	MatchesStored  int `json:"matches_stored"`
	UsersFailed    int `json:"users_failed"`
}

type BatchMatchUsecase interface {
	// RunAll recomputes and stores the top matches for every user. Failures
	// are isolated per user; the run continues past them.
	RunAll(ctx context.Context) (BatchMatchReport, error)
}

type BatchMatch struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	matches  repository.MatchRepository
	logger   *log.Logger
}

func NewBatchMatchUsecase(users repository.UserRepository, projects repository.ProjectRepository, matches repository.MatchRepository, logger *log.Logger) *BatchMatch {
	if logger == nil {
		logger = log.Default()
	}
	return &BatchMatch{users: users, projects: projects, matches: matches, logger: logger}
}

func (u *BatchMatch) RunAll(ctx context.Context) (BatchMatchReport, error) {
	userIDs, err := u.users.ListIDs(ctx)
	if err != nil {
		return BatchMatchReport{}, fmt.Errorf("%w: list users: %v", ErrStorage, err)
	}
	if len(userIDs) == 0 {
		return BatchMatchReport{}, nil
	}

	projects, err := u.projects.List(ctx)
	if err != nil {
		return BatchMatchReport{}, fmt.Errorf("%w: list projects: %v", ErrStorage, err)
	}
	candidates := make([]matching.Project, 0, len(projects))
	for _, p := range projects {
		candidates = append(candidates, toMatchingProject(p))
	}

	var mu sync.Mutex
	report := BatchMatchReport{}

	pool := worker.NewPool(batchMatchWorkers, len(userIDs))
	for _, id := range userIDs {
		userID := id
		pool.Submit(func(ctx context.Context) error {
			stored, err := u.matchOne(ctx, userID, candidates)
			mu.Lock()
			defer mu.Unlock()
			report.UsersProcessed++
			if err != nil {
				report.UsersFailed++
				u.logger.Printf("batch match: user %d: %v", userID, err)
				return err
			}
			report.MatchesStored += stored
			return nil
		})
	}
	pool.Close()

	for range pool.Run(ctx) {
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	return report, nil
}

func (u *BatchMatch) matchOne(ctx context.Context, userID int64, candidates []matching.Project) (int, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	skills := matching.ParseSkillSet(user.Skills)
	if len(skills) == 0 {
		return 0, nil
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
			return 0, err
		}
	}
	return len(results), nil
}
