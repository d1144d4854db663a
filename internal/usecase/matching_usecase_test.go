package usecase

import (
	"context"
	"errors"
	"testing"

	"freelance-desk/internal/repository"
)

func TestMatchingUsecase_UnknownUserYieldsEmpty(t *testing.T) {
	uc := NewMatchingUsecase(mockUserRepo{}, mockProjectRepo{}, mockMatchRepo{}, nil)

	got, err := uc.MatchProjectsForUser(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty results, got %v", got)
	}
}

func TestMatchingUsecase_UserWithoutSkillsYieldsEmpty(t *testing.T) {
	uc := NewMatchingUsecase(
		mockUserRepo{users: map[int64]repository.User{1: {ID: 1, Name: "Alice", Skills: "  "}}},
		mockProjectRepo{projects: []repository.Project{{ID: 10, Title: "Anything", Tags: "go"}}},
		mockMatchRepo{},
		nil,
	)

	got, err := uc.MatchProjectsForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty results, got %v", got)
	}
}

func TestMatchingUsecase_RanksAndPersists(t *testing.T) {
	var upserts []repository.MatchUpsert
	uc := NewMatchingUsecase(
		mockUserRepo{users: map[int64]repository.User{1: {ID: 1, Name: "Alice", Skills: "python, django, sql"}}},
		mockProjectRepo{projects: []repository.Project{
			{ID: 10, Title: "Personal Blog", Tags: "python, django"},
			{ID: 11, Title: "Data Dashboard", Tags: "python, sql, tableau"},
			{ID: 12, Title: "Mobile Game", Tags: "unity, c#"},
		}},
		mockMatchRepo{upserts: &upserts},
		nil,
	)

	got, err := uc.MatchProjectsForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	// Both overlap on two tags; title order decides.
	if got[0].Project.ID != 11 || got[1].Project.ID != 10 {
		t.Fatalf("unexpected order: %d then %d", got[0].Project.ID, got[1].Project.ID)
	}

	if len(upserts) != 2 {
		t.Fatalf("expected 2 stored matches, got %d", len(upserts))
	}
	if upserts[0].UserID != 1 || upserts[0].ProjectID != 11 || upserts[0].MatchCount != 2 {
		t.Fatalf("unexpected stored match: %+v", upserts[0])
	}
}

func TestMatchingUsecase_PersistFailureIsStorageError(t *testing.T) {
	uc := NewMatchingUsecase(
		mockUserRepo{users: map[int64]repository.User{1: {ID: 1, Skills: "go"}}},
		mockProjectRepo{projects: []repository.Project{{ID: 10, Title: "API", Tags: "go"}}},
		mockMatchRepo{err: errors.New("connection reset")},
		nil,
	)

	_, err := uc.MatchProjectsForUser(context.Background(), 1)
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestMatchingUsecase_ListFailureIsStorageError(t *testing.T) {
	uc := NewMatchingUsecase(
		mockUserRepo{users: map[int64]repository.User{1: {ID: 1, Skills: "go"}}},
		mockProjectRepo{err: errors.New("connection reset")},
		mockMatchRepo{},
		nil,
	)

	_, err := uc.MatchProjectsForUser(context.Background(), 1)
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestMatchingUsecase_SimilarWithoutScorer(t *testing.T) {
	uc := NewMatchingUsecase(mockUserRepo{}, mockProjectRepo{}, mockMatchRepo{}, nil)

	_, err := uc.SimilarProjectsForUser(context.Background(), 1)
	if !errors.Is(err, ErrScorerUnavailable) {
		t.Fatalf("expected ErrScorerUnavailable, got %v", err)
	}
}

type fixedScorer struct {
	scores map[string]float64
}

func (s fixedScorer) Score(_ context.Context, _ string, project string) (float64, error) {
	return s.scores[project], nil
}

func TestMatchingUsecase_SimilarRanksByScore(t *testing.T) {
	uc := NewMatchingUsecase(
		mockUserRepo{users: map[int64]repository.User{1: {ID: 1, Skills: "go"}}},
		mockProjectRepo{projects: []repository.Project{
			{ID: 10, Title: "API", Tags: "rust"},
			{ID: 11, Title: "CLI", Tags: "go"},
		}},
		mockMatchRepo{},
		fixedScorer{scores: map[string]float64{"go": 0.9, "rust": 0.2}},
	)

	got, err := uc.SimilarProjectsForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].Project.ID != 11 {
		t.Fatalf("expected CLI ranked first, got %+v", got)
	}
}
