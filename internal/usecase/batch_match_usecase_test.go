package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"

	"freelance-desk/internal/repository"
)

// syncMatchRepo is safe for the concurrent upserts a batch run produces.
type syncMatchRepo struct {
	mu      sync.Mutex
	upserts []repository.MatchUpsert
	err     error
}

func (m *syncMatchRepo) Upsert(_ context.Context, u repository.MatchUpsert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, u)
	return nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestBatchMatchUsecase_ProcessesAllUsers(t *testing.T) {
	matches := &syncMatchRepo{}
	uc := NewBatchMatchUsecase(
		mockUserRepo{
			users: map[int64]repository.User{
				1: {ID: 1, Skills: "python, django"},
				2: {ID: 2, Skills: "go"},
				3: {ID: 3, Skills: ""},
			},
			ids: []int64{1, 2, 3},
		},
		mockProjectRepo{projects: []repository.Project{
			{ID: 10, Title: "Personal Blog", Tags: "python, django"},
			{ID: 11, Title: "API Service", Tags: "go, grpc"},
		}},
		matches,
		discardLogger(),
	)

	report, err := uc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.UsersProcessed != 3 {
		t.Fatalf("expected 3 users processed, got %d", report.UsersProcessed)
	}
	if report.UsersFailed != 0 {
		t.Fatalf("expected no failures, got %d", report.UsersFailed)
	}
	if report.MatchesStored != 2 {
		t.Fatalf("expected 2 stored matches, got %d", report.MatchesStored)
	}
	if len(matches.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(matches.upserts))
	}
}

func TestBatchMatchUsecase_IsolatesPerUserFailures(t *testing.T) {
	uc := NewBatchMatchUsecase(
		mockUserRepo{
			users: map[int64]repository.User{
				1: {ID: 1, Skills: "go"},
			},
			// User 2 is listed but cannot be loaded.
			ids: []int64{1, 2},
		},
		mockProjectRepo{projects: []repository.Project{{ID: 10, Title: "API Service", Tags: "go"}}},
		&syncMatchRepo{},
		discardLogger(),
	)

	report, err := uc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.UsersProcessed != 2 {
		t.Fatalf("expected 2 users processed, got %d", report.UsersProcessed)
	}
	if report.UsersFailed != 1 {
		t.Fatalf("expected 1 failure, got %d", report.UsersFailed)
	}
	if report.MatchesStored != 1 {
		t.Fatalf("expected 1 stored match, got %d", report.MatchesStored)
	}
}

func TestBatchMatchUsecase_NoUsers(t *testing.T) {
	uc := NewBatchMatchUsecase(mockUserRepo{}, mockProjectRepo{}, &syncMatchRepo{}, discardLogger())

	report, err := uc.RunAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report != (BatchMatchReport{}) {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestBatchMatchUsecase_ListFailureIsStorageError(t *testing.T) {
	uc := NewBatchMatchUsecase(
		mockUserRepo{err: errors.New("connection reset")},
		mockProjectRepo{},
		&syncMatchRepo{},
		discardLogger(),
	)

	_, err := uc.RunAll(context.Background())
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
