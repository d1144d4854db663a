package matching

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestKeywordScorer_CountsOverlap(t *testing.T) {
	score, err := KeywordScorer{}.Score(context.Background(), "python, sql, django", "sql, python, react")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if score != 2 {
		t.Fatalf("expected score 2, got %v", score)
	}
}

func TestCosine_Identical(t *testing.T) {
	got, err := Cosine([]float64{1, 2, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	got, err := Cosine([]float64{1, 0}, []float64{0, 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine([]float64{1, 0}, []float64{1})
	if !errors.Is(err, ErrEmbeddingDimension) {
		t.Fatalf("expected ErrEmbeddingDimension, got %v", err)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	got, err := Cosine([]float64{0, 0}, []float64{1, 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for zero vector, got %v", got)
	}
}

type stubEmbedder struct {
	vectors map[string][]float64
	err     error
}

func (s stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func TestEmbeddingScorer_Score(t *testing.T) {
	scorer := NewEmbeddingScorer(stubEmbedder{vectors: map[string][]float64{
		"go":       {1, 0},
		"go, grpc": {1, 0},
	}})

	score, err := scorer.Score(context.Background(), "go", "go, grpc")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if math.Abs(score-1) > 1e-9 {
		t.Fatalf("expected 1, got %v", score)
	}
}

func TestEmbeddingScorer_PropagatesError(t *testing.T) {
	wantErr := errors.New("api down")
	scorer := NewEmbeddingScorer(stubEmbedder{err: wantErr})
	if _, err := scorer.Score(context.Background(), "a", "b"); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped embedder error, got %v", err)
	}
}

type stubScorer struct {
	scores map[string]float64
}

func (s stubScorer) Score(_ context.Context, _ string, project string) (float64, error) {
	return s.scores[project], nil
}

func TestRankProjects_OrdersByScoreThenTitle(t *testing.T) {
	candidates := []Project{
		{ID: 1, Title: "Beta", Tags: "a"},
		{ID: 2, Title: "Alpha", Tags: "b"},
		{ID: 3, Title: "Gamma", Tags: "c"},
	}
	scorer := stubScorer{scores: map[string]float64{"a": 0.5, "b": 0.5, "c": 0.9}}

	got, err := RankProjects(context.Background(), scorer, ParseSkillSet("x"), candidates)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].Project.Title != "Gamma" {
		t.Fatalf("expected Gamma first, got %q", got[0].Project.Title)
	}
	if got[1].Project.Title != "Alpha" || got[2].Project.Title != "Beta" {
		t.Fatalf("expected Alpha before Beta on tie, got %q then %q",
			got[1].Project.Title, got[2].Project.Title)
	}
}
