package matching

import (
	"context"
	"errors"
	"math"
	"sort"
)

// Scorer ranks a requester representation against a project representation.
// Higher is better. Implementations must be safe for concurrent use.
type Scorer interface {
	Score(ctx context.Context, requester string, project string) (float64, error)
}

// KeywordScorer scores by exact token overlap between the two comma-separated
// representations. It mirrors MatchProjects but behind the pluggable Scorer
// interface.
type KeywordScorer struct{}

func (KeywordScorer) Score(_ context.Context, requester string, project string) (float64, error) {
	skills := ParseSkillSet(requester)
	tags := ParseSkillSet(project)
	n := 0
	for t := range tags {
		if _, ok := skills[t]; ok {
			n++
		}
	}
	return float64(n), nil
}

// Embedder turns text into a dense vector. The model behind it is an opaque
// external collaborator.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

var ErrEmbeddingDimension = errors.New("embedding vectors have different dimensions")

// EmbeddingScorer ranks by cosine similarity between embedded representations.
type EmbeddingScorer struct {
	embedder Embedder
}

func NewEmbeddingScorer(e Embedder) *EmbeddingScorer {
	return &EmbeddingScorer{embedder: e}
}

func (s *EmbeddingScorer) Score(ctx context.Context, requester string, project string) (float64, error) {
	a, err := s.embedder.Embed(ctx, requester)
	if err != nil {
		return 0, err
	}
	b, err := s.embedder.Embed(ctx, project)
	if err != nil {
		return 0, err
	}
	return Cosine(a, b)
}

// Cosine computes cosine similarity between two vectors.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrEmbeddingDimension
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

type RankedProject struct {
	Project Project
	Score   float64
}

// RankProjects scores every candidate with the given scorer and returns them
// ordered by descending score, ties broken by ascending title.
func RankProjects(ctx context.Context, scorer Scorer, skills SkillSet, candidates []Project) ([]RankedProject, error) {
	requester := skills.Join()
	out := make([]RankedProject, 0, len(candidates))
	for _, p := range candidates {
		score, err := scorer.Score(ctx, requester, ParseSkillSet(p.Tags).Join())
		if err != nil {
			return nil, err
		}
		out = append(out, RankedProject{Project: p, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Project.Title < out[j].Project.Title
	})
	return out, nil
}
