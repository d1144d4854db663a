package matching

import (
	"sort"
	"strings"
)

// SkillSet is a normalized set of skill or tag tokens: lowercase, trimmed,
// derived from a comma-separated field.
type SkillSet map[string]struct{}

// ParseSkillSet splits a comma-separated skills/tags field into a SkillSet.
// Empty or blank input yields an empty set.
func ParseSkillSet(raw string) SkillSet {
	out := SkillSet{}
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}

func (s SkillSet) Contains(skill string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// Sorted returns the set as a sorted slice for stable display.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Join concatenates the set into a single comma-separated representation,
// used by scorers that operate on whole-profile text.
func (s SkillSet) Join() string {
	return strings.Join(s.Sorted(), ", ")
}

type Project struct {
	ID                   int64
	Title                string
	Description          string
	Tags                 string
	ExpectedBudget       *int64
	ExpectedTimelineDays *int64
	ExpectedDeliverables *string
}

type MatchResult struct {
	Project       Project
	MatchCount    int
	MatchedSkills []string
}

// TopN is how many ranked matches MatchProjects returns at most.
const TopN = 3

// MatchProjects computes the skill/tag intersection for every candidate,
// drops zero-match projects, and returns at most TopN results ordered by
// descending match count with ties broken by ascending title. The sort is
// stable, so candidates equal on both keys keep their input order.
func MatchProjects(skills SkillSet, candidates []Project) []MatchResult {
	if len(skills) == 0 {
		return []MatchResult{}
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, p := range candidates {
		tags := ParseSkillSet(p.Tags)
		matched := make([]string, 0, len(tags))
		for t := range tags {
			if _, ok := skills[t]; ok {
				matched = append(matched, t)
			}
		}
		if len(matched) == 0 {
			continue
		}
		sort.Strings(matched)
		results = append(results, MatchResult{
			Project:       p,
			MatchCount:    len(matched),
			MatchedSkills: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchCount != results[j].MatchCount {
			return results[i].MatchCount > results[j].MatchCount
		}
		return results[i].Project.Title < results[j].Project.Title
	})

	if len(results) > TopN {
		results = results[:TopN]
	}
	return results
}
