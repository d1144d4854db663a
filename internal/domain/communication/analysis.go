package communication

import "strings"

// Tone labels returned by AnalyzeTone.
const (
	ToneFormal   = "formal"
	ToneInformal = "informal"
	ToneUrgent   = "urgent"
	TonePolite   = "polite"
	ToneNeutral  = "neutral"
)

var toneKeywords = map[string][]string{
	ToneFormal:   {"dear", "sincerely", "regards", "respectfully", "cordially"},
	ToneInformal: {"hey", "hi", "thanks", "cool", "awesome"},
	ToneUrgent:   {"urgent", "immediate", "asap", "rush", "emergency", "critical"},
	TonePolite:   {"please", "thank you", "appreciate", "grateful", "sorry"},
}

// toneOrder keeps tie-breaking between equally scored tones deterministic.
var toneOrder = []string{ToneFormal, ToneInformal, ToneUrgent, TonePolite}

// AnalyzeTone counts keyword occurrences per tone and returns the dominant
// one, or "neutral" when no keyword matches at all.
func AnalyzeTone(text string) string {
	lower := strings.ToLower(text)

	best := ToneNeutral
	bestScore := 0
	for _, tone := range toneOrder {
		score := 0
		for _, kw := range toneKeywords[tone] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = tone
			bestScore = score
		}
	}
	return best
}

// Priority labels returned by ClassifyPriority.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	highPriorityScore   = 8
	mediumPriorityScore = 4
)

type weightedKeyword struct {
	keyword string
	weight  int
}

// Grouped as high urgency, medium urgency, and project-phase signals. Order
// within each group fixes the order of PriorityResult.Keywords.
var priorityKeywords = [][]weightedKeyword{
	{
		{"urgent", 5}, {"emergency", 5}, {"critical", 4}, {"asap", 4},
	},
	{
		{"soon", 2}, {"quickly", 2}, {"important", 2},
	},
	{
		{"proposal", 3}, {"negotiation", 4}, {"contract", 4},
	},
}

type PriorityResult struct {
	Priority string
	Score    int
	Keywords []string
}

// ClassifyPriority sums the weights of every matched keyword and buckets the
// total into low, medium, or high.
func ClassifyPriority(text string) PriorityResult {
	lower := strings.ToLower(text)

	total := 0
	matched := make([]string, 0, 4)
	for _, group := range priorityKeywords {
		for _, wk := range group {
			if strings.Contains(lower, wk.keyword) {
				total += wk.weight
				matched = append(matched, wk.keyword)
			}
		}
	}

	priority := PriorityLow
	switch {
	case total >= highPriorityScore:
		priority = PriorityHigh
	case total >= mediumPriorityScore:
		priority = PriorityMedium
	}

	return PriorityResult{Priority: priority, Score: total, Keywords: matched}
}
