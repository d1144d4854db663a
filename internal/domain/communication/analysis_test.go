package communication

import (
	"reflect"
	"testing"
)

func TestAnalyzeTone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"formal letter", "Dear Sir, I write respectfully. Best regards.", ToneFormal},
		{"informal note", "Hey! Thanks, that demo was awesome.", ToneInformal},
		{"urgent request", "This is urgent, we need it asap. It is critical.", ToneUrgent},
		{"polite request", "Please review this, I would appreciate it. Thank you.", TonePolite},
		{"no keywords", "The quarterly report totals 42 units.", ToneNeutral},
		{"empty", "", ToneNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeTone(tt.text); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAnalyzeTone_CaseInsensitive(t *testing.T) {
	if got := AnalyzeTone("DEAR team, SINCERELY yours"); got != ToneFormal {
		t.Fatalf("expected formal, got %q", got)
	}
}

func TestClassifyPriority_Buckets(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantPriority string
		wantScore    int
	}{
		{"urgent contract", "urgent contract review", PriorityHigh, 9},
		{"negotiation only", "let's schedule the negotiation", PriorityMedium, 4},
		{"soon only", "we should talk soon", PriorityLow, 2},
		{"nothing", "hello there", PriorityLow, 0},
		{"stacked urgency", "urgent emergency, critical and asap", PriorityHigh, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPriority(tt.text)
			if got.Priority != tt.wantPriority {
				t.Fatalf("expected priority %q, got %q", tt.wantPriority, got.Priority)
			}
			if got.Score != tt.wantScore {
				t.Fatalf("expected score %d, got %d", tt.wantScore, got.Score)
			}
		})
	}
}

func TestClassifyPriority_ReportsMatchedKeywords(t *testing.T) {
	got := ClassifyPriority("This proposal is urgent, respond quickly")
	want := []string{"urgent", "quickly", "proposal"}
	if !reflect.DeepEqual(got.Keywords, want) {
		t.Fatalf("expected keywords %v, got %v", want, got.Keywords)
	}
	if got.Score != 10 {
		t.Fatalf("expected score 10, got %d", got.Score)
	}
}
