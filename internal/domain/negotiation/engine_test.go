package negotiation

import (
	"strings"
	"testing"
)

func i64(v int64) *int64   { return &v }
func str(v string) *string { return &v }

func TestCompareNumeric_Thresholds(t *testing.T) {
	tests := []struct {
		name         string
		expected     *int64
		proposed     *int64
		wantStatus   Status
		counteroffer *int64
	}{
		{"exact match", i64(100000), i64(100000), StatusAccepted, nil},
		{"ten percent over", i64(100000), i64(110000), StatusAccepted, nil},
		{"ten percent under", i64(100000), i64(90000), StatusAccepted, nil},
		{"just past accept band", i64(100000), i64(111000), StatusNeedsRevision, i64(105500)},
		{"twenty five percent", i64(100000), i64(125000), StatusNeedsRevision, i64(112500)},
		{"past revision band", i64(100000), i64(126000), StatusRejected, nil},
		{"half the budget", i64(100000), i64(50000), StatusRejected, nil},
		{"zero both sides", i64(0), i64(0), StatusAccepted, nil},
		{"zero expected nonzero proposed", i64(0), i64(5), StatusRejected, nil},
		{"nil expected", nil, i64(100), StatusCannotCompare, nil},
		{"nil proposed", i64(100), nil, StatusCannotCompare, nil},
		{"both nil", nil, nil, StatusCannotCompare, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareNumeric(tt.expected, tt.proposed)
			if got.Status != tt.wantStatus {
				t.Fatalf("expected status %q, got %q", tt.wantStatus, got.Status)
			}
			if (tt.counteroffer == nil) != (got.Counteroffer == nil) {
				t.Fatalf("counteroffer presence mismatch: want %v, got %v", tt.counteroffer, got.Counteroffer)
			}
			if tt.counteroffer != nil && *got.Counteroffer != *tt.counteroffer {
				t.Fatalf("expected counteroffer %d, got %d", *tt.counteroffer, *got.Counteroffer)
			}
		})
	}
}

func TestCompareNumeric_CounterofferTruncatesTowardZero(t *testing.T) {
	got := compareNumeric(i64(10), i64(12))
	if got.Status != StatusNeedsRevision {
		t.Fatalf("expected needs revision, got %q", got.Status)
	}
	if *got.Counteroffer != 11 {
		t.Fatalf("expected counteroffer 11, got %d", *got.Counteroffer)
	}

	got = compareNumeric(i64(10), i64(9))
	if got.Status != StatusAccepted {
		t.Fatalf("expected accepted at 10%%, got %q", got.Status)
	}
}

func TestCompareDeliverables_TextEquality(t *testing.T) {
	tests := []struct {
		name       string
		expected   *string
		proposed   *string
		wantStatus Status
	}{
		{"identical", str("5 pages website"), str("5 pages website"), StatusAccepted},
		{"case and padding differ", str("  5 Pages Website "), str("5 pages website"), StatusAccepted},
		{"inner whitespace differs", str("5  pages website"), str("5 pages website"), StatusNeedsRevision},
		{"different text", str("5 pages website"), str("3 pages website"), StatusNeedsRevision},
		{"nil expected", nil, str("anything"), StatusCannotCompare},
		{"nil proposed", str("anything"), nil, StatusCannotCompare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareDeliverables(tt.expected, tt.proposed)
			if got.Status != tt.wantStatus {
				t.Fatalf("expected %q, got %q", tt.wantStatus, got.Status)
			}
		})
	}
}

func TestCompareDeliverables_NumericCounts(t *testing.T) {
	got := compareDeliverables(str("10"), str("12"))
	if got.Status != StatusNeedsRevision {
		t.Fatalf("expected needs revision, got %q", got.Status)
	}
	if got.Counteroffer == nil || *got.Counteroffer != 11 {
		t.Fatalf("expected counteroffer 11, got %v", got.Counteroffer)
	}

	got = compareDeliverables(str(" 10 "), str("10"))
	if got.Status != StatusAccepted {
		t.Fatalf("expected accepted, got %q", got.Status)
	}

	got = compareDeliverables(str("10"), str("20"))
	if got.Status != StatusRejected {
		t.Fatalf("expected rejected, got %q", got.Status)
	}
}

func TestNegotiate_AllAccepted(t *testing.T) {
	expected := Offer{Budget: i64(50000), TimelineDays: i64(30), Deliverables: str("blog with cms")}
	proposed := Offer{Budget: i64(52000), TimelineDays: i64(32), Deliverables: str("Blog with CMS")}

	got := Negotiate(1, 2, "Personal Blog", expected, proposed)
	if got.OverallStatus != StatusAccepted {
		t.Fatalf("expected overall accepted, got %q", got.OverallStatus)
	}
	if got.Summary != "Project accepted - 3/3 fields accepted" {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
	if got.ProjectID != 1 || got.ClientID != 2 || got.ProjectName != "Personal Blog" {
		t.Fatalf("identity fields not carried through: %+v", got)
	}
}

func TestNegotiate_RejectionDominates(t *testing.T) {
	expected := Offer{Budget: i64(100000), TimelineDays: i64(30), Deliverables: str("api")}
	proposed := Offer{Budget: i64(200000), TimelineDays: i64(31), Deliverables: str("api")}

	got := Negotiate(1, 2, "Data Dashboard", expected, proposed)
	if got.OverallStatus != StatusRejected {
		t.Fatalf("expected overall rejected, got %q", got.OverallStatus)
	}
	if got.Budget.Status != StatusRejected {
		t.Fatalf("expected budget rejected, got %q", got.Budget.Status)
	}
	if !strings.Contains(got.Summary, "2/3 fields accepted") {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}

func TestNegotiate_CannotCompareForcesReview(t *testing.T) {
	expected := Offer{Budget: i64(100000), TimelineDays: nil, Deliverables: str("api")}
	proposed := Offer{Budget: i64(100000), TimelineDays: i64(30), Deliverables: str("api")}

	got := Negotiate(1, 2, "Mobile Game", expected, proposed)
	if got.OverallStatus != StatusNeedsReview {
		t.Fatalf("expected overall needs review, got %q", got.OverallStatus)
	}
	if got.Timeline.Status != StatusCannotCompare {
		t.Fatalf("expected timeline cannot compare, got %q", got.Timeline.Status)
	}
	if got.Summary != "Project needs review - 2/3 fields accepted" {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
}

func TestNegotiate_RevisionWhenNoRejection(t *testing.T) {
	expected := Offer{Budget: i64(100000), TimelineDays: i64(30), Deliverables: str("api")}
	proposed := Offer{Budget: i64(120000), TimelineDays: i64(30), Deliverables: str("api")}

	got := Negotiate(1, 2, "Data Dashboard", expected, proposed)
	if got.OverallStatus != StatusNeedsRevision {
		t.Fatalf("expected overall needs revision, got %q", got.OverallStatus)
	}
	if got.Budget.Counteroffer == nil || *got.Budget.Counteroffer != 110000 {
		t.Fatalf("expected counteroffer 110000, got %v", got.Budget.Counteroffer)
	}
}

func TestNegotiate_RejectedBeatsCannotCompare(t *testing.T) {
	expected := Offer{Budget: i64(100000), TimelineDays: nil, Deliverables: str("api")}
	proposed := Offer{Budget: i64(200000), TimelineDays: i64(30), Deliverables: str("api")}

	got := Negotiate(1, 2, "Mobile Game", expected, proposed)
	if got.OverallStatus != StatusRejected {
		t.Fatalf("expected overall rejected, got %q", got.OverallStatus)
	}
}
