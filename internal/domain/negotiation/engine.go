package negotiation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Status string

const (
	StatusAccepted      Status = "Accepted"
	StatusNeedsRevision Status = "Needs Revision"
	StatusRejected      Status = "Rejected"
	StatusCannotCompare Status = "Cannot Compare"

	// StatusNeedsReview is an overall-only status: no field was rejected but
	// at least one could not be compared.
	StatusNeedsReview Status = "Needs Review"
)

// Acceptance thresholds as percentage difference from the expected value.
const (
	acceptWithinPercent = 10
	reviseWithinPercent = 25
)

// Offer is one side of a negotiation: the project's expectation or the
// client's proposal. Nil fields were never specified.
type Offer struct {
	Budget       *int64
	TimelineDays *int64
	Deliverables *string
}

type FieldVerdict struct {
	Status       Status
	Expected     *int64
	Proposed     *int64
	Counteroffer *int64
}

type DeliverablesVerdict struct {
	Status       Status
	Expected     *string
	Proposed     *string
	Counteroffer *int64
}

type Result struct {
	ProjectID     int64
	ClientID      int64
	ProjectName   string
	OverallStatus Status
	Budget        FieldVerdict
	Timeline      FieldVerdict
	Deliverables  DeliverablesVerdict
	Summary       string
}

// Negotiate compares a project's expected offer against a client's proposal
// field by field and aggregates the verdicts. It is a pure function: repeated
// calls over the same two offers always produce the same result.
func Negotiate(projectID, clientID int64, projectName string, expected, proposed Offer) Result {
	budget := compareNumeric(expected.Budget, proposed.Budget)
	timeline := compareNumeric(expected.TimelineDays, proposed.TimelineDays)
	deliverables := compareDeliverables(expected.Deliverables, proposed.Deliverables)

	statuses := []Status{budget.Status, timeline.Status, deliverables.Status}
	overall := aggregate(statuses)

	accepted := 0
	for _, s := range statuses {
		if s == StatusAccepted {
			accepted++
		}
	}

	return Result{
		ProjectID:     projectID,
		ClientID:      clientID,
		ProjectName:   projectName,
		OverallStatus: overall,
		Budget:        budget,
		Timeline:      timeline,
		Deliverables:  deliverables,
		Summary:       fmt.Sprintf("Project %s - %d/3 fields accepted", strings.ToLower(string(overall)), accepted),
	}
}

// compareNumeric applies the percentage-difference thresholds to a numeric
// field. A nil value on either side makes the field incomparable. An expected
// value of zero accepts only a proposed zero; any other proposal is an
// infinite deviation.
func compareNumeric(expected, proposed *int64) FieldVerdict {
	v := FieldVerdict{Expected: expected, Proposed: proposed}
	if expected == nil || proposed == nil {
		v.Status = StatusCannotCompare
		return v
	}

	var diffPercent float64
	if *expected == 0 {
		if *proposed == 0 {
			diffPercent = 0
		} else {
			diffPercent = math.Inf(1)
		}
	} else {
		diffPercent = math.Abs(float64(*proposed-*expected)) / float64(*expected) * 100
	}

	switch {
	case diffPercent <= acceptWithinPercent:
		v.Status = StatusAccepted
	case diffPercent <= reviseWithinPercent:
		v.Status = StatusNeedsRevision
		mid := (*expected + *proposed) / 2
		v.Counteroffer = &mid
	default:
		v.Status = StatusRejected
	}
	return v
}

// compareDeliverables compares the deliverables field. When both sides carry
// an integer count the numeric thresholds apply; otherwise two present text
// values are compared as whole strings, trimmed and case-folded. Token sets
// are deliberately not compared. A missing side is incomparable.
func compareDeliverables(expected, proposed *string) DeliverablesVerdict {
	v := DeliverablesVerdict{Expected: expected, Proposed: proposed}
	if expected == nil || proposed == nil {
		v.Status = StatusCannotCompare
		return v
	}

	expNum, expOK := parseCount(*expected)
	propNum, propOK := parseCount(*proposed)
	if expOK && propOK {
		numeric := compareNumeric(&expNum, &propNum)
		v.Status = numeric.Status
		v.Counteroffer = numeric.Counteroffer
		return v
	}

	if strings.EqualFold(strings.TrimSpace(*expected), strings.TrimSpace(*proposed)) {
		v.Status = StatusAccepted
	} else {
		v.Status = StatusNeedsRevision
	}
	return v
}

func parseCount(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// aggregate derives the overall verdict. Rejected dominates, then an
// incomparable field forces a manual review, then any revision; acceptance
// requires unanimity.
func aggregate(statuses []Status) Status {
	anyRejected := false
	anyCannotCompare := false
	allAccepted := true
	for _, s := range statuses {
		switch s {
		case StatusRejected:
			anyRejected = true
		case StatusCannotCompare:
			anyCannotCompare = true
		}
		if s != StatusAccepted {
			allAccepted = false
		}
	}

	switch {
	case allAccepted:
		return StatusAccepted
	case anyRejected:
		return StatusRejected
	case anyCannotCompare:
		return StatusNeedsReview
	default:
		return StatusNeedsRevision
	}
}
