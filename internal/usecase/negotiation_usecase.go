package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"freelance-desk/internal/domain/negotiation"
	"freelance-desk/internal/repository"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProposalNotFound = errors.New("proposal not found")
)

type NegotiationUsecase interface {
	// Negotiate compares the project's expectations against the latest
	// proposal from the client and stores the verdict. It is recomputed
	// fresh on every call; no negotiation state is kept between rounds.
	Negotiate(ctx context.Context, projectID, clientID int64) (negotiation.Result, error)
}

type Negotiation struct {
	projects     repository.ProjectRepository
	proposals    repository.ProposalRepository
	negotiations repository.NegotiationRepository
}

func NewNegotiationUsecase(projects repository.ProjectRepository, proposals repository.ProposalRepository, negotiations repository.NegotiationRepository) *Negotiation {
	return &Negotiation{projects: projects, proposals: proposals, negotiations: negotiations}
}

func (u *Negotiation) Negotiate(ctx context.Context, projectID, clientID int64) (negotiation.Result, error) {
	project, err := u.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return negotiation.Result{}, fmt.Errorf("%w: project %d", ErrProjectNotFound, projectID)
		}
		return negotiation.Result{}, fmt.Errorf("%w: load project: %v", ErrStorage, err)
	}

	proposal, err := u.proposals.FindLatest(ctx, projectID, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrProposalNotFound) {
			return negotiation.Result{}, fmt.Errorf("%w: project %d, client %d", ErrProposalNotFound, projectID, clientID)
		}
		return negotiation.Result{}, fmt.Errorf("%w: load proposal: %v", ErrStorage, err)
	}

	expected := negotiation.Offer{
		Budget:       project.ExpectedBudget,
		TimelineDays: project.ExpectedTimelineDays,
		Deliverables: project.ExpectedDeliverables,
	}
	proposed := negotiation.Offer{
		Budget:       proposal.ProposedBudget,
		TimelineDays: proposal.ProposedTimelineDays,
		Deliverables: proposal.ProposedDeliverables,
	}

	result := negotiation.Negotiate(projectID, clientID, project.Title, expected, proposed)

	resultJSON, err := json.Marshal(resultRecord(result))
	if err != nil {
		return negotiation.Result{}, fmt.Errorf("encode result: %w", err)
	}
	if _, err := u.negotiations.Insert(ctx, repository.NegotiationInsert{
		ProjectID:  projectID,
		ClientID:   clientID,
		ResultJSON: resultJSON,
	}); err != nil {
		return negotiation.Result{}, fmt.Errorf("%w: persist negotiation: %v", ErrStorage, err)
	}

	return result, nil
}

type fieldRecord struct {
	Status       negotiation.Status `json:"status"`
	Expected     *int64             `json:"expected"`
	Proposed     *int64             `json:"proposed"`
	Counteroffer *int64             `json:"counteroffer,omitempty"`
}

type deliverablesRecord struct {
	Status       negotiation.Status `json:"status"`
	Expected     *string            `json:"expected"`
	Proposed     *string            `json:"proposed"`
	Counteroffer *int64             `json:"counteroffer,omitempty"`
}

type negotiationRecord struct {
	ProjectID     int64              `json:"project_id"`
	ClientID      int64              `json:"client_id"`
	ProjectName   string             `json:"project_name"`
	OverallStatus negotiation.Status `json:"overall_status"`
	Budget        fieldRecord        `json:"budget"`
	Timeline      fieldRecord        `json:"timeline"`
	Deliverables  deliverablesRecord `json:"deliverables"`
	Summary       string             `json:"summary"`
}

func resultRecord(r negotiation.Result) negotiationRecord {
	return negotiationRecord{
		ProjectID:     r.ProjectID,
		ClientID:      r.ClientID,
		ProjectName:   r.ProjectName,
		OverallStatus: r.OverallStatus,
		Budget:        fieldRecord{r.Budget.Status, r.Budget.Expected, r.Budget.Proposed, r.Budget.Counteroffer},
		Timeline:      fieldRecord{r.Timeline.Status, r.Timeline.Expected, r.Timeline.Proposed, r.Timeline.Counteroffer},
		Deliverables:  deliverablesRecord{r.Deliverables.Status, r.Deliverables.Expected, r.Deliverables.Proposed, r.Deliverables.Counteroffer},
		Summary:       r.Summary,
	}
}
