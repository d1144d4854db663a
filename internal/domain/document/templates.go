package document

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MOUKind is the closed set of memorandum templates.
type MOUKind string

const (
	MOUServiceAgreement     MOUKind = "service_agreement"
	MOUProjectCollaboration MOUKind = "project_collaboration"
)

// LetterKind is the closed set of letter templates.
type LetterKind string

const (
	LetterProposalAcceptance LetterKind = "proposal_acceptance"
	LetterProjectCompletion  LetterKind = "project_completion"
)

var (
	ErrUnknownMOUKind    = errors.New("unknown MOU kind")
	ErrUnknownLetterKind = errors.New("unknown letter kind")
)

func ParseMOUKind(s string) (MOUKind, error) {
	switch MOUKind(strings.ToLower(strings.TrimSpace(s))) {
	case MOUServiceAgreement:
		return MOUServiceAgreement, nil
	case MOUProjectCollaboration:
		return MOUProjectCollaboration, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMOUKind, s)
	}
}

func ParseLetterKind(s string) (LetterKind, error) {
	switch LetterKind(strings.ToLower(strings.TrimSpace(s))) {
	case LetterProposalAcceptance:
		return LetterProposalAcceptance, nil
	case LetterProjectCompletion:
		return LetterProjectCompletion, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLetterKind, s)
	}
}

// Data carries the fields the templates substitute. Date defaults to today
// when left empty.
type Data struct {
	OrganizationName   string
	ClientName         string
	ProjectTitle       string
	ProjectDescription string
	Timeline           string
	Budget             string
	SenderName         string
	Date               string
}

func (d Data) dateOrNow() string {
	if strings.TrimSpace(d.Date) != "" {
		return d.Date
	}
	return time.Now().Format("January 2, 2006")
}

func GenerateMOU(kind MOUKind, d Data) (string, error) {
	switch kind {
	case MOUServiceAgreement:
		return serviceAgreementMOU(d), nil
	case MOUProjectCollaboration:
		return projectCollaborationMOU(d), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMOUKind, kind)
	}
}

func GenerateLetter(kind LetterKind, d Data) (string, error) {
	switch kind {
	case LetterProposalAcceptance:
		return proposalAcceptanceLetter(d), nil
	case LetterProjectCompletion:
		return projectCompletionLetter(d), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLetterKind, kind)
	}
}

func serviceAgreementMOU(d Data) string {
	return strings.TrimSpace(fmt.Sprintf(`MEMORANDUM OF UNDERSTANDING - SERVICE AGREEMENT

Between: %s
And: %s

Project: %s
Description: %s
Timeline: %s
Budget: %s

This MOU establishes the framework for service delivery between the parties.

Signed: _________________ Date: _________
%s

Signed: _________________ Date: _________
%s`,
		d.OrganizationName, d.ClientName, d.ProjectTitle, d.ProjectDescription,
		d.Timeline, d.Budget, d.OrganizationName, d.ClientName))
}

func projectCollaborationMOU(d Data) string {
	return strings.TrimSpace(fmt.Sprintf(`MEMORANDUM OF UNDERSTANDING - PROJECT COLLABORATION

Collaborating Organizations:
- %s
- %s

Project Title: %s
Project Overview: %s
Timeline: %s
Budget: %s

This MOU outlines the collaborative partnership for joint project execution.

For %s: _________________ Date: _________
For %s: _________________ Date: _________`,
		d.OrganizationName, d.ClientName, d.ProjectTitle, d.ProjectDescription,
		d.Timeline, d.Budget, d.OrganizationName, d.ClientName))
}

func proposalAcceptanceLetter(d Data) string {
	return strings.TrimSpace(fmt.Sprintf(`%s

%s

Subject: Acceptance of Project Proposal - %s

Dear %s,

We are pleased to accept your project proposal for %s.

Project details:
- Description: %s
- Timeline: %s
- Budget: %s

We look forward to a successful collaboration.

Sincerely,
%s
%s`,
		d.dateOrNow(), d.ClientName, d.ProjectTitle, d.ClientName, d.ProjectTitle,
		d.ProjectDescription, d.Timeline, d.Budget, d.SenderName, d.OrganizationName))
}

func projectCompletionLetter(d Data) string {
	return strings.TrimSpace(fmt.Sprintf(`%s

%s

Subject: Project Completion - %s

Dear %s,

We are pleased to inform you that %s has been successfully completed.

Thank you for your collaboration throughout this project.

Best regards,
%s
%s`,
		d.dateOrNow(), d.ClientName, d.ProjectTitle, d.ClientName, d.ProjectTitle,
		d.SenderName, d.OrganizationName))
}
