package communication

import (
	"errors"
	"fmt"
	"strings"
)

// EmailKind is the closed set of generated email types.
type EmailKind string

const (
	EmailInquiry    EmailKind = "inquiry"
	EmailProposal   EmailKind = "proposal"
	EmailAcceptance EmailKind = "acceptance"
	EmailRejection  EmailKind = "rejection"
)

var ErrUnknownEmailKind = errors.New("unknown email kind")

func ParseEmailKind(s string) (EmailKind, error) {
	switch EmailKind(strings.ToLower(strings.TrimSpace(s))) {
	case EmailInquiry:
		return EmailInquiry, nil
	case EmailProposal:
		return EmailProposal, nil
	case EmailAcceptance:
		return EmailAcceptance, nil
	case EmailRejection:
		return EmailRejection, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEmailKind, s)
	}
}

// EmailParams carries the fields shared by all templates plus the optional
// per-kind extras. Empty extras fall back to template defaults.
type EmailParams struct {
	SenderName    string
	RecipientName string
	ProjectTitle  string

	Deadline        string // inquiry
	BudgetRange     string // inquiry
	ProposalSummary string // proposal
	Timeline        string // proposal
	StartDate       string // acceptance
	Reason          string // rejection
}

// GenerateEmail fills the template for the given kind.
func GenerateEmail(kind EmailKind, p EmailParams) (string, error) {
	switch kind {
	case EmailInquiry:
		return inquiryEmail(p), nil
	case EmailProposal:
		return proposalEmail(p), nil
	case EmailAcceptance:
		return acceptanceEmail(p), nil
	case EmailRejection:
		return rejectionEmail(p), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEmailKind, kind)
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func inquiryEmail(p EmailParams) string {
	deadline := orDefault(p.Deadline, "to be discussed")
	budgetRange := orDefault(p.BudgetRange, "flexible")

	return fmt.Sprintf(`Subject: Project Inquiry - %s

Dear %s,

I hope this email finds you well. I am writing to inquire about the possibility of collaborating on a project titled %q.

We are seeking a qualified professional to help us with this initiative. The project deadline is %s, and our budget range is %s.

I would appreciate the opportunity to discuss this project in more detail at your convenience.

Best regards,
%s`, p.ProjectTitle, p.RecipientName, p.ProjectTitle, deadline, budgetRange, p.SenderName)
}

func proposalEmail(p EmailParams) string {
	summary := orDefault(p.ProposalSummary, "Please find attached our detailed proposal.")
	timeline := orDefault(p.Timeline, "4-6 weeks")

	return fmt.Sprintf(`Subject: Project Proposal - %s

Dear %s,

Thank you for the opportunity to submit a proposal for %q.

%s

Our proposed timeline for completion is %s.

Please review the proposal and feel free to contact me with any questions.

Best regards,
%s`, p.ProjectTitle, p.RecipientName, p.ProjectTitle, summary, timeline, p.SenderName)
}

func acceptanceEmail(p EmailParams) string {
	startDate := orDefault(p.StartDate, "as soon as possible")

	return fmt.Sprintf(`Subject: Project Acceptance - %s

Dear %s,

I am delighted to inform you that we have accepted your proposal for %q.

We would like to start %s. We will send you a detailed project plan within 48 hours.

Thank you for your professional proposal.

Best regards,
%s`, p.ProjectTitle, p.RecipientName, p.ProjectTitle, startDate, p.SenderName)
}

func rejectionEmail(p EmailParams) string {
	reason := orDefault(p.Reason, "budget constraints")

	return fmt.Sprintf(`Subject: Project Decision - %s

Dear %s,

Thank you for your proposal for %q.

After careful consideration, we have decided to move forward with a different approach due to %s.

We appreciate your professionalism and would be happy to consider you for future opportunities.

Best regards,
%s`, p.ProjectTitle, p.RecipientName, p.ProjectTitle, reason, p.SenderName)
}
