package dto

type GenerateEmailRequest struct {
	SenderName    string `json:"sender_name"`
	RecipientName string `json:"recipient_name"`
	ProjectTitle  string `json:"project_title"`
	MessageType   string `json:"message_type"`
	NegotiationID *int64 `json:"negotiation_id"`

	Deadline        string `json:"deadline"`
	BudgetRange     string `json:"budget_range"`
	ProposalSummary string `json:"proposal_summary"`
	Timeline        string `json:"timeline"`
	StartDate       string `json:"start_date"`
	Reason          string `json:"reason"`
}

type GenerateEmailResponse struct {
	CommunicationID int64  `json:"communication_id"`
	Email           string `json:"email"`
	Tone            string `json:"tone"`
}

type AnalyzeEmailRequest struct {
	EmailContent string `json:"email_content"`
}

type PriorityResponse struct {
	Priority string   `json:"priority"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords_found"`
}

type AnalyzeEmailResponse struct {
	Tone     string           `json:"tone"`
	Priority PriorityResponse `json:"priority"`
}
