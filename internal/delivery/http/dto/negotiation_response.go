package dto

type FieldVerdictResponse struct {
	Status       string `json:"status"`
	Expected     *int64 `json:"expected"`
	Proposed     *int64 `json:"proposed"`
	Counteroffer *int64 `json:"counteroffer,omitempty"`
}

type DeliverablesVerdictResponse struct {
	Status       string  `json:"status"`
	Expected     *string `json:"expected"`
	Proposed     *string `json:"proposed"`
	Counteroffer *int64  `json:"counteroffer,omitempty"`
}

type NegotiationResponse struct {
	ProjectID     int64                       `json:"project_id"`
	ClientID      int64                       `json:"client_id"`
	ProjectName   string                      `json:"project_name"`
	OverallStatus string                      `json:"overall_status"`
	Budget        FieldVerdictResponse        `json:"budget"`
	Timeline      FieldVerdictResponse        `json:"timeline"`
	Deliverables  DeliverablesVerdictResponse `json:"deliverables"`
	Summary       string                      `json:"summary"`
}
