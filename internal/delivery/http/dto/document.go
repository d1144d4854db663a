package dto

type GenerateDocumentRequest struct {
	DocType       string `json:"doc_type"`
	TemplateType  string `json:"template_type"`
	NegotiationID *int64 `json:"negotiation_id"`

	OrganizationName   string `json:"organization_name"`
	ClientName         string `json:"client_name"`
	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description"`
	Timeline           string `json:"timeline"`
	Budget             string `json:"budget"`
	SenderName         string `json:"sender_name"`
	Date               string `json:"date"`
}

type GenerateDocumentResponse struct {
	DocumentID int64  `json:"document_id"`
	DocType    string `json:"doc_type"`
	Document   string `json:"document"`
}
