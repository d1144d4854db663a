package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"freelance-desk/internal/domain/communication"
	"freelance-desk/internal/repository"
)

type GenerateEmailInput struct {
	Kind          string
	NegotiationID *int64
	Params        communication.EmailParams
}

type GeneratedEmail struct {
	CommunicationID int64
	Email           string
	Tone            string
}

type EmailAnalysis struct {
	Tone     string
	Priority communication.PriorityResult
}

type CommunicationUsecase interface {
	// GenerateEmail renders the template for the requested kind, analyzes
	// its tone, and stores the message.
	GenerateEmail(ctx context.Context, in GenerateEmailInput) (GeneratedEmail, error)

	// AnalyzeEmail classifies tone and priority of arbitrary email text. It
	// is a pure computation; nothing is persisted.
	AnalyzeEmail(ctx context.Context, text string) (EmailAnalysis, error)
}

type Communication struct {
	communications repository.CommunicationRepository
}

func NewCommunicationUsecase(communications repository.CommunicationRepository) *Communication {
	return &Communication{communications: communications}
}

func (u *Communication) GenerateEmail(ctx context.Context, in GenerateEmailInput) (GeneratedEmail, error) {
	kind, err := communication.ParseEmailKind(in.Kind)
	if err != nil {
		return GeneratedEmail{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	email, err := communication.GenerateEmail(kind, in.Params)
	if err != nil {
		return GeneratedEmail{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	tone := communication.AnalyzeTone(email)
	priority := communication.ClassifyPriority(email)
	priorityJSON, err := json.Marshal(priorityRecord(priority))
	if err != nil {
		return GeneratedEmail{}, fmt.Errorf("encode priority: %w", err)
	}

	id, err := u.communications.Insert(ctx, repository.CommunicationInsert{
		NegotiationID: in.NegotiationID,
		Message:       email,
		Tone:          tone,
		PriorityJSON:  priorityJSON,
	})
	if err != nil {
		return GeneratedEmail{}, fmt.Errorf("%w: persist communication: %v", ErrStorage, err)
	}

	return GeneratedEmail{CommunicationID: id, Email: email, Tone: tone}, nil
}

func (u *Communication) AnalyzeEmail(_ context.Context, text string) (EmailAnalysis, error) {
	return EmailAnalysis{
		Tone:     communication.AnalyzeTone(text),
		Priority: communication.ClassifyPriority(text),
	}, nil
}

type priorityJSONRecord struct {
	Priority string   `json:"priority"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords_found"`
}

func priorityRecord(p communication.PriorityResult) priorityJSONRecord {
	return priorityJSONRecord{Priority: p.Priority, Score: p.Score, Keywords: p.Keywords}
}
