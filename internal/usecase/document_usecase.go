package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freelance-desk/internal/domain/document"
	"freelance-desk/internal/repository"
)

const (
	DocTypeMOU    = "mou"
	DocTypeLetter = "letter"
)

var ErrUnknownDocType = errors.New("unknown document type")

type GenerateDocumentInput struct {
	DocType       string
	TemplateKind  string
	NegotiationID *int64
	Data          document.Data
}

type GeneratedDocument struct {
	DocumentID int64
	DocType    string
	Content    string
}

type DocumentUsecase interface {
	GenerateDocument(ctx context.Context, in GenerateDocumentInput) (GeneratedDocument, error)
}

type Document struct {
	documents repository.DocumentRepository
}

func NewDocumentUsecase(documents repository.DocumentRepository) *Document {
	return &Document{documents: documents}
}

func (u *Document) GenerateDocument(ctx context.Context, in GenerateDocumentInput) (GeneratedDocument, error) {
	var content string

	switch strings.ToLower(strings.TrimSpace(in.DocType)) {
	case DocTypeMOU:
		kind, err := document.ParseMOUKind(in.TemplateKind)
		if err != nil {
			return GeneratedDocument{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if content, err = document.GenerateMOU(kind, in.Data); err != nil {
			return GeneratedDocument{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	case DocTypeLetter:
		kind, err := document.ParseLetterKind(in.TemplateKind)
		if err != nil {
			return GeneratedDocument{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if content, err = document.GenerateLetter(kind, in.Data); err != nil {
			return GeneratedDocument{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	default:
		return GeneratedDocument{}, fmt.Errorf("%w: %q", ErrUnknownDocType, in.DocType)
	}

	docType := strings.ToLower(strings.TrimSpace(in.DocType))
	id, err := u.documents.Insert(ctx, repository.DocumentInsert{
		NegotiationID: in.NegotiationID,
		DocType:       docType,
		Content:       content,
	})
	if err != nil {
		return GeneratedDocument{}, fmt.Errorf("%w: persist document: %v", ErrStorage, err)
	}

	return GeneratedDocument{DocumentID: id, DocType: docType, Content: content}, nil
}
