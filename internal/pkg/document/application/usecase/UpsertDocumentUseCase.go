package usecase

import (
	"context"
	"errors"
	"fmt"

	document "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/persistence/repository/port"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = errors.New("document use case persistence error")

// UpsertDocumentInput records an uploaded document. Ext is the file
// extension of the uploaded object; the path is derived, never
// caller-supplied.
type UpsertDocumentInput struct {
	UserID  string
	DocType string
	Ext     string
}

// UpsertDocumentUseCase records a document at its canonical object path.
type UpsertDocumentUseCase struct {
	Repo repository.DocumentRepository
}

func NewUpsertDocumentUseCase(repo repository.DocumentRepository) *UpsertDocumentUseCase {
	return &UpsertDocumentUseCase{Repo: repo}
}

func (uc *UpsertDocumentUseCase) Execute(ctx context.Context, in UpsertDocumentInput) (*document.Document, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	docType, err := document.ParseDocType(in.DocType)
	if err != nil {
		return nil, err
	}
	path, err := document.ObjectPath(in.UserID, docType, in.Ext)
	if err != nil {
		return nil, err
	}

	saved, err := uc.Repo.UpsertDocument(ctx, document.Document{
		UserID:   in.UserID,
		DocType:  docType,
		FilePath: path,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &saved, nil
}
