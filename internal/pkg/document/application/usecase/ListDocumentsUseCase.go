package usecase

import (
	"context"
	"fmt"

	document "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/document/persistence/repository/port"
	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
)

// ListDocumentsInput identifies whose documents to list and which role's
// requirements to check them against.
type ListDocumentsInput struct {
	UserID string
	Role   identity.Role
}

// ListDocumentsResult pairs the records on file with the role's required
// set and whatever is still missing.
type ListDocumentsResult struct {
	Documents []document.Document
	Required  []string
	Missing   []string
}

// ListDocumentsUseCase returns the user's documents together with their
// completeness against the role's required set.
type ListDocumentsUseCase struct {
	Repo repository.DocumentRepository
}

func NewListDocumentsUseCase(repo repository.DocumentRepository) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{Repo: repo}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, in ListDocumentsInput) (*ListDocumentsResult, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	docs, err := uc.Repo.ListDocuments(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	have := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		have[d.DocType] = struct{}{}
	}

	required := in.Role.RequiredDocuments()
	var missing []string
	for _, t := range required {
		if _, ok := have[t]; !ok {
			missing = append(missing, t)
		}
	}

	return &ListDocumentsResult{Documents: docs, Required: required, Missing: missing}, nil
}
