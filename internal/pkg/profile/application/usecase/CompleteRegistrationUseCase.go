package usecase

import (
	"context"
	"fmt"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/port"
)

// DocumentChecker reports which document types a user has on file. The
// document module provides the adapter.
type DocumentChecker interface {
	ListDocTypes(ctx context.Context, userID string) ([]string, error)
}

// CompleteRegistrationInput identifies the registrant and their role, which
// determines the required document set.
type CompleteRegistrationInput struct {
	UserID string
	Role   identity.Role
}

// CompleteRegistrationResult reports the outcome, including any documents
// still missing when the registration could not be completed.
type CompleteRegistrationResult struct {
	Completed        bool
	MissingDocuments []string
}

// CompleteRegistrationUseCase closes the registration step of the workflow:
// the profile must be filled in and every role-required document on file
// before registration_completed flips to true. Approval stays pending until
// an admin reviews it.
type CompleteRegistrationUseCase struct {
	Repo repository.ProfileRepository
	Docs DocumentChecker
}

func NewCompleteRegistrationUseCase(repo repository.ProfileRepository, docs DocumentChecker) *CompleteRegistrationUseCase {
	return &CompleteRegistrationUseCase{Repo: repo, Docs: docs}
}

func (uc *CompleteRegistrationUseCase) Execute(ctx context.Context, in CompleteRegistrationInput) (*CompleteRegistrationResult, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	p, err := uc.Repo.Get(ctx, in.UserID)
	if err != nil {
		if err == profile.ErrNotFound {
			return nil, profile.ErrIncompleteProfile
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !p.FieldsComplete() {
		return nil, profile.ErrIncompleteProfile
	}

	onFile, err := uc.Docs.ListDocTypes(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	have := make(map[string]struct{}, len(onFile))
	for _, t := range onFile {
		have[t] = struct{}{}
	}

	var missing []string
	for _, required := range in.Role.RequiredDocuments() {
		if _, ok := have[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return &CompleteRegistrationResult{Completed: false, MissingDocuments: missing}, profile.ErrMissingDocuments
	}

	if err := uc.Repo.SetRegistrationCompleted(ctx, in.UserID, true); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &CompleteRegistrationResult{Completed: true}, nil
}
