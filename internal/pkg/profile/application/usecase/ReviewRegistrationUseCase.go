package usecase

import (
	"context"
	"errors"
	"fmt"

	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/port"
)

// ReviewRegistrationInput is an admin approve/reject decision.
type ReviewRegistrationInput struct {
	UserID string
	Status profile.ApprovalStatus // approved or rejected
}

// ReviewRegistrationUseCase applies the admin's decision to a completed
// registration.
type ReviewRegistrationUseCase struct {
	Repo repository.ProfileRepository
}

func NewReviewRegistrationUseCase(repo repository.ProfileRepository) *ReviewRegistrationUseCase {
	return &ReviewRegistrationUseCase{Repo: repo}
}

func (uc *ReviewRegistrationUseCase) Execute(ctx context.Context, in ReviewRegistrationInput) error {
	if in.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if in.Status != profile.ApprovalApproved && in.Status != profile.ApprovalRejected {
		return profile.ErrInvalidApprovalStatus
	}

	if err := uc.Repo.SetApprovalStatus(ctx, in.UserID, in.Status); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
