package usecase

import (
	"context"
	"errors"
	"fmt"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/port"
)

// ApplyToOpportunityUseCase records an application against an open posting.
// Applying twice to the same posting returns the original application.
type ApplyToOpportunityUseCase struct {
	Repo           repository.OpportunityRepository
	Gate           repository.ApprovalGate
	BypassApproval bool
}

func NewApplyToOpportunityUseCase(repo repository.OpportunityRepository, gate repository.ApprovalGate, bypassApproval bool) *ApplyToOpportunityUseCase {
	return &ApplyToOpportunityUseCase{Repo: repo, Gate: gate, BypassApproval: bypassApproval}
}

func (uc *ApplyToOpportunityUseCase) Execute(ctx context.Context, opportunityID, userID string) (*opportunity.Application, error) {
	if !uc.BypassApproval {
		approved, err := uc.Gate.IsApproved(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if !approved {
			return nil, opportunity.ErrNotApproved
		}
	}

	o, err := uc.Repo.GetOpportunity(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, opportunity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if o.Status != opportunity.StatusOpen {
		return nil, opportunity.ErrClosed
	}

	a, err := uc.Repo.CreateApplication(ctx, opportunityID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &a, nil
}
