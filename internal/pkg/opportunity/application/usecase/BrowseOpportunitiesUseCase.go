package usecase

import (
	"context"
	"fmt"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/port"
)

// BrowseOpportunitiesUseCase lists open postings for an approved account.
// BypassApproval skips the gate in development environments.
type BrowseOpportunitiesUseCase struct {
	Repo           repository.OpportunityRepository
	Gate           repository.ApprovalGate
	BypassApproval bool
}

func NewBrowseOpportunitiesUseCase(repo repository.OpportunityRepository, gate repository.ApprovalGate, bypassApproval bool) *BrowseOpportunitiesUseCase {
	return &BrowseOpportunitiesUseCase{Repo: repo, Gate: gate, BypassApproval: bypassApproval}
}

func (uc *BrowseOpportunitiesUseCase) Execute(ctx context.Context, userID string) ([]opportunity.Opportunity, error) {
	if !uc.BypassApproval {
		approved, err := uc.Gate.IsApproved(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if !approved {
			return nil, opportunity.ErrNotApproved
		}
	}

	list, err := uc.Repo.ListOpportunities(ctx, opportunity.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return list, nil
}
