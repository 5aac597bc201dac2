package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/port"
)

// ManageOpportunityUseCase covers the admin side of postings: create and
// update, including opening and closing them.
type ManageOpportunityUseCase struct {
	Repo repository.OpportunityRepository
}

func NewManageOpportunityUseCase(repo repository.OpportunityRepository) *ManageOpportunityUseCase {
	return &ManageOpportunityUseCase{Repo: repo}
}

func (uc *ManageOpportunityUseCase) validate(o opportunity.Opportunity) error {
	if strings.TrimSpace(o.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if o.EventDate.IsZero() {
		return fmt.Errorf("event date is required")
	}
	if _, err := opportunity.ParseStatus(string(o.Status)); err != nil {
		return err
	}
	return nil
}

func (uc *ManageOpportunityUseCase) Create(ctx context.Context, o opportunity.Opportunity) (*opportunity.Opportunity, error) {
	if o.Status == "" {
		o.Status = opportunity.StatusOpen
	}
	if err := uc.validate(o); err != nil {
		return nil, err
	}
	saved, err := uc.Repo.CreateOpportunity(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &saved, nil
}

func (uc *ManageOpportunityUseCase) Update(ctx context.Context, o opportunity.Opportunity) (*opportunity.Opportunity, error) {
	if o.ID == "" {
		return nil, fmt.Errorf("opportunity id is required")
	}
	if err := uc.validate(o); err != nil {
		return nil, err
	}
	saved, err := uc.Repo.UpdateOpportunity(ctx, o)
	if err != nil {
		if errors.Is(err, opportunity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &saved, nil
}
