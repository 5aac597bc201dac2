package repository

import (
	"context"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
)

// OpportunityRepository defines persistence operations for postings and
// applications.
type OpportunityRepository interface {
	CreateOpportunity(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error)
	UpdateOpportunity(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error)
	GetOpportunity(ctx context.Context, id string) (opportunity.Opportunity, error)
	ListOpportunities(ctx context.Context, status opportunity.Status) ([]opportunity.Opportunity, error)

	// CreateApplication inserts unless the (opportunity, user) pair already
	// applied, in which case the existing application is returned.
	CreateApplication(ctx context.Context, opportunityID, userID string) (opportunity.Application, error)
	ListApplicationsByUser(ctx context.Context, userID string) ([]opportunity.Application, error)
	ListApplicationsByOpportunity(ctx context.Context, opportunityID string) ([]opportunity.Application, error)
	SetApplicationStatus(ctx context.Context, applicationID string, status opportunity.ApplicationStatus) (opportunity.Application, error)
}

// ApprovalGate reports whether the user's registration has been approved.
// The profile module owns the underlying table.
type ApprovalGate interface {
	IsApproved(ctx context.Context, userID string) (bool, error)
}
