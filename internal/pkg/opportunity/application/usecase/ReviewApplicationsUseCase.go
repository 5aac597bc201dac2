package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/port"
)

// DecisionNotifier pushes the outcome of an application review to its
// applicant. The notification module provides the adapter.
type DecisionNotifier interface {
	NotifyApplicationDecision(ctx context.Context, userID, opportunityTitle string, status opportunity.ApplicationStatus) error
}

// ReviewApplicationsUseCase lets admins list and decide applications. A
// decision notifies the applicant best-effort: a failed push never rolls
// back the status change.
type ReviewApplicationsUseCase struct {
	Repo     repository.OpportunityRepository
	Notifier DecisionNotifier
	Logger   *slog.Logger
}

func NewReviewApplicationsUseCase(repo repository.OpportunityRepository, notifier DecisionNotifier, logger *slog.Logger) *ReviewApplicationsUseCase {
	return &ReviewApplicationsUseCase{Repo: repo, Notifier: notifier, Logger: logger}
}

func (uc *ReviewApplicationsUseCase) List(ctx context.Context, opportunityID string) ([]opportunity.Application, error) {
	list, err := uc.Repo.ListApplicationsByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return list, nil
}

func (uc *ReviewApplicationsUseCase) Decide(ctx context.Context, applicationID string, status opportunity.ApplicationStatus) (*opportunity.Application, error) {
	if _, err := opportunity.ParseApplicationStatus(string(status)); err != nil {
		return nil, err
	}

	a, err := uc.Repo.SetApplicationStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, opportunity.ErrAppNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Notifier != nil && status != opportunity.ApplicationPending {
		o, err := uc.Repo.GetOpportunity(ctx, a.OpportunityID)
		if err != nil {
			uc.Logger.Warn("could not load opportunity for decision notice", "applicationId", a.ID, "error", err)
			return &a, nil
		}
		if err := uc.Notifier.NotifyApplicationDecision(ctx, a.UserID, o.Title, status); err != nil {
			uc.Logger.Warn("could not notify applicant", "applicationId", a.ID, "error", err)
		}
	}
	return &a, nil
}
