package repository

import (
	"context"

	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
)

// ProfileRepository defines persistence operations for business profiles
// and the approval workflow.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error)
	SetRegistrationCompleted(ctx context.Context, userID string, completed bool) error
	SetApprovalStatus(ctx context.Context, userID string, status profile.ApprovalStatus) error
	ListByApprovalStatus(ctx context.Context, status profile.ApprovalStatus, completedOnly bool) ([]profile.Profile, error)
}
