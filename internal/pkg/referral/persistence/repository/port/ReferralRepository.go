package repository

import (
	"context"

	referral "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/referral/application/domain"
)

// ReferralRepository stores referrals and completed events per user.
type ReferralRepository interface {
	CreateReferral(ctx context.Context, r referral.Referral) (referral.Referral, error)
	ListReferrals(ctx context.Context, referrerID string) ([]referral.Referral, error)

	CreateCompletedEvent(ctx context.Context, e referral.CompletedEvent) (referral.CompletedEvent, error)
	ListCompletedEvents(ctx context.Context, userID string) ([]referral.CompletedEvent, error)
}
