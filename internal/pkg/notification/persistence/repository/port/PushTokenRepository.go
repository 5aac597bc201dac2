package repository

import (
	"context"

	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
)

// PushTokenRepository stores device push tokens.
type PushTokenRepository interface {
	// UpsertToken registers a device. The same (user, token) pair refreshes
	// in place; the same token moving to another platform updates it.
	UpsertToken(ctx context.Context, userID, token string, platform notification.Platform) (notification.PushToken, error)
	ListTokensByUsers(ctx context.Context, userIDs []string) ([]notification.PushToken, error)
	DeleteToken(ctx context.Context, userID, token string) error
}
