package usecase

import (
	"context"
	"fmt"

	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/persistence/repository/port"
)

// RegisterTokenUseCase records a device token for the caller.
type RegisterTokenUseCase struct {
	Repo repository.PushTokenRepository
}

func NewRegisterTokenUseCase(repo repository.PushTokenRepository) *RegisterTokenUseCase {
	return &RegisterTokenUseCase{Repo: repo}
}

func (uc *RegisterTokenUseCase) Execute(ctx context.Context, userID, token, platform string) (*notification.PushToken, error) {
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}
	p, err := notification.ParsePlatform(platform)
	if err != nil {
		return nil, err
	}
	saved, err := uc.Repo.UpsertToken(ctx, userID, token, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &saved, nil
}

// Unregister drops a device token, typically on signout. Removing a token
// that was never registered is not an error.
func (uc *RegisterTokenUseCase) Unregister(ctx context.Context, userID, token string) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}
	if err := uc.Repo.DeleteToken(ctx, userID, token); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
