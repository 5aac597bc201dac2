package repository

import (
	"context"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
)

// UserRepository defines persistence operations for accounts and roles.
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string, role identity.Role) (identity.User, error)
	GetUserByEmail(ctx context.Context, email string) (identity.User, error)
	GetUserByID(ctx context.Context, id string) (identity.User, error)
	GetRole(ctx context.Context, userID string) (identity.Role, error)
	ListUserIDsByRole(ctx context.Context, role identity.Role) ([]string, error)
}
