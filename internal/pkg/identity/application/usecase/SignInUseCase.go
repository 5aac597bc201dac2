package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/port"
)

// SignInInput carries login credentials.
type SignInInput struct {
	Email    string
	Password string
}

// SignInResult is the authenticated user plus their table-sourced role.
type SignInResult struct {
	User identity.User
	Role identity.Role
}

// SignInUseCase verifies credentials against the stored bcrypt hash.
type SignInUseCase struct {
	Repo repository.UserRepository
}

func NewSignInUseCase(repo repository.UserRepository) *SignInUseCase {
	return &SignInUseCase{Repo: repo}
}

func (uc *SignInUseCase) Execute(ctx context.Context, in SignInInput) (*SignInResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, identity.ErrInvalidCredentials
	}

	user, err := uc.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			// Same error as a bad password so the response does not leak
			// which emails exist.
			return nil, identity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, identity.ErrInvalidCredentials
	}

	role, err := uc.Repo.GetRole(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &SignInResult{User: user, Role: role}, nil
}
