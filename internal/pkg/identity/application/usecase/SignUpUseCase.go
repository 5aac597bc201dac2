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

// SignUpInput carries the data needed to open a new account.
type SignUpInput struct {
	Email    string
	Password string
	Role     string // "vendor" or "chef"; admins are provisioned out of band
}

// SignUpUseCase creates an account with its role row and returns the new user.
type SignUpUseCase struct {
	Repo repository.UserRepository
}

func NewSignUpUseCase(repo repository.UserRepository) *SignUpUseCase {
	return &SignUpUseCase{Repo: repo}
}

// Execute validates input, hashes the password and persists the account.
func (uc *SignUpUseCase) Execute(ctx context.Context, in SignUpInput) (*identity.User, identity.Role, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", errors.New("a valid email is required")
	}
	if len(in.Password) < 8 {
		return nil, "", errors.New("password must be at least 8 characters")
	}

	role, err := identity.SignupRole(in.Role)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	user, err := uc.Repo.CreateUser(ctx, email, string(hash), role)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &user, role, nil
}
