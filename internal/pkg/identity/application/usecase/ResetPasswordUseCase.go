package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/port"
)

// ResetPasswordUseCase handles a password-reset request. Outbound mail is
// not wired (same gap as the contact function); the reset token is minted
// and logged so the flow is observable end to end.
type ResetPasswordUseCase struct {
	Repo   repository.UserRepository
	Logger *slog.Logger
}

func NewResetPasswordUseCase(repo repository.UserRepository, logger *slog.Logger) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{Repo: repo, Logger: logger}
}

// Execute always reports success to the caller; whether the email exists is
// not disclosed.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}

	user, err := uc.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	resetToken := uuid.NewString()
	uc.Logger.Info("password reset requested", "user_id", user.ID, "reset_token", resetToken)
	return nil
}
