package usecase

import (
	"context"
	"fmt"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/persistence/repository/port"
)

// PushSender delivers a batch of device tokens. The FCM gateway implements
// it; tests swap in a fake.
type PushSender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error)
}

// RoleDirectory resolves a role to its member user ids. The identity module
// provides the adapter.
type RoleDirectory interface {
	ListUserIDsByRole(ctx context.Context, role identity.Role) ([]string, error)
}

// DispatchInput targets either an explicit user list or every member of a
// role. Data rides along as FCM data payload.
type DispatchInput struct {
	UserIDs    []string
	TargetRole string
	Title      string
	Body       string
	Data       map[string]string
}

// DispatchResult reports what happened token by token. IOSTokens are
// registered devices that were counted but not delivered to; only android
// goes through FCM here.
type DispatchResult struct {
	Success       bool
	Sent          int
	AndroidTokens int
	IOSTokens     int
	Message       string
}

// DispatchPushUseCase resolves the target audience, partitions their tokens
// by platform and pushes the android batch through FCM.
type DispatchPushUseCase struct {
	Tokens repository.PushTokenRepository
	Roles  RoleDirectory
	Sender PushSender
}

func NewDispatchPushUseCase(tokens repository.PushTokenRepository, roles RoleDirectory, sender PushSender) *DispatchPushUseCase {
	return &DispatchPushUseCase{Tokens: tokens, Roles: roles, Sender: sender}
}

func (uc *DispatchPushUseCase) Execute(ctx context.Context, in DispatchInput) (*DispatchResult, error) {
	if err := notification.ValidateContent(in.Title, in.Body); err != nil {
		return nil, err
	}

	// An explicit user_ids list is taken verbatim, even when empty: an
	// empty audience is a successful no-op, not a bad request. Only a
	// request naming neither target is rejected.
	userIDs := in.UserIDs
	if userIDs == nil {
		if in.TargetRole == "" {
			return nil, notification.ErrNoTarget
		}
		role, err := identity.ParseRole(in.TargetRole)
		if err != nil {
			return nil, err
		}
		userIDs, err = uc.Roles.ListUserIDsByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	tokens, err := uc.Tokens.ListTokensByUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var android, ios []string
	for _, t := range tokens {
		switch t.Platform {
		case notification.PlatformAndroid:
			android = append(android, t.Token)
		case notification.PlatformIOS:
			ios = append(ios, t.Token)
		}
	}

	res := &DispatchResult{
		Success:       true,
		AndroidTokens: len(android),
		IOSTokens:     len(ios),
	}
	if len(android) == 0 && len(ios) == 0 {
		res.Message = "no registered devices for target"
		return res, nil
	}

	// A nil sender means FCM is not configured; tokens are counted but
	// nothing goes out.
	if len(android) > 0 && uc.Sender != nil {
		sent, err := uc.Sender.Send(ctx, android, in.Title, in.Body, in.Data)
		if err != nil {
			return nil, fmt.Errorf("push delivery failed: %w", err)
		}
		res.Sent = sent
	}
	res.Message = fmt.Sprintf("delivered %d of %d android tokens; %d ios tokens registered", res.Sent, len(android), len(ios))
	return res, nil
}
