package usecase

import (
	"context"
	"fmt"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/port"
)

// StartConversationUseCase opens the caller's support thread, creating it on
// first contact. Concurrent opens for the same vendor all land on the same
// thread.
type StartConversationUseCase struct {
	Repo repository.ChatRepository
}

func NewStartConversationUseCase(repo repository.ChatRepository) *StartConversationUseCase {
	return &StartConversationUseCase{Repo: repo}
}

func (uc *StartConversationUseCase) Execute(ctx context.Context, vendorID string) (*chat.Conversation, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("vendor id is required")
	}
	cv, err := uc.Repo.GetOrCreateConversation(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &cv, nil
}
