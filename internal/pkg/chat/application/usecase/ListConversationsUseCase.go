package usecase

import (
	"context"
	"fmt"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/port"
)

// ListConversationsUseCase backs the admin inbox.
type ListConversationsUseCase struct {
	Repo repository.ChatRepository
}

func NewListConversationsUseCase(repo repository.ChatRepository) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context) ([]chat.ConversationSummary, error) {
	list, err := uc.Repo.ListConversationSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return list, nil
}
