package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/port"
)

// MarkMessagesReadUseCase stamps everything the counterpart sent in a thread
// as read. Idempotent: a second call finds nothing left to stamp.
type MarkMessagesReadUseCase struct {
	Repo   repository.ChatRepository
	Events MessageEvents
}

func NewMarkMessagesReadUseCase(repo repository.ChatRepository, events MessageEvents) *MarkMessagesReadUseCase {
	return &MarkMessagesReadUseCase{Repo: repo, Events: events}
}

func (uc *MarkMessagesReadUseCase) Execute(ctx context.Context, conversationID, readerID string, readerIsAdmin bool) (int64, error) {
	cv, err := uc.Repo.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, chat.ErrConversationNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !readerIsAdmin && cv.VendorID != readerID {
		return 0, chat.ErrNotParticipant
	}

	count, err := uc.Repo.MarkRead(ctx, conversationID, readerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Events != nil && count > 0 {
		uc.Events.MessagesRead(ctx, conversationID, readerID, count)
	}
	return count, nil
}
