package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
)

// fakeChatRepo keeps conversations and messages in memory, mirroring the
// store's uniqueness and read-stamp semantics.
type fakeChatRepo struct {
	byVendor map[string]chat.Conversation
	byID     map[string]chat.Conversation
	messages []chat.Message
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		byVendor: make(map[string]chat.Conversation),
		byID:     make(map[string]chat.Conversation),
	}
}

func (f *fakeChatRepo) GetOrCreateConversation(ctx context.Context, vendorID string) (chat.Conversation, error) {
	if cv, ok := f.byVendor[vendorID]; ok {
		return cv, nil
	}
	cv := chat.Conversation{ID: uuid.NewString(), VendorID: vendorID, CreatedAt: time.Now(), LastMessageAt: time.Now()}
	f.byVendor[vendorID] = cv
	f.byID[cv.ID] = cv
	return cv, nil
}

func (f *fakeChatRepo) GetConversation(ctx context.Context, id string) (chat.Conversation, error) {
	cv, ok := f.byID[id]
	if !ok {
		return chat.Conversation{}, chat.ErrConversationNotFound
	}
	return cv, nil
}

func (f *fakeChatRepo) SaveMessage(ctx context.Context, conversationID, senderID, content string) (chat.Message, error) {
	m := chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeChatRepo) ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	var out []chat.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) MarkRead(ctx context.Context, conversationID, readerID string) (int64, error) {
	var count int64
	now := time.Now()
	for i := range f.messages {
		m := &f.messages[i]
		if m.ConversationID == conversationID && m.SenderID != readerID && m.ReadAt == nil {
			m.ReadAt = &now
			count++
		}
	}
	return count, nil
}

func (f *fakeChatRepo) UnreadCount(ctx context.Context, conversationID, readerID string) (int, error) {
	count := 0
	for _, m := range f.messages {
		if m.ConversationID == conversationID && m.SenderID != readerID && m.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeChatRepo) ListConversationSummaries(ctx context.Context) ([]chat.ConversationSummary, error) {
	var out []chat.ConversationSummary
	for _, cv := range f.byID {
		unread, _ := f.UnreadCount(ctx, cv.ID, "admin")
		out = append(out, chat.ConversationSummary{Conversation: cv, UnreadCount: unread})
	}
	return out, nil
}

type recordedEvents struct {
	sent []chat.Message
	read []int64
}

func (r *recordedEvents) MessageSent(ctx context.Context, m chat.Message, vendorID string, senderIsAdmin bool) {
	r.sent = append(r.sent, m)
}

func (r *recordedEvents) MessagesRead(ctx context.Context, conversationID, readerID string, count int64) {
	r.read = append(r.read, count)
}

func TestSendMessagePersistsAndNotifies(t *testing.T) {
	repo := newFakeChatRepo()
	events := &recordedEvents{}
	cv, _ := repo.GetOrCreateConversation(context.Background(), "vendor-1")

	uc := NewSendMessageUseCase(repo, events)
	m, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: cv.ID, SenderID: "vendor-1", Content: "  hello  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", m.Content, "content is trimmed")
	require.Len(t, events.sent, 1)
	assert.Equal(t, m.ID, events.sent[0].ID)
}

func TestSendMessageRejectsOutsiders(t *testing.T) {
	repo := newFakeChatRepo()
	cv, _ := repo.GetOrCreateConversation(context.Background(), "vendor-1")

	uc := NewSendMessageUseCase(repo, &recordedEvents{})
	_, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: cv.ID, SenderID: "vendor-2", Content: "hi",
	})
	assert.ErrorIs(t, err, chat.ErrNotParticipant)

	// An admin may write into any thread.
	_, err = uc.Execute(context.Background(), SendMessageInput{
		ConversationID: cv.ID, SenderID: "admin-1", SenderIsAdmin: true, Content: "hi",
	})
	assert.NoError(t, err)
}

func TestSendMessageRejectsBlankContent(t *testing.T) {
	repo := newFakeChatRepo()
	cv, _ := repo.GetOrCreateConversation(context.Background(), "vendor-1")

	uc := NewSendMessageUseCase(repo, &recordedEvents{})
	_, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: cv.ID, SenderID: "vendor-1", Content: "   ",
	})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestSendMessageUnknownConversation(t *testing.T) {
	uc := NewSendMessageUseCase(newFakeChatRepo(), &recordedEvents{})
	_, err := uc.Execute(context.Background(), SendMessageInput{
		ConversationID: uuid.NewString(), SenderID: "vendor-1", Content: "hi",
	})
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)
}

func TestMarkMessagesReadIsScopedAndIdempotent(t *testing.T) {
	repo := newFakeChatRepo()
	events := &recordedEvents{}
	cv, _ := repo.GetOrCreateConversation(context.Background(), "vendor-1")
	_, _ = repo.SaveMessage(context.Background(), cv.ID, "vendor-1", "one")
	_, _ = repo.SaveMessage(context.Background(), cv.ID, "vendor-1", "two")
	_, _ = repo.SaveMessage(context.Background(), cv.ID, "admin-1", "reply")

	uc := NewMarkMessagesReadUseCase(repo, events)

	// Admin reads the vendor's two messages, not their own reply.
	count, err := uc.Execute(context.Background(), cv.ID, "admin-1", true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// Nothing left on the second pass, and no read event fires.
	count, err = uc.Execute(context.Background(), cv.ID, "admin-1", true)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Len(t, events.read, 1)

	// The vendor still has the admin reply unread.
	unread, err := repo.UnreadCount(context.Background(), cv.ID, "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestStartConversationConverges(t *testing.T) {
	repo := newFakeChatRepo()
	uc := NewStartConversationUseCase(repo)

	first, err := uc.Execute(context.Background(), "vendor-1")
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), "vendor-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "one thread per vendor")
}
