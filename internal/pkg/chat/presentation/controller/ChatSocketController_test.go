package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/realtime"
	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/usecase"
	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memChatRepo struct {
	conversations map[string]chat.Conversation
	messages      []chat.Message
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{conversations: make(map[string]chat.Conversation)}
}

func (f *memChatRepo) addConversation(id, vendorID string) chat.Conversation {
	cv := chat.Conversation{ID: id, VendorID: vendorID, CreatedAt: time.Now()}
	f.conversations[id] = cv
	return cv
}

func (f *memChatRepo) GetOrCreateConversation(ctx context.Context, vendorID string) (chat.Conversation, error) {
	for _, cv := range f.conversations {
		if cv.VendorID == vendorID {
			return cv, nil
		}
	}
	return f.addConversation(fmt.Sprintf("cv-%d", len(f.conversations)+1), vendorID), nil
}

func (f *memChatRepo) GetConversation(ctx context.Context, id string) (chat.Conversation, error) {
	cv, ok := f.conversations[id]
	if !ok {
		return chat.Conversation{}, chat.ErrConversationNotFound
	}
	return cv, nil
}

func (f *memChatRepo) SaveMessage(ctx context.Context, conversationID, senderID, content string) (chat.Message, error) {
	m := chat.Message{
		ID:             fmt.Sprintf("m-%d", len(f.messages)+1),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *memChatRepo) ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	return f.messages, nil
}

func (f *memChatRepo) MarkRead(ctx context.Context, conversationID, readerID string) (int64, error) {
	return 0, nil
}

func (f *memChatRepo) UnreadCount(ctx context.Context, conversationID, readerID string) (int, error) {
	return 0, nil
}

func (f *memChatRepo) ListConversationSummaries(ctx context.Context) ([]chat.ConversationSummary, error) {
	return nil, nil
}

type noopEvents struct{}

func (noopEvents) MessageSent(ctx context.Context, m chat.Message, vendorID string, senderIsAdmin bool) {
}
func (noopEvents) MessagesRead(ctx context.Context, conversationID, readerID string, count int64) {}

// dialSocket serves the controller behind a session-injecting route and
// dials it over a loopback server.
func dialSocket(t *testing.T, ctl *ChatSocketController, sess identity.Session) *websocket.Conn {
	t.Helper()

	engine := gin.New()
	engine.GET("/ws", func(c *gin.Context) {
		c.Set("session", sess)
	}, ctl.Handle())

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func readFrame(t *testing.T, ws *websocket.Conn) map[string]json.RawMessage {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := ws.ReadMessage()
	require.NoError(t, err)
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func frameType(t *testing.T, frame map[string]json.RawMessage) string {
	t.Helper()
	var typ string
	require.NoError(t, json.Unmarshal(frame["type"], &typ))
	return typ
}

func newSocketController(repo *memChatRepo) *ChatSocketController {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &ChatSocketController{
		Hub:      realtime.NewHub(),
		Repo:     repo,
		Send:     usecase.NewSendMessageUseCase(repo, noopEvents{}),
		MarkRead: usecase.NewMarkMessagesReadUseCase(repo, noopEvents{}),
		Logger:   logger,
	}
}

func TestSocketMessageEchoesToSender(t *testing.T) {
	repo := newMemChatRepo()
	cv := repo.addConversation("cv-1", "vendor-1")
	ctl := newSocketController(repo)

	ws := dialSocket(t, ctl, identity.Session{UserID: "vendor-1", Role: identity.RoleVendor})

	require.NoError(t, ws.WriteJSON(map[string]string{
		"action": "message", "conversation_id": cv.ID, "content": "hello there",
	}))

	frame := readFrame(t, ws)
	require.Equal(t, "message", frameType(t, frame))

	var m socketMessagePayload
	require.NoError(t, json.Unmarshal(frame["message"], &m))
	assert.Equal(t, cv.ID, m.ConversationID)
	assert.Equal(t, "vendor-1", m.SenderID)
	assert.Equal(t, "hello there", m.Content)
	assert.NotEmpty(t, m.ID)
}

func TestSocketMessageRejectsBlankContent(t *testing.T) {
	repo := newMemChatRepo()
	cv := repo.addConversation("cv-1", "vendor-1")
	ctl := newSocketController(repo)

	ws := dialSocket(t, ctl, identity.Session{UserID: "vendor-1", Role: identity.RoleVendor})

	require.NoError(t, ws.WriteJSON(map[string]string{
		"action": "message", "conversation_id": cv.ID, "content": "   ",
	}))

	frame := readFrame(t, ws)
	assert.Equal(t, "error", frameType(t, frame))
	assert.Empty(t, repo.messages)
}

func TestSocketSubscribeRequiresParticipation(t *testing.T) {
	repo := newMemChatRepo()
	cv := repo.addConversation("cv-1", "vendor-1")
	ctl := newSocketController(repo)

	ws := dialSocket(t, ctl, identity.Session{UserID: "vendor-2", Role: identity.RoleVendor})

	require.NoError(t, ws.WriteJSON(map[string]string{
		"action": "subscribe", "conversation_id": cv.ID,
	}))

	frame := readFrame(t, ws)
	assert.Equal(t, "error", frameType(t, frame))
}
