package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/realtime"
	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/port"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

const (
	pongWait    = 60 * time.Second
	maxFrameLen = 8 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ChatSocketController upgrades to a websocket and serves the realtime chat
// protocol: subscribe/unsubscribe to threads, send messages, mark them
// read. One socket per user; a newer socket bumps the previous one.
type ChatSocketController struct {
	Hub      *realtime.Hub
	Repo     repository.ChatRepository
	Send     *usecase.SendMessageUseCase
	MarkRead *usecase.MarkMessagesReadUseCase
	Logger   *slog.Logger
}

func NewChatSocketController(pool *pgxpool.Pool, hub *realtime.Hub, events usecase.MessageEvents, logger *slog.Logger) *ChatSocketController {
	repo := adapter.NewPgChatRepository(pool)
	return &ChatSocketController{
		Hub:      hub,
		Repo:     repo,
		Send:     usecase.NewSendMessageUseCase(repo, events),
		MarkRead: usecase.NewMarkMessagesReadUseCase(repo, events),
		Logger:   logger,
	}
}

type socketFrame struct {
	Action         string `json:"action"`
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

type socketError struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type socketAck struct {
	Type           string `json:"type"`
	Action         string `json:"action"`
	ConversationID string `json:"conversation_id"`
}

type socketMessage struct {
	Type    string               `json:"type"`
	Message socketMessagePayload `json:"message"`
}

type socketMessagePayload struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at"`
}

func (h *ChatSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.Logger.Warn("websocket upgrade failed", "userId", sess.UserID, "error", err)
			return
		}

		conn := realtime.NewConnection(sess.UserID, ws)
		h.Hub.Attach(conn)
		defer h.Hub.Detach(conn)

		ws.SetReadLimit(maxFrameLen)
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(pongWait))
		})

		for {
			_, raw, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.Logger.Debug("websocket closed", "userId", sess.UserID, "error", err)
				}
				return
			}

			var frame socketFrame
			if err := json.Unmarshal(raw, &frame); err != nil {
				h.sendError(conn, "malformed frame")
				continue
			}
			h.handleFrame(c.Request.Context(), conn, sess.UserID, sess.IsAdmin(), frame)
		}
	}
}

func (h *ChatSocketController) handleFrame(parent context.Context, conn *realtime.Connection, userID string, isAdmin bool, frame socketFrame) {
	ctx, cancel := context.WithTimeout(parent, 3*time.Second)
	defer cancel()

	switch frame.Action {
	case "subscribe":
		if !h.canAccess(ctx, userID, isAdmin, frame.ConversationID) {
			h.sendError(conn, "not a participant")
			return
		}
		h.Hub.Subscribe(frame.ConversationID, conn)
		h.sendAck(conn, frame)

	case "unsubscribe":
		h.Hub.Unsubscribe(frame.ConversationID, conn)
		h.sendAck(conn, frame)

	case "message":
		m, err := h.Send.Execute(ctx, usecase.SendMessageInput{
			ConversationID: frame.ConversationID,
			SenderID:       userID,
			SenderIsAdmin:  isAdmin,
			Content:        frame.Content,
		})
		if err != nil {
			h.sendError(conn, sendErrorText(err))
			return
		}
		// The room broadcast excludes the sender, so echo the persisted
		// message back on this socket.
		h.sendMessage(conn, *m)

	case "mark_read":
		if _, err := h.MarkRead.Execute(ctx, frame.ConversationID, userID, isAdmin); err != nil {
			h.sendError(conn, sendErrorText(err))
		}

	default:
		h.sendError(conn, "unknown action")
	}
}

func (h *ChatSocketController) canAccess(ctx context.Context, userID string, isAdmin bool, conversationID string) bool {
	cv, err := h.Repo.GetConversation(ctx, conversationID)
	if err != nil {
		return false
	}
	return isAdmin || cv.VendorID == userID
}

func (h *ChatSocketController) sendError(conn *realtime.Connection, text string) {
	if payload, err := json.Marshal(socketError{Type: "error", Error: text}); err == nil {
		_ = conn.Send(payload)
	}
}

func (h *ChatSocketController) sendMessage(conn *realtime.Connection, m chat.Message) {
	payload, err := json.Marshal(socketMessage{
		Type: "message",
		Message: socketMessagePayload{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Content:        m.Content,
			CreatedAt:      m.CreatedAt,
			ReadAt:         m.ReadAt,
		},
	})
	if err == nil {
		_ = conn.Send(payload)
	}
}

func (h *ChatSocketController) sendAck(conn *realtime.Connection, frame socketFrame) {
	if payload, err := json.Marshal(socketAck{Type: "ack", Action: frame.Action, ConversationID: frame.ConversationID}); err == nil {
		_ = conn.Send(payload)
	}
}

func sendErrorText(err error) string {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return "message content is empty"
	case errors.Is(err, chat.ErrConversationNotFound):
		return "conversation not found"
	case errors.Is(err, chat.ErrNotParticipant):
		return "not a participant"
	default:
		return "could not process frame"
	}
}
