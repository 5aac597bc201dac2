package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/adapter"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// ListMessagesController returns a thread's messages oldest-first.
type ListMessagesController struct {
	UC *usecase.ListMessagesUseCase
}

func NewListMessagesController(pool *pgxpool.Pool) *ListMessagesController {
	repo := adapter.NewPgChatRepository(pool)
	return &ListMessagesController{UC: usecase.NewListMessagesUseCase(repo)}
}

func messageResponse(m chat.Message) gin.H {
	return gin.H{
		"id":              m.ID,
		"conversation_id": m.ConversationID,
		"sender_id":       m.SenderID,
		"content":         m.Content,
		"created_at":      m.CreatedAt,
		"read_at":         m.ReadAt,
	}
}

func (h *ListMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, c.Param("id"), sess.UserID, sess.IsAdmin())
		if err != nil {
			switch {
			case errors.Is(err, chat.ErrConversationNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			case errors.Is(err, chat.ErrNotParticipant):
				c.JSON(http.StatusForbidden, gin.H{"error": "not a participant"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load messages"})
			}
			return
		}

		out := make([]gin.H, 0, len(res.Messages))
		for _, m := range res.Messages {
			out = append(out, messageResponse(m))
		}
		c.JSON(http.StatusOK, gin.H{"messages": out, "unread": res.Unread})
	}
}
