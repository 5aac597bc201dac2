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

// SendMessageController posts a message into a thread.
type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(pool *pgxpool.Pool, events usecase.MessageEvents) *SendMessageController {
	repo := adapter.NewPgChatRepository(pool)
	return &SendMessageController{UC: usecase.NewSendMessageUseCase(repo, events)}
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		m, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			ConversationID: c.Param("id"),
			SenderID:       sess.UserID,
			SenderIsAdmin:  sess.IsAdmin(),
			Content:        req.Content,
		})
		if err != nil {
			switch {
			case errors.Is(err, chat.ErrEmptyMessage):
				c.JSON(http.StatusBadRequest, gin.H{"error": "message content is empty"})
			case errors.Is(err, chat.ErrConversationNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			case errors.Is(err, chat.ErrNotParticipant):
				c.JSON(http.StatusForbidden, gin.H{"error": "not a participant"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not send message"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": messageResponse(*m)})
	}
}
