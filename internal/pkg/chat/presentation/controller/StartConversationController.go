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

// StartConversationController opens (or returns) the caller's support thread.
type StartConversationController struct {
	UC *usecase.StartConversationUseCase
}

func NewStartConversationController(pool *pgxpool.Pool) *StartConversationController {
	repo := adapter.NewPgChatRepository(pool)
	return &StartConversationController{UC: usecase.NewStartConversationUseCase(repo)}
}

func conversationPayload(cv chat.Conversation) gin.H {
	return gin.H{
		"id":              cv.ID,
		"vendor_id":       cv.VendorID,
		"last_message_at": cv.LastMessageAt,
		"created_at":      cv.CreatedAt,
	}
}

func (h *StartConversationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		cv, err := h.UC.Execute(ctx, sess.UserID)
		if err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not open conversation"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"conversation": conversationPayload(*cv)})
	}
}
