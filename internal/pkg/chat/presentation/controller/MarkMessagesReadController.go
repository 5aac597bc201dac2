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

// MarkMessagesReadController stamps the counterpart's messages as read.
type MarkMessagesReadController struct {
	UC *usecase.MarkMessagesReadUseCase
}

func NewMarkMessagesReadController(pool *pgxpool.Pool, events usecase.MessageEvents) *MarkMessagesReadController {
	repo := adapter.NewPgChatRepository(pool)
	return &MarkMessagesReadController{UC: usecase.NewMarkMessagesReadUseCase(repo, events)}
}

func (h *MarkMessagesReadController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		count, err := h.UC.Execute(ctx, c.Param("id"), sess.UserID, sess.IsAdmin())
		if err != nil {
			switch {
			case errors.Is(err, chat.ErrConversationNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			case errors.Is(err, chat.ErrNotParticipant):
				c.JSON(http.StatusForbidden, gin.H{"error": "not a participant"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not mark messages read"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"marked_read": count})
	}
}
