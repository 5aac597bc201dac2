package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/persistence/repository/adapter"
)

// ListConversationsController returns the admin inbox: every thread with
// its vendor name and unread count.
type ListConversationsController struct {
	UC *usecase.ListConversationsUseCase
}

func NewListConversationsController(pool *pgxpool.Pool) *ListConversationsController {
	repo := adapter.NewPgChatRepository(pool)
	return &ListConversationsController{UC: usecase.NewListConversationsUseCase(repo)}
}

func (h *ListConversationsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		list, err := h.UC.Execute(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load conversations"})
			return
		}

		out := make([]gin.H, 0, len(list))
		for _, s := range list {
			out = append(out, gin.H{
				"id":              s.ID,
				"vendor_id":       s.VendorID,
				"vendor_name":     s.VendorName,
				"last_message_at": s.LastMessageAt,
				"created_at":      s.CreatedAt,
				"unread_count":    s.UnreadCount,
			})
		}
		c.JSON(http.StatusOK, gin.H{"conversations": out})
	}
}
