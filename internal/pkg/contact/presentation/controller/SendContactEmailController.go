package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	queue "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/queue/port"
	contact "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/persistence/repository/adapter"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// SendContactEmailController receives the in-app contact form.
type SendContactEmailController struct {
	UC *usecase.SendContactEmailUseCase
}

func NewSendContactEmailController(pool *pgxpool.Pool, q queue.Client, logger *slog.Logger) *SendContactEmailController {
	repo := adapter.NewPgContactRepository(pool)
	return &SendContactEmailController{UC: usecase.NewSendContactEmailUseCase(repo, q, logger)}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *SendContactEmailController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		saved, err := h.UC.Execute(ctx, contact.Submission{
			UserID:  sess.UserID,
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		})
		if err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record submission"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "submission_id": saved.ID})
	}
}
