package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/adapter"
)

// ResetPasswordController accepts a password-reset request.
type ResetPasswordController struct {
	UC *usecase.ResetPasswordUseCase
}

func NewResetPasswordController(pool *pgxpool.Pool, logger *slog.Logger) *ResetPasswordController {
	repo := adapter.NewPgUserRepository(pool)
	return &ResetPasswordController{UC: usecase.NewResetPasswordUseCase(repo, logger)}
}

type resetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *ResetPasswordController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req resetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Execute(ctx, req.Email); err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process request"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
