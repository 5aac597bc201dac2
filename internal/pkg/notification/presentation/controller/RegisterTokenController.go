package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/persistence/repository/adapter"
)

// RegisterTokenController records the caller's device push token.
type RegisterTokenController struct {
	UC *usecase.RegisterTokenUseCase
}

func NewRegisterTokenController(pool *pgxpool.Pool) *RegisterTokenController {
	repo := adapter.NewPgPushTokenRepository(pool)
	return &RegisterTokenController{UC: usecase.NewRegisterTokenUseCase(repo)}
}

type registerTokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}

func (h *RegisterTokenController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req registerTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		t, err := h.UC.Execute(ctx, sess.UserID, req.Token, req.Platform)
		if err != nil {
			switch {
			case errors.Is(err, notification.ErrInvalidPlatform):
				c.JSON(http.StatusBadRequest, gin.H{"error": "platform must be android or ios"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register token"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":         t.ID,
			"user_id":    t.UserID,
			"platform":   t.Platform,
			"updated_at": t.UpdatedAt,
		})
	}
}

type unregisterTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// HandleDelete removes the caller's device token, e.g. on signout.
func (h *RegisterTokenController) HandleDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req unregisterTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.UC.Unregister(ctx, sess.UserID, req.Token); err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove token"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
