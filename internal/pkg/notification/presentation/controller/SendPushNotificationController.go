package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	identityadapter "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/adapter"
	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/persistence/repository/adapter"
)

// SendPushNotificationController is the admin dispatch endpoint: pushes a
// title and body to explicit users or to every member of a role.
type SendPushNotificationController struct {
	UC *usecase.DispatchPushUseCase
}

func NewSendPushNotificationController(pool *pgxpool.Pool, sender usecase.PushSender) *SendPushNotificationController {
	tokens := adapter.NewPgPushTokenRepository(pool)
	roles := identityadapter.NewPgUserRepository(pool)
	return &SendPushNotificationController{UC: usecase.NewDispatchPushUseCase(tokens, roles, sender)}
}

type sendPushRequest struct {
	UserIDs    []string          `json:"user_ids"`
	TargetRole string            `json:"target_role"`
	Title      string            `json:"title" binding:"required"`
	Body       string            `json:"body" binding:"required"`
	Data       map[string]string `json:"data"`
}

func (h *SendPushNotificationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendPushRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		res, err := h.UC.Execute(ctx, usecase.DispatchInput{
			UserIDs:    req.UserIDs,
			TargetRole: req.TargetRole,
			Title:      req.Title,
			Body:       req.Body,
			Data:       req.Data,
		})
		if err != nil {
			switch {
			case errors.Is(err, notification.ErrTitleTooLong),
				errors.Is(err, notification.ErrBodyTooLong),
				errors.Is(err, notification.ErrEmptyTitle),
				errors.Is(err, notification.ErrEmptyBody),
				errors.Is(err, notification.ErrNoTarget),
				errors.Is(err, identity.ErrUnknownRole):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not resolve notification target"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":        res.Success,
			"sent":           res.Sent,
			"android_tokens": res.AndroidTokens,
			"ios_tokens":     res.IOSTokens,
			"message":        res.Message,
		})
	}
}
