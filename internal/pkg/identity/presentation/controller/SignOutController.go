package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// SignOutController revokes the presented session token.
type SignOutController struct {
	Auth *middleware.Auth
}

func NewSignOutController(auth *middleware.Auth) *SignOutController {
	return &SignOutController{Auth: auth}
}

func (h *SignOutController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := h.Auth.Revoke(ctx, claims); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
