package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/port"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
)

// SessionController returns the caller's resolved identity: id, email and
// table-sourced role. The profile endpoint carries approval/registration
// state.
type SessionController struct {
	Repo repository.UserRepository
}

func NewSessionController(pool *pgxpool.Pool) *SessionController {
	return &SessionController{Repo: adapter.NewPgUserRepository(pool)}
}

func (h *SessionController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		user, err := h.Repo.GetUserByID(ctx, sess.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id": user.ID,
			"email":   user.Email,
			"role":    sess.Role,
		})
	}
}
