package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/token"
	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/adapter"
)

// SignInController handles credential login (one controller per endpoint)
type SignInController struct {
	UC     *usecase.SignInUseCase
	Tokens *token.Service
}

func NewSignInController(pool *pgxpool.Pool, tokens *token.Service) *SignInController {
	repo := adapter.NewPgUserRepository(pool)
	return &SignInController{UC: usecase.NewSignInUseCase(repo), Tokens: tokens}
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *SignInController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		result, err := h.UC.Execute(ctx, usecase.SignInInput(req))
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrInvalidCredentials):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign in"})
			}
			return
		}

		accessToken, expiresAt, err := h.Tokens.Generate(result.User.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":      result.User.ID,
			"email":        result.User.Email,
			"role":         result.Role,
			"access_token": accessToken,
			"expires_at":   expiresAt.Unix(),
		})
	}
}
