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

// SignUpController handles account creation (one controller per endpoint)
type SignUpController struct {
	UC     *usecase.SignUpUseCase
	Tokens *token.Service
}

func NewSignUpController(pool *pgxpool.Pool, tokens *token.Service) *SignUpController {
	repo := adapter.NewPgUserRepository(pool)
	return &SignUpController{UC: usecase.NewSignUpUseCase(repo), Tokens: tokens}
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (h *SignUpController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		user, role, err := h.UC.Execute(ctx, usecase.SignUpInput(req))
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrEmailTaken):
				c.JSON(http.StatusConflict, gin.H{"error": "email is already registered"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		accessToken, expiresAt, err := h.Tokens.Generate(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user_id":      user.ID,
			"email":        user.Email,
			"role":         role,
			"access_token": accessToken,
			"expires_at":   expiresAt.Unix(),
		})
	}
}
