package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/adapter"
)

// ReviewRegistrationController applies an admin approve/reject decision.
type ReviewRegistrationController struct {
	UC *usecase.ReviewRegistrationUseCase
}

func NewReviewRegistrationController(pool *pgxpool.Pool) *ReviewRegistrationController {
	repo := adapter.NewPgProfileRepository(pool)
	return &ReviewRegistrationController{UC: usecase.NewReviewRegistrationUseCase(repo)}
}

type reviewRegistrationRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReviewRegistrationController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		var req reviewRegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := profile.ParseApprovalStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err = h.UC.Execute(ctx, usecase.ReviewRegistrationInput{UserID: userID, Status: status})
		if err != nil {
			switch {
			case errors.Is(err, profile.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
			case errors.Is(err, profile.ErrInvalidApprovalStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update registration"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"user_id": userID, "approval_status": status})
	}
}
