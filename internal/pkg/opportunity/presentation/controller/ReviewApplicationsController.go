package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/adapter"
)

// ReviewApplicationsController covers the admin application review flow:
// listing a posting's applicants and recording decisions.
type ReviewApplicationsController struct {
	UC *usecase.ReviewApplicationsUseCase
}

func NewReviewApplicationsController(pool *pgxpool.Pool, notifier usecase.DecisionNotifier, logger *slog.Logger) *ReviewApplicationsController {
	repo := adapter.NewPgOpportunityRepository(pool)
	return &ReviewApplicationsController{UC: usecase.NewReviewApplicationsUseCase(repo, notifier, logger)}
}

func (h *ReviewApplicationsController) HandleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		list, err := h.UC.List(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load applications"})
			return
		}

		out := make([]gin.H, 0, len(list))
		for _, a := range list {
			out = append(out, applicationPayload(a))
		}
		c.JSON(http.StatusOK, gin.H{"applications": out})
	}
}

type decideApplicationRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReviewApplicationsController) HandleDecide() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req decideApplicationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		status, err := opportunity.ParseApplicationStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be pending, accepted or declined"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		a, err := h.UC.Decide(ctx, c.Param("applicationId"), status)
		if err != nil {
			switch {
			case errors.Is(err, opportunity.ErrAppNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update application"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"application": applicationPayload(*a)})
	}
}
