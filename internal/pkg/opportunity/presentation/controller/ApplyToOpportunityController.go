package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/adapter"
)

// ApplyToOpportunityController records the caller's application to a posting.
type ApplyToOpportunityController struct {
	UC *usecase.ApplyToOpportunityUseCase
}

func NewApplyToOpportunityController(pool *pgxpool.Pool, bypassApproval bool) *ApplyToOpportunityController {
	repo := adapter.NewPgOpportunityRepository(pool)
	gate := adapter.NewPgApprovalGate(pool)
	return &ApplyToOpportunityController{UC: usecase.NewApplyToOpportunityUseCase(repo, gate, bypassApproval)}
}

func applicationPayload(a opportunity.Application) gin.H {
	return gin.H{
		"id":             a.ID,
		"opportunity_id": a.OpportunityID,
		"user_id":        a.UserID,
		"status":         a.Status,
		"applied_at":     a.AppliedAt,
	}
}

func (h *ApplyToOpportunityController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)
		opportunityID := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		a, err := h.UC.Execute(ctx, opportunityID, sess.UserID)
		if err != nil {
			switch {
			case errors.Is(err, opportunity.ErrNotApproved):
				c.JSON(http.StatusForbidden, gin.H{"error": "account is not approved"})
			case errors.Is(err, opportunity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
			case errors.Is(err, opportunity.ErrClosed):
				c.JSON(http.StatusConflict, gin.H{"error": "opportunity is no longer open"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not apply"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"application": applicationPayload(*a)})
	}
}
