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

// BrowseOpportunitiesController lists open postings for the caller.
type BrowseOpportunitiesController struct {
	UC *usecase.BrowseOpportunitiesUseCase
}

func NewBrowseOpportunitiesController(pool *pgxpool.Pool, bypassApproval bool) *BrowseOpportunitiesController {
	repo := adapter.NewPgOpportunityRepository(pool)
	gate := adapter.NewPgApprovalGate(pool)
	return &BrowseOpportunitiesController{UC: usecase.NewBrowseOpportunitiesUseCase(repo, gate, bypassApproval)}
}

func opportunityPayload(o opportunity.Opportunity) gin.H {
	return gin.H{
		"id":          o.ID,
		"title":       o.Title,
		"description": o.Description,
		"event_date":  o.EventDate,
		"location":    o.Location,
		"pay_rate":    o.PayRate,
		"status":      o.Status,
		"created_at":  o.CreatedAt,
	}
}

func (h *BrowseOpportunitiesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		list, err := h.UC.Execute(ctx, sess.UserID)
		if err != nil {
			switch {
			case errors.Is(err, opportunity.ErrNotApproved):
				c.JSON(http.StatusForbidden, gin.H{"error": "account is not approved"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load opportunities"})
			}
			return
		}

		out := make([]gin.H, 0, len(list))
		for _, o := range list {
			out = append(out, opportunityPayload(o))
		}
		c.JSON(http.StatusOK, gin.H{"opportunities": out})
	}
}
