package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/persistence/repository/adapter"
)

// ManageOpportunityController handles admin create/update of postings.
type ManageOpportunityController struct {
	UC *usecase.ManageOpportunityUseCase
}

func NewManageOpportunityController(pool *pgxpool.Pool) *ManageOpportunityController {
	repo := adapter.NewPgOpportunityRepository(pool)
	return &ManageOpportunityController{UC: usecase.NewManageOpportunityUseCase(repo)}
}

type opportunityRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	Location    string    `json:"location"`
	PayRate     string    `json:"pay_rate"`
	Status      string    `json:"status"`
}

func (r opportunityRequest) toDomain(id string) opportunity.Opportunity {
	return opportunity.Opportunity{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		EventDate:   r.EventDate,
		Location:    r.Location,
		PayRate:     r.PayRate,
		Status:      opportunity.Status(r.Status),
	}
}

func (h *ManageOpportunityController) HandleCreate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req opportunityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		o, err := h.UC.Create(ctx, req.toDomain(""))
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create opportunity"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"opportunity": opportunityPayload(*o)})
	}
}

func (h *ManageOpportunityController) HandleUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req opportunityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		o, err := h.UC.Update(ctx, req.toDomain(c.Param("id")))
		if err != nil {
			switch {
			case errors.Is(err, opportunity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
			case errors.Is(err, usecase.ErrPersistence):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update opportunity"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"opportunity": opportunityPayload(*o)})
	}
}
