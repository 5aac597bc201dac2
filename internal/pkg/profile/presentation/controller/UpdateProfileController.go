package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/usecase"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/adapter"
)

// UpdateProfileController upserts the caller's business profile.
type UpdateProfileController struct {
	UC *usecase.UpdateProfileUseCase
}

func NewUpdateProfileController(pool *pgxpool.Pool) *UpdateProfileController {
	repo := adapter.NewPgProfileRepository(pool)
	return &UpdateProfileController{UC: usecase.NewUpdateProfileUseCase(repo)}
}

type updateProfileRequest struct {
	FullName        string `json:"full_name"`
	CompanyName     string `json:"company_name"`
	Phone           string `json:"phone"`
	Bio             string `json:"bio"`
	BusinessType    string `json:"business_type"`
	ServiceCategory string `json:"service_category"`
	YearsInBusiness int    `json:"years_in_business"`
}

func (h *UpdateProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		p, err := h.UC.Execute(ctx, usecase.UpdateProfileInput{
			UserID:          sess.UserID,
			FullName:        req.FullName,
			CompanyName:     req.CompanyName,
			Phone:           req.Phone,
			Bio:             req.Bio,
			BusinessType:    req.BusinessType,
			ServiceCategory: req.ServiceCategory,
			YearsInBusiness: req.YearsInBusiness,
		})
		if err != nil {
			if errors.Is(err, usecase.ErrPersistence) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, profilePayload(*p))
	}
}
