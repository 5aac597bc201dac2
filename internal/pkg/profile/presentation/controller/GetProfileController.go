package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/presentation/middleware"
	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/adapter"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/port"
)

// GetProfileController returns the caller's profile. A missing profile is
// reported as an empty pending one so new accounts see the registration
// flow instead of an error.
type GetProfileController struct {
	Repo repository.ProfileRepository
}

func NewGetProfileController(pool *pgxpool.Pool) *GetProfileController {
	return &GetProfileController{Repo: adapter.NewPgProfileRepository(pool)}
}

func (h *GetProfileController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := middleware.GetSession(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		p, err := h.Repo.Get(ctx, sess.UserID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				c.JSON(http.StatusOK, profilePayload(profile.Profile{
					ID:             sess.UserID,
					ApprovalStatus: profile.ApprovalPending,
				}))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
			return
		}

		c.JSON(http.StatusOK, profilePayload(p))
	}
}

func profilePayload(p profile.Profile) gin.H {
	return gin.H{
		"id":                     p.ID,
		"full_name":              p.FullName,
		"company_name":           p.CompanyName,
		"phone":                  p.Phone,
		"bio":                    p.Bio,
		"business_type":          p.BusinessType,
		"service_category":       p.ServiceCategory,
		"years_in_business":      p.YearsInBusiness,
		"approval_status":        p.ApprovalStatus,
		"registration_completed": p.RegistrationCompleted,
	}
}
