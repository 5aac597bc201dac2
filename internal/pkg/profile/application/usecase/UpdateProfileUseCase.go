package usecase

import (
	"context"
	"fmt"
	"strings"

	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/persistence/repository/port"
)

// UpdateProfileInput carries the caller-editable profile fields.
type UpdateProfileInput struct {
	UserID          string
	FullName        string
	CompanyName     string
	Phone           string
	Bio             string
	BusinessType    string
	ServiceCategory string
	YearsInBusiness int
}

// UpdateProfileUseCase upserts the caller's business profile.
type UpdateProfileUseCase struct {
	Repo repository.ProfileRepository
}

func NewUpdateProfileUseCase(repo repository.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{Repo: repo}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, in UpdateProfileInput) (*profile.Profile, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if in.YearsInBusiness < 0 {
		return nil, fmt.Errorf("years_in_business must not be negative")
	}

	p := profile.Profile{
		ID:              in.UserID,
		FullName:        strings.TrimSpace(in.FullName),
		CompanyName:     strings.TrimSpace(in.CompanyName),
		Phone:           strings.TrimSpace(in.Phone),
		Bio:             strings.TrimSpace(in.Bio),
		BusinessType:    strings.TrimSpace(in.BusinessType),
		ServiceCategory: strings.TrimSpace(in.ServiceCategory),
		YearsInBusiness: in.YearsInBusiness,
	}

	saved, err := uc.Repo.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &saved, nil
}
