package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
)

type fakeProfileRepo struct {
	profiles  map[string]profile.Profile
	completed map[string]bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:  make(map[string]profile.Profile),
		completed: make(map[string]bool),
	}
}

func (f *fakeProfileRepo) Get(ctx context.Context, userID string) (profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	f.profiles[p.ID] = p
	return p, nil
}

func (f *fakeProfileRepo) SetRegistrationCompleted(ctx context.Context, userID string, completed bool) error {
	f.completed[userID] = completed
	return nil
}

func (f *fakeProfileRepo) SetApprovalStatus(ctx context.Context, userID string, status profile.ApprovalStatus) error {
	p := f.profiles[userID]
	p.ApprovalStatus = status
	f.profiles[userID] = p
	return nil
}

func (f *fakeProfileRepo) ListByApprovalStatus(ctx context.Context, status profile.ApprovalStatus, completedOnly bool) ([]profile.Profile, error) {
	return nil, nil
}

type fakeDocChecker struct {
	onFile []string
}

func (f *fakeDocChecker) ListDocTypes(ctx context.Context, userID string) ([]string, error) {
	return f.onFile, nil
}

func completeProfile(id string) profile.Profile {
	return profile.Profile{
		ID:              id,
		FullName:        "Ada Lovelace",
		CompanyName:     "Analytical Catering",
		Phone:           "07000000000",
		BusinessType:    "catering",
		ServiceCategory: "street food",
	}
}

func TestCompleteRegistrationHappyPath(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = completeProfile("u1")
	docs := &fakeDocChecker{onFile: []string{"insurance", "food_hygiene", "public_liability"}}

	uc := NewCompleteRegistrationUseCase(repo, docs)
	res, err := uc.Execute(context.Background(), CompleteRegistrationInput{UserID: "u1", Role: identity.RoleVendor})

	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.True(t, repo.completed["u1"])
}

func TestCompleteRegistrationReportsMissingDocuments(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = completeProfile("u1")
	docs := &fakeDocChecker{onFile: []string{"insurance"}}

	uc := NewCompleteRegistrationUseCase(repo, docs)
	res, err := uc.Execute(context.Background(), CompleteRegistrationInput{UserID: "u1", Role: identity.RoleVendor})

	assert.ErrorIs(t, err, profile.ErrMissingDocuments)
	require.NotNil(t, res)
	assert.Equal(t, []string{"food_hygiene", "public_liability"}, res.MissingDocuments)
	assert.False(t, repo.completed["u1"])
}

func TestCompleteRegistrationNeedsFilledProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = profile.Profile{ID: "u1", FullName: "Ada Lovelace"}

	uc := NewCompleteRegistrationUseCase(repo, &fakeDocChecker{})
	_, err := uc.Execute(context.Background(), CompleteRegistrationInput{UserID: "u1", Role: identity.RoleChef})
	assert.ErrorIs(t, err, profile.ErrIncompleteProfile)

	// A user with no profile row at all gets the same answer.
	_, err = uc.Execute(context.Background(), CompleteRegistrationInput{UserID: "u2", Role: identity.RoleChef})
	assert.ErrorIs(t, err, profile.ErrIncompleteProfile)
}
