package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
)

type fakeOpportunityRepo struct {
	opportunities map[string]opportunity.Opportunity
	applications  map[string]opportunity.Application // key: oppID+userID
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{
		opportunities: make(map[string]opportunity.Opportunity),
		applications:  make(map[string]opportunity.Application),
	}
}

func (f *fakeOpportunityRepo) add(status opportunity.Status) opportunity.Opportunity {
	o := opportunity.Opportunity{
		ID:        uuid.NewString(),
		Title:     "Summer festival",
		EventDate: time.Now().Add(48 * time.Hour),
		Status:    status,
	}
	f.opportunities[o.ID] = o
	return o
}

func (f *fakeOpportunityRepo) CreateOpportunity(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error) {
	o.ID = uuid.NewString()
	f.opportunities[o.ID] = o
	return o, nil
}

func (f *fakeOpportunityRepo) UpdateOpportunity(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error) {
	if _, ok := f.opportunities[o.ID]; !ok {
		return opportunity.Opportunity{}, opportunity.ErrNotFound
	}
	f.opportunities[o.ID] = o
	return o, nil
}

func (f *fakeOpportunityRepo) GetOpportunity(ctx context.Context, id string) (opportunity.Opportunity, error) {
	o, ok := f.opportunities[id]
	if !ok {
		return opportunity.Opportunity{}, opportunity.ErrNotFound
	}
	return o, nil
}

func (f *fakeOpportunityRepo) ListOpportunities(ctx context.Context, status opportunity.Status) ([]opportunity.Opportunity, error) {
	var out []opportunity.Opportunity
	for _, o := range f.opportunities {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOpportunityRepo) CreateApplication(ctx context.Context, opportunityID, userID string) (opportunity.Application, error) {
	key := opportunityID + "/" + userID
	if a, ok := f.applications[key]; ok {
		return a, nil
	}
	a := opportunity.Application{
		ID:            uuid.NewString(),
		OpportunityID: opportunityID,
		UserID:        userID,
		Status:        opportunity.ApplicationPending,
		AppliedAt:     time.Now(),
	}
	f.applications[key] = a
	return a, nil
}

func (f *fakeOpportunityRepo) ListApplicationsByUser(ctx context.Context, userID string) ([]opportunity.Application, error) {
	var out []opportunity.Application
	for _, a := range f.applications {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeOpportunityRepo) ListApplicationsByOpportunity(ctx context.Context, opportunityID string) ([]opportunity.Application, error) {
	var out []opportunity.Application
	for _, a := range f.applications {
		if a.OpportunityID == opportunityID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeOpportunityRepo) SetApplicationStatus(ctx context.Context, applicationID string, status opportunity.ApplicationStatus) (opportunity.Application, error) {
	for key, a := range f.applications {
		if a.ID == applicationID {
			a.Status = status
			f.applications[key] = a
			return a, nil
		}
	}
	return opportunity.Application{}, opportunity.ErrAppNotFound
}

type fakeGate struct {
	approved map[string]bool
}

func (f *fakeGate) IsApproved(ctx context.Context, userID string) (bool, error) {
	return f.approved[userID], nil
}

func TestApplyRequiresApproval(t *testing.T) {
	repo := newFakeOpportunityRepo()
	o := repo.add(opportunity.StatusOpen)
	gate := &fakeGate{approved: map[string]bool{"approved-user": true}}

	uc := NewApplyToOpportunityUseCase(repo, gate, false)

	_, err := uc.Execute(context.Background(), o.ID, "pending-user")
	assert.ErrorIs(t, err, opportunity.ErrNotApproved)

	a, err := uc.Execute(context.Background(), o.ID, "approved-user")
	require.NoError(t, err)
	assert.Equal(t, opportunity.ApplicationPending, a.Status)
}

func TestApplyBypassSkipsGate(t *testing.T) {
	repo := newFakeOpportunityRepo()
	o := repo.add(opportunity.StatusOpen)

	uc := NewApplyToOpportunityUseCase(repo, &fakeGate{}, true)
	_, err := uc.Execute(context.Background(), o.ID, "anyone")
	assert.NoError(t, err)
}

func TestApplyToClosedOpportunity(t *testing.T) {
	repo := newFakeOpportunityRepo()
	o := repo.add(opportunity.StatusClosed)

	uc := NewApplyToOpportunityUseCase(repo, &fakeGate{}, true)
	_, err := uc.Execute(context.Background(), o.ID, "anyone")
	assert.ErrorIs(t, err, opportunity.ErrClosed)
}

func TestApplyTwiceReturnsSameApplication(t *testing.T) {
	repo := newFakeOpportunityRepo()
	o := repo.add(opportunity.StatusOpen)

	uc := NewApplyToOpportunityUseCase(repo, &fakeGate{}, true)
	first, err := uc.Execute(context.Background(), o.ID, "anyone")
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), o.ID, "anyone")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.applications, 1)
}

func TestBrowseListsOnlyOpenForApproved(t *testing.T) {
	repo := newFakeOpportunityRepo()
	open := repo.add(opportunity.StatusOpen)
	repo.add(opportunity.StatusClosed)
	gate := &fakeGate{approved: map[string]bool{"vendor-1": true}}

	uc := NewBrowseOpportunitiesUseCase(repo, gate, false)

	_, err := uc.Execute(context.Background(), "vendor-2")
	assert.ErrorIs(t, err, opportunity.ErrNotApproved)

	list, err := uc.Execute(context.Background(), "vendor-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, open.ID, list[0].ID)
}
