package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
)

// upsertTokenRepo mirrors the store's one-row-per-(user, token) rule so the
// refresh semantics are observable from the fake.
type upsertTokenRepo struct {
	tokens  map[string]notification.PushToken
	deleted []string
}

func newUpsertTokenRepo() *upsertTokenRepo {
	return &upsertTokenRepo{tokens: make(map[string]notification.PushToken)}
}

func (f *upsertTokenRepo) UpsertToken(ctx context.Context, userID, token string, platform notification.Platform) (notification.PushToken, error) {
	key := userID + "/" + token
	t, ok := f.tokens[key]
	if !ok {
		t = notification.PushToken{ID: key, UserID: userID, Token: token}
	}
	t.Platform = platform
	f.tokens[key] = t
	return t, nil
}

func (f *upsertTokenRepo) ListTokensByUsers(ctx context.Context, userIDs []string) ([]notification.PushToken, error) {
	return nil, nil
}

func (f *upsertTokenRepo) DeleteToken(ctx context.Context, userID, token string) error {
	key := userID + "/" + token
	delete(f.tokens, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func TestRegisterTokenRefreshesInPlace(t *testing.T) {
	repo := newUpsertTokenRepo()
	uc := NewRegisterTokenUseCase(repo)

	first, err := uc.Execute(context.Background(), "user-1", "tok-a", "android")
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), "user-1", "tok-a", "ios")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, notification.PlatformIOS, second.Platform)
	assert.Len(t, repo.tokens, 1)
}

func TestRegisterTokenRejectsBadInput(t *testing.T) {
	uc := NewRegisterTokenUseCase(newUpsertTokenRepo())

	_, err := uc.Execute(context.Background(), "user-1", "", "android")
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), "user-1", "tok-a", "windows")
	assert.ErrorIs(t, err, notification.ErrInvalidPlatform)
}

func TestUnregisterRemovesToken(t *testing.T) {
	repo := newUpsertTokenRepo()
	uc := NewRegisterTokenUseCase(repo)

	_, err := uc.Execute(context.Background(), "user-1", "tok-a", "android")
	require.NoError(t, err)

	require.NoError(t, uc.Unregister(context.Background(), "user-1", "tok-a"))
	assert.Empty(t, repo.tokens)

	// Dropping a token that is already gone is not an error.
	require.NoError(t, uc.Unregister(context.Background(), "user-1", "tok-a"))
}
