package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
)

type fakeTokenRepo struct {
	tokens []notification.PushToken
	asked  []string
}

func (f *fakeTokenRepo) UpsertToken(ctx context.Context, userID, token string, platform notification.Platform) (notification.PushToken, error) {
	t := notification.PushToken{UserID: userID, Token: token, Platform: platform}
	f.tokens = append(f.tokens, t)
	return t, nil
}

func (f *fakeTokenRepo) ListTokensByUsers(ctx context.Context, userIDs []string) ([]notification.PushToken, error) {
	f.asked = userIDs
	var out []notification.PushToken
	for _, t := range f.tokens {
		for _, id := range userIDs {
			if t.UserID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func (f *fakeTokenRepo) DeleteToken(ctx context.Context, userID, token string) error { return nil }

type fakeRoleDirectory struct {
	members map[identity.Role][]string
}

func (f *fakeRoleDirectory) ListUserIDsByRole(ctx context.Context, role identity.Role) ([]string, error) {
	return f.members[role], nil
}

type fakeSender struct {
	tokens []string
	title  string
	body   string
	data   map[string]string
	sent   int
	err    error
}

func (f *fakeSender) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	f.tokens, f.title, f.body, f.data = tokens, title, body, data
	if f.err != nil {
		return 0, f.err
	}
	return f.sent, nil
}

func TestDispatchValidatesContent(t *testing.T) {
	uc := NewDispatchPushUseCase(&fakeTokenRepo{}, &fakeRoleDirectory{}, &fakeSender{})

	_, err := uc.Execute(context.Background(), DispatchInput{
		UserIDs: []string{"u1"}, Title: strings.Repeat("a", 201), Body: "b",
	})
	assert.ErrorIs(t, err, notification.ErrTitleTooLong)

	_, err = uc.Execute(context.Background(), DispatchInput{
		UserIDs: []string{"u1"}, Title: "t", Body: strings.Repeat("b", 1001),
	})
	assert.ErrorIs(t, err, notification.ErrBodyTooLong)
}

func TestDispatchRequiresTarget(t *testing.T) {
	uc := NewDispatchPushUseCase(&fakeTokenRepo{}, &fakeRoleDirectory{}, &fakeSender{})

	_, err := uc.Execute(context.Background(), DispatchInput{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, notification.ErrNoTarget)
}

func TestDispatchEmptyExplicitListSucceeds(t *testing.T) {
	sender := &fakeSender{}
	roles := &fakeRoleDirectory{members: map[identity.Role][]string{
		identity.RoleVendor: {"v1"},
	}}
	uc := NewDispatchPushUseCase(&fakeTokenRepo{}, roles, sender)

	// A caller that names an audience of nobody gets a successful no-op,
	// not a validation error, and the role directory is never consulted.
	res, err := uc.Execute(context.Background(), DispatchInput{
		UserIDs: []string{}, TargetRole: "vendor", Title: "t", Body: "b",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.Sent)
	assert.Zero(t, res.AndroidTokens)
	assert.Zero(t, res.IOSTokens)
	assert.Nil(t, sender.tokens, "sender must not be called")
}

func TestDispatchResolvesRoleTarget(t *testing.T) {
	repo := &fakeTokenRepo{tokens: []notification.PushToken{
		{UserID: "v1", Token: "tok-1", Platform: notification.PlatformAndroid},
		{UserID: "v2", Token: "tok-2", Platform: notification.PlatformAndroid},
	}}
	roles := &fakeRoleDirectory{members: map[identity.Role][]string{
		identity.RoleVendor: {"v1", "v2"},
	}}
	sender := &fakeSender{sent: 2}
	uc := NewDispatchPushUseCase(repo, roles, sender)

	res, err := uc.Execute(context.Background(), DispatchInput{
		TargetRole: "vendor", Title: "t", Body: "b",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, []string{"v1", "v2"}, repo.asked)
	assert.ElementsMatch(t, []string{"tok-1", "tok-2"}, sender.tokens)
}

func TestDispatchRejectsUnknownRole(t *testing.T) {
	uc := NewDispatchPushUseCase(&fakeTokenRepo{}, &fakeRoleDirectory{}, &fakeSender{})

	_, err := uc.Execute(context.Background(), DispatchInput{
		TargetRole: "superuser", Title: "t", Body: "b",
	})
	assert.ErrorIs(t, err, identity.ErrUnknownRole)
}

func TestDispatchCountsIOSWithoutSending(t *testing.T) {
	repo := &fakeTokenRepo{tokens: []notification.PushToken{
		{UserID: "u1", Token: "droid", Platform: notification.PlatformAndroid},
		{UserID: "u1", Token: "iphone", Platform: notification.PlatformIOS},
	}}
	sender := &fakeSender{sent: 1}
	uc := NewDispatchPushUseCase(repo, &fakeRoleDirectory{}, sender)

	res, err := uc.Execute(context.Background(), DispatchInput{
		UserIDs: []string{"u1"}, Title: "t", Body: "b",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.AndroidTokens)
	assert.Equal(t, 1, res.IOSTokens)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, []string{"droid"}, sender.tokens, "ios tokens never reach the sender")
}

func TestDispatchEmptyAudienceSucceeds(t *testing.T) {
	sender := &fakeSender{}
	uc := NewDispatchPushUseCase(&fakeTokenRepo{}, &fakeRoleDirectory{}, sender)

	res, err := uc.Execute(context.Background(), DispatchInput{
		UserIDs: []string{"nobody"}, Title: "t", Body: "b",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.Sent)
	assert.Nil(t, sender.tokens, "sender must not be called")
}

func TestDispatchWithNilSenderSkipsDelivery(t *testing.T) {
	repo := &fakeTokenRepo{tokens: []notification.PushToken{
		{UserID: "u1", Token: "droid", Platform: notification.PlatformAndroid},
	}}
	uc := NewDispatchPushUseCase(repo, &fakeRoleDirectory{}, nil)

	res, err := uc.Execute(context.Background(), DispatchInput{
		UserIDs: []string{"u1"}, Title: "t", Body: "b",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, res.Sent)
	assert.Equal(t, 1, res.AndroidTokens)
}
