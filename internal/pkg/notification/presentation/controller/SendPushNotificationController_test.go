package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
	"github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokenRepo struct {
	tokens []notification.PushToken
}

func (s *stubTokenRepo) UpsertToken(ctx context.Context, userID, token string, platform notification.Platform) (notification.PushToken, error) {
	return notification.PushToken{}, nil
}

func (s *stubTokenRepo) ListTokensByUsers(ctx context.Context, userIDs []string) ([]notification.PushToken, error) {
	return s.tokens, nil
}

func (s *stubTokenRepo) DeleteToken(ctx context.Context, userID, token string) error { return nil }

type stubRoleDirectory struct{}

func (stubRoleDirectory) ListUserIDsByRole(ctx context.Context, role identity.Role) ([]string, error) {
	return nil, nil
}

type stubSender struct {
	sent int
	err  error
}

func (s *stubSender) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	return s.sent, s.err
}

func dispatchRequest(t *testing.T, ctl *SendPushNotificationController, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	engine := gin.New()
	engine.POST("/functions/send-push-notification", ctl.Handle())

	req := httptest.NewRequest(http.MethodPost, "/functions/send-push-notification", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestDispatchEndpointReportsDeliverySuccess(t *testing.T) {
	ctl := &SendPushNotificationController{UC: usecase.NewDispatchPushUseCase(
		&stubTokenRepo{tokens: []notification.PushToken{
			{UserID: "u1", Token: "droid", Platform: notification.PlatformAndroid},
		}},
		stubRoleDirectory{},
		&stubSender{sent: 1},
	)}

	w, out := dispatchRequest(t, ctl, `{"user_ids":["u1"],"title":"t","body":"b"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, float64(1), out["sent"])
}

func TestDispatchEndpointGatewayFailureIs500(t *testing.T) {
	ctl := &SendPushNotificationController{UC: usecase.NewDispatchPushUseCase(
		&stubTokenRepo{tokens: []notification.PushToken{
			{UserID: "u1", Token: "droid", Platform: notification.PlatformAndroid},
		}},
		stubRoleDirectory{},
		&stubSender{err: errors.New("fcm unreachable")},
	)}

	w, out := dispatchRequest(t, ctl, `{"user_ids":["u1"],"title":"t","body":"b"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, out["success"])
	assert.NotEmpty(t, out["error"])
}

func TestDispatchEndpointValidationIs400(t *testing.T) {
	ctl := &SendPushNotificationController{UC: usecase.NewDispatchPushUseCase(
		&stubTokenRepo{}, stubRoleDirectory{}, &stubSender{},
	)}

	w, out := dispatchRequest(t, ctl, `{"title":"t","body":"b"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, out["error"])
}
