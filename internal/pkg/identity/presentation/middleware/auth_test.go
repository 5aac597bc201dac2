package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheport "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/cache/port"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/token"
	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memCache struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string]string)}
}

func (m *memCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (m *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *memCache) Del(ctx context.Context, keys ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := m.items[k]; ok {
			delete(m.items, k)
			n++
		}
	}
	return n, nil
}

func (m *memCache) Ping(ctx context.Context) error { return nil }
func (m *memCache) Close() error                   { return nil }

type roleOnlyUsers struct {
	roles    map[string]identity.Role
	getCalls int
}

func (r *roleOnlyUsers) CreateUser(ctx context.Context, email, passwordHash string, role identity.Role) (identity.User, error) {
	return identity.User{}, nil
}

func (r *roleOnlyUsers) GetUserByEmail(ctx context.Context, email string) (identity.User, error) {
	return identity.User{}, identity.ErrUserNotFound
}

func (r *roleOnlyUsers) GetUserByID(ctx context.Context, id string) (identity.User, error) {
	return identity.User{}, identity.ErrUserNotFound
}

func (r *roleOnlyUsers) GetRole(ctx context.Context, userID string) (identity.Role, error) {
	r.getCalls++
	role, ok := r.roles[userID]
	if !ok {
		return "", identity.ErrUserNotFound
	}
	return role, nil
}

func (r *roleOnlyUsers) ListUserIDsByRole(ctx context.Context, role identity.Role) ([]string, error) {
	return nil, nil
}

func newTestRouter(auth *Auth, adminOnly bool) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{auth.Require()}
	if adminOnly {
		handlers = append(handlers, auth.RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		sess, _ := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"user_id": sess.UserID, "role": sess.Role})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRejectsMissingAndBadTokens(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	auth := NewAuth(tokens, newMemCache(), &roleOnlyUsers{})
	r := newTestRouter(auth, false)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "garbage").Code)
}

func TestRequireResolvesRoleFromStore(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	users := &roleOnlyUsers{roles: map[string]identity.Role{"u1": identity.RoleVendor}}
	auth := NewAuth(tokens, newMemCache(), users)
	r := newTestRouter(auth, false)

	signed, _, err := tokens.Generate("u1")
	require.NoError(t, err)

	w := doRequest(r, signed)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"vendor"`)

	// Second request hits the role cache, not the table.
	doRequest(r, signed)
	assert.Equal(t, 1, users.getCalls)
}

func TestRequireAdminForbidsNonAdmins(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	users := &roleOnlyUsers{roles: map[string]identity.Role{
		"vendor-1": identity.RoleVendor,
		"admin-1":  identity.RoleAdmin,
	}}
	auth := NewAuth(tokens, newMemCache(), users)
	r := newTestRouter(auth, true)

	vendorToken, _, err := tokens.Generate("vendor-1")
	require.NoError(t, err)
	adminToken, _, err := tokens.Generate("admin-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doRequest(r, vendorToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, adminToken).Code)
}

func TestRevokedTokenIsRejected(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	users := &roleOnlyUsers{roles: map[string]identity.Role{"u1": identity.RoleVendor}}
	auth := NewAuth(tokens, newMemCache(), users)
	r := newTestRouter(auth, false)

	signed, _, err := tokens.Generate("u1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, doRequest(r, signed).Code)

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)
	require.NoError(t, auth.Revoke(context.Background(), claims))

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, signed).Code)
}
