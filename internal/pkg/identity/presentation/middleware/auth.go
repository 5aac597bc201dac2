package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	cacheport "github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/cache/port"
	"github.com/manager-glitch/birdco-vendor-hub/internal/infrastructure/token"
	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
	repository "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/persistence/repository/port"
)

const (
	ctxSessionKey = "session"
	ctxClaimsKey  = "claims"

	roleCacheTTL = 5 * time.Minute
)

// Auth resolves the bearer token into a Session and stores it on the gin
// context. The role comes from the user_roles table (Redis-cached with a
// short TTL), never from token claims. Revoked sessions (sign-out) are
// rejected via a cache marker keyed by JTI.
type Auth struct {
	tokens *token.Service
	cache  cacheport.Cache
	users  repository.UserRepository
}

func NewAuth(tokens *token.Service, cache cacheport.Cache, users repository.UserRepository) *Auth {
	return &Auth{tokens: tokens, cache: cache, users: users}
}

// Require rejects unauthenticated requests with 401.
func (a *Auth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := a.authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		role, err := a.resolveRole(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ctxSessionKey, identity.Session{UserID: claims.UserID, Role: role})
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers with 403. Must be mounted after
// Require.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok || !sess.IsAdmin() {
			c.AbortWithStatusJSON(403, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// Revoke marks the presented token's JTI as revoked until its expiry.
func (a *Auth) Revoke(ctx context.Context, claims *token.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return a.cache.Set(ctx, revokedKey(claims.ID), "1", ttl)
}

// InvalidateRole drops the cached role for a user, forcing the next request
// to hit the table. Called when an admin changes role assignments.
func (a *Auth) InvalidateRole(ctx context.Context, userID string) {
	_, _ = a.cache.Del(ctx, roleKey(userID))
}

func (a *Auth) authenticate(c *gin.Context) (*token.Claims, error) {
	raw := extractToken(c.GetHeader("Authorization"))
	if raw == "" {
		return nil, token.ErrTokenInvalid
	}

	claims, err := a.tokens.Validate(raw)
	if err != nil {
		return nil, err
	}

	// Sign-out marks the JTI revoked; a cache transport error fails closed.
	if _, err := a.cache.Get(c.Request.Context(), revokedKey(claims.ID)); err == nil {
		return nil, token.ErrTokenInvalid
	} else if !errors.Is(err, cacheport.ErrMiss) {
		return nil, err
	}

	return claims, nil
}

func (a *Auth) resolveRole(ctx context.Context, userID string) (identity.Role, error) {
	if cached, err := a.cache.Get(ctx, roleKey(userID)); err == nil {
		if role, perr := identity.ParseRole(cached); perr == nil {
			return role, nil
		}
	}

	role, err := a.users.GetRole(ctx, userID)
	if err != nil {
		return "", err
	}
	_ = a.cache.Set(ctx, roleKey(userID), string(role), roleCacheTTL)
	return role, nil
}

// GetSession returns the Session resolved by Require.
func GetSession(c *gin.Context) (identity.Session, bool) {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return identity.Session{}, false
	}
	sess, ok := v.(identity.Session)
	return sess, ok
}

// GetClaims returns the raw token claims resolved by Require.
func GetClaims(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(ctxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}

func extractToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func roleKey(userID string) string { return "role:" + userID }
func revokedKey(jti string) string { return "revoked:" + jti }
