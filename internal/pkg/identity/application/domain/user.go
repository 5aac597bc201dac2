package identity

import (
	"errors"
	"time"
)

// Domain-level errors for identity behaviors
var (
	ErrEmailTaken         = errors.New("identity: email is already registered")
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrUserNotFound       = errors.New("identity: user not found")
	ErrUnknownRole        = errors.New("identity: unknown role")
)

// Role is the account role stored in user_roles. Role is always read from
// the table, never derived from token claims.
type Role string

const (
	RoleVendor Role = "vendor"
	RoleChef   Role = "chef"
	RoleAdmin  Role = "admin"
)

// ParseRole validates a role string coming from the wire.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleVendor, RoleChef, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// SignupRole validates a role a user may self-select at signup. Admin
// accounts are provisioned out of band.
func SignupRole(s string) (Role, error) {
	r, err := ParseRole(s)
	if err != nil || r == RoleAdmin {
		return "", ErrUnknownRole
	}
	return r, nil
}

// RequiredDocuments returns the document set the role must upload before
// the registration can be approved. Each role variant carries its own list
// instead of scattering string comparisons through handlers.
func (r Role) RequiredDocuments() []string {
	switch r {
	case RoleVendor:
		return []string{"insurance", "food_hygiene", "public_liability"}
	case RoleChef:
		return []string{"food_hygiene", "dbs_check"}
	default:
		return nil
	}
}

// User is an account row. PasswordHash never leaves the identity module.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session is the per-request identity resolved by the auth middleware and
// passed explicitly through the request context.
type Session struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the session holds the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
