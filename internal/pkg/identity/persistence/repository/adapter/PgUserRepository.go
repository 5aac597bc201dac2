package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	identity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/identity/application/domain"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// CreateUser inserts the account and its role row in one transaction so a
// user never exists without a role.
func (r *PgUserRepository) CreateUser(ctx context.Context, email, passwordHash string, role identity.Role) (identity.User, error) {
	var u identity.User
	if r == nil || r.pool == nil {
		return u, errors.New("PgUserRepository: nil pool")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return u, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES (lower($1), $2)
		RETURNING id::text, email, password_hash, created_at
	`, email, passwordHash).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identity.User{}, identity.ErrEmailTaken
		}
		return identity.User{}, err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO user_roles (user_id, role) VALUES ($1::uuid, $2)
	`, u.ID, string(role)); err != nil {
		return identity.User{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return identity.User{}, err
	}
	return u, nil
}

func (r *PgUserRepository) GetUserByEmail(ctx context.Context, email string) (identity.User, error) {
	var u identity.User
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, email, password_hash, created_at
		FROM users WHERE email = lower($1)
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, identity.ErrUserNotFound
	}
	return u, err
}

func (r *PgUserRepository) GetUserByID(ctx context.Context, id string) (identity.User, error) {
	var u identity.User
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, email, password_hash, created_at
		FROM users WHERE id = $1::uuid
	`, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, identity.ErrUserNotFound
	}
	return u, err
}

func (r *PgUserRepository) GetRole(ctx context.Context, userID string) (identity.Role, error) {
	var role string
	err := r.pool.QueryRow(ctx, `
		SELECT role FROM user_roles WHERE user_id = $1::uuid
	`, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", identity.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return identity.ParseRole(role)
}

func (r *PgUserRepository) ListUserIDsByRole(ctx context.Context, role identity.Role) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id::text FROM user_roles WHERE role = $1
	`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
