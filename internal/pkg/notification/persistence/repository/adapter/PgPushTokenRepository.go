package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	notification "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/notification/application/domain"
)

type PgPushTokenRepository struct {
	pool *pgxpool.Pool
}

func NewPgPushTokenRepository(pool *pgxpool.Pool) *PgPushTokenRepository {
	return &PgPushTokenRepository{pool: pool}
}

const pushTokenColumns = `id::text, user_id::text, token, platform, updated_at`

func scanPushToken(row pgx.Row) (notification.PushToken, error) {
	var t notification.PushToken
	var platform string
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &platform, &t.UpdatedAt)
	if err != nil {
		return t, err
	}
	t.Platform = notification.Platform(platform)
	return t, nil
}

func (r *PgPushTokenRepository) UpsertToken(ctx context.Context, userID, token string, platform notification.Platform) (notification.PushToken, error) {
	return scanPushToken(r.pool.QueryRow(ctx, `
		INSERT INTO push_tokens (user_id, token, platform)
		VALUES ($1::uuid, $2, $3)
		ON CONFLICT (user_id, token) DO UPDATE SET
			platform = EXCLUDED.platform,
			updated_at = now()
		RETURNING `+pushTokenColumns, userID, token, string(platform)))
}

func (r *PgPushTokenRepository) ListTokensByUsers(ctx context.Context, userIDs []string) ([]notification.PushToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+pushTokenColumns+` FROM push_tokens
		WHERE user_id = ANY($1::uuid[])
	`, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []notification.PushToken
	for rows.Next() {
		t, err := scanPushToken(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PgPushTokenRepository) DeleteToken(ctx context.Context, userID, token string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM push_tokens WHERE user_id = $1::uuid AND token = $2
	`, userID, token)
	return err
}
