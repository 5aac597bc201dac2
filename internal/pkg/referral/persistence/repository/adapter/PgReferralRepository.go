package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	referral "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/referral/application/domain"
)

type PgReferralRepository struct {
	pool *pgxpool.Pool
}

func NewPgReferralRepository(pool *pgxpool.Pool) *PgReferralRepository {
	return &PgReferralRepository{pool: pool}
}

func scanReferral(row pgx.Row) (referral.Referral, error) {
	var r referral.Referral
	err := row.Scan(&r.ID, &r.ReferrerID, &r.FriendName, &r.FriendEmail, &r.CreatedAt)
	return r, err
}

func (r *PgReferralRepository) CreateReferral(ctx context.Context, in referral.Referral) (referral.Referral, error) {
	return scanReferral(r.pool.QueryRow(ctx, `
		INSERT INTO referrals (referrer_id, friend_name, friend_email)
		VALUES ($1::uuid, $2, $3)
		RETURNING id::text, referrer_id::text, friend_name, friend_email, created_at
	`, in.ReferrerID, in.FriendName, in.FriendEmail))
}

func (r *PgReferralRepository) ListReferrals(ctx context.Context, referrerID string) ([]referral.Referral, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, referrer_id::text, friend_name, friend_email, created_at
		FROM referrals WHERE referrer_id = $1::uuid
		ORDER BY created_at DESC
	`, referrerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []referral.Referral
	for rows.Next() {
		item, err := scanReferral(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func scanCompletedEvent(row pgx.Row) (referral.CompletedEvent, error) {
	var e referral.CompletedEvent
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.EventDate, &e.CreatedAt)
	return e, err
}

func (r *PgReferralRepository) CreateCompletedEvent(ctx context.Context, in referral.CompletedEvent) (referral.CompletedEvent, error) {
	return scanCompletedEvent(r.pool.QueryRow(ctx, `
		INSERT INTO completed_events (user_id, title, event_date)
		VALUES ($1::uuid, $2, $3)
		RETURNING id::text, user_id::text, title, event_date, created_at
	`, in.UserID, in.Title, in.EventDate))
}

func (r *PgReferralRepository) ListCompletedEvents(ctx context.Context, userID string) ([]referral.CompletedEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, user_id::text, title, event_date, created_at
		FROM completed_events WHERE user_id = $1::uuid
		ORDER BY event_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []referral.CompletedEvent
	for rows.Next() {
		item, err := scanCompletedEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
