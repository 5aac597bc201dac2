package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	profile "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/profile/application/domain"
)

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `id::text, full_name, company_name, phone, bio, business_type,
	service_category, years_in_business, approval_status, registration_completed,
	created_at, updated_at`

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	var status string
	err := row.Scan(&p.ID, &p.FullName, &p.CompanyName, &p.Phone, &p.Bio,
		&p.BusinessType, &p.ServiceCategory, &p.YearsInBusiness, &status,
		&p.RegistrationCompleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	p.ApprovalStatus = profile.ApprovalStatus(status)
	return p, nil
}

func (r *PgProfileRepository) Get(ctx context.Context, userID string) (profile.Profile, error) {
	p, err := scanProfile(r.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1::uuid`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, profile.ErrNotFound
	}
	return p, err
}

// Upsert writes the caller-editable fields; workflow fields
// (approval_status, registration_completed) are only touched by their
// dedicated setters.
func (r *PgProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (id, full_name, company_name, phone, bio, business_type, service_category, years_in_business)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			company_name = EXCLUDED.company_name,
			phone = EXCLUDED.phone,
			bio = EXCLUDED.bio,
			business_type = EXCLUDED.business_type,
			service_category = EXCLUDED.service_category,
			years_in_business = EXCLUDED.years_in_business,
			updated_at = now()
		RETURNING `+profileColumns,
		p.ID, p.FullName, p.CompanyName, p.Phone, p.Bio, p.BusinessType,
		p.ServiceCategory, p.YearsInBusiness)
	return scanProfile(row)
}

func (r *PgProfileRepository) SetRegistrationCompleted(ctx context.Context, userID string, completed bool) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE profiles SET registration_completed = $2, updated_at = now()
		WHERE id = $1::uuid
	`, userID, completed)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *PgProfileRepository) SetApprovalStatus(ctx context.Context, userID string, status profile.ApprovalStatus) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE profiles SET approval_status = $2, updated_at = now()
		WHERE id = $1::uuid
	`, userID, string(status))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *PgProfileRepository) ListByApprovalStatus(ctx context.Context, status profile.ApprovalStatus, completedOnly bool) ([]profile.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+` FROM profiles
		WHERE approval_status = $1 AND (NOT $2 OR registration_completed)
		ORDER BY updated_at DESC
	`, string(status), completedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProfiles(rows)
}

func collectProfiles(rows pgx.Rows) ([]profile.Profile, error) {
	var out []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
