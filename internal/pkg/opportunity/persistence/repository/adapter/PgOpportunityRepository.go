package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	opportunity "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/opportunity/application/domain"
)

type PgOpportunityRepository struct {
	pool *pgxpool.Pool
}

func NewPgOpportunityRepository(pool *pgxpool.Pool) *PgOpportunityRepository {
	return &PgOpportunityRepository{pool: pool}
}

const opportunityColumns = `id::text, title, description, event_date, location, pay_rate, status, created_at`

func scanOpportunity(row pgx.Row) (opportunity.Opportunity, error) {
	var o opportunity.Opportunity
	var status string
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.EventDate, &o.Location,
		&o.PayRate, &status, &o.CreatedAt)
	if err != nil {
		return o, err
	}
	o.Status = opportunity.Status(status)
	return o, nil
}

func (r *PgOpportunityRepository) CreateOpportunity(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO opportunities (title, description, event_date, location, pay_rate, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+opportunityColumns,
		o.Title, o.Description, o.EventDate, o.Location, o.PayRate, string(o.Status))
	return scanOpportunity(row)
}

func (r *PgOpportunityRepository) UpdateOpportunity(ctx context.Context, o opportunity.Opportunity) (opportunity.Opportunity, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE opportunities SET
			title = $2, description = $3, event_date = $4,
			location = $5, pay_rate = $6, status = $7
		WHERE id = $1::uuid
		RETURNING `+opportunityColumns,
		o.ID, o.Title, o.Description, o.EventDate, o.Location, o.PayRate, string(o.Status))
	saved, err := scanOpportunity(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return saved, opportunity.ErrNotFound
	}
	return saved, err
}

func (r *PgOpportunityRepository) GetOpportunity(ctx context.Context, id string) (opportunity.Opportunity, error) {
	o, err := scanOpportunity(r.pool.QueryRow(ctx,
		`SELECT `+opportunityColumns+` FROM opportunities WHERE id = $1::uuid`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return o, opportunity.ErrNotFound
	}
	return o, err
}

func (r *PgOpportunityRepository) ListOpportunities(ctx context.Context, status opportunity.Status) ([]opportunity.Opportunity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+opportunityColumns+` FROM opportunities
		WHERE status = $1 ORDER BY event_date ASC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []opportunity.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

const applicationColumns = `id::text, opportunity_id::text, user_id::text, status, applied_at`

func scanApplication(row pgx.Row) (opportunity.Application, error) {
	var a opportunity.Application
	var status string
	err := row.Scan(&a.ID, &a.OpportunityID, &a.UserID, &status, &a.AppliedAt)
	if err != nil {
		return a, err
	}
	a.Status = opportunity.ApplicationStatus(status)
	return a, nil
}

// CreateApplication relies on the (opportunity_id, user_id) uniqueness
// constraint: a repeat apply returns the existing row untouched.
func (r *PgOpportunityRepository) CreateApplication(ctx context.Context, opportunityID, userID string) (opportunity.Application, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO applications (opportunity_id, user_id)
		VALUES ($1::uuid, $2::uuid)
		ON CONFLICT (opportunity_id, user_id) DO NOTHING
		RETURNING `+applicationColumns, opportunityID, userID)
	a, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict path: fetch the existing application.
		return scanApplication(r.pool.QueryRow(ctx, `
			SELECT `+applicationColumns+` FROM applications
			WHERE opportunity_id = $1::uuid AND user_id = $2::uuid
		`, opportunityID, userID))
	}
	return a, err
}

func (r *PgOpportunityRepository) ListApplicationsByUser(ctx context.Context, userID string) ([]opportunity.Application, error) {
	return r.listApplications(ctx, `user_id = $1::uuid`, userID)
}

func (r *PgOpportunityRepository) ListApplicationsByOpportunity(ctx context.Context, opportunityID string) ([]opportunity.Application, error) {
	return r.listApplications(ctx, `opportunity_id = $1::uuid`, opportunityID)
}

func (r *PgOpportunityRepository) listApplications(ctx context.Context, where string, arg any) ([]opportunity.Application, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+` FROM applications
		WHERE `+where+` ORDER BY applied_at DESC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []opportunity.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PgOpportunityRepository) SetApplicationStatus(ctx context.Context, applicationID string, status opportunity.ApplicationStatus) (opportunity.Application, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE applications SET status = $2
		WHERE id = $1::uuid
		RETURNING `+applicationColumns, applicationID, string(status))
	a, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, opportunity.ErrAppNotFound
	}
	return a, err
}

// PgApprovalGate answers the browse gate from the profiles table.
type PgApprovalGate struct {
	pool *pgxpool.Pool
}

func NewPgApprovalGate(pool *pgxpool.Pool) *PgApprovalGate {
	return &PgApprovalGate{pool: pool}
}

func (g *PgApprovalGate) IsApproved(ctx context.Context, userID string) (bool, error) {
	var status string
	err := g.pool.QueryRow(ctx, `
		SELECT approval_status FROM profiles WHERE id = $1::uuid
	`, userID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return status == "approved", nil
}
