package adapter

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	contact "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/contact/application/domain"
)

type PgContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

const submissionColumns = `id::text, user_id::text, name, email, message, created_at`

func scanSubmission(row pgx.Row) (contact.Submission, error) {
	var s contact.Submission
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Email, &s.Message, &s.CreatedAt)
	return s, err
}

func (r *PgContactRepository) SaveSubmission(ctx context.Context, s contact.Submission) (contact.Submission, error) {
	return scanSubmission(r.pool.QueryRow(ctx, `
		INSERT INTO contact_submissions (user_id, name, email, message)
		VALUES ($1::uuid, $2, $3, $4)
		RETURNING `+submissionColumns,
		s.UserID, s.Name, s.Email, s.Message))
}

func (r *PgContactRepository) ListSubmissions(ctx context.Context, limit int) ([]contact.Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+submissionColumns+` FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []contact.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
