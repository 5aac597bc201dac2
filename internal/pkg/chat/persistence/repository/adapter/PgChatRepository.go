package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/manager-glitch/birdco-vendor-hub/internal/pkg/chat/application/domain"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

const conversationColumns = `id::text, vendor_id::text, last_message_at, created_at`

func scanConversation(row pgx.Row) (chat.Conversation, error) {
	var cv chat.Conversation
	err := row.Scan(&cv.ID, &cv.VendorID, &cv.LastMessageAt, &cv.CreatedAt)
	return cv, err
}

// GetOrCreateConversation leans on the vendor_id uniqueness constraint.
// DO UPDATE is a no-op write so RETURNING yields the row on both the
// insert and the conflict path.
func (r *PgChatRepository) GetOrCreateConversation(ctx context.Context, vendorID string) (chat.Conversation, error) {
	return scanConversation(r.pool.QueryRow(ctx, `
		INSERT INTO conversations (vendor_id)
		VALUES ($1::uuid)
		ON CONFLICT (vendor_id) DO UPDATE SET vendor_id = EXCLUDED.vendor_id
		RETURNING `+conversationColumns, vendorID))
}

func (r *PgChatRepository) GetConversation(ctx context.Context, id string) (chat.Conversation, error) {
	cv, err := scanConversation(r.pool.QueryRow(ctx,
		`SELECT `+conversationColumns+` FROM conversations WHERE id = $1::uuid`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return cv, chat.ErrConversationNotFound
	}
	return cv, err
}

const messageColumns = `id::text, conversation_id::text, sender_id::text, content, created_at, read_at`

func scanMessage(row pgx.Row) (chat.Message, error) {
	var m chat.Message
	err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.CreatedAt, &m.ReadAt)
	return m, err
}

func (r *PgChatRepository) SaveMessage(ctx context.Context, conversationID, senderID, content string) (chat.Message, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return chat.Message{}, err
	}
	defer tx.Rollback(ctx)

	m, err := scanMessage(tx.QueryRow(ctx, `
		INSERT INTO messages (conversation_id, sender_id, content)
		VALUES ($1::uuid, $2::uuid, $3)
		RETURNING `+messageColumns, conversationID, senderID, content))
	if err != nil {
		return chat.Message{}, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE conversations SET last_message_at = $2
		WHERE id = $1::uuid
	`, conversationID, m.CreatedAt)
	if err != nil {
		return chat.Message{}, err
	}

	return m, tx.Commit(ctx)
}

func (r *PgChatRepository) ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE conversation_id = $1::uuid
		ORDER BY created_at ASC
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PgChatRepository) MarkRead(ctx context.Context, conversationID, readerID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE messages SET read_at = now()
		WHERE conversation_id = $1::uuid
		  AND sender_id <> $2::uuid
		  AND read_at IS NULL
	`, conversationID, readerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgChatRepository) UnreadCount(ctx context.Context, conversationID, readerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM messages
		WHERE conversation_id = $1::uuid
		  AND sender_id <> $2::uuid
		  AND read_at IS NULL
	`, conversationID, readerID).Scan(&count)
	return count, err
}

// ListConversationSummaries joins the vendor's profile name and aggregates
// unread counts in a single query instead of one count per thread.
func (r *PgChatRepository) ListConversationSummaries(ctx context.Context) ([]chat.ConversationSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id::text, c.vendor_id::text, c.last_message_at, c.created_at,
		       coalesce(p.full_name, ''),
		       count(m.id) FILTER (WHERE m.read_at IS NULL AND m.sender_id = c.vendor_id)
		FROM conversations c
		LEFT JOIN profiles p ON p.id = c.vendor_id
		LEFT JOIN messages m ON m.conversation_id = c.id
		GROUP BY c.id, c.vendor_id, c.last_message_at, c.created_at, p.full_name
		ORDER BY c.last_message_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.ConversationSummary
	for rows.Next() {
		var s chat.ConversationSummary
		err := rows.Scan(&s.ID, &s.VendorID, &s.LastMessageAt, &s.CreatedAt, &s.VendorName, &s.UnreadCount)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
