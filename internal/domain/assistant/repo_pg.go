package assistant

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) SaveTurn(ctx context.Context, t *Turn) error {
	t.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO chat_turn (id, user_id, session_id, user_message, ai_response)
		VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.UserID, t.SessionID, t.UserMessage, t.AIResponse)
	return err
}

func (r *repoPG) ListSessions(ctx context.Context, userID string) ([]*SessionSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT session_id, COUNT(*), MAX(created_at)
		FROM chat_turn WHERE user_id = $1
		GROUP BY session_id ORDER BY MAX(created_at) DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.SessionID, &s.TurnCount, &s.LastMessageAt); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

func (r *repoPG) ListTurns(ctx context.Context, userID, sessionID string) ([]*Turn, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, session_id, user_message, ai_response, created_at
		FROM chat_turn WHERE user_id = $1 AND session_id = $2
		ORDER BY created_at ASC`, userID, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.UserID, &t.SessionID, &t.UserMessage, &t.AIResponse, &t.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &t)
	}
	return items, rows.Err()
}
