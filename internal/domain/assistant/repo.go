package assistant

import "context"

type Repository interface {
	SaveTurn(ctx context.Context, t *Turn) error
	ListSessions(ctx context.Context, userID string) ([]*SessionSummary, error)
	ListTurns(ctx context.Context, userID, sessionID string) ([]*Turn, error)
}
