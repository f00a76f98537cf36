package medicine

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	Update(ctx context.Context, m *Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Medicine, int, error)
	// ListExpiring returns a user's medicines whose expiry date falls on or
	// before the cutoff, soonest first.
	ListExpiring(ctx context.Context, userID string, cutoff time.Time) ([]*Medicine, error)
}
