package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	completer Completer
	repo      Repository
	logger    zerolog.Logger
}

func NewService(completer Completer, repo Repository, logger zerolog.Logger) *Service {
	return &Service{completer: completer, repo: repo, logger: logger}
}

// Chat sends the user message to the language model and returns the reply.
// When userID is set the turn is persisted under sessionID (generated when
// absent); persistence failure is logged but never fails the chat itself.
func (s *Service) Chat(ctx context.Context, userID, sessionID, message string) (string, string, error) {
	if message == "" {
		return "", "", fmt.Errorf("message is required")
	}

	reply, err := s.completer.Complete(ctx, message)
	if err != nil {
		return "", "", err
	}

	if sessionID == "" {
		sessionID = fmt.Sprintf("session_%d", time.Now().UnixMilli())
	}

	if userID != "" {
		turn := &Turn{
			UserID:      userID,
			SessionID:   sessionID,
			UserMessage: message,
			AIResponse:  reply,
		}
		if err := s.repo.SaveTurn(ctx, turn); err != nil {
			s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to persist chat turn")
		}
	}

	return reply, sessionID, nil
}

func (s *Service) ListSessions(ctx context.Context, userID string) ([]*SessionSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	return s.repo.ListSessions(ctx, userID)
}

func (s *Service) ListTurns(ctx context.Context, userID, sessionID string) ([]*Turn, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if sessionID == "" {
		return nil, fmt.Errorf("session_id is required")
	}
	return s.repo.ListTurns(ctx, userID, sessionID)
}
