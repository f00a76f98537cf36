package medicine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validFrequencies = map[string]bool{
	"daily": true, "twice daily": true, "three times daily": true,
	"four times daily": true, "weekly": true, "as needed": true,
}

var validSeverities = map[string]bool{
	"mild": true, "moderate": true, "severe": true, "critical": true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateMedicine(ctx context.Context, m *Medicine) error {
	if m.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.ExpiryDate.IsZero() {
		return fmt.Errorf("expiry_date is required")
	}
	if err := validateOptional(m); err != nil {
		return err
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) GetMedicine(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateMedicine(ctx context.Context, m *Medicine) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := validateOptional(m); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *Service) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListMedicines(ctx context.Context, userID string, limit, offset int) ([]*Medicine, int, error) {
	if userID == "" {
		return nil, 0, fmt.Errorf("user_id is required")
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// ListExpiring returns the user's medicines expiring within the given
// number of days from now.
func (s *Service) ListExpiring(ctx context.Context, userID string, withinDays int) ([]*Medicine, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if withinDays <= 0 {
		withinDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, withinDays)
	return s.repo.ListExpiring(ctx, userID, cutoff)
}

func validateOptional(m *Medicine) error {
	if m.Frequency != nil && !validFrequencies[*m.Frequency] {
		return fmt.Errorf("invalid frequency: %s", *m.Frequency)
	}
	if m.Severity != nil && !validSeverities[*m.Severity] {
		return fmt.Errorf("invalid severity: %s", *m.Severity)
	}
	if m.Price != nil && *m.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if m.DurationDays != nil && *m.DurationDays < 1 {
		return fmt.Errorf("duration_days must be at least 1")
	}
	return nil
}
