package medicine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	data map[uuid.UUID]*Medicine
}

func newMockRepo() *mockRepo {
	return &mockRepo{data: make(map[uuid.UUID]*Medicine)}
}

func (m *mockRepo) Create(_ context.Context, med *Medicine) error {
	med.ID = uuid.New()
	med.CreatedAt = time.Now()
	m.data[med.ID] = med
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Medicine, error) {
	if med, ok := m.data[id]; ok {
		return med, nil
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Update(_ context.Context, med *Medicine) error {
	if _, ok := m.data[med.ID]; !ok {
		return fmt.Errorf("not found")
	}
	m.data[med.ID] = med
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.data, id)
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*Medicine, int, error) {
	var out []*Medicine
	for _, med := range m.data {
		if med.UserID == userID {
			out = append(out, med)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) ListExpiring(_ context.Context, userID string, cutoff time.Time) ([]*Medicine, error) {
	var out []*Medicine
	for _, med := range m.data {
		if med.UserID == userID && !med.ExpiryDate.After(cutoff) {
			out = append(out, med)
		}
	}
	return out, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

func validMedicine() *Medicine {
	return &Medicine{
		UserID:     "user-1",
		Name:       "Aspirin",
		ExpiryDate: time.Now().AddDate(1, 0, 0),
	}
}

func TestCreateMedicine(t *testing.T) {
	svc, repo := newTestService()
	m := validMedicine()
	if err := svc.CreateMedicine(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if len(repo.data) != 1 {
		t.Errorf("expected 1 stored medicine, got %d", len(repo.data))
	}
}

func TestCreateMedicine_Validation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*Medicine)
	}{
		{"missing user", func(m *Medicine) { m.UserID = "" }},
		{"missing name", func(m *Medicine) { m.Name = "" }},
		{"missing expiry", func(m *Medicine) { m.ExpiryDate = time.Time{} }},
		{"bad frequency", func(m *Medicine) { m.Frequency = strPtr("hourly") }},
		{"bad severity", func(m *Medicine) { m.Severity = strPtr("fatal") }},
		{"negative price", func(m *Medicine) { m.Price = floatPtr(-1) }},
	}
	for _, tt := range tests {
		m := validMedicine()
		tt.mutate(m)
		if err := svc.CreateMedicine(context.Background(), m); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestCreateMedicine_ValidEnums(t *testing.T) {
	svc, _ := newTestService()
	m := validMedicine()
	m.Frequency = strPtr("twice daily")
	m.Severity = strPtr("moderate")
	if err := svc.CreateMedicine(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListMedicines_RequiresUser(t *testing.T) {
	svc, _ := newTestService()
	if _, _, err := svc.ListMedicines(context.Background(), "", 20, 0); err == nil {
		t.Error("expected error for missing user_id")
	}
}

func TestListExpiring(t *testing.T) {
	svc, _ := newTestService()

	soon := validMedicine()
	soon.ExpiryDate = time.Now().AddDate(0, 0, 7)
	if err := svc.CreateMedicine(context.Background(), soon); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	far := validMedicine()
	far.Name = "Ibuprofen"
	if err := svc.CreateMedicine(context.Background(), far); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.ListExpiring(context.Background(), "user-1", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Aspirin" {
		t.Errorf("expected only the soon-expiring medicine, got %d items", len(items))
	}
}
