package medicine

import (
	"time"

	"github.com/google/uuid"
)

// Medicine maps to the medicine table: one scanned or manually entered
// entry in a user's cabinet. UserID is an opaque identifier supplied by the
// authentication collaborator; this service never interprets it.
type Medicine struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"user_id"`
	Name         string     `db:"name" json:"name"`
	Code         *string    `db:"code" json:"code,omitempty"`
	Company      *string    `db:"company" json:"company,omitempty"`
	Dosage       *string    `db:"dosage" json:"dosage,omitempty"`
	Price        *float64   `db:"price" json:"price,omitempty"`
	Frequency    *string    `db:"frequency" json:"frequency,omitempty"`
	DurationDays *int       `db:"duration_days" json:"duration_days,omitempty"`
	Condition    *string    `db:"condition" json:"condition,omitempty"`
	Severity     *string    `db:"severity" json:"severity,omitempty"`
	PurchaseDate *time.Time `db:"purchase_date" json:"purchase_date,omitempty"`
	ExpiryDate   time.Time  `db:"expiry_date" json:"expiry_date"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
