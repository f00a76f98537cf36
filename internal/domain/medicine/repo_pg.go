package medicine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const medicineCols = `id, user_id, name, code, company, dosage, price, frequency,
	duration_days, condition, severity, purchase_date, expiry_date, created_at, updated_at`

func scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Code, &m.Company, &m.Dosage, &m.Price, &m.Frequency,
		&m.DurationDays, &m.Condition, &m.Severity, &m.PurchaseDate, &m.ExpiryDate, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medicine) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medicine (id, user_id, name, code, company, dosage, price, frequency,
			duration_days, condition, severity, purchase_date, expiry_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		m.ID, m.UserID, m.Name, m.Code, m.Company, m.Dosage, m.Price, m.Frequency,
		m.DurationDays, m.Condition, m.Severity, m.PurchaseDate, m.ExpiryDate)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return scanMedicine(r.pool.QueryRow(ctx, `SELECT `+medicineCols+` FROM medicine WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, m *Medicine) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE medicine SET name=$2, code=$3, company=$4, dosage=$5, price=$6, frequency=$7,
			duration_days=$8, condition=$9, severity=$10, purchase_date=$11, expiry_date=$12, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.Code, m.Company, m.Dosage, m.Price, m.Frequency,
		m.DurationDays, m.Condition, m.Severity, m.PurchaseDate, m.ExpiryDate)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM medicine WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Medicine, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medicine WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+medicineCols+` FROM medicine
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListExpiring(ctx context.Context, userID string, cutoff time.Time) ([]*Medicine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+medicineCols+` FROM medicine
		WHERE user_id = $1 AND expiry_date <= $2 ORDER BY expiry_date ASC`, userID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
