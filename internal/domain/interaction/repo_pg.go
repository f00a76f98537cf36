package interaction

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pairResultLimit caps how many rows a single pair lookup may return. The
// substring strategy can fan out badly for very short names; the cap keeps
// a single degenerate query from dominating the response.
const pairResultLimit = 50

const insertBatchSize = 450

type corpusRepoPG struct{ pool *pgxpool.Pool }

// NewCorpusRepoPG returns the Postgres-backed corpus store.
func NewCorpusRepoPG(pool *pgxpool.Pool) CorpusRepository { return &corpusRepoPG{pool: pool} }

// NewCorpusWriterPG returns the ingestion side of the same table.
func NewCorpusWriterPG(pool *pgxpool.Pool) CorpusWriter { return &corpusRepoPG{pool: pool} }

const recordCols = `drug_a, drug_b, level, source_id_a, source_id_b`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.DrugA, &rec.DrugB, &rec.Level, &rec.SourceIDA, &rec.SourceIDB)
	return &rec, err
}

func collectRecords(rows pgx.Rows) ([]*Record, error) {
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

// FindByDrugPair matches both column assignments of the unordered pair with
// case-insensitive containment, so a stored (Warfarin, Aspirin 325mg) row is
// found for a query of ("aspirin", "warfarin").
func (r *corpusRepoPG) FindByDrugPair(ctx context.Context, nameA, nameB string) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+recordCols+` FROM drug_interaction
		WHERE (drug_a ILIKE '%' || $1 || '%' AND drug_b ILIKE '%' || $2 || '%')
		   OR (drug_a ILIKE '%' || $2 || '%' AND drug_b ILIKE '%' || $1 || '%')
		ORDER BY drug_a, drug_b
		LIMIT $3`, nameA, nameB, pairResultLimit)
	if err != nil {
		return nil, fmt.Errorf("find by drug pair: %w", err)
	}
	return collectRecords(rows)
}

func (r *corpusRepoPG) ContainsDrug(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM drug_interaction
			WHERE drug_a ILIKE '%' || $1 || '%' OR drug_b ILIKE '%' || $1 || '%'
		)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("contains drug: %w", err)
	}
	return exists, nil
}

func (r *corpusRepoPG) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM drug_interaction`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count corpus: %w", err)
	}
	return total, nil
}

func (r *corpusRepoPG) Sample(ctx context.Context, limit int) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM drug_interaction LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("sample corpus: %w", err)
	}
	return collectRecords(rows)
}

// BulkInsert loads records in batches. Used only by the import command;
// duplicate rows are kept as-is, the resolver dedupes at query time.
func (r *corpusRepoPG) BulkInsert(ctx context.Context, records []*Record) (int, error) {
	inserted := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := &pgx.Batch{}
		for _, rec := range records[start:end] {
			batch.Queue(`
				INSERT INTO drug_interaction (drug_a, drug_b, level, source_id_a, source_id_b)
				VALUES ($1, $2, $3, $4, $5)`,
				rec.DrugA, rec.DrugB, rec.Level, rec.SourceIDA, rec.SourceIDB)
		}
		br := r.pool.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return inserted, fmt.Errorf("insert corpus batch: %w", err)
		}
		inserted += end - start
	}
	return inserted, nil
}
