package interaction

import "context"

// CorpusRepository is the read-only view of the interaction corpus used by
// the resolver. Implementations must treat drug-name matching as
// case-insensitive substring containment and must return empty slices, not
// errors, when nothing matches.
type CorpusRepository interface {
	// FindByDrugPair returns all records where one drug name contains nameA
	// and the other contains nameB, in either column assignment. Capped at
	// pairResultLimit rows per call.
	FindByDrugPair(ctx context.Context, nameA, nameB string) ([]*Record, error)
	// ContainsDrug reports whether the name occurs anywhere in the corpus,
	// in either drug column.
	ContainsDrug(ctx context.Context, name string) (bool, error)
	// Count returns the total corpus size.
	Count(ctx context.Context) (int, error)
	// Sample returns up to limit arbitrary records for diagnostics.
	Sample(ctx context.Context, limit int) ([]*Record, error)
}

// CorpusWriter is the ingestion side of the corpus, used only by the
// offline import tool. The resolver never writes.
type CorpusWriter interface {
	BulkInsert(ctx context.Context, records []*Record) (int, error)
}
