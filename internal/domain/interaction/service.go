package interaction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrInsufficientDrugs is returned when fewer than two drug names are
	// supplied; a single drug cannot interact with anything.
	ErrInsufficientDrugs = errors.New("at least 2 drugs are required")
	// ErrInvalidDrugName is returned when an entry normalizes to an empty
	// string. The whole request is rejected rather than dropping the entry:
	// silently shrinking the list could turn a typo into a misleading
	// "safe combination" answer.
	ErrInvalidDrugName = errors.New("drug name is empty")
	// ErrStoreUnavailable is returned when the corpus store cannot be
	// queried. Never conflated with zero matches.
	ErrStoreUnavailable = errors.New("interaction store unavailable")
	// ErrTimeout is returned when the overall check exceeds its deadline.
	ErrTimeout = errors.New("interaction check timed out")
)

// Service resolves pairwise drug interactions against the corpus. It is
// stateless; every check is a pure function of the input list and the
// current corpus contents.
type Service struct {
	corpus  CorpusRepository
	matcher Matcher
}

func NewService(corpus CorpusRepository, matcher Matcher) *Service {
	return &Service{corpus: corpus, matcher: matcher}
}

// drugPair is one unordered two-element subset of the drug list.
type drugPair struct {
	a, b string
}

// CheckInteractions finds all known pairwise interactions among the given
// drug names. Results are deduplicated and ordered by severity (Major
// first), ties kept in pair-enumeration-then-discovery order. Diagnostics
// distinguish "drug not in corpus" from "no interaction found".
func (s *Service) CheckInteractions(ctx context.Context, names []string) ([]*Record, *Diagnostics, error) {
	if len(names) < 2 {
		return nil, nil, ErrInsufficientDrugs
	}

	normalized := make([]string, len(names))
	for i, raw := range names {
		n := s.matcher.Normalize(raw)
		if n == "" {
			return nil, nil, fmt.Errorf("%w (entry %d)", ErrInvalidDrugName, i+1)
		}
		normalized[i] = n
	}

	var pairs []drugPair
	for i := 0; i < len(normalized); i++ {
		for j := i + 1; j < len(normalized); j++ {
			pairs = append(pairs, drugPair{a: normalized[i], b: normalized[j]})
		}
	}

	// Fan the per-pair lookups and per-drug presence checks out together.
	// Results land in index-addressed slices so the merge below follows
	// enumeration order, not network arrival order.
	pairResults := make([][]*Record, len(pairs))
	pairErrs := make([]error, len(pairs))
	presence := make([]bool, len(normalized))
	presenceErrs := make([]error, len(normalized))

	var wg sync.WaitGroup
	for i, p := range pairs {
		wg.Add(1)
		go func(i int, p drugPair) {
			defer wg.Done()
			pairResults[i], pairErrs[i] = s.corpus.FindByDrugPair(ctx, p.a, p.b)
		}(i, p)
	}
	for i, name := range normalized {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			presence[i], presenceErrs[i] = s.corpus.ContainsDrug(ctx, name)
		}(i, name)
	}
	wg.Wait()

	for _, err := range append(pairErrs, presenceErrs...) {
		if err != nil {
			return nil, nil, classifyStoreErr(ctx, err)
		}
	}

	total := 0
	seen := make(map[string]struct{})
	var unique []*Record
	for _, recs := range pairResults {
		for _, rec := range recs {
			total++
			key := rec.dedupeKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, rec)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Severity().Rank() < unique[j].Severity().Rank()
	})

	count, err := s.corpus.Count(ctx)
	if err != nil {
		return nil, nil, classifyStoreErr(ctx, err)
	}

	diag := &Diagnostics{
		TotalInDB:     count,
		DrugsSearched: append([]string(nil), normalized...),
		NotFound:      []string{},
		Found:         total,
		Unique:        len(unique),
	}
	for i, name := range normalized {
		if !presence[i] {
			diag.NotFound = append(diag.NotFound, name)
		}
	}

	return unique, diag, nil
}

// CorpusStatus reports corpus size and a small sample, for the diagnostic
// endpoint and health tooling.
func (s *Service) CorpusStatus(ctx context.Context, sampleSize int) (int, []*Record, error) {
	count, err := s.corpus.Count(ctx)
	if err != nil {
		return 0, nil, classifyStoreErr(ctx, err)
	}
	sample, err := s.corpus.Sample(ctx, sampleSize)
	if err != nil {
		return 0, nil, classifyStoreErr(ctx, err)
	}
	return count, sample, nil
}

func classifyStoreErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
