package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pdb-srv/internal/model"
	"pdb-srv/internal/search"
	"pdb-srv/pkg/rcsb"
)

// Search - Full-text structure search
// Flow: validate query → search upstream → enrich top hits with titles → return
func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) (search.SearchOutput, error) {
	// Step 1: Validate input
	query := strings.TrimSpace(input.Query)
	if len(query) < search.MinQueryLength {
		return search.SearchOutput{}, search.ErrQueryTooShort
	}
	if len(query) > search.MaxQueryLength {
		return search.SearchOutput{}, search.ErrQueryTooLong
	}

	// Apply defaults
	limit := input.Limit
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	if limit > search.MaxLimit {
		limit = search.MaxLimit
	}

	// Step 2: Search upstream
	hits, total, err := uc.rcsb.Search(ctx, query, limit)
	if err != nil {
		if errors.Is(err, rcsb.ErrNoData) {
			// No hits comes back as an empty body upstream, not an error.
			return search.SearchOutput{Hits: nil, TotalCount: 0}, nil
		}
		uc.l.Errorf(ctx, "search.usecase.Search: upstream search failed: %v", err)
		return search.SearchOutput{}, fmt.Errorf("%w: %v", search.ErrSearchFailed, err)
	}

	// Step 3: Enrich the leading hits with entry titles
	uc.enrichTitles(ctx, hits)

	return search.SearchOutput{
		Hits:       hits,
		TotalCount: total,
	}, nil
}

// enrichTitles resolves entry titles for the first EnrichTopN hits, one
// lookup per goroutine. A failed lookup leaves the hit's title empty.
func (uc *implUseCase) enrichTitles(ctx context.Context, hits []model.SearchHit) {
	n := len(hits)
	if n > search.EnrichTopN {
		n = search.EnrichTopN
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := uc.rcsb.GetEntry(ctx, hits[i].Identifier)
			if err != nil {
				uc.l.Warnf(ctx, "search.usecase.enrichTitles: title lookup for %s failed: %v", hits[i].Identifier, err)
				return
			}
			hits[i].Title = entry.Struct.Title
		}(i)
	}
	wg.Wait()
}
