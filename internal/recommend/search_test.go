package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/logging"
)

// fakeCatalog returns canned results per query and records call counts.
type fakeCatalog struct {
	mu      sync.Mutex
	results map[string][]domain.CandidateItem
	errs    map[string]error
	calls   []string
}

func (f *fakeCatalog) Search(_ context.Context, query string, _ int) ([]domain.CandidateItem, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	f.mu.Unlock()
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func TestFetch_SearchesEveryCategory(t *testing.T) {
	catalog := &fakeCatalog{results: map[string][]domain.CandidateItem{}}
	fetcher := NewFetcher(catalog, logging.Nop())

	profile := &domain.MergedProfile{
		MainCategories: []string{"AI Tools", "Crypto"},
		SubCategories:  []string{"Trading"},
	}
	fetcher.Fetch(context.Background(), profile, 5)

	assert.ElementsMatch(t, []string{"AI Tools", "Crypto", "Trading"}, catalog.calls)
}

func TestFetch_DeduplicatesKeepingFirstSeenAndMaxRelevance(t *testing.T) {
	catalog := &fakeCatalog{results: map[string][]domain.CandidateItem{
		"AI Tools": {
			{ID: "s1", Name: "Agent Kit", Description: "first seen", BaseRelevance: 0.5},
			{ID: "s2", Name: "Other", BaseRelevance: 0.3},
		},
		"Crypto": {
			{ID: "s1", Name: "Agent Kit (dup)", Description: "different attrs", BaseRelevance: 0.9},
		},
	}}
	fetcher := NewFetcher(catalog, logging.Nop())

	profile := &domain.MergedProfile{MainCategories: []string{"AI Tools", "Crypto"}}
	merged := fetcher.Fetch(context.Background(), profile, 5)

	require.Len(t, merged, 2)
	// First-seen attributes survive; relevance takes the max across hits.
	assert.Equal(t, "s1", merged[0].ID)
	assert.Equal(t, "Agent Kit", merged[0].Name)
	assert.Equal(t, "first seen", merged[0].Description)
	assert.InDelta(t, 0.9, merged[0].BaseRelevance, 1e-9)
}

func TestFetch_FailedSearchDropsOnlyItsOwnResults(t *testing.T) {
	catalog := &fakeCatalog{
		results: map[string][]domain.CandidateItem{
			"Crypto": {{ID: "s9", Name: "Survivor"}},
		},
		errs: map[string]error{"AI Tools": errors.New("catalog down")},
	}
	fetcher := NewFetcher(catalog, logging.Nop())

	profile := &domain.MergedProfile{MainCategories: []string{"AI Tools", "Crypto"}}
	merged := fetcher.Fetch(context.Background(), profile, 5)

	require.Len(t, merged, 1)
	assert.Equal(t, "s9", merged[0].ID)
}

func TestFetch_NoCategoriesNoCalls(t *testing.T) {
	catalog := &fakeCatalog{}
	fetcher := NewFetcher(catalog, logging.Nop())

	merged := fetcher.Fetch(context.Background(), &domain.MergedProfile{}, 5)

	assert.Nil(t, merged)
	assert.Empty(t, catalog.calls)
}
