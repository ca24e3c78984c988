// search.go fans catalog searches out across a profile's categories and
// merges the results into a single deduplicated candidate list.
package recommend

import (
	"context"
	"sync"

	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/logging"
)

// CatalogSearcher is the black-box catalog search collaborator.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.CandidateItem, error)
}

// Fetcher issues one catalog search per profile category, concurrently,
// and merges the hits.
type Fetcher struct {
	catalog CatalogSearcher
	logger  logging.Logger
}

// NewFetcher creates a candidate fetcher over the given catalog.
func NewFetcher(catalog CatalogSearcher, logger logging.Logger) *Fetcher {
	return &Fetcher{catalog: catalog, logger: logger}
}

// Fetch searches the catalog once per main and sub category and merges the
// results, deduplicating on candidate id: the first-seen entry keeps its
// attributes, and the relevance is the maximum observed across duplicate
// hits. A failed search drops only its own results.
func (f *Fetcher) Fetch(ctx context.Context, profile *domain.MergedProfile, perCategoryLimit int) []domain.CandidateItem {
	queries := make([]string, 0, len(profile.MainCategories)+len(profile.SubCategories))
	queries = append(queries, profile.MainCategories...)
	queries = append(queries, profile.SubCategories...)
	if len(queries) == 0 {
		return nil
	}

	results := make([][]domain.CandidateItem, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			items, err := f.catalog.Search(ctx, query, perCategoryLimit)
			if err != nil {
				f.logger.Warn("catalog search failed",
					logging.String("query", query),
					logging.Error(err))
				return
			}
			results[i] = items
		}(i, query)
	}
	wg.Wait()

	// Merge in query order so dedup keeps deterministic first-seen entries.
	byID := make(map[string]int)
	merged := make([]domain.CandidateItem, 0, len(queries)*perCategoryLimit)
	for _, items := range results {
		for _, item := range items {
			if pos, ok := byID[item.ID]; ok {
				if item.BaseRelevance > merged[pos].BaseRelevance {
					merged[pos].BaseRelevance = item.BaseRelevance
				}
				continue
			}
			byID[item.ID] = len(merged)
			merged = append(merged, item)
		}
	}

	f.logger.Debug("catalog fan-out complete",
		logging.Int("queries", len(queries)),
		logging.Int("candidates", len(merged)))

	return merged
}
