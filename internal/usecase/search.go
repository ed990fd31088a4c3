package usecase

import (
	"context"
	"fmt"
	"sort"

	"lifeos/internal/adapter/embedding"
	"lifeos/internal/adapter/store"
	"lifeos/internal/domain"
	"lifeos/internal/port"
)

// SearchUseCase ranks stored items against a natural-language query.
// Brute-force cosine over the full store: O(N*D) per query, fine at
// the hundreds-to-low-thousands scale this corpus runs at.
type SearchUseCase struct {
	store    *store.JSONStore
	embedder port.Embedder
}

func NewSearchUseCase(st *store.JSONStore, emb port.Embedder) *SearchUseCase {
	return &SearchUseCase{
		store:    st,
		embedder: emb,
	}
}

// Search embeds the query and returns up to topK items passing the
// filters, sorted by similarity descending. Ties keep the store's
// insertion order. Zero matches is an empty slice, not an error;
// a missing store surfaces store.ErrNotFound.
func (u *SearchUseCase) Search(ctx context.Context, query string, topK int, filters domain.FilterSet) ([]domain.ScoredItem, error) {
	ms, err := u.store.Load()
	if err != nil {
		return nil, err
	}

	queryVec, err := u.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results := make([]domain.ScoredItem, 0, len(ms.Items))
	for _, item := range ms.Items {
		if !filters.Matches(item) {
			continue
		}
		results = append(results, domain.ScoredItem{
			Item:       item,
			Similarity: embedding.CosineSimilarity(queryVec, item.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if topK > 0 && topK < len(results) {
		results = results[:topK]
	}

	return results, nil
}
