package usecase

import (
	"context"
	"fmt"
	"time"

	"lifeos/internal/adapter/store"
	"lifeos/internal/domain"
	"lifeos/internal/port"
)

// RebuildUseCase derives the memory store from scratch: every task and
// note from the source is embedded and the complete store is written
// in a single whole-file pass.
type RebuildUseCase struct {
	store    *store.JSONStore
	source   port.ItemSource
	embedder port.Embedder
}

func NewRebuildUseCase(st *store.JSONStore, src port.ItemSource, emb port.Embedder) *RebuildUseCase {
	return &RebuildUseCase{
		store:    st,
		source:   src,
		embedder: emb,
	}
}

// RebuildResult reports what a rebuild did.
type RebuildResult struct {
	AlreadyExists bool
	Tasks         int
	Notes         int
	Skipped       []string
}

// Rebuild vectorizes all source items and persists the result. If a
// store already exists and force is false, nothing happens. Items
// whose embedding fails are skipped and reported; a single bad item
// does not abort the rebuild. The optional progress callback fires
// after each item.
func (u *RebuildUseCase) Rebuild(ctx context.Context, force bool, progress func(done, total int)) (*RebuildResult, error) {
	if u.store.Exists() && !force {
		return &RebuildResult{AlreadyExists: true}, nil
	}

	raw, err := u.source.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read source items: %w", err)
	}

	result := &RebuildResult{}
	ms := &domain.MemoryStore{
		Metadata: domain.Metadata{
			CreatedAt:  time.Now().Format(time.RFC3339),
			Model:      u.embedder.ModelName(),
			Provider:   u.embedder.ProviderName(),
			Dimensions: u.embedder.Dimension(),
		},
		Items: []domain.MemoryItem{},
	}

	for i, r := range raw {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item, err := buildItem(ctx, u.embedder, r)
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s: %v", domain.ItemID(r.Type, r.ID), err))
		} else {
			ms.Items = append(ms.Items, item)
			switch r.Type {
			case domain.TypeTask:
				result.Tasks++
			case domain.TypeNote:
				result.Notes++
			}
		}

		if progress != nil {
			progress(i+1, len(raw))
		}
	}

	if err := u.store.Write(ms); err != nil {
		return nil, err
	}

	return result, nil
}

// buildItem embeds one raw row and assembles its MemoryItem. The raw
// row's own created_date is preserved.
func buildItem(ctx context.Context, embedder port.Embedder, r domain.RawItem) (domain.MemoryItem, error) {
	text := domain.EmbeddingText(r.Type, r.Category, r.Content, r.DueDate)

	vec, err := embedder.Embed(ctx, text)
	if err != nil {
		return domain.MemoryItem{}, err
	}

	item := domain.MemoryItem{
		ID:            domain.ItemID(r.Type, r.ID),
		Type:          r.Type,
		Category:      r.Category,
		Content:       r.Content,
		CreatedDate:   r.CreatedDate,
		EmbeddingText: text,
		Embedding:     vec,
	}

	if r.Type == domain.TypeTask {
		if r.DueDate != "" {
			due := r.DueDate
			item.DueDate = &due
		}
		completed := r.Completed
		item.Completed = &completed
	}

	return item, nil
}
