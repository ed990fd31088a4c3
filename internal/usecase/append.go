package usecase

import (
	"context"
	"fmt"
	"time"

	"lifeos/internal/adapter/store"
	"lifeos/internal/domain"
	"lifeos/internal/port"
)

// EmbeddingError marks an append that failed because the provider
// could not embed the item. Callers treat it as "this one item was
// not added" rather than a store-wide failure; the relational write
// remains the source of truth.
type EmbeddingError struct {
	ItemID string
	Err    error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("failed to embed %s: %v", e.ItemID, e.Err)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Err
}

// AppendParams describes one task or note to add. SourceID is the
// relational row id; the store id is derived from it.
type AppendParams struct {
	SourceID  int
	Type      domain.ItemType
	Category  string
	Content   string
	DueDate   string
	Completed bool
}

// AppendUseCase adds single items to an existing store, keeping it
// approximately current as the CRUD layer writes tasks and notes.
type AppendUseCase struct {
	store    *store.JSONStore
	embedder port.Embedder
}

func NewAppendUseCase(st *store.JSONStore, emb port.Embedder) *AppendUseCase {
	return &AppendUseCase{
		store:    st,
		embedder: emb,
	}
}

// Append embeds the item and rewrites the store with it added. If no
// store has been built yet, it reports false and does nothing; it
// never triggers an implicit rebuild. There is no de-duplication:
// appending the same id twice keeps both versions searchable.
func (u *AppendUseCase) Append(ctx context.Context, p AppendParams) (bool, error) {
	if !u.store.Exists() {
		return false, nil
	}

	id := domain.ItemID(p.Type, p.SourceID)
	text := domain.EmbeddingText(p.Type, p.Category, p.Content, p.DueDate)

	vec, err := u.embedder.Embed(ctx, text)
	if err != nil {
		return false, &EmbeddingError{ItemID: id, Err: err}
	}

	item := domain.MemoryItem{
		ID:            id,
		Type:          p.Type,
		Category:      p.Category,
		Content:       p.Content,
		CreatedDate:   time.Now().Format(time.RFC3339),
		EmbeddingText: text,
		Embedding:     vec,
	}

	if p.Type == domain.TypeTask {
		if p.DueDate != "" {
			due := p.DueDate
			item.DueDate = &due
		}
		completed := p.Completed
		item.Completed = &completed
	}

	if err := u.store.Append(item); err != nil {
		return false, err
	}

	return true, nil
}
