package port

import (
	"context"

	"lifeos/internal/domain"
)

// ItemSource supplies the raw task and note rows used for a full
// rebuild of the memory store.
type ItemSource interface {
	// Items returns every task and note, tasks first, each carrying
	// its denormalized category display name.
	Items(ctx context.Context) ([]domain.RawItem, error)
}
