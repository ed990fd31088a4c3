package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"lifeos/internal/adapter/store"
	"lifeos/internal/domain"
)

// stubEmbedder returns canned vectors per text and can be told to fail
// for specific texts.
type stubEmbedder struct {
	dim     int
	vectors map[string][]float32
	failOn  map[string]bool
	calls   int
}

func (e *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	if e.failOn[text] {
		return nil, errors.New("provider unavailable")
	}
	if vec, ok := e.vectors[text]; ok {
		return vec, nil
	}
	return nil, fmt.Errorf("no stub vector for %q", text)
}

func (e *stubEmbedder) Dimension() int { return e.dim }

func (e *stubEmbedder) ModelName() string { return "stub-model" }

func (e *stubEmbedder) ProviderName() string { return "stub" }

// stubSource serves a fixed list of raw items.
type stubSource struct {
	items []domain.RawItem
	err   error
}

func (s *stubSource) Items(ctx context.Context) ([]domain.RawItem, error) {
	return s.items, s.err
}

func tempStore(t *testing.T) *store.JSONStore {
	t.Helper()
	return store.NewJSONStore(filepath.Join(t.TempDir(), "vector_store.json"))
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

// twoItemStore is the fixture from the concrete search scenario:
// a wedding task aligned with axis 0 and a home note aligned with
// axis 1.
func twoItemStore() *domain.MemoryStore {
	return &domain.MemoryStore{
		Metadata: domain.Metadata{
			CreatedAt:  "2026-08-01T10:00:00Z",
			Model:      "stub-model",
			Provider:   "stub",
			Dimensions: 2,
		},
		Items: []domain.MemoryItem{
			{
				ID:          "task_1",
				Type:        domain.TypeTask,
				Category:    "Wedding - Vendors",
				Content:     "book florist",
				DueDate:     strPtr("2026-09-01"),
				Completed:   boolPtr(false),
				CreatedDate: "2026-07-15T09:30:00Z",
				Embedding:   []float32{1, 0},
			},
			{
				ID:          "note_5",
				Type:        domain.TypeNote,
				Category:    "Home",
				Content:     "furnace filter size is 16x20",
				CreatedDate: "2026-07-16T09:30:00Z",
				Embedding:   []float32{0, 1},
			},
		},
	}
}
