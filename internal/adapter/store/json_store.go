package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"lifeos/internal/domain"
)

// ErrNotFound is returned when an operation requires a persisted store
// and none has been built yet.
var ErrNotFound = errors.New("memory store not found")

// JSONStore owns the memory store snapshot persisted as a single JSON
// document. Every mutation rewrites the whole file. A mutex serializes
// writers within this process; concurrent writers from other processes
// can still lose appends (single-user scale makes this acceptable).
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore creates a handle for the store file at path. The file
// itself is only created by a rebuild.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the store file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Exists reports whether a store has been persisted.
func (s *JSONStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and parses the persisted snapshot.
func (s *JSONStore) Load() (*domain.MemoryStore, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var ms domain.MemoryStore
	if err := json.Unmarshal(data, &ms); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}

	return &ms, nil
}

// Write persists the complete store, replacing any previous snapshot.
// It keeps total_items in sync with the item count and rejects vectors
// that do not match the metadata dimensionality.
func (s *JSONStore) Write(ms *domain.MemoryStore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ms)
}

func (s *JSONStore) write(ms *domain.MemoryStore) error {
	for _, item := range ms.Items {
		if len(item.Embedding) != ms.Metadata.Dimensions {
			return fmt.Errorf("item %s: embedding dimension mismatch: expected %d, got %d",
				item.ID, ms.Metadata.Dimensions, len(item.Embedding))
		}
	}
	ms.Metadata.TotalItems = len(ms.Items)

	data, err := json.MarshalIndent(ms, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	return nil
}

// Append adds one item to the persisted store and rewrites the file.
// The prior version of an item with the same id is never removed or
// overwritten in place; both stay searchable.
func (s *JSONStore) Append(item domain.MemoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms, err := s.Load()
	if err != nil {
		return err
	}

	ms.Items = append(ms.Items, item)
	return s.write(ms)
}
