package domain

import (
	"fmt"
	"strings"
)

// ItemType distinguishes the two kinds of records the memory store holds.
type ItemType string

const (
	TypeTask ItemType = "task"
	TypeNote ItemType = "note"
)

// RawItem is an un-embedded task or note row as supplied by the
// relational data layer. DueDate and Completed are meaningful for
// tasks only.
type RawItem struct {
	ID          int
	Type        ItemType
	Category    string
	Content     string
	DueDate     string
	Completed   bool
	CreatedDate string
}

// MemoryItem is one embedded, searchable record derived from a task
// or note. Category is a denormalized snapshot of the category display
// name at embedding time, not a live reference.
type MemoryItem struct {
	ID            string    `json:"id"`
	Type          ItemType  `json:"type"`
	Category      string    `json:"category"`
	Content       string    `json:"content"`
	DueDate       *string   `json:"due_date,omitempty"`
	Completed     *bool     `json:"completed,omitempty"`
	CreatedDate   string    `json:"created_date"`
	EmbeddingText string    `json:"embedding_text,omitempty"`
	Embedding     []float32 `json:"embedding"`
}

// Metadata describes a store snapshot.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	Model      string `json:"model"`
	Provider   string `json:"provider"`
	Dimensions int    `json:"dimensions"`
	TotalItems int    `json:"total_items"`
}

// MemoryStore is the persisted aggregate: metadata plus items in
// insertion order. Insertion order is also the tiebreak order for
// equal-similarity search results.
type MemoryStore struct {
	Metadata Metadata     `json:"metadata"`
	Items    []MemoryItem `json:"items"`
}

// ScoredItem pairs an item with its cosine similarity to a query.
type ScoredItem struct {
	Item       MemoryItem `json:"item"`
	Similarity float64    `json:"similarity"`
}

// FilterSet narrows a search. Category is a case-insensitive substring
// match (so "Wedding" matches "Wedding - Vendors" and the whole subtree
// of a parent category). Type is an exact match. Completed applies to
// tasks only; notes are never excluded by it.
type FilterSet struct {
	Category  string
	Type      ItemType
	Completed *bool
}

// Matches reports whether the item passes every filter that is set.
func (f FilterSet) Matches(item MemoryItem) bool {
	if f.Category != "" && !strings.Contains(strings.ToLower(item.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Completed != nil && item.Type == TypeTask {
		completed := item.Completed != nil && *item.Completed
		if completed != *f.Completed {
			return false
		}
	}
	return true
}

// ItemID derives the store id for a source row, e.g. task 42 -> "task_42".
// Ids are not reused after a source row is deleted; deletions are not
// propagated to the store.
func ItemID(t ItemType, sourceID int) string {
	return fmt.Sprintf("%s_%d", t, sourceID)
}

// EmbeddingText derives the text that actually gets embedded. The
// category prefix gives the vector its topical context; tasks with a
// due date carry it as a suffix.
func EmbeddingText(t ItemType, category, content, dueDate string) string {
	text := category + ": " + content
	if t == TypeTask && dueDate != "" {
		text += " (due: " + dueDate + ")"
	}
	return text
}
