package usecase

import (
	"strings"
	"testing"

	"lifeos/internal/domain"
)

func TestFormatAnswer_Empty(t *testing.T) {
	got := FormatAnswer(nil)
	if !strings.Contains(got, "No results found") {
		t.Errorf("unexpected empty-result message: %q", got)
	}
}

func TestFormatAnswer_MixedResults(t *testing.T) {
	results := []domain.ScoredItem{
		{
			Item: domain.MemoryItem{
				ID:        "task_1",
				Type:      domain.TypeTask,
				Category:  "Wedding - Vendors",
				Content:   "book florist",
				DueDate:   strPtr("2026-09-01"),
				Completed: boolPtr(false),
			},
			Similarity: 0.91,
		},
		{
			Item: domain.MemoryItem{
				ID:        "task_2",
				Type:      domain.TypeTask,
				Category:  "Home",
				Content:   "change furnace filter",
				Completed: boolPtr(true),
			},
			Similarity: 0.64,
		},
		{
			Item: domain.MemoryItem{
				ID:       "note_5",
				Type:     domain.TypeNote,
				Category: "Home",
				Content:  "furnace filter size is 16x20",
			},
			Similarity: 0.55,
		},
	}

	got := FormatAnswer(results)

	if !strings.Contains(got, "Found 2 tasks and 1 note:") {
		t.Errorf("missing count header: %q", got)
	}
	if !strings.Contains(got, "⏳ [Wedding - Vendors] book florist") {
		t.Errorf("open task line missing: %q", got)
	}
	if !strings.Contains(got, "Due: 2026-09-01") {
		t.Errorf("due date line missing: %q", got)
	}
	if !strings.Contains(got, "✓ [Home] change furnace filter") {
		t.Errorf("completed task line missing: %q", got)
	}
	if !strings.Contains(got, "📝 [Home] furnace filter size is 16x20") {
		t.Errorf("note line missing: %q", got)
	}
}

func TestFormatAnswer_SingularHeader(t *testing.T) {
	results := []domain.ScoredItem{
		{Item: domain.MemoryItem{Type: domain.TypeNote, Category: "Home", Content: "x"}},
	}

	got := FormatAnswer(results)
	if !strings.Contains(got, "Found 1 note:") {
		t.Errorf("expected singular header, got %q", got)
	}
}
