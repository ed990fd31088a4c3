package domain

import "testing"

func TestItemID(t *testing.T) {
	if got := ItemID(TypeTask, 42); got != "task_42" {
		t.Errorf("expected task_42, got %s", got)
	}
	if got := ItemID(TypeNote, 5); got != "note_5" {
		t.Errorf("expected note_5, got %s", got)
	}
}

func TestEmbeddingText(t *testing.T) {
	tests := []struct {
		name     string
		itemType ItemType
		category string
		content  string
		dueDate  string
		want     string
	}{
		{
			name:     "note",
			itemType: TypeNote,
			category: "Home",
			content:  "furnace filter size is 16x20",
			want:     "Home: furnace filter size is 16x20",
		},
		{
			name:     "task without due date",
			itemType: TypeTask,
			category: "Home",
			content:  "change filter",
			want:     "Home: change filter",
		},
		{
			name:     "task with due date",
			itemType: TypeTask,
			category: "Wedding - Vendors",
			content:  "book florist",
			dueDate:  "2026-09-01",
			want:     "Wedding - Vendors: book florist (due: 2026-09-01)",
		},
		{
			name:     "sentinel due date",
			itemType: TypeTask,
			category: "Betting",
			content:  "settle up",
			dueDate:  "ASAP",
			want:     "Betting: settle up (due: ASAP)",
		},
		{
			// Due dates only attach to tasks.
			name:     "note ignores due date",
			itemType: TypeNote,
			category: "Home",
			content:  "memo",
			dueDate:  "2026-09-01",
			want:     "Home: memo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EmbeddingText(tt.itemType, tt.category, tt.content, tt.dueDate)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
