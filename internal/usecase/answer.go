package usecase

import (
	"fmt"
	"strings"

	"lifeos/internal/domain"
)

// FormatAnswer renders ranked search results as the human-readable
// list the bot and CLI show: status glyph per task, note marker per
// note, due dates, and a "Found N tasks and M notes" header.
func FormatAnswer(results []domain.ScoredItem) string {
	if len(results) == 0 {
		return "💭 No results found in your Life OS database."
	}

	var lines []string
	var taskCount, noteCount int

	for _, r := range results {
		item := r.Item
		switch item.Type {
		case domain.TypeTask:
			taskCount++
			icon := "⏳"
			if item.Completed != nil && *item.Completed {
				icon = "✓"
			}
			lines = append(lines, fmt.Sprintf("%s [%s] %s", icon, item.Category, item.Content))
			if item.DueDate != nil && *item.DueDate != "" {
				lines = append(lines, "   Due: "+*item.DueDate)
			}
		default:
			noteCount++
			lines = append(lines, fmt.Sprintf("📝 [%s] %s", item.Category, item.Content))
		}
		lines = append(lines, "")
	}

	var kinds []string
	if taskCount > 0 {
		kinds = append(kinds, fmt.Sprintf("%d %s", taskCount, plural("task", taskCount)))
	}
	if noteCount > 0 {
		kinds = append(kinds, fmt.Sprintf("%d %s", noteCount, plural("note", noteCount)))
	}

	header := fmt.Sprintf("💭 Found %s:\n\n", strings.Join(kinds, " and "))
	return header + strings.TrimSpace(strings.Join(lines, "\n"))
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
