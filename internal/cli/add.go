package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"lifeos/internal/adapter/store"
	"lifeos/internal/domain"
	"lifeos/internal/usecase"
)

var (
	addType      string
	addID        int
	addCategory  string
	addContent   string
	addDue       string
	addCompleted bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single task or note to the vector store",
	Long: `Embed one item and append it to an existing vector store. This is
the hook the CRUD layer calls right after a task or note is written,
so the store stays approximately current.

The database row is the source of truth: an embedding failure is
reported as a warning, not a hard error.

Examples:
  lifeos add --type task --id 42 --category "Wedding - Vendors" --content "book florist" --due 2026-09-01
  lifeos add --type note --id 5 --category Home --content "furnace filter size is 16x20"`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addType, "type", "", "item type: task or note (required)")
	addCmd.Flags().IntVar(&addID, "id", 0, "source row id (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category display name (required)")
	addCmd.Flags().StringVar(&addContent, "content", "", "item text (required)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (tasks only; ISO date, ASAP or Ongoing)")
	addCmd.Flags().BoolVar(&addCompleted, "completed", false, "task completion state (tasks only)")
	addCmd.MarkFlagRequired("type")
	addCmd.MarkFlagRequired("id")
	addCmd.MarkFlagRequired("category")
	addCmd.MarkFlagRequired("content")
}

func runAdd(cmd *cobra.Command, args []string) error {
	itemType := domain.ItemType(addType)
	if itemType != domain.TypeTask && itemType != domain.TypeNote {
		return fmt.Errorf("invalid type %q: must be task or note", addType)
	}

	embedder, err := newEmbedder()
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	st := store.NewJSONStore(storePath())
	appendUC := usecase.NewAppendUseCase(st, embedder)

	appended, err := appendUC.Append(cmd.Context(), usecase.AppendParams{
		SourceID:  addID,
		Type:      itemType,
		Category:  addCategory,
		Content:   addContent,
		DueDate:   addDue,
		Completed: addCompleted,
	})
	if err != nil {
		var embErr *usecase.EmbeddingError
		if errors.As(err, &embErr) {
			fmt.Printf("Warning: %v (database row is unaffected)\n", embErr)
			return nil
		}
		return err
	}

	if !appended {
		fmt.Println("Warning: vector store not found. Run 'lifeos vectorize' first.")
		return nil
	}

	fmt.Printf("Added %s to vector store\n", domain.ItemID(itemType, addID))
	return nil
}
