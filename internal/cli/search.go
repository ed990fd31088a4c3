package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"lifeos/internal/adapter/store"
	"lifeos/internal/domain"
	"lifeos/internal/usecase"
)

var (
	searchTopK     int
	searchCategory string
	searchType     string
	searchStatus   string
	searchJSON     bool
	searchScores   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the vector store",
	Long: `Embed the query and rank every stored item by cosine similarity,
with optional structured filters. The category filter is a
case-insensitive substring match, so filtering on a parent category
("Wedding") includes its children ("Wedding - Vendors").

Examples:
  lifeos search "what are my bets"
  lifeos search "home tasks" --type task --status open
  lifeos search "vendors" --category Wedding --top-k 5 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of results (default from config)")
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category substring")
	searchCmd.Flags().StringVar(&searchType, "type", "", "filter by type: task or note")
	searchCmd.Flags().StringVar(&searchStatus, "status", "", "filter tasks by status: open or completed")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.Flags().BoolVar(&searchScores, "scores", false, "show similarity scores")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	filters, err := buildFilters()
	if err != nil {
		return err
	}

	embedder, err := newEmbedder()
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	st := store.NewJSONStore(storePath())
	searchUC := usecase.NewSearchUseCase(st, embedder)

	topK := cfg.Search.TopK
	if searchTopK > 0 {
		topK = searchTopK
	}

	results, err := searchUC.Search(cmd.Context(), query, topK, filters)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("vector store not initialized. Run 'lifeos vectorize' first")
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(usecase.FormatAnswer(results))

	if searchScores && len(results) > 0 {
		fmt.Println()
		for i, r := range results {
			fmt.Printf("  %d. %s (similarity: %.3f)\n", i+1, r.Item.ID, r.Similarity)
		}
	}

	return nil
}

// buildFilters maps CLI flags onto the filter set. Status uses the
// router's vocabulary: open means not completed.
func buildFilters() (domain.FilterSet, error) {
	var filters domain.FilterSet

	filters.Category = searchCategory

	switch searchType {
	case "":
	case "task", "note":
		filters.Type = domain.ItemType(searchType)
	default:
		return filters, fmt.Errorf("invalid type %q: must be task or note", searchType)
	}

	switch searchStatus {
	case "":
	case "open":
		open := false
		filters.Completed = &open
	case "completed":
		done := true
		filters.Completed = &done
	default:
		return filters, fmt.Errorf("invalid status %q: must be open or completed", searchStatus)
	}

	return filters, nil
}
