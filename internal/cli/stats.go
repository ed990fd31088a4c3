package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"lifeos/internal/adapter/store"
	"lifeos/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vector store statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st := store.NewJSONStore(storePath())

	ms, err := st.Load()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("vector store not initialized. Run 'lifeos vectorize' first")
		}
		return err
	}

	var tasks, notes int
	for _, item := range ms.Items {
		switch item.Type {
		case domain.TypeTask:
			tasks++
		case domain.TypeNote:
			notes++
		}
	}

	fmt.Printf("Vector store: %s\n", storePath())
	fmt.Printf("  Created:    %s\n", ms.Metadata.CreatedAt)
	fmt.Printf("  Model:      %s (%s, %d dimensions)\n", ms.Metadata.Model, ms.Metadata.Provider, ms.Metadata.Dimensions)
	fmt.Printf("  Items:      %d (%d tasks, %d notes)\n", ms.Metadata.TotalItems, tasks, notes)

	if info, err := os.Stat(storePath()); err == nil {
		fmt.Printf("  File size:  %.2f MB\n", float64(info.Size())/(1024*1024))
	}

	return nil
}
