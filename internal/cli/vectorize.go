package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"lifeos/internal/adapter/source"
	"lifeos/internal/adapter/store"
	"lifeos/internal/usecase"
)

var vectorizeForce bool

var vectorizeCmd = &cobra.Command{
	Use:   "vectorize",
	Short: "Build the vector store from all tasks and notes",
	Long: `Read every task and note from the database, embed each one, and
write the complete vector store. If a store already exists this is a
no-op unless --force is given.

Examples:
  lifeos vectorize
  lifeos vectorize --force`,
	RunE: runVectorize,
}

func init() {
	rootCmd.AddCommand(vectorizeCmd)
	vectorizeCmd.Flags().BoolVar(&vectorizeForce, "force", false, "re-vectorize even if the store exists")
}

func runVectorize(cmd *cobra.Command, args []string) error {
	src, err := source.Open(databasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer src.Close()

	embedder, err := newEmbedder()
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	st := store.NewJSONStore(storePath())
	rebuildUC := usecase.NewRebuildUseCase(st, src, embedder)

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Vectorizing[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := rebuildUC.Rebuild(cmd.Context(), vectorizeForce, progress)
	if err != nil {
		return fmt.Errorf("vectorization failed: %w", err)
	}

	if result.AlreadyExists {
		fmt.Printf("Vector store already exists at %s\n", storePath())
		fmt.Println("Use --force to re-vectorize")
		return nil
	}

	fmt.Printf("\nVectorization complete:\n")
	fmt.Printf("  Tasks embedded: %d\n", result.Tasks)
	fmt.Printf("  Notes embedded: %d\n", result.Notes)

	if len(result.Skipped) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, s := range result.Skipped {
			fmt.Printf("  - skipped %s\n", s)
		}
	}

	if info, err := os.Stat(storePath()); err == nil {
		fmt.Printf("\nStore written to: %s (%.2f MB)\n", storePath(), float64(info.Size())/(1024*1024))
	}

	return nil
}
