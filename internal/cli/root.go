package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"lifeos/config"
	"lifeos/internal/adapter/embedding"
	"lifeos/internal/port"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Life OS semantic memory - vectorize and search your tasks and notes",
	Long: `lifeos maintains a semantic memory of your tasks and notes: it embeds
them with an external embeddings API, persists the vectors in a single
JSON store, and answers similarity queries with optional filters.

Example usage:
  lifeos vectorize                 # Build the store from the database
  lifeos search "open home tasks"  # Semantic search
  lifeos add --type task --id 42 --category Home --content "fix furnace"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lifeos.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

// resolve makes a configured path absolute relative to the root directory.
func resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

func storePath() string {
	return resolve(cfg.Store.Path)
}

func databasePath() string {
	return resolve(cfg.Database.Path)
}

// newEmbedder builds the configured embedding provider client.
func newEmbedder() (port.Embedder, error) {
	e := cfg.Embedding
	switch e.Provider {
	case "openai", "":
		if e.BaseURL != "" {
			return embedding.NewOpenAICompatibleEmbedder("openai", e.APIKeyEnv, e.Model, e.BaseURL, e.Dimension)
		}
		return embedding.NewOpenAIEmbedder(e.APIKeyEnv, e.Model, e.Dimension)
	case "mock":
		return embedding.NewMockEmbedder(e.Dimension), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", e.Provider)
	}
}
