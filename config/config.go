package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the Life OS memory tool.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Database  DatabaseConfig  `yaml:"database"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Search    SearchConfig    `yaml:"search"`
}

// StoreConfig locates the persisted vector store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig locates the relational database the rebuild reads.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// EmbeddingConfig holds embedding provider configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "openai", "mock"
	Model     string `yaml:"model"`       // e.g. "text-embedding-3-small"
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL   string `yaml:"base_url"`    // Override for OpenAI-compatible endpoints
	Dimension int    `yaml:"dimension"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	TopK int `yaml:"top_k"`
}

// DefaultConfig returns the default configuration. The 384-dimension
// default matches the all-MiniLM-L6-v2 corpus the store was first
// built with, so old and new vectors stay comparable.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "vector_store.json",
		},
		Database: DatabaseConfig{
			Path: "data.db",
		},
		Embedding: EmbeddingConfig{
			Provider:  "openai",
			Model:     "text-embedding-3-small",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 384,
		},
		Search: SearchConfig{
			TopK: 10,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for lifeos.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "lifeos.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
