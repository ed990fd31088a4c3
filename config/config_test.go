package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Store.Path != "vector_store.json" {
		t.Errorf("expected store path vector_store.json, got %s", cfg.Store.Path)
	}
	if cfg.Database.Path != "data.db" {
		t.Errorf("expected database path data.db, got %s", cfg.Database.Path)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected model text-embedding-3-small, got %s", cfg.Embedding.Model)
	}
	if cfg.Embedding.Dimension != 384 {
		t.Errorf("expected dimension 384, got %d", cfg.Embedding.Dimension)
	}
	if cfg.Search.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Search.TopK)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/lifeos.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lifeos.yaml")

	content := `
store:
  path: /var/lifeos/vector_store.json
embedding:
  provider: mock
  dimension: 8
search:
  top_k: 5
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Store.Path != "/var/lifeos/vector_store.json" {
		t.Errorf("unexpected store path: %s", cfg.Store.Path)
	}
	if cfg.Embedding.Provider != "mock" {
		t.Errorf("expected provider mock, got %s", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Dimension != 8 {
		t.Errorf("expected dimension 8, got %d", cfg.Embedding.Dimension)
	}
	if cfg.Search.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Search.TopK)
	}
	// Untouched sections keep their defaults.
	if cfg.Embedding.Model != "text-embedding-3-small" {
		t.Errorf("expected default model, got %s", cfg.Embedding.Model)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lifeos.yaml")

	content := `
database:
  path: /srv/lifeos/data.db
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Path != "/srv/lifeos/data.db" {
		t.Errorf("unexpected database path: %s", cfg.Database.Path)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lifeos.yaml")

	cfg := DefaultConfig()
	cfg.Embedding.Provider = "mock"
	cfg.Search.TopK = 3

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Embedding.Provider != "mock" || loaded.Search.TopK != 3 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
