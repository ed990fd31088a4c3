package port

import "context"

// Embedder generates a vector embedding for a single text.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	// The text must be non-empty; behavior on empty input is
	// provider-defined and not validated here.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int

	// ModelName returns the name of the embedding model.
	ModelName() string

	// ProviderName returns the provider identifier recorded in
	// store metadata (e.g. "openai").
	ProviderName() string
}
