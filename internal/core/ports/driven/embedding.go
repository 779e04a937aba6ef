package driven

import "context"

// EmbeddingService generates vector embeddings from text. The model must be
// the same one the indexing pipeline used, so query vectors land in the same
// space as the indexed chunks.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Ollama (nomic-embed-text, all-minilm)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g. 768, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	// Used at startup to log degraded capability early.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
