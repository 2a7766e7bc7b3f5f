package domain

import "context"

// Embedder converts free text into fixed-dimension numeric vectors.
// Batch calls must return vectors in input order regardless of how the
// implementation partitions the work internally.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimension() int
}

// VectorStore persists vectors with payloads and answers similarity queries.
// Init recreates the collection for the given dimension, destroying any
// prior contents under the same name.
type VectorStore interface {
	Init(ctx context.Context, dimension int) error
	Upsert(ctx context.Context, points []Point) error
	Search(ctx context.Context, vector []float32, topK int) ([]SearchResult, error)
	Close() error
}

// Generator produces a chat completion from a system instruction and a
// user message.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
