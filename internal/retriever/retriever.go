// Package retriever turns a question into ranked context for answering.
package retriever

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Retriever embeds a question, queries the vector store and assembles a
// context string from the ranked results.
type Retriever struct {
	embedder domain.Embedder
	store    domain.VectorStore
}

// New creates a retriever over the given embedder and store.
func New(embedder domain.Embedder, store domain.VectorStore) *Retriever {
	return &Retriever{embedder: embedder, store: store}
}

// Retrieve returns the assembled context string and the raw results for
// the question. Zero results is ErrNoResults, not an empty context: the
// caller must be able to tell "nothing found" apart from found-but-empty
// text.
func (r *Retriever) Retrieve(ctx context.Context, question string, topK int) (string, []domain.SearchResult, error) {
	vector, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return "", nil, fmt.Errorf("embed question: %w", err)
	}
	results, err := r.store.Search(ctx, vector, topK)
	if err != nil {
		return "", nil, fmt.Errorf("search: %w", err)
	}
	if len(results) == 0 {
		return "", nil, domain.ErrNoResults
	}
	return BuildContext(results), results, nil
}

// BuildContext renders ranked results as "[doc_id] text" lines separated
// by blank lines, in rank order.
func BuildContext(results []domain.SearchResult) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("[%s] %s", r.Payload.DocID, r.Payload.Text)
	}
	return strings.Join(parts, "\n\n")
}
