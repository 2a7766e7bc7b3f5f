package retriever

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtongg03/Base-RAG/internal/domain"
	"github.com/dtongg03/Base-RAG/internal/vectorstore/memory"
)

// fixedEmbedder returns a constant vector for any text.
type fixedEmbedder struct {
	vector []float32
}

func (e fixedEmbedder) Embed(context.Context, string) ([]float32, error) {
	return e.vector, nil
}

func (e fixedEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = e.vector
	}
	return out, nil
}

func (e fixedEmbedder) Dimension() int { return len(e.vector) }

func TestRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("empty collection signals no results", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, store.Init(ctx, 2))
		r := New(fixedEmbedder{vector: []float32{1, 0}}, store)
		_, _, err := r.Retrieve(ctx, "anything?", 3)
		assert.ErrorIs(t, err, domain.ErrNoResults)
	})

	t.Run("context is built from ranked payloads", func(t *testing.T) {
		store := memory.NewStore()
		require.NoError(t, store.Init(ctx, 2))
		require.NoError(t, store.Upsert(ctx, []domain.Point{
			{ID: "p1", Vector: []float32{1, 0}, Payload: domain.Payload{Text: "Best match.", DocID: "a", ChunkID: 0, Source: "a.txt"}},
			{ID: "p2", Vector: []float32{0, 1}, Payload: domain.Payload{Text: "Worse match.", DocID: "b", ChunkID: 0, Source: "b.txt"}},
		}))
		r := New(fixedEmbedder{vector: []float32{1, 0}}, store)
		contextText, results, err := r.Retrieve(ctx, "which?", 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "[a] Best match.\n\n[b] Worse match.", contextText)
	})
}

func TestBuildContext(t *testing.T) {
	got := BuildContext([]domain.SearchResult{
		{Score: 0.9, Payload: domain.Payload{DocID: "lecture1", Text: "First line."}},
		{Score: 0.5, Payload: domain.Payload{DocID: "lecture2", Text: "Second line."}},
	})
	assert.Equal(t, "[lecture1] First line.\n\n[lecture2] Second line.", got)
}
