package tfidf

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"The cat sat on the mat.",
	"Dogs chase cats around the yard.",
	"Máy tính xử lý văn bản tiếng Việt.",
}

func prepared(t *testing.T) *Embedder {
	t.Helper()
	e := NewEmbedder()
	require.NoError(t, e.Prepare(corpus))
	return e
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func TestEmbedder(t *testing.T) {
	ctx := context.Background()

	t.Run("requires prepare", func(t *testing.T) {
		_, err := NewEmbedder().Embed(ctx, "anything")
		assert.Error(t, err)
	})

	t.Run("empty corpus is an error", func(t *testing.T) {
		assert.Error(t, NewEmbedder().Prepare(nil))
	})

	t.Run("dimension matches vocabulary", func(t *testing.T) {
		e := prepared(t)
		vec, err := e.Embed(ctx, corpus[0])
		require.NoError(t, err)
		assert.Equal(t, e.Dimension(), len(vec))
		assert.Greater(t, e.Dimension(), 0)
	})

	t.Run("deterministic with self-similarity one", func(t *testing.T) {
		e := prepared(t)
		first, err := e.Embed(ctx, corpus[1])
		require.NoError(t, err)
		second, err := e.Embed(ctx, corpus[1])
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.InDelta(t, 1.0, cosine(first, second), 1e-6)
	})

	t.Run("batch equals individual embeds", func(t *testing.T) {
		e := prepared(t)
		batch, err := e.EmbedBatch(ctx, corpus)
		require.NoError(t, err)
		require.Len(t, batch, len(corpus))
		for i, text := range corpus {
			single, err := e.Embed(ctx, text)
			require.NoError(t, err)
			assert.Equal(t, single, batch[i])
		}
	})

	t.Run("out of vocabulary text embeds to zero vector", func(t *testing.T) {
		e := prepared(t)
		vec, err := e.Embed(ctx, "zzzzole frumious bandersnatch")
		require.NoError(t, err)
		for _, v := range vec {
			assert.Zero(t, v)
		}
	})
}
