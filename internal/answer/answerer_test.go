package answer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// scriptedGenerator replays canned outcomes and records what it was sent.
type scriptedGenerator struct {
	replies []string
	errs    []error
	calls   int
	system  string
	user    string
}

func (g *scriptedGenerator) Generate(_ context.Context, system, user string) (string, error) {
	i := g.calls
	g.calls++
	g.system = system
	g.user = user
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.replies) {
		return g.replies[i], nil
	}
	return "", errors.New("unexpected call")
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("prompt carries question, context and grounding", func(t *testing.T) {
		gen := &scriptedGenerator{replies: []string{"the answer"}}
		got, err := New(gen).Answer(ctx, "What is X?", "[doc] X is Y.")
		require.NoError(t, err)
		assert.Equal(t, "the answer", got)
		assert.Contains(t, gen.user, "What is X?")
		assert.Contains(t, gen.user, "[doc] X is Y.")
		assert.Contains(t, gen.user, "Based ONLY on the Retrieved Context")
		assert.Contains(t, gen.system, "STRICTLY and EXCLUSIVELY")
		assert.Contains(t, gen.system, Fallback)
	})

	t.Run("one retry after a failed call", func(t *testing.T) {
		gen := &scriptedGenerator{
			errs:    []error{errors.New("boom"), nil},
			replies: []string{"", "recovered"},
		}
		got, err := New(gen).Answer(ctx, "Q?", "ctx")
		require.NoError(t, err)
		assert.Equal(t, "recovered", got)
		assert.Equal(t, 2, gen.calls)
	})

	t.Run("two failures surface as ErrServiceFailure", func(t *testing.T) {
		gen := &scriptedGenerator{errs: []error{errors.New("boom"), errors.New("boom")}}
		_, err := New(gen).Answer(ctx, "Q?", "ctx")
		assert.ErrorIs(t, err, domain.ErrServiceFailure)
	})
}
