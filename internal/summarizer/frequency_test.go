package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtongg03/Base-RAG/internal/segment"
)

func newSummarizer(t *testing.T) *FrequencySummarizer {
	t.Helper()
	splitter, err := segment.NewSplitter()
	require.NoError(t, err)
	return NewFrequencySummarizer(splitter)
}

func TestSummarize(t *testing.T) {
	s := newSummarizer(t)

	t.Run("caps at max sentences", func(t *testing.T) {
		text := "Dogs bark loudly. Cats purr softly. Birds sing sweetly. Fish swim silently."
		got := s.Summarize(text, 2)
		assert.Len(t, strings.Split(got, ". "), 2)
	})

	t.Run("short text is returned whole", func(t *testing.T) {
		got := s.Summarize("Only one sentence here.", 5)
		assert.Equal(t, "Only one sentence here.", got)
	})

	t.Run("selected sentences keep original order", func(t *testing.T) {
		text := "Apples grow on trees. The weather changed. Apples taste like apples."
		got := s.Summarize(text, 2)
		first := strings.Index(got, "Apples grow")
		second := strings.Index(got, "Apples taste")
		assert.GreaterOrEqual(t, first, 0)
		assert.Greater(t, second, first)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, "", s.Summarize("   ", 3))
	})
}
