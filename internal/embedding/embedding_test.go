package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatches(t *testing.T) {
	t.Run("even split", func(t *testing.T) {
		assert.Equal(t, [][2]int{{0, 2}, {2, 4}}, Batches(4, 2))
	})

	t.Run("remainder batch", func(t *testing.T) {
		assert.Equal(t, [][2]int{{0, 3}, {3, 5}}, Batches(5, 3))
	})

	t.Run("size larger than n", func(t *testing.T) {
		assert.Equal(t, [][2]int{{0, 2}}, Batches(2, 10))
	})

	t.Run("zero size means one batch", func(t *testing.T) {
		assert.Equal(t, [][2]int{{0, 3}}, Batches(3, 0))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Batches(0, 4))
	})
}
