// Package embedding holds shared embedder behaviour; implementations live
// in sub-packages.
package embedding

// Preparer is implemented by embedders that need a pass over the corpus
// before they can produce vectors (e.g. TF-IDF vocabulary building).
// Remote embedders do not implement it.
type Preparer interface {
	Prepare(corpus []string) error
}

// Batches partitions n items into index ranges of at most size items.
// Embedding a batch in sub-batches must not change any vector, so callers
// concatenate results range by range in original order.
func Batches(n, size int) [][2]int {
	if size <= 0 {
		size = n
	}
	var out [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}
