// Package memory provides a brute-force in-memory vector store.
package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Store keeps points in insertion order and ranks by exact cosine
// similarity. Used for offline runs and tests.
type Store struct {
	mu        sync.RWMutex
	dimension int
	points    []domain.Point
}

// NewStore creates an empty store; Init must be called before use.
func NewStore() *Store { return &Store{} }

// Init sets the dimension and discards any prior contents.
func (s *Store) Init(_ context.Context, dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.points = nil
	return nil
}

// Upsert appends points, replacing any stored point with the same id.
func (s *Store) Upsert(_ context.Context, points []domain.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range points {
		if len(p.Vector) != s.dimension {
			return fmt.Errorf("%w: point %s has %d, collection expects %d", domain.ErrDimensionMismatch, p.ID, len(p.Vector), s.dimension)
		}
	}
	for _, p := range points {
		replaced := false
		for i := range s.points {
			if s.points[i].ID == p.ID {
				s.points[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			s.points = append(s.points, p)
		}
	}
	return nil
}

// Search returns up to topK results by descending cosine similarity.
// Equal scores keep insertion order (stable sort over stored order).
func (s *Store) Search(_ context.Context, vector []float32, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(vector) != s.dimension {
		return nil, fmt.Errorf("%w: query has %d, collection expects %d", domain.ErrDimensionMismatch, len(vector), s.dimension)
	}
	if topK <= 0 {
		topK = 5
	}
	results := make([]domain.SearchResult, len(s.points))
	for i, p := range s.points {
		results[i] = domain.SearchResult{
			Score:   cosine(p.Vector, vector),
			Payload: p.Payload,
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

func cosine(a, b []float32) float32 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
