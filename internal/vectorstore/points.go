// Package vectorstore holds vector index point construction; store
// implementations live in sub-packages.
package vectorstore

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// PointID derives a stable UUID from a chunk's identity. Re-ingesting an
// unchanged corpus reuses the same ids, so upserts overwrite instead of
// duplicating points.
func PointID(chunk domain.Chunk) string {
	name := fmt.Sprintf("%s|%s|%d", chunk.Source, chunk.DocID, chunk.ChunkID)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// BuildPoints pairs chunks with their vectors positionally. The payload
// carries the chunk fields verbatim.
func BuildPoints(chunks []domain.Chunk, vectors [][]float32) ([]domain.Point, error) {
	if len(chunks) != len(vectors) {
		return nil, errors.New("chunks and vectors length mismatch")
	}
	points := make([]domain.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = domain.Point{
			ID:     PointID(chunk),
			Vector: vectors[i],
			Payload: domain.Payload{
				Text:    chunk.Text,
				DocID:   chunk.DocID,
				ChunkID: chunk.ChunkID,
				Source:  chunk.Source,
			},
		}
	}
	return points, nil
}
