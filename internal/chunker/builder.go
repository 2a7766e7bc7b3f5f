// Package chunker converts loaded documents into sentence-level chunks.
package chunker

import (
	"github.com/dtongg03/Base-RAG/internal/domain"
	"github.com/dtongg03/Base-RAG/internal/segment"
)

// Builder assigns stable chunk identities to the sentences of each document.
type Builder struct {
	splitter *segment.Splitter
}

// NewBuilder creates a chunk builder using the given sentence splitter.
func NewBuilder(splitter *segment.Splitter) *Builder {
	return &Builder{splitter: splitter}
}

// Build produces one chunk per sentence, in document order then sentence
// order. Chunk ids are dense and sequential within each document: empty
// sentences are dropped by the splitter before numbering, so the ids have
// no gaps. Deterministic for a fixed document list.
func (b *Builder) Build(docs []domain.Document) []domain.Chunk {
	var chunks []domain.Chunk
	for _, doc := range docs {
		for i, sentence := range b.splitter.Split(doc.Text) {
			chunks = append(chunks, domain.Chunk{
				DocID:   doc.ID,
				ChunkID: i,
				Text:    sentence,
				Source:  doc.Source,
			})
		}
	}
	return chunks
}
