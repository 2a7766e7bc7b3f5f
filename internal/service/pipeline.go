// Package service orchestrates the ingestion and question-answering flows.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dtongg03/Base-RAG/internal/answer"
	"github.com/dtongg03/Base-RAG/internal/chunker"
	"github.com/dtongg03/Base-RAG/internal/domain"
	"github.com/dtongg03/Base-RAG/internal/embedding"
	"github.com/dtongg03/Base-RAG/internal/extract"
	"github.com/dtongg03/Base-RAG/internal/retriever"
	"github.com/dtongg03/Base-RAG/internal/summarizer"
	"github.com/dtongg03/Base-RAG/internal/vectorstore"
)

// Pipeline wires the extraction, chunking, embedding, indexing, retrieval
// and answering stages. All collaborators are injected; the pipeline holds
// no global state.
type Pipeline struct {
	registry   map[string]extract.Extractor
	builder    *chunker.Builder
	embedder   domain.Embedder
	store      domain.VectorStore
	retriever  *retriever.Retriever
	answerer   *answer.Answerer
	summarizer *summarizer.FrequencySummarizer
	topK       int
}

// Options bundles the pipeline's collaborators.
type Options struct {
	Registry   map[string]extract.Extractor
	Builder    *chunker.Builder
	Embedder   domain.Embedder
	Store      domain.VectorStore
	Answerer   *answer.Answerer
	Summarizer *summarizer.FrequencySummarizer
	TopK       int
}

// NewPipeline assembles a pipeline from the given collaborators.
func NewPipeline(opts Options) *Pipeline {
	if opts.Registry == nil {
		opts.Registry = extract.DefaultRegistry()
	}
	if opts.TopK <= 0 {
		opts.TopK = 3
	}
	return &Pipeline{
		registry:   opts.Registry,
		builder:    opts.Builder,
		embedder:   opts.Embedder,
		store:      opts.Store,
		retriever:  retriever.New(opts.Embedder, opts.Store),
		answerer:   opts.Answerer,
		summarizer: opts.Summarizer,
		topK:       opts.TopK,
	}
}

// IngestReport describes one ingestion run.
type IngestReport struct {
	Documents int
	Chunks    int
	Summary   string
	Failures  []domain.ExtractionFailure
}

// Ingest loads every supported file under root, chunks it into sentences,
// embeds the chunks and rebuilds the vector collection. Per-file extraction
// failures are reported, not fatal; an unreachable embedding backend is.
func (p *Pipeline) Ingest(ctx context.Context, root string) (*IngestReport, error) {
	docs, failures, err := extract.LoadDocuments(root, p.registry)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	report := &IngestReport{Documents: len(docs), Failures: failures}

	chunks := p.builder.Build(docs)
	report.Chunks = len(chunks)
	if len(chunks) == 0 {
		return report, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	if prep, ok := p.embedder.(embedding.Preparer); ok {
		if err := prep.Prepare(texts); err != nil {
			return nil, fmt.Errorf("prepare embedder: %w", err)
		}
	}
	vectors, err := p.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed corpus: %w", err)
	}
	if err := p.store.Init(ctx, p.embedder.Dimension()); err != nil {
		return nil, fmt.Errorf("init collection: %w", err)
	}
	points, err := vectorstore.BuildPoints(chunks, vectors)
	if err != nil {
		return nil, err
	}
	if err := p.store.Upsert(ctx, points); err != nil {
		return nil, fmt.Errorf("upsert points: %w", err)
	}

	if p.summarizer != nil {
		var all strings.Builder
		for _, d := range docs {
			all.WriteString(d.Text)
			all.WriteString("\n")
		}
		report.Summary = p.summarizer.Summarize(all.String(), 5)
	}
	return report, nil
}

// Reply is the outcome of one question.
type Reply struct {
	Answer  string
	Context string
	Results []domain.SearchResult
}

// Ask retrieves context for the question and asks the language model.
// When nothing relevant is indexed the fixed fallback sentence is returned
// without calling the model.
func (p *Pipeline) Ask(ctx context.Context, question string, topK int) (*Reply, error) {
	if topK <= 0 {
		topK = p.topK
	}
	contextText, results, err := p.retriever.Retrieve(ctx, question, topK)
	if errors.Is(err, domain.ErrNoResults) {
		return &Reply{Answer: answer.Fallback}, nil
	}
	if err != nil {
		return nil, err
	}
	text, err := p.answerer.Answer(ctx, question, contextText)
	if err != nil {
		return nil, err
	}
	return &Reply{Answer: text, Context: contextText, Results: results}, nil
}
