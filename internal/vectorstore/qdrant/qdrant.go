// Package qdrant provides a vector store backed by a Qdrant server.
package qdrant

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/dtongg03/Base-RAG/internal/domain"
)

// Store talks to Qdrant over gRPC. Collections use cosine distance.
type Store struct {
	client     *qdrant.Client
	collection string
	dimension  int
	timeout    time.Duration
}

// Config contains connection details for a Qdrant server. Any API key is
// read from the environment variable named by APIKeyEnv.
type Config struct {
	Host       string
	Port       int
	APIKeyEnv  string
	Collection string
	Timeout    time.Duration
}

// NewStore connects to Qdrant using the provided configuration.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 6334
	}
	if cfg.Collection == "" {
		cfg.Collection = "documents"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	var apiKey string
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("connect qdrant: %w", err)
	}
	return &Store{client: client, collection: cfg.Collection, timeout: cfg.Timeout}, nil
}

// Init recreates the collection for the given dimension. Destructive by
// contract: any prior contents under the same name are dropped.
func (s *Store) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		if err := s.client.DeleteCollection(ctx, s.collection); err != nil {
			return fmt.Errorf("drop collection: %w", err)
		}
	}
	if err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: &qdrant.VectorsConfig{
			Config: &qdrant.VectorsConfig_Params{
				Params: &qdrant.VectorParams{
					Size:     uint64(dimension),
					Distance: qdrant.Distance_Cosine,
				},
			},
		},
	}); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	s.dimension = dimension
	return nil
}

// Upsert writes the points, overwriting any with the same id.
func (s *Store) Upsert(ctx context.Context, points []domain.Point) error {
	pts := make([]*qdrant.PointStruct, len(points))
	for i, p := range points {
		if s.dimension != 0 && len(p.Vector) != s.dimension {
			return fmt.Errorf("%w: point %s has %d, collection expects %d", domain.ErrDimensionMismatch, p.ID, len(p.Vector), s.dimension)
		}
		pts[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":     p.Payload.Text,
				"doc_id":   p.Payload.DocID,
				"chunk_id": int64(p.Payload.ChunkID),
				"source":   p.Payload.Source,
			}),
		}
	}
	wait := true
	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         pts,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("upsert points: %w", err)
	}
	return nil
}

// Search returns up to topK results ranked by descending cosine similarity.
func (s *Store) Search(ctx context.Context, vector []float32, topK int) ([]domain.SearchResult, error) {
	if s.dimension != 0 && len(vector) != s.dimension {
		return nil, fmt.Errorf("%w: query has %d, collection expects %d", domain.ErrDimensionMismatch, len(vector), s.dimension)
	}
	if topK <= 0 {
		topK = 5
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	limit := uint64(topK)
	resp, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	results := make([]domain.SearchResult, 0, len(resp))
	for _, r := range resp {
		results = append(results, domain.SearchResult{
			Score:   r.Score,
			Payload: payloadFrom(r.Payload),
		})
	}
	return results, nil
}

// Close releases the underlying gRPC connection.
func (s *Store) Close() error { return s.client.Close() }

func payloadFrom(fields map[string]*qdrant.Value) domain.Payload {
	var p domain.Payload
	if v, ok := fields["text"]; ok {
		p.Text = v.GetStringValue()
	}
	if v, ok := fields["doc_id"]; ok {
		p.DocID = v.GetStringValue()
	}
	if v, ok := fields["chunk_id"]; ok {
		p.ChunkID = int(v.GetIntegerValue())
	}
	if v, ok := fields["source"]; ok {
		p.Source = v.GetStringValue()
	}
	return p
}
