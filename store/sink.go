package store

import (
	"context"
	"fmt"
	"log/slog"

	opensearchgo "github.com/opensearch-project/opensearch-go"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
	lcopensearch "github.com/tmc/langchaingo/vectorstores/opensearch"

	"github.com/halcyonlabs/textindex/ai"
	"github.com/halcyonlabs/textindex/core"
)

// VectorSink implements ingest.Sink over an OpenSearch vector index.
// The embedder and target index are fixed at construction; the sink is
// read-only state from the pipeline's perspective.
type VectorSink struct {
	store     lcopensearch.Store
	indexName string
	logger    *slog.Logger
}

// NewVectorSink creates a sink that embeds fragments with the given embedder
// and persists them into indexName.
func NewVectorSink(client *opensearchgo.Client, embedder ai.Embedder, indexName string) (*VectorSink, error) {
	st, err := lcopensearch.New(client, lcopensearch.WithEmbedder(embedderAdapter{embedder}))
	if err != nil {
		return nil, fmt.Errorf("create vector store: %w", err)
	}

	return &VectorSink{
		store:     st,
		indexName: indexName,
		logger:    slog.Default().With("component", "vector-sink"),
	}, nil
}

// Index embeds one batch of fragments and persists it. An error fails the
// batch's owning document; nothing indexed by earlier batches is undone.
func (s *VectorSink) Index(ctx context.Context, batch []core.Document) error {
	if len(batch) == 0 {
		return nil
	}

	s.logger.Debug("indexing batch", "index", s.indexName, "fragments", len(batch))

	_, err := s.store.AddDocuments(ctx, toSchemaDocuments(batch),
		vectorstores.WithNameSpace(s.indexName))
	if err != nil {
		return fmt.Errorf("index batch of %d fragments into %s: %w", len(batch), s.indexName, err)
	}

	return nil
}

// toSchemaDocuments converts pipeline fragments to langchaingo documents.
func toSchemaDocuments(batch []core.Document) []schema.Document {
	docs := make([]schema.Document, len(batch))
	for i, frag := range batch {
		docs[i] = schema.Document{
			PageContent: frag.Content,
			Metadata:    frag.Metadata,
		}
	}
	return docs
}

// embedderAdapter exposes an ai.Embedder as a langchaingo embeddings.Embedder.
type embedderAdapter struct {
	ai.Embedder
}

var _ embeddings.Embedder = embedderAdapter{}

func (a embedderAdapter) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return a.EmbedTexts(ctx, texts)
}

func (a embedderAdapter) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return a.EmbedText(ctx, text)
}
