package bedrock

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/halcyonlabs/textindex/ai"
	"github.com/tmc/langchaingo/embeddings"
	lcbedrock "github.com/tmc/langchaingo/embeddings/bedrock"
)

// Embedder implements ai.Embedder using Bedrock embedding models.
type Embedder struct {
	embedder embeddings.Embedder
	logger   *slog.Logger
}

// newEmbedder is an internal constructor that returns the concrete type.
func newEmbedder(client *bedrockruntime.Client, modelID string) (*Embedder, error) {
	embedder, err := lcbedrock.NewBedrock(
		lcbedrock.WithClient(client),
		lcbedrock.WithModel(modelID),
		lcbedrock.WithStripNewLines(true),
	)
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder: embedder,
		logger:   slog.Default().With("component", "bedrock-embedder"),
	}, nil
}

// NewEmbedder creates an embedder backed by the given Bedrock runtime client
// and embedding model.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(client *bedrockruntime.Client, modelID string) (ai.Embedder, error) {
	return newEmbedder(client, modelID)
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("generating embedding for single text", "length", len(text))

	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}

	if len(vectors) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float32{}, nil
	}

	return vectors[0], nil
}

// EmbedTexts generates vector embeddings for multiple text strings in a batch.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts))

	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	return vectors, nil
}
