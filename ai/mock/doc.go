// Package mock provides a test double implementation of ai.Embedder.
//
// MockEmbedder runs without any AWS dependency and produces deterministic
// vectors by default, so tests over the pipeline and store layers stay
// repeatable. Custom behavior is injected through function fields:
//
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
//	    return nil, errors.New("service unavailable")
//	}
package mock
