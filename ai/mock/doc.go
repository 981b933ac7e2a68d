// Package mock provides a test double implementation of the ai.Embedder interface.
//
// The mock allows tests to run without an external embedding service and
// enables controlled, deterministic behavior: by default the same text
// always hashes to the same vector, so similarity relationships between
// fixed inputs are stable across runs.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	embedder := mock.NewEmbedder()
//	vectors, err := embedder.EmbedTexts(ctx, []string{"test"})
//
//	// Custom behavior injection
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := embedder.CallCount()
package mock
