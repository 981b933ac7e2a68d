package index

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/docfind/ai/mock"
	"github.com/poiesic/docfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilder(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		builder, err := NewBuilder(mock.NewEmbedder())
		require.NoError(t, err)
		defer builder.Release()
		assert.NotNil(t, builder)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewBuilder(nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})

	t.Run("with options", func(t *testing.T) {
		builder, err := NewBuilder(mock.NewEmbedder(), WithPoolSize(2), WithBatchSize(4), WithLogger(nil))
		require.NoError(t, err)
		defer builder.Release()
		assert.NotNil(t, builder)
	})
}

func TestBuilder_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("empty chunks", func(t *testing.T) {
		builder, err := NewBuilder(mock.NewEmbedder())
		require.NoError(t, err)
		defer builder.Release()

		_, err = builder.Build(ctx, nil)
		assert.ErrorIs(t, err, core.ErrEmptyIndex)
	})

	t.Run("aligned sides", func(t *testing.T) {
		builder, err := NewBuilder(mock.NewEmbedder())
		require.NoError(t, err)
		defer builder.Release()

		chunks := chunksFromTexts("alpha", "beta", "gamma")
		idx, err := builder.Build(ctx, chunks)
		require.NoError(t, err)

		assert.Equal(t, 3, idx.Len())
		assert.Equal(t, 3, idx.Lexical().Len())
		assert.Equal(t, 3, idx.Semantic().Len())
		assert.Equal(t, chunks, idx.Chunks())
	})

	t.Run("batching preserves order", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		builder, err := NewBuilder(embedder, WithBatchSize(2), WithPoolSize(3))
		require.NoError(t, err)
		defer builder.Release()

		texts := []string{"one", "two", "three", "four", "five"}
		idx, err := builder.Build(ctx, chunksFromTexts(texts...))
		require.NoError(t, err)
		require.Equal(t, len(texts), idx.Len())

		// Each stored vector must match the deterministic embedding of
		// the chunk at the same position: self-similarity is exactly 1.
		for i, text := range texts {
			sims := idx.Semantic().Similarities(mock.DeterministicVector(text, 384))
			assert.InDelta(t, 1.0, float64(sims[i]), 1e-4, "chunk %d (%q) misaligned", i, text)
		}
		// More texts than the batch size forces several pool submissions.
		assert.GreaterOrEqual(t, embedder.CallCount(), 3)
	})

	t.Run("embedder failure", func(t *testing.T) {
		embedErr := errors.New("provider unavailable")
		embedder := mock.NewEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, embedErr
		}

		builder, err := NewBuilder(embedder)
		require.NoError(t, err)
		defer builder.Release()

		_, err = builder.Build(ctx, chunksFromTexts("alpha"))
		assert.ErrorIs(t, err, embedErr)
	})

	t.Run("embedding count mismatch", func(t *testing.T) {
		embedder := mock.NewEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{0.1, 0.2}}, nil
		}

		builder, err := NewBuilder(embedder)
		require.NoError(t, err)
		defer builder.Release()

		_, err = builder.Build(ctx, chunksFromTexts("alpha", "beta"))
		assert.ErrorIs(t, err, ErrEmbeddingMismatch)
	})
}

func TestBuilder_BuildFromSplit(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 30)
	chunks, err := Split(text, 120, 30)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	builder, err := NewBuilder(mock.NewEmbedder())
	require.NoError(t, err)
	defer builder.Release()

	idx, err := builder.Build(context.Background(), chunks)
	require.NoError(t, err)
	assert.Equal(t, len(chunks), idx.Len())
}
