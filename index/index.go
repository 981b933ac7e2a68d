package index

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/core"
)

// defaultBatchSize is how many chunk texts go to the embedder per call.
const defaultBatchSize = 32

// Index is the dual retrieval index over one chunked corpus: unit-normalized
// semantic vectors plus BM25 term statistics, positionally aligned with the
// chunk sequence (array index is the chunk identity). An Index is immutable
// once built and safe for concurrent reads; any change to the corpus or the
// chunking parameters requires a full rebuild.
type Index struct {
	chunks   []core.Chunk
	lexical  *LexicalIndex
	semantic *SemanticIndex
}

// Chunks returns the indexed chunks in document order.
// Callers must not mutate the returned slice.
func (ix *Index) Chunks() []core.Chunk {
	return ix.chunks
}

// Lexical returns the BM25 side of the index.
func (ix *Index) Lexical() *LexicalIndex {
	return ix.lexical
}

// Semantic returns the embedding side of the index.
func (ix *Index) Semantic() *SemanticIndex {
	return ix.semantic
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	return len(ix.chunks)
}

// Builder constructs indexes from chunk sequences. Embedding dominates build
// latency, so chunk batches are embedded concurrently on a bounded worker
// pool; Build still blocks until the whole index is ready.
type Builder struct {
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder) error

// WithPoolSize sets the worker pool size for concurrent embedding batches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuilderOption {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithBatchSize sets how many chunk texts are embedded per provider call.
// Default is 32.
func WithBatchSize(size int) BuilderOption {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		b.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a new index builder around the given embedder handle.
// The embedder is created once by the caller and shared read-only.
func NewBuilder(embedder ai.Embedder, opts ...BuilderOption) (*Builder, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		embedder:  embedder,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			b.Release()
			return nil, err
		}
	}

	return b, nil
}

// Build embeds every chunk and assembles the dual index. It guarantees
// len(vectors) == len(lexical entries) == len(chunks) or fails.
// Zero chunks is an error: an index over nothing is a caller bug.
func (b *Builder) Build(ctx context.Context, chunks []core.Chunk) (*Index, error) {
	if len(chunks) == 0 {
		return nil, core.ErrEmptyIndex
	}

	b.logger.Info("building index", "chunks", len(chunks))
	start := time.Now()

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors := make([][]float32, len(texts))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for offset := 0; offset < len(texts); offset += b.batchSize {
		lo := offset
		hi := min(offset+b.batchSize, len(texts))

		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			batch, err := b.embedder.EmbedTexts(ctx, texts[lo:hi])
			if err != nil {
				fail(err)
				return
			}
			if len(batch) != hi-lo {
				fail(fmt.Errorf("%w: expected %d, received %d", ErrEmbeddingMismatch, hi-lo, len(batch)))
				return
			}
			copy(vectors[lo:hi], batch)
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		b.logger.Error("error embedding chunks", "err", firstErr)
		return nil, firstErr
	}

	idx := &Index{
		chunks:   chunks,
		lexical:  BuildLexicalIndex(chunks),
		semantic: BuildSemanticIndex(vectors),
	}

	b.logger.Info("index built", "chunks", idx.Len(), "elapsed", time.Since(start))
	return idx, nil
}

// Release releases the embedding worker pool.
// The builder should not be used after calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
