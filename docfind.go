// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package docfind is a hybrid document retrieval engine. Documents are
// stored durably; the retrieval index (BM25 plus embeddings) is rebuilt
// in memory from the stored corpus whenever it goes stale.
package docfind

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/ai/openai"
	"github.com/poiesic/docfind/core"
	"github.com/poiesic/docfind/index"
	"github.com/poiesic/docfind/ingest"
	"github.com/poiesic/docfind/pages"
	"github.com/poiesic/docfind/search"
	"github.com/poiesic/docfind/storage"
	"github.com/poiesic/docfind/storage/badger"
)

// Finder ties the corpus store, the index builder, and the hybrid searcher
// together behind one handle. It is safe for concurrent use.
type Finder struct {
	backend   *badger.Backend
	documents storage.DocumentRepository
	pipeline  *ingest.Pipeline
	embedder  ai.Embedder
	config    *core.Config
	builder   *index.Builder
	logger    *slog.Logger

	mu       sync.Mutex
	locator  *pages.Locator
	searcher *search.Searcher
	stale    bool
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	aiConfig *ai.Config
	config   *core.Config
	embedder ai.Embedder
	inMemory bool
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(cfg *ai.Config) FinderOption {
	return func(o *finderOptions) {
		o.aiConfig = cfg
	}
}

// WithConfig sets the retrieval parameter set (chunking, weights, result count).
func WithConfig(cfg *core.Config) FinderOption {
	return func(o *finderOptions) {
		o.config = cfg
	}
}

// WithEmbedder injects a pre-built embedder, bypassing the AI config.
// Primarily useful for tests.
func WithEmbedder(embedder ai.Embedder) FinderOption {
	return func(o *finderOptions) {
		o.embedder = embedder
	}
}

// WithInMemoryStorage keeps the document store in memory instead of on disk.
// Nothing survives Close.
func WithInMemoryStorage() FinderOption {
	return func(o *finderOptions) {
		o.inMemory = true
	}
}

// NewFinder opens (or creates) a finder backed by the database at filePath.
func NewFinder(filePath string, opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{
		aiConfig: ai.DefaultConfig(),
		config:   core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	documents, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			documents.Close()
			backend.Close()
			return nil, err
		}
	}

	builder, err := index.NewBuilder(embedder)
	if err != nil {
		documents.Close()
		backend.Close()
		return nil, err
	}

	pipeline, err := ingest.NewPipeline(documents)
	if err != nil {
		builder.Release()
		documents.Close()
		backend.Close()
		return nil, err
	}

	return &Finder{
		backend:   backend,
		documents: documents,
		pipeline:  pipeline,
		embedder:  embedder,
		config:    options.config,
		builder:   builder,
		logger:    slog.Default(),
		stale:     true,
	}, nil
}

// Close releases worker pools and closes the document store.
func (f *Finder) Close() error {
	f.pipeline.Release()
	f.builder.Release()

	if err := f.documents.Close(); err != nil {
		f.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := f.backend.Close(); err != nil {
		f.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Documents exposes the underlying document repository.
func (f *Finder) Documents() storage.DocumentRepository {
	return f.documents
}

// Config returns the retrieval parameter set the finder was built with.
func (f *Finder) Config() *core.Config {
	return f.config
}

// Ingest stores the given files as documents and marks the index stale.
// Files with no extractable text are skipped.
func (f *Finder) Ingest(ctx context.Context, files ...ingest.File) ([]*core.Document, error) {
	docs, err := f.pipeline.Ingest(ctx, files...)
	if err != nil {
		return nil, err
	}
	f.markStale()
	return docs, nil
}

// IngestPaths reads the files at the given paths and ingests their contents.
func (f *Finder) IngestPaths(ctx context.Context, paths ...string) ([]*core.Document, error) {
	docs, err := f.pipeline.IngestPaths(ctx, paths...)
	if err != nil {
		return nil, err
	}
	f.markStale()
	return docs, nil
}

// Delete removes documents by ID and marks the index stale.
func (f *Finder) Delete(ctx context.Context, ids ...core.ID) error {
	if err := f.documents.DeleteDocuments(ctx, ids...); err != nil {
		return err
	}
	f.markStale()
	return nil
}

func (f *Finder) markStale() {
	f.mu.Lock()
	f.stale = true
	f.mu.Unlock()
}

// Refresh rebuilds the in-memory index from the stored corpus: documents are
// concatenated in insertion order, chunked, and embedded. An empty corpus
// leaves the finder searchable with zero results.
func (f *Finder) Refresh(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshLocked(ctx)
}

func (f *Finder) refreshLocked(ctx context.Context) error {
	docs, err := f.documents.ListDocuments(ctx)
	if err != nil {
		return err
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	corpus := strings.Join(texts, "\n")

	chunks, err := index.Split(corpus, f.config.ChunkSize, f.config.Overlap)
	if err != nil {
		return err
	}

	if len(chunks) == 0 {
		f.locator = nil
		f.searcher = nil
		f.stale = false
		f.logger.Info("index refreshed", "documents", len(docs), "chunks", 0)
		return nil
	}

	idx, err := f.builder.Build(ctx, chunks)
	if err != nil {
		return err
	}

	searcher, err := search.NewSearcher(idx, f.embedder,
		search.WithWeights(f.config.SemanticWeight, f.config.LexicalWeight),
		search.WithLogger(f.logger),
	)
	if err != nil {
		return err
	}

	// Chunk offsets refer to the normalized corpus, so the locator must
	// scan the same form.
	f.locator = pages.NewLocator(index.Normalize(corpus))
	f.searcher = searcher
	f.stale = false

	f.logger.Info("index refreshed", "documents", len(docs), "chunks", idx.Len())
	return nil
}

// Search ranks the corpus against the query and returns up to k results,
// each annotated with its estimated source page. k < 1 falls back to the
// configured TopK. The index is rebuilt first if the corpus changed since
// the last search.
func (f *Finder) Search(ctx context.Context, query string, k int) ([]core.SearchResult, error) {
	if k < 1 {
		k = f.config.TopK
	}

	f.mu.Lock()
	if f.stale {
		if err := f.refreshLocked(ctx); err != nil {
			f.mu.Unlock()
			return nil, err
		}
	}
	searcher, locator := f.searcher, f.locator
	f.mu.Unlock()

	if searcher == nil {
		if strings.TrimSpace(query) == "" {
			return nil, search.ErrEmptyQuery
		}
		return []core.SearchResult{}, nil
	}

	results, err := searcher.Search(ctx, query, k)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Page = locator.Estimate(results[i].Chunk.Text)
	}
	return results, nil
}
