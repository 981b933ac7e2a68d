package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docfind/core"
	"github.com/poiesic/docfind/storage"
)

// File is a named piece of source text to ingest.
type File struct {
	Name string
	Text string
}

// Pipeline orchestrates the ingestion of documents into the corpus.
// It reads source files concurrently and stores the extracted text.
type Pipeline struct {
	documents storage.DocumentRepository
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent file reading.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(documents storage.DocumentRepository, opts ...Option) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		pool:      pool,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest stores the given files as documents. Files whose text is empty or
// whitespace-only are logged and skipped; the rest of the batch proceeds.
// Returns the stored documents with IDs and timestamps populated.
func (p *Pipeline) Ingest(ctx context.Context, files ...File) ([]*core.Document, error) {
	docs := make([]*core.Document, 0, len(files))
	for _, f := range files {
		doc := &core.Document{Name: f.Name, Text: f.Text}
		if !doc.HasContent() {
			p.logger.Warn("skipping file with no extractable text", "name", f.Name)
			continue
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		p.logger.Info("nothing to ingest", "files", len(files))
		return nil, nil
	}

	added, err := p.documents.AddDocuments(ctx, docs...)
	if err != nil {
		return nil, err
	}

	p.logger.Info("documents ingested", "stored", len(added), "skipped", len(files)-len(added))
	return added, nil
}

// IngestPaths reads the files at the given paths concurrently and ingests
// their contents. Document names are the path base names. Any read failure
// fails the whole batch before anything is stored.
func (p *Pipeline) IngestPaths(ctx context.Context, paths ...string) ([]*core.Document, error) {
	files := make([]File, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			data, err := os.ReadFile(path)
			if err != nil {
				errs[i] = fmt.Errorf("reading %s: %w", path, err)
				return
			}
			files[i] = File{Name: filepath.Base(path), Text: string(data)}
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return p.Ingest(ctx, files...)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
