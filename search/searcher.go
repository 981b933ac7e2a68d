package search

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/poiesic/docfind/ai"
	"github.com/poiesic/docfind/core"
	"github.com/poiesic/docfind/index"
)

const (
	// definitionBoost multiplies the fused score of chunks that phrase a
	// definition of the query term; the result is capped at scoreCap.
	definitionBoost = 1.3
	scoreCap        = 1.0

	// minScore is the relevance floor: candidates scoring at or below it
	// are dropped regardless of rank.
	minScore = 0.1

	// candidateFactor widens the pre-boost cut to 3k so the definition
	// boost can promote chunks a plain top-k would have discarded.
	candidateFactor = 3
)

// Searcher ranks indexed chunks against free-text queries by fusing cosine
// similarity with normalized BM25 scores. A Searcher holds no mutable state
// and is safe for concurrent use once constructed.
type Searcher struct {
	index          *index.Index
	embedder       ai.Embedder
	semanticWeight float64
	lexicalWeight  float64
	logger         *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithWeights sets the fusion weights for the semantic and lexical signals.
// Defaults are 0.7 and 0.3. Weights must be non-negative; they need not sum
// to 1, though final scores are only guaranteed to stay within [0, 1] when
// they do not exceed it.
func WithWeights(semantic, lexical float64) Option {
	return func(s *Searcher) error {
		if semantic < 0 || lexical < 0 {
			return core.ErrInvalidWeight
		}
		s.semanticWeight = semantic
		s.lexicalWeight = lexical
		return nil
	}
}

// NewSearcher creates a new searcher over a built index. The embedder must
// be the same handle the index was built with, so query vectors live in the
// same space as the stored chunk vectors.
func NewSearcher(idx *index.Index, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		index:          idx,
		embedder:       embedder,
		semanticWeight: 0.7,
		lexicalWeight:  0.3,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search ranks the indexed chunks against the query and returns up to k
// results ordered by descending fused score.
func (s *Searcher) Search(ctx context.Context, query string, k int) ([]core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, k, nil)
}

// SearchWithMonitor ranks the indexed chunks against the query with
// monitoring. The monitor receives callbacks at each scoring stage.
//
// A query that is blank after trimming is an error; an index with zero
// chunks is not, and yields an empty result set. Results carry page 1 until
// a page locator annotates them.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, k int, monitor Monitor) ([]core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if k < 1 {
		return nil, core.ErrInvalidResultCount
	}

	monitor.Start(query)
	start := time.Now()

	if s.index.Len() == 0 {
		monitor.Finish(nil)
		return []core.SearchResult{}, nil
	}

	// Semantic side: embed the query and take cosine similarity with
	// every chunk vector.
	queryVec, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	sims := s.index.Semantic().Similarities(queryVec)
	monitor.AfterSemanticScores(sims)

	// Lexical side: raw BM25 scores, normalized to [0, 1] by the corpus
	// maximum. A zero maximum means no token overlap anywhere; the
	// lexical signal then contributes nothing.
	lexical := s.index.Lexical().Scores(index.Tokenize(query))
	monitor.AfterLexicalScores(lexical)

	maxLexical := 0.0
	for _, score := range lexical {
		if score > maxLexical {
			maxLexical = score
		}
	}
	if maxLexical > 0 {
		for i := range lexical {
			lexical[i] /= maxLexical
		}
	}

	// Weighted fusion, per chunk.
	fused := make([]float64, len(sims))
	for i := range fused {
		fused[i] = s.semanticWeight*float64(sims[i]) + s.lexicalWeight*lexical[i]
	}
	monitor.AfterFusion(fused)

	// Candidate pool: the 3k best fused scores, ties broken by original
	// chunk order so ranking is fully deterministic.
	order := make([]int, len(fused))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if fused[order[a]] != fused[order[b]] {
			return fused[order[a]] > fused[order[b]]
		}
		return order[a] < order[b]
	})
	if limit := candidateFactor * k; len(order) > limit {
		order = order[:limit]
	}

	chunks := s.index.Chunks()

	type candidate struct {
		chunk int
		score float64
	}
	candidates := make([]candidate, 0, len(order))
	for _, ci := range order {
		score := fused[ci]
		if isDefinitionChunk(chunks[ci].Text, query) {
			boosted := math.Min(score*definitionBoost, scoreCap)
			monitor.DefinitionBoost(chunks[ci], score, boosted)
			score = boosted
		}
		if score <= minScore {
			continue
		}
		candidates = append(candidates, candidate{chunk: ci, score: score})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].score != candidates[b].score {
			return candidates[a].score > candidates[b].score
		}
		return candidates[a].chunk < candidates[b].chunk
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	results := make([]core.SearchResult, len(candidates))
	for i, c := range candidates {
		results[i] = core.SearchResult{
			Chunk: chunks[c.chunk],
			Score: float32(c.score),
			Page:  1,
		}
	}

	s.logger.Info("search complete",
		"query", query,
		"results", len(results),
		"elapsed", time.Since(start),
	)
	monitor.Finish(results)

	return results, nil
}
