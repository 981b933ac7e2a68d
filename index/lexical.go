package index

import (
	"math"
	"strings"

	"github.com/poiesic/docfind/core"
)

// Okapi BM25 parameters. The ranker re-normalizes raw scores by the corpus
// maximum, so these affect relative ordering only.
const (
	bm25K1 = 1.5
	bm25B  = 0.75
)

// Tokenize lowercases text and splits it on whitespace. No stemming and no
// stopword removal: lexical scoring is intentionally tied to surface forms.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// LexicalIndex holds BM25 term statistics over the chunk collection,
// treating each chunk as one document of the corpus.
type LexicalIndex struct {
	termFreqs []map[string]int
	docFreqs  map[string]int
	docLens   []int
	avgDocLen float64
}

// BuildLexicalIndex tokenizes every chunk and accumulates the per-chunk term
// frequencies and corpus-wide document frequencies BM25 scoring needs.
func BuildLexicalIndex(chunks []core.Chunk) *LexicalIndex {
	idx := &LexicalIndex{
		termFreqs: make([]map[string]int, len(chunks)),
		docFreqs:  make(map[string]int),
		docLens:   make([]int, len(chunks)),
	}

	total := 0
	for i, chunk := range chunks {
		tokens := Tokenize(chunk.Text)
		tf := make(map[string]int, len(tokens))
		for _, token := range tokens {
			tf[token]++
		}
		idx.termFreqs[i] = tf
		idx.docLens[i] = len(tokens)
		total += len(tokens)
		for token := range tf {
			idx.docFreqs[token]++
		}
	}

	if len(chunks) > 0 {
		idx.avgDocLen = float64(total) / float64(len(chunks))
	}
	return idx
}

// Len returns the number of indexed chunks.
func (ix *LexicalIndex) Len() int {
	return len(ix.termFreqs)
}

// Scores returns one raw BM25 score per chunk for the query tokens.
// Raw scores are unbounded and only comparable within one corpus; callers
// normalize them before fusing with other signals.
//
// The idf variant is ln(1 + (N - df + 0.5)/(df + 0.5)), which stays
// non-negative for terms appearing in most chunks.
func (ix *LexicalIndex) Scores(tokens []string) []float64 {
	scores := make([]float64, len(ix.termFreqs))
	if ix.avgDocLen == 0 {
		return scores
	}

	n := float64(len(ix.termFreqs))
	for _, token := range tokens {
		df := ix.docFreqs[token]
		if df == 0 {
			continue
		}
		idf := math.Log(1 + (n-float64(df)+0.5)/(float64(df)+0.5))

		for i, tf := range ix.termFreqs {
			freq := float64(tf[token])
			if freq == 0 {
				continue
			}
			lengthNorm := 1 - bm25B + bm25B*float64(ix.docLens[i])/ix.avgDocLen
			scores[i] += idf * freq * (bm25K1 + 1) / (freq + bm25K1*lengthNorm)
		}
	}
	return scores
}
