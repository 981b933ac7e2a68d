package index

import "math"

// normEpsilon keeps degenerate all-zero embeddings finite instead of
// dividing by zero during normalization.
const normEpsilon = 1e-10

// NormalizeVector returns a copy of v scaled to unit L2 norm.
func NormalizeVector(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum) + normEpsilon

	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// SemanticIndex holds unit-normalized chunk embeddings, positionally aligned
// with the chunk sequence they were computed from. Because both sides are
// unit vectors, a dot product against a normalized query vector is the
// cosine similarity, bounded by [-1, 1].
type SemanticIndex struct {
	vectors [][]float32
}

// BuildSemanticIndex normalizes the externally computed embeddings, where
// vectors[i] is the embedding for chunk i.
func BuildSemanticIndex(vectors [][]float32) *SemanticIndex {
	normalized := make([][]float32, len(vectors))
	for i, v := range vectors {
		normalized[i] = NormalizeVector(v)
	}
	return &SemanticIndex{vectors: normalized}
}

// Len returns the number of indexed vectors.
func (ix *SemanticIndex) Len() int {
	return len(ix.vectors)
}

// Similarities normalizes the query vector and returns its cosine similarity
// with every stored vector, in chunk order. Related text typically scores
// non-negative, but callers must tolerate the full [-1, 1] range.
func (ix *SemanticIndex) Similarities(query []float32) []float32 {
	q := NormalizeVector(query)
	sims := make([]float32, len(ix.vectors))
	for i, v := range ix.vectors {
		sims[i] = dotProduct(q, v)
	}
	return sims
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
