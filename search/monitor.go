package search

import "github.com/poiesic/docfind/core"

// Monitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate scores during search.
type Monitor interface {
	Start(query string)
	AfterSemanticScores(sims []float32)
	AfterLexicalScores(scores []float64)
	AfterFusion(fused []float64)
	DefinitionBoost(chunk core.Chunk, before, after float64)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                             {}
func (n *noopMonitor) AfterSemanticScores(_ []float32)            {}
func (n *noopMonitor) AfterLexicalScores(_ []float64)             {}
func (n *noopMonitor) AfterFusion(_ []float64)                    {}
func (n *noopMonitor) DefinitionBoost(_ core.Chunk, _, _ float64) {}
func (n *noopMonitor) Finish(_ []core.SearchResult)               {}
