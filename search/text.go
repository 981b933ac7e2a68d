package search

import "strings"

// Definitional phrasings of a query term. A chunk containing any of them is
// very likely the passage that introduces or defines the term, so the ranker
// boosts it ahead of merely related text.
func definitionPatterns(query string) []string {
	q := strings.ToLower(query)
	return []string{
		q + " is",
		"definition of " + q,
		"what is " + q,
		q + " refers to",
		q + " means",
		q + ":",
	}
}

// isDefinitionChunk reports whether the chunk text contains a definitional
// phrasing of the query. Matching is case-insensitive and the query is
// substituted verbatim, without tokenization.
func isDefinitionChunk(text, query string) bool {
	lower := strings.ToLower(text)
	for _, pattern := range definitionPatterns(query) {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
