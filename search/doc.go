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


// Package search implements hybrid ranking over a built retrieval index.
//
// The Searcher fuses two signals per chunk:
//
//   - Semantic: cosine similarity between the query embedding and the
//     chunk embedding
//   - Lexical: BM25 score normalized to [0, 1] by the corpus maximum
//
// The weighted combination (default 70/30) selects a candidate pool three
// times the requested size, a definition-pattern boost promotes chunks that
// phrase a definition of the query term, scores at or below the relevance
// floor are dropped, and the survivors are returned in descending score
// order with original chunk order as the deterministic tie-break.
//
// Searching is a pure function of (query, index, k): it holds no state
// between calls and never mutates the index.
package search
