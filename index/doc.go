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


// Package index implements text segmentation and the dual retrieval index.
//
// The pipeline is: raw corpus text -> Split (overlapping, sentence-aware
// chunks over whitespace-normalized text) -> Builder.Build, which embeds the
// chunks through the injected ai.Embedder and assembles two positionally
// aligned structures:
//
//   - LexicalIndex: BM25 Okapi term statistics over chunk tokens
//   - SemanticIndex: unit-normalized embedding vectors for cosine similarity
//
// Alignment is by array index; a chunk has no identity beyond its position
// and text. The built Index is immutable and safe for concurrent readers.
// There are no incremental updates: changing the corpus, the chunk size, or
// the overlap discards the index wholesale and rebuilds it.
package index
