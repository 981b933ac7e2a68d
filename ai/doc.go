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


// Package ai provides the embedding abstraction used by docfind.
//
// The retrieval engine treats the embedding model as an opaque function
// from text to fixed-length vectors. This package defines that boundary
// as the Embedder interface, letting the index and search layers depend
// on an abstraction rather than a concrete model client.
//
// # Implementation Packages
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Deterministic test double for unit testing without a model
//
// Public constructors (openai.NewEmbedder) return the INTERFACE type to
// enforce abstraction. The mock constructor (mock.NewEmbedder) returns the
// CONCRETE type so tests can inject behavior and assert call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithEmbeddingModel("text-embedding-3-small"))
//	embedder, err := openai.NewEmbedder(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vectors, err := embedder.EmbedTexts(ctx, []string{"hello", "world"})
//
// The Embedder handle is created once and shared read-only across index
// builds and searches; it is never loaded implicitly through a singleton.
package ai
