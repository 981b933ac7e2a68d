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


package core

import "fmt"

// Config holds the retrieval engine parameter set. A Config is treated as
// immutable once an index has been built from it: changing chunking
// parameters invalidates the whole index, which must be rebuilt from scratch.
type Config struct {
	// ChunkSize is the target chunk length in characters.
	// Default: 500. Recommended range: 300-1500.
	ChunkSize int

	// Overlap is how many characters consecutive chunks share.
	// Must be smaller than ChunkSize. Default: 150. Recommended range: 0-200.
	Overlap int

	// TopK is the maximum number of results returned per search.
	// Default: 5. Recommended range: 1-10.
	TopK int

	// SemanticWeight scales the cosine-similarity signal during fusion.
	// Default: 0.7.
	SemanticWeight float64

	// LexicalWeight scales the normalized BM25 signal during fusion.
	// Default: 0.3.
	LexicalWeight float64
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithChunkSize sets the target chunk length in characters.
func WithChunkSize(size int) ConfigOption {
	return func(c *Config) {
		c.ChunkSize = size
	}
}

// WithOverlap sets the character overlap between consecutive chunks.
func WithOverlap(overlap int) ConfigOption {
	return func(c *Config) {
		c.Overlap = overlap
	}
}

// WithTopK sets the maximum number of results per search.
func WithTopK(k int) ConfigOption {
	return func(c *Config) {
		c.TopK = k
	}
}

// WithWeights sets the semantic and lexical fusion weights.
// The weights need not sum to 1.
func WithWeights(semantic, lexical float64) ConfigOption {
	return func(c *Config) {
		c.SemanticWeight = semantic
		c.LexicalWeight = lexical
	}
}

// DefaultConfig returns a Config with the reference parameter set:
// 500-character chunks, 150 overlap, 5 results, 70/30 semantic/lexical split.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:      500,
		Overlap:        150,
		TopK:           5,
		SemanticWeight: 0.7,
		LexicalWeight:  0.3,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := core.NewConfig(
//	    core.WithChunkSize(800),
//	    core.WithTopK(10),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidChunkSize, c.ChunkSize)
	}
	if c.Overlap < 0 || c.Overlap >= c.ChunkSize {
		return fmt.Errorf("%w: got %d with chunk size %d", ErrInvalidOverlap, c.Overlap, c.ChunkSize)
	}
	if c.TopK < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidResultCount, c.TopK)
	}
	if c.SemanticWeight < 0 || c.LexicalWeight < 0 {
		return fmt.Errorf("%w: got semantic=%v lexical=%v", ErrInvalidWeight, c.SemanticWeight, c.LexicalWeight)
	}
	return nil
}
