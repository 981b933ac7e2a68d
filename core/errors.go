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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyDocumentName indicates the document Name field is empty.
	ErrEmptyDocumentName = errors.New("document name cannot be empty")

	// ErrEmptyIndex indicates an attempt to build an index from zero chunks.
	ErrEmptyIndex = errors.New("no chunks to index")

	// ErrInvalidChunkSize indicates a non-positive chunk size.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidOverlap indicates an overlap outside [0, chunk size).
	ErrInvalidOverlap = errors.New("overlap must be non-negative and smaller than chunk size")

	// ErrInvalidResultCount indicates a result count below 1.
	ErrInvalidResultCount = errors.New("result count must be at least 1")

	// ErrInvalidWeight indicates a negative fusion weight.
	ErrInvalidWeight = errors.New("fusion weights must be non-negative")
)
