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

import (
	"fmt"
	"strings"
)

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated:
//   - Text (empty text is a legal degraded-extraction case; the ingest
//     pipeline skips such documents instead of failing the batch)
//   - ID (0 means "derive from content" at storage time)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentName)
	}

	return nil
}

// HasContent reports whether a document carries indexable text.
// Whitespace-only text counts as empty, matching the chunker's behavior.
func (d *Document) HasContent() bool {
	return strings.TrimSpace(d.Text) != ""
}
