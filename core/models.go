package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing, so identical content
// produces identical IDs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document holds one uploaded file's decoded text, as supplied by the
// external extraction collaborator. The text may contain [PAGE n] markers
// inserted at page boundaries in reading order. The engine only reads
// document text; it never mutates it.
type Document struct {
	Id         ID
	Name       string
	Text       string
	InsertedAt time.Time // When the document was added to the store
	UpdatedAt  time.Time // When the document was last replaced
}

// Chunk is a contiguous segment of the normalized corpus text and the atomic
// retrieval unit. Start and End are rune offsets [Start, End) into the
// normalized text, not into the raw marker-annotated text.
type Chunk struct {
	Text  string
	Start int
	End   int
}

// SearchResult is one ranked hit: the matched chunk, its fused relevance
// score in [0, 1], and the estimated source page (1-based, best effort).
type SearchResult struct {
	Chunk Chunk
	Score float32
	Page  int
}
