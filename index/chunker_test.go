package index

import (
	"strings"
	"testing"

	"github.com/poiesic/docfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_Validation(t *testing.T) {
	t.Run("zero size", func(t *testing.T) {
		_, err := Split("some text", 0, 0)
		assert.ErrorIs(t, err, core.ErrInvalidChunkSize)
	})

	t.Run("negative overlap", func(t *testing.T) {
		_, err := Split("some text", 100, -1)
		assert.ErrorIs(t, err, core.ErrInvalidOverlap)
	})

	t.Run("overlap equal to size", func(t *testing.T) {
		_, err := Split("some text", 100, 100)
		assert.ErrorIs(t, err, core.ErrInvalidOverlap)
	})
}

func TestSplit_EmptyText(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		chunks, err := Split("", 100, 10)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("whitespace only", func(t *testing.T) {
		chunks, err := Split("  \n\t  \n ", 100, 10)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})
}

func TestSplit_ShortText(t *testing.T) {
	chunks, err := Split("Just one short sentence.", 500, 150)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Just one short sentence.", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, 24, chunks[0].End)
}

func TestSplit_NormalizesWhitespace(t *testing.T) {
	chunks, err := Split("hello\n\n  world\tagain", 100, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world again", chunks[0].Text)
}

func TestSplit_SentenceBoundary(t *testing.T) {
	// The hard cut would land mid-word inside the second sentence; the
	// chunker must back up and break right after "energy." instead.
	text := "Photosynthesis is the process plants use to convert light into energy. Cats are mammals that sleep most of the day."

	chunks, err := Split(text, 80, 10)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	assert.Equal(t, "Photosynthesis is the process plants use to convert light into energy.", chunks[0].Text)
	assert.Equal(t, 70, chunks[0].End, "break position is just after the terminator")
}

func TestSplit_HardCutFallback(t *testing.T) {
	// No sentence terminator within the lookback window: keep the
	// character-count cut instead of scanning further back.
	text := "Photosynthesis is the process plants use to convert light into energy. Cats are mammals that sleep most of the day."

	chunks, err := Split(text, 60, 10)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	assert.Equal(t, 60, chunks[0].End, "terminator at offset 69 is outside the window, expect hard cut")
}

func TestSplit_Coverage(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta. ", 40)
	size, overlap := 100, 20

	chunks, err := Split(text, size, overlap)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	normLen := len([]rune(Normalize(text)))

	// Union of [Start, End) ranges covers the normalized text with no gaps.
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, normLen, chunks[len(chunks)-1].End)
	for i := 1; i < len(chunks); i++ {
		assert.LessOrEqual(t, chunks[i].Start, chunks[i-1].End, "gap between chunks %d and %d", i-1, i)
	}

	// Every step advances by at least the post-boundary-search minimum,
	// so the count is bounded even with sentence pullback.
	minAdvance := int(float64(size)*0.7) - overlap
	require.Positive(t, minAdvance)
	assert.LessOrEqual(t, len(chunks), normLen/minAdvance+1)
}

func TestSplit_CountBound(t *testing.T) {
	// Without sentence terminators every cut is a hard cut, so the window
	// advances by exactly size-overlap and the arithmetic bound is tight.
	text := strings.Repeat("abcdefghi ", 100)
	size, overlap := 100, 20

	chunks, err := Split(text, size, overlap)
	require.NoError(t, err)

	normLen := len([]rune(Normalize(text)))
	assert.LessOrEqual(t, len(chunks), normLen/(size-overlap)+1)
}

func TestSplit_OverlapBound(t *testing.T) {
	text := strings.Repeat("one two three four five six seven eight. ", 30)
	overlap := 25

	chunks, err := Split(text, 120, overlap)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		assert.GreaterOrEqual(t, cur.Start, prev.End-overlap)
		assert.LessOrEqual(t, cur.Start, prev.End)
	}
}

func TestSplit_NoPunctuationProgress(t *testing.T) {
	// No sentence terminators anywhere and an overlap nearly the chunk
	// size: the walk must still terminate, with strictly increasing ends.
	text := strings.Repeat("abcdefghij ", 50)

	chunks, err := Split(text, 50, 49)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	for i := 1; i < len(chunks); i++ {
		assert.Greater(t, chunks[i].End, chunks[i-1].End, "window end must strictly increase")
	}
	assert.Equal(t, len([]rune(Normalize(text))), chunks[len(chunks)-1].End)
}

func TestSplit_ChunksNonEmpty(t *testing.T) {
	text := strings.Repeat("word. ", 200)
	chunks, err := Split(text, 80, 20)
	require.NoError(t, err)
	for _, chunk := range chunks {
		assert.NotEmpty(t, chunk.Text)
	}
}
