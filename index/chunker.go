package index

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/poiesic/docfind/core"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// How far back from a tentative cut the chunker looks for a sentence end:
// no further than 50 characters, and never before 70% of the chunk size.
const (
	boundaryLookback = 50
	boundaryMinShare = 0.7
)

// Normalize collapses every run of whitespace to a single space and trims
// the ends. All chunk offsets refer to this normalized form of the text.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// Split segments text into overlapping, sentence-boundary-aware chunks of at
// most size characters. Consecutive chunks share up to overlap characters.
// Empty or whitespace-only text yields an empty sequence, not an error.
//
// Each window tentatively ends size characters after its start. If that cut
// falls mid-text, the chunker scans backward for the nearest sentence
// terminator (. ! ?) and breaks just after it; when none is found within the
// allowed lookback it keeps the hard character cut, trading boundary quality
// for guaranteed progress.
func Split(text string, size, overlap int) ([]core.Chunk, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidChunkSize, size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: got %d with chunk size %d", core.ErrInvalidOverlap, overlap, size)
	}

	runes := []rune(Normalize(text))
	if len(runes) == 0 {
		return nil, nil
	}

	var chunks []core.Chunk
	start := 0
	prevEnd := -1

	for start < len(runes) {
		end := min(start+size, len(runes))

		if end < len(runes) {
			floor := max(start+int(float64(size)*boundaryMinShare), end-boundaryLookback)
			for p := end; p > floor; p-- {
				if isSentenceEnd(runes[p]) {
					end = p + 1
					break
				}
			}
		}

		// A sentence break behind the previous window end would re-emit
		// text we already covered and stall the walk. Fall back to the
		// hard cut, which always advances.
		if end <= prevEnd {
			end = min(start+size, len(runes))
		}
		prevEnd = end

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, core.Chunk{Text: chunk, Start: start, End: end})
		}

		if end >= len(runes) {
			break
		}

		next := end - overlap
		if next <= start {
			// Overlap would move the window backward; skip it this step.
			next = end
		}
		start = next
	}

	return chunks, nil
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
