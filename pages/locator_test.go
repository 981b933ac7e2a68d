package pages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/docfind/pages"
)

func TestEstimate_MarkerBeforeChunk(t *testing.T) {
	text := "[PAGE 1]\nAlpha text. [PAGE 2]\nBeta text."
	locator := pages.NewLocator(text)

	assert.Equal(t, 1, locator.Estimate("Alpha text."))
	assert.Equal(t, 2, locator.Estimate("Beta text."))
}

func TestEstimate_NoMarkers(t *testing.T) {
	locator := pages.NewLocator("plain text with no page markers at all")

	assert.Equal(t, 1, locator.Estimate("plain text"))
	assert.Equal(t, 1, locator.Estimate("anything"))
}

func TestEstimate_ChunkNotFound(t *testing.T) {
	locator := pages.NewLocator("[PAGE 3]\nsome content here")

	assert.Equal(t, 1, locator.Estimate("text that appears nowhere"))
}

func TestEstimate_PastLastMarker(t *testing.T) {
	text := "[PAGE 1]\nfirst page body [PAGE 2]\nsecond page body trailing on"
	locator := pages.NewLocator(text)

	assert.Equal(t, 2, locator.Estimate("trailing on"))
}

func TestEstimate_BeforeFirstMarker(t *testing.T) {
	// Text ahead of the first marker has no page of its own; the lookup
	// falls back to the last marker seen in the corpus.
	text := "preamble before any marker [PAGE 4]\nfourth page body"
	locator := pages.NewLocator(text)

	assert.Equal(t, 4, locator.Estimate("preamble"))
}

func TestEstimate_NonSequentialPages(t *testing.T) {
	text := "[PAGE 10]\nten [PAGE 7]\nseven [PAGE 42]\nforty-two"
	locator := pages.NewLocator(text)

	assert.Equal(t, 10, locator.Estimate("ten"))
	assert.Equal(t, 7, locator.Estimate("seven"))
	assert.Equal(t, 42, locator.Estimate("forty-two"))
}

func TestEstimate_EmptyText(t *testing.T) {
	locator := pages.NewLocator("")

	assert.Equal(t, 1, locator.Estimate("anything"))
}
