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


// Package pages estimates which page of the source material a retrieved
// chunk came from, using inline [PAGE n] markers left behind by document
// extraction.
package pages

import (
	"regexp"
	"strconv"
	"strings"
)

var markerRE = regexp.MustCompile(`\[PAGE (\d+)\]`)

// marker is a page marker found in the source text: the byte offset where
// it starts and the page number it announces.
type marker struct {
	offset int
	page   int
}

// Locator maps chunk text back to page numbers. It scans the full corpus
// text once at construction and answers lookups from the collected markers.
type Locator struct {
	text    string
	markers []marker
}

// NewLocator builds a locator over the full corpus text. Markers with an
// unparseable page number are skipped.
func NewLocator(text string) *Locator {
	matches := markerRE.FindAllStringSubmatchIndex(text, -1)
	markers := make([]marker, 0, len(matches))
	for _, m := range matches {
		page, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		markers = append(markers, marker{offset: m[0], page: page})
	}
	return &Locator{text: text, markers: markers}
}

// Estimate returns the page the chunk most likely came from: the page of
// the last marker at or before the chunk's position in the corpus text.
// Chunks that cannot be located, and corpora without markers, report page 1.
func (l *Locator) Estimate(chunkText string) int {
	if len(l.markers) == 0 {
		return 1
	}

	pos := strings.Index(l.text, chunkText)
	if pos < 0 {
		return 1
	}

	page := l.markers[len(l.markers)-1].page
	for _, m := range l.markers {
		if m.offset > pos {
			break
		}
		page = m.page
	}
	return page
}
