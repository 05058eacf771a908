package textscan

import (
	"sort"
	"strings"

	"github.com/talentdock/search-core/internal/core/domain"
)

const (
	// maxHighlightDistance merges match offsets closer than this into one snippet
	maxHighlightDistance = 50

	// maxHighlights caps the snippets emitted per document
	maxHighlights = 3
)

// highlights locates match positions in text and emits merged,
// word-boundary-aligned context snippets of roughly snippetLength
// characters, in ascending offset order.
func (m *matcher) highlights(text string, snippetLength int) []domain.Highlight {
	lower := strings.ToLower(text)

	var positions []int
	for _, phrase := range m.query.Phrases {
		from := 0
		for {
			i := strings.Index(lower[from:], phrase)
			if i < 0 {
				break
			}
			positions = append(positions, from+i)
			from += i + len(phrase)
		}
	}
	for _, re := range m.words {
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			positions = append(positions, loc[0])
		}
	}

	if len(positions) == 0 {
		return nil
	}

	sort.Ints(positions)

	// Keep the first offset of each cluster of nearby matches
	merged := make([]int, 0, len(positions))
	for _, pos := range positions {
		if len(merged) == 0 || pos-merged[len(merged)-1] > maxHighlightDistance {
			merged = append(merged, pos)
		}
	}
	if len(merged) > maxHighlights {
		merged = merged[:maxHighlights]
	}

	out := make([]domain.Highlight, 0, len(merged))
	for _, pos := range merged {
		start := pos - snippetLength/2
		if start < 0 {
			start = 0
		}
		end := pos + snippetLength/2
		if end > len(text) {
			end = len(text)
		}

		// Push the window edges outward to spaces so no word is split
		for start > 0 && text[start] != ' ' {
			start--
		}
		for end < len(text) && text[end] != ' ' {
			end++
		}

		snippet := strings.TrimSpace(text[start:end])
		if start > 0 {
			snippet = "..." + snippet
		}
		if end < len(text) {
			snippet = snippet + "..."
		}

		out = append(out, domain.Highlight{
			Text:          snippet,
			StartPosition: start,
		})
	}

	return out
}
