package textscan

import (
	"math"
	"regexp"
	"strings"

	"github.com/talentdock/search-core/internal/core/domain"
)

// Scoring weights and bounds
const (
	phraseWeight        = 10.0
	exclusionPenalty    = 0.1
	lengthNormThreshold = 1000
	maxScore            = 100.0
)

// matcher holds a parsed query with its word patterns compiled once,
// shared read-only across the per-document workers of one Rank call.
type matcher struct {
	query *domain.SearchQuery
	words []*regexp.Regexp
}

func newMatcher(query *domain.SearchQuery) *matcher {
	m := &matcher{
		query: query,
		words: make([]*regexp.Regexp, len(query.Words)),
	}
	for i, word := range query.Words {
		m.words[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return m
}

// score computes the relevance score and match count for one document.
//
// Phrase occurrences (non-overlapping, case-insensitive) weigh
// phraseWeight each. Word occurrences are whole-word matches scored
// with a term-frequency heuristic: tf * 100 * ln(1+count). Each
// excluded word found anywhere in the text (substring, intentionally
// imprecise) multiplies the score by exclusionPenalty. Texts longer
// than lengthNormThreshold are discounted toward half weight. The
// result is clamped to [0, maxScore].
func (m *matcher) score(text string, textLength int) (float64, int) {
	lower := strings.ToLower(text)

	var total float64
	var matches int

	for _, phrase := range m.query.Phrases {
		count := strings.Count(lower, phrase)
		if count > 0 {
			total += float64(count) * phraseWeight
			matches += count
		}
	}

	if len(m.words) > 0 {
		totalWords := len(strings.Fields(lower))
		for _, re := range m.words {
			count := len(re.FindAllStringIndex(lower, -1))
			if count > 0 && totalWords > 0 {
				tf := float64(count) / float64(totalWords)
				total += tf * 100 * math.Log(1+float64(count))
				matches += count
			}
		}
	}

	for _, excluded := range m.query.ExcludedWords {
		if strings.Contains(lower, excluded) {
			total *= exclusionPenalty
		}
	}

	if textLength > lengthNormThreshold {
		factor := float64(lengthNormThreshold) / float64(textLength)
		total *= 0.5 + 0.5*factor
	}

	if total > maxScore {
		total = maxScore
	}

	return total, matches
}
