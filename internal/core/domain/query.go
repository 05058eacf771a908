package domain

import (
	"regexp"
	"strings"
)

// MinWordLength is the minimum token length kept by the query parser
const MinWordLength = 2

var (
	phrasePattern  = regexp.MustCompile(`"([^"]*)"`)
	excludePattern = regexp.MustCompile(`(^|\W)-(\w+)`)
	wordPattern    = regexp.MustCompile(`\b\w+\b`)
)

// SearchQuery is a parsed, immutable search query.
// All terms are lowercased.
type SearchQuery struct {
	// Original is the raw query as the caller typed it
	Original string

	// Phrases are quoted substrings that must match literally
	Phrases []string

	// Words are individual included terms (length >= 2, not stop-words)
	Words []string

	// ExcludedWords are terms prefixed with '-' whose presence penalizes a document
	ExcludedWords []string

	// PhraseSearch is set when at least one quoted phrase was present
	PhraseSearch bool
}

// Terms returns all positive terms (phrases first, then words) in parse order
func (q *SearchQuery) Terms() []string {
	terms := make([]string, 0, len(q.Phrases)+len(q.Words))
	terms = append(terms, q.Phrases...)
	terms = append(terms, q.Words...)
	return terms
}

// ParseQuery converts a raw query string into a SearchQuery.
//
// Double-quoted substrings become phrases and are removed before word
// extraction. Remaining text is tokenized on word boundaries; tokens
// shorter than MinWordLength are dropped, '-'-prefixed tokens become
// excluded words, stop-words are filtered, and everything else becomes
// an included word. Returns ErrInvalidQuery when no phrase and no
// included word survives.
func ParseQuery(raw string) (*SearchQuery, error) {
	q := &SearchQuery{Original: raw}

	rest := strings.ToLower(raw)

	if quoted := phrasePattern.FindAllStringSubmatch(rest, -1); len(quoted) > 0 {
		q.PhraseSearch = true
		for _, m := range quoted {
			phrase := strings.TrimSpace(m[1])
			if phrase != "" {
				q.Phrases = append(q.Phrases, phrase)
			}
		}
		rest = phrasePattern.ReplaceAllString(rest, " ")
	}

	// Exclusions first: the '-' prefix is not a word character, so it
	// has to be captured before plain word tokenization eats it.
	for _, m := range excludePattern.FindAllStringSubmatch(rest, -1) {
		if len(m[2])+1 >= MinWordLength {
			q.ExcludedWords = append(q.ExcludedWords, m[2])
		}
	}
	rest = excludePattern.ReplaceAllString(rest, "$1")

	for _, word := range wordPattern.FindAllString(rest, -1) {
		if len(word) < MinWordLength {
			continue
		}
		if IsStopWord(word) {
			continue
		}
		q.Words = append(q.Words, word)
	}

	if len(q.Phrases) == 0 && len(q.Words) == 0 {
		return nil, ErrInvalidQuery
	}

	return q, nil
}
