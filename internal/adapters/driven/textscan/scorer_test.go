package textscan

import (
	"math"
	"strings"
	"testing"

	"github.com/talentdock/search-core/internal/core/domain"
)

func mustParse(t *testing.T, raw string) *domain.SearchQuery {
	t.Helper()
	q, err := domain.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parsing %q: %v", raw, err)
	}
	return q
}

// filler builds a text of n neutral words that match no test query
func filler(n int) string {
	return strings.TrimSpace(strings.Repeat("lorem ipsum dolor amet ", (n+3)/4))
}

func TestScore_PhraseOccurrences(t *testing.T) {
	m := newMatcher(mustParse(t, `"salary increase"`))

	text := "The salary increase was approved. A second salary increase followed."
	score, matches := m.score(text, len(text))

	if matches != 2 {
		t.Errorf("expected 2 matches, got %d", matches)
	}
	if score != 20 {
		t.Errorf("expected score 20 (2 phrases x 10), got %v", score)
	}
}

func TestScore_WordFrequency(t *testing.T) {
	m := newMatcher(mustParse(t, "salary"))

	text := filler(96) + " salary salary salary salary"
	score, matches := m.score(text, len(text))

	if matches != 4 {
		t.Errorf("expected 4 matches, got %d", matches)
	}
	totalWords := float64(len(strings.Fields(text)))
	want := 4 / totalWords * 100 * math.Log(5)
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("expected score %v, got %v", want, score)
	}
}

func TestScore_WholeWordOnly(t *testing.T) {
	m := newMatcher(mustParse(t, "art"))

	_, matches := m.score("the artist departed smartly", 27)
	if matches != 0 {
		t.Errorf("substring hits must not count as word matches, got %d", matches)
	}
}

func TestScore_ExclusionPenalty(t *testing.T) {
	// Phrase found twice, excluded word present once
	m := newMatcher(mustParse(t, `"salary increase" -rejected`))

	text := "salary increase approved, then another salary increase rejected later"
	score, matches := m.score(text, len(text))

	if matches != 2 {
		t.Errorf("expected matchCount 2, got %d", matches)
	}
	if math.Abs(score-2.0) > 1e-9 {
		t.Errorf("expected score 2.0 (20 x 0.1), got %v", score)
	}
}

func TestScore_ExclusionPenaltyCompounds(t *testing.T) {
	m := newMatcher(mustParse(t, `"salary increase" -rejected -withdrawn`))

	text := "salary increase rejected and withdrawn"
	score, _ := m.score(text, len(text))

	if math.Abs(score-0.1) > 1e-9 {
		t.Errorf("expected score 0.1 (10 x 0.1 x 0.1), got %v", score)
	}
}

func TestScore_ExclusionMatchesSubstring(t *testing.T) {
	// Exclusion is a substring check: "reject" inside "rejection" counts
	m := newMatcher(mustParse(t, `"salary increase" -reject`))

	text := "salary increase pending rejection review"
	score, _ := m.score(text, len(text))

	if math.Abs(score-1.0) > 1e-9 {
		t.Errorf("expected score 1.0, got %v", score)
	}
}

func TestScore_LengthNormalization(t *testing.T) {
	m := newMatcher(mustParse(t, `"salary increase"`))
	text := "salary increase " + filler(400)

	short, _ := m.score(text, 1000)
	long, _ := m.score(text, 4000)

	if short != 10 {
		t.Errorf("length 1000 must not be penalized, got %v", short)
	}
	// 0.5 + 0.5*(1000/4000) = 0.625
	if math.Abs(long-6.25) > 1e-9 {
		t.Errorf("expected 6.25 for length 4000, got %v", long)
	}
	if long >= short {
		t.Error("longer documents must never outscore shorter ones for the same matches")
	}
}

func TestScore_NeverBelowHalfWeight(t *testing.T) {
	m := newMatcher(mustParse(t, `"salary increase"`))
	text := "salary increase"

	score, _ := m.score(text, 100000000)
	if score <= 5.0-1e-6 {
		t.Errorf("length discount must stay above half weight, got %v", score)
	}
}

func TestScore_Clamped(t *testing.T) {
	m := newMatcher(mustParse(t, `"ha"`))
	text := strings.Repeat("ha ", 500)

	score, _ := m.score(text, len(text))
	if score != 100 {
		t.Errorf("expected score clamped to 100, got %v", score)
	}
}

func TestScore_NoMatches(t *testing.T) {
	m := newMatcher(mustParse(t, "unicorn"))

	score, matches := m.score(filler(50), 250)
	if score != 0 || matches != 0 {
		t.Errorf("expected zero score and matches, got %v/%d", score, matches)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	m := newMatcher(mustParse(t, `"Salary Increase" budget`))

	score, matches := m.score("SALARY INCREASE in the BUDGET "+filler(40), 0)
	if matches != 2 {
		t.Errorf("expected 2 matches, got %d", matches)
	}
	if score <= 10 {
		t.Errorf("expected phrase plus word contribution, got %v", score)
	}
}
