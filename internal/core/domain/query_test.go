package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseQuery_Words(t *testing.T) {
	q, err := ParseQuery("senior Salary engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PhraseSearch {
		t.Error("expected word-mode query")
	}
	want := []string{"senior", "salary", "engineer"}
	if !reflect.DeepEqual(q.Words, want) {
		t.Errorf("expected words %v, got %v", want, q.Words)
	}
}

func TestParseQuery_Phrases(t *testing.T) {
	q, err := ParseQuery(`"salary increase"  "  annual review " budget`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.PhraseSearch {
		t.Error("expected phrase-mode query")
	}
	wantPhrases := []string{"salary increase", "annual review"}
	if !reflect.DeepEqual(q.Phrases, wantPhrases) {
		t.Errorf("expected phrases %v, got %v", wantPhrases, q.Phrases)
	}
	if !reflect.DeepEqual(q.Words, []string{"budget"}) {
		t.Errorf("expected words [budget], got %v", q.Words)
	}
}

func TestParseQuery_EmptyPhraseDiscarded(t *testing.T) {
	q, err := ParseQuery(`"   " contract`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Phrases) != 0 {
		t.Errorf("expected no phrases, got %v", q.Phrases)
	}
	if !q.PhraseSearch {
		t.Error("quoted input sets phrase mode even when the phrase is blank")
	}
	if !reflect.DeepEqual(q.Words, []string{"contract"}) {
		t.Errorf("expected words [contract], got %v", q.Words)
	}
}

func TestParseQuery_ExcludedWords(t *testing.T) {
	q, err := ParseQuery("salary -rejected -Draft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Words, []string{"salary"}) {
		t.Errorf("expected words [salary], got %v", q.Words)
	}
	if !reflect.DeepEqual(q.ExcludedWords, []string{"rejected", "draft"}) {
		t.Errorf("expected excluded [rejected draft], got %v", q.ExcludedWords)
	}
}

func TestParseQuery_HyphenInsideWordNotExcluded(t *testing.T) {
	q, err := ParseQuery("well-known framework")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.ExcludedWords) != 0 {
		t.Errorf("intra-word hyphen must not exclude: %v", q.ExcludedWords)
	}
	want := []string{"well", "known", "framework"}
	if !reflect.DeepEqual(q.Words, want) {
		t.Errorf("expected words %v, got %v", want, q.Words)
	}
}

func TestParseQuery_StopWordsAndShortTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"only stop-words", "the and of with"},
		{"only short tokens", "a b c x"},
		{"stop-words plus short", "to do it a"},
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQuery(tt.raw)
			if !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("expected ErrInvalidQuery, got %v", err)
			}
		})
	}
}

func TestParseQuery_StopWordSurvivesInsidePhrase(t *testing.T) {
	q, err := ParseQuery(`"the quarterly report"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Phrases) != 1 || q.Phrases[0] != "the quarterly report" {
		t.Errorf("phrase should keep stop-words verbatim, got %v", q.Phrases)
	}
}

func TestParseQuery_Lowercasing(t *testing.T) {
	q, err := ParseQuery(`"Salary INCREASE" BUDGET`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Phrases[0] != "salary increase" {
		t.Errorf("expected lowercased phrase, got %q", q.Phrases[0])
	}
	if q.Words[0] != "budget" {
		t.Errorf("expected lowercased word, got %q", q.Words[0])
	}
	if q.Original != `"Salary INCREASE" BUDGET` {
		t.Errorf("original must be preserved verbatim, got %q", q.Original)
	}
}

func TestSearchQuery_Terms(t *testing.T) {
	q, err := ParseQuery(`"salary increase" budget -rejected`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"salary increase", "budget"}
	if !reflect.DeepEqual(q.Terms(), want) {
		t.Errorf("expected terms %v, got %v", want, q.Terms())
	}
}
