package textscan

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/talentdock/search-core/internal/core/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Config{Concurrency: 4}, nil)
	if err != nil {
		t.Fatalf("creating engine: %v", err)
	}
	t.Cleanup(e.Release)
	return e
}

func testDoc(id int64, text string) *domain.Document {
	return &domain.Document{
		ID:               id,
		CandidateID:      1,
		CandidateName:    "Ada Lovelace",
		OriginalFilename: fmt.Sprintf("doc-%d.pdf", id),
		ExtractedText:    text,
		ContentLength:    len(text),
		IsExtracted:      true,
		UploadDate:       time.Now(),
	}
}

func TestRank_DropsNonMatches(t *testing.T) {
	e := newTestEngine(t)
	q := mustParse(t, "salary")

	docs := []*domain.Document{
		testDoc(1, "the salary discussion "+filler(40)),
		testDoc(2, filler(40)),
		testDoc(3, "another salary note "+filler(40)),
	}

	results, err := e.Rank(context.Background(), docs, q, domain.RankOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.DocumentID == 2 {
			t.Error("non-matching document must be absent, not zero-scored")
		}
		if r.MatchCount < 1 {
			t.Errorf("returned results must have at least one match, got %d", r.MatchCount)
		}
		if r.RelevanceScore <= 0 || r.RelevanceScore > 100 {
			t.Errorf("score out of bounds: %v", r.RelevanceScore)
		}
	}
}

func TestRank_SortsDescending(t *testing.T) {
	e := newTestEngine(t)
	q := mustParse(t, `"salary increase"`)

	docs := []*domain.Document{
		testDoc(1, "salary increase "+filler(100)),
		testDoc(2, "salary increase salary increase salary increase "+filler(100)),
		testDoc(3, "salary increase salary increase "+filler(100)),
	}

	results, err := e.Rank(context.Background(), docs, q, domain.RankOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	wantOrder := []int64{2, 3, 1}
	for i, want := range wantOrder {
		if results[i].DocumentID != want {
			t.Errorf("position %d: expected document %d, got %d", i, want, results[i].DocumentID)
		}
	}
}

func TestRank_StableTies(t *testing.T) {
	e := newTestEngine(t)
	q := mustParse(t, `"salary increase"`)

	// Identical texts produce identical scores; corpus order must survive
	text := "salary increase " + filler(60)
	docs := []*domain.Document{
		testDoc(7, text),
		testDoc(3, text),
		testDoc(9, text),
	}

	results, err := e.Rank(context.Background(), docs, q, domain.RankOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []int64{7, 3, 9}
	for i, want := range wantOrder {
		if results[i].DocumentID != want {
			t.Errorf("tied scores must keep corpus order: position %d expected %d, got %d",
				i, want, results[i].DocumentID)
		}
	}
}

func TestRank_Highlights(t *testing.T) {
	e := newTestEngine(t)
	q := mustParse(t, "salary")
	docs := []*domain.Document{testDoc(1, filler(40) + " salary " + filler(40))}

	results, err := e.Rank(context.Background(), docs, q, domain.RankOptions{
		IncludeHighlights: true,
		HighlightLength:   80,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(results[0].Highlights) != 1 {
		t.Fatalf("expected one result with one highlight, got %+v", results)
	}

	// Without the option, highlighting is skipped entirely
	results, err = e.Rank(context.Background(), docs, q, domain.RankOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results[0].Highlights) != 0 {
		t.Errorf("expected no highlights, got %d", len(results[0].Highlights))
	}
}

func TestRank_ScoreRounding(t *testing.T) {
	e := newTestEngine(t)
	q := mustParse(t, "salary")
	docs := []*domain.Document{testDoc(1, "salary "+filler(88))}

	results, err := e.Rank(context.Background(), docs, q, domain.RankOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	score := results[0].RelevanceScore
	if math.Abs(score*100-math.Round(score*100)) > 1e-9 {
		t.Errorf("score must be rounded to two decimals, got %v", score)
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	e := newTestEngine(t)
	q := mustParse(t, "salary")

	results, err := e.Rank(context.Background(), nil, q, domain.RankOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestRank_LargeCorpusParallel(t *testing.T) {
	e := newTestEngine(t)
	q := mustParse(t, "salary")

	var docs []*domain.Document
	for i := int64(1); i <= 200; i++ {
		text := filler(30)
		if i%2 == 0 {
			text = "salary " + text
		}
		docs = append(docs, testDoc(i, text))
	}

	results, err := e.Rank(context.Background(), docs, q, domain.RankOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 100 {
		t.Errorf("expected 100 results, got %d", len(results))
	}
}
