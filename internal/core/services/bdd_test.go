package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/talentdock/search-core/internal/adapters/driven/textscan"
	"github.com/talentdock/search-core/internal/core/domain"
	"github.com/talentdock/search-core/internal/core/ports/driven/mocks"
	"github.com/talentdock/search-core/internal/core/ports/driving"
)

type searchFeature struct {
	documents *mocks.MockDocumentStore
	history   *mocks.MockHistoryStore
	engine    *textscan.Engine
	svc       driving.SearchService

	resp *domain.SearchResponse
	err  error

	nextDocID int64
}

func (f *searchFeature) reset() error {
	engine, err := textscan.NewEngine(textscan.Config{Concurrency: 2}, nil)
	if err != nil {
		return err
	}
	f.documents = mocks.NewMockDocumentStore()
	f.history = mocks.NewMockHistoryStore()
	f.engine = engine
	f.svc = NewSearchService(mocks.NewMockCandidateStore(), f.documents, f.history, engine, nil)
	f.resp = nil
	f.err = nil
	f.nextDocID = 0
	return nil
}

func (f *searchFeature) aDocumentForCandidateContaining(filename string, candidateID int, body *godog.DocString) error {
	f.nextDocID++
	f.documents.Add(&domain.Document{
		ID:               f.nextDocID,
		CandidateID:      int64(candidateID),
		CandidateName:    fmt.Sprintf("Candidate %d", candidateID),
		OriginalFilename: filename,
		ExtractedText:    body.Content,
		ContentLength:    len(body.Content),
		IsExtracted:      true,
		UploadDate:       time.Now().Add(-time.Duration(f.nextDocID) * time.Hour),
	})
	return nil
}

func (f *searchFeature) iSearchFor(query string) error {
	f.resp, f.err = f.svc.Search(context.Background(), domain.DefaultSearchRequest(query))
	return nil
}

func (f *searchFeature) iSearchForTheExactPhrase(phrase string) error {
	return f.iSearchFor(`"` + phrase + `"`)
}

func (f *searchFeature) iGetResults(count int) error {
	if f.err != nil {
		return fmt.Errorf("search failed: %w", f.err)
	}
	if f.resp.TotalResults != count {
		return fmt.Errorf("expected %d results, got %d", count, f.resp.TotalResults)
	}
	return nil
}

func (f *searchFeature) result(position int) (*domain.SearchResult, error) {
	if f.err != nil {
		return nil, fmt.Errorf("search failed: %w", f.err)
	}
	if position < 1 || position > len(f.resp.Results) {
		return nil, fmt.Errorf("no result at position %d (have %d)", position, len(f.resp.Results))
	}
	return f.resp.Results[position-1], nil
}

func (f *searchFeature) resultIsDocument(position int, filename string) error {
	r, err := f.result(position)
	if err != nil {
		return err
	}
	if r.OriginalFilename != filename {
		return fmt.Errorf("expected %q at position %d, got %q", filename, position, r.OriginalFilename)
	}
	return nil
}

func (f *searchFeature) resultHasScoreAtLeast(position int, minimum float64) error {
	r, err := f.result(position)
	if err != nil {
		return err
	}
	if r.RelevanceScore < minimum {
		return fmt.Errorf("expected score >= %.2f at position %d, got %.2f", minimum, position, r.RelevanceScore)
	}
	return nil
}

func (f *searchFeature) resultHasAtLeastHighlights(position, count int) error {
	r, err := f.result(position)
	if err != nil {
		return err
	}
	if len(r.Highlights) < count {
		return fmt.Errorf("expected at least %d highlights at position %d, got %d", count, position, len(r.Highlights))
	}
	return nil
}

func (f *searchFeature) everyHighlightOfResultContains(position int, term string) error {
	r, err := f.result(position)
	if err != nil {
		return err
	}
	for i, h := range r.Highlights {
		if !strings.Contains(strings.ToLower(h.Text), strings.ToLower(term)) {
			return fmt.Errorf("highlight %d of result %d does not contain %q: %q", i+1, position, term, h.Text)
		}
	}
	return nil
}

func (f *searchFeature) theSearchFailsWithAnInvalidQueryError() error {
	if !errors.Is(f.err, domain.ErrInvalidQuery) {
		return fmt.Errorf("expected invalid query error, got %v", f.err)
	}
	return nil
}

func (f *searchFeature) theSearchHistoryContainsEntries(count int) error {
	entries := f.history.Entries()
	if len(entries) != count {
		return fmt.Errorf("expected %d history entries, got %d", count, len(entries))
	}
	return nil
}

func (f *searchFeature) theMostRecentHistoryEntryHasQuery(query string) error {
	recent, err := f.history.Recent(context.Background(), nil, 1)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		return errors.New("history is empty")
	}
	if recent[0].Query != query {
		return fmt.Errorf("expected most recent query %q, got %q", query, recent[0].Query)
	}
	return nil
}

func InitializeScenario(sc *godog.ScenarioContext) {
	f := &searchFeature{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, f.reset()
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		if f.engine != nil {
			f.engine.Release()
		}
		return ctx, nil
	})

	sc.Step(`^a document "([^"]*)" for candidate (\d+) containing:$`, f.aDocumentForCandidateContaining)
	sc.Step(`^I search for "([^"]*)"$`, f.iSearchFor)
	sc.Step(`^I search for the exact phrase "([^"]*)"$`, f.iSearchForTheExactPhrase)
	sc.Step(`^I get (\d+) results?$`, f.iGetResults)
	sc.Step(`^result (\d+) is document "([^"]*)"$`, f.resultIsDocument)
	sc.Step(`^result (\d+) has a relevance score of at least (\d+\.?\d*)$`, f.resultHasScoreAtLeast)
	sc.Step(`^result (\d+) has at least (\d+) highlights?$`, f.resultHasAtLeastHighlights)
	sc.Step(`^every highlight of result (\d+) contains "([^"]*)"$`, f.everyHighlightOfResultContains)
	sc.Step(`^the search fails with an invalid query error$`, f.theSearchFailsWithAnInvalidQueryError)
	sc.Step(`^the search history contains (\d+) entries$`, f.theSearchHistoryContainsEntries)
	sc.Step(`^the most recent history entry has query "([^"]*)"$`, f.theMostRecentHistoryEntryHasQuery)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}
