package sieve

import (
	"context"
	"testing"
	"time"

	"github.com/ncecere/sieve/internal/engine/mojeek"
	"github.com/ncecere/sieve/internal/httpclient"
	"github.com/ncecere/sieve/internal/model"
)

const samplePage = `<html><body>
<div class="results-standard">
  <div>
    <h2><a class="title" href="https://www.rust-lang.org/">Rust Programming Language</a></h2>
    <p class="s">A language empowering everyone to build reliable software.</p>
  </div>
</div>
</body></html>`

// fakeClient serves samplePage for any Mojeek-shaped URL, so Search can
// be exercised end to end through the public API without real network
// access.
type fakeClient struct{}

func (fakeClient) Execute(_ context.Context, _ *httpclient.Request) (*httpclient.Response, error) {
	return &httpclient.Response{StatusCode: 200, Body: []byte(samplePage)}, nil
}

func TestSearch_EndToEndThroughPublicAPI(t *testing.T) {
	s := New(fakeClient{}, mojeek.New()).WithTimeout(2 * time.Second)

	resp, err := s.Search(context.Background(), "rust lang", SearchOptions{
		PageNum:    2,
		SafeSearch: SafeSearchModerate,
		DateRange: DateTimeRange{
			From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("expected exactly one result, got %d: %+v", len(resp.Results), resp.Results)
	}
	if resp.Results[0].Title != "Rust Programming Language" {
		t.Fatalf("unexpected title: %q", resp.Results[0].Title)
	}
	if resp.Results[0].StrictURL == "" {
		t.Error("expected the aggregator to have computed a StrictURL")
	}

	if len(resp.Statuses) != 1 || resp.Statuses[0].Err != nil {
		t.Fatalf("expected a single successful engine status, got %+v", resp.Statuses)
	}
}

func TestSearch_NoMatchingResultsSurfacesEngineError(t *testing.T) {
	s := New(emptyPageClient{}, mojeek.New())

	resp, err := s.Search(context.Background(), "nothing here", model.DefaultSearchOptions())
	if err != nil {
		t.Fatalf("Search returned an error: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected no results, got %+v", resp.Results)
	}
	if len(resp.Statuses) != 1 || resp.Statuses[0].Err == nil {
		t.Fatalf("expected the engine status to report a failure, got %+v", resp.Statuses)
	}
}

type emptyPageClient struct{}

func (emptyPageClient) Execute(_ context.Context, _ *httpclient.Request) (*httpclient.Response, error) {
	return &httpclient.Response{StatusCode: 200, Body: []byte("<html><body>no results here</body></html>")}, nil
}

func TestNewTaggedEngine_AssignsAFreshID(t *testing.T) {
	te := NewTaggedEngine(mojeek.New().Engine)
	if te.ID.Name == "" || te.ID.ID == "" {
		t.Fatalf("expected a populated EngineID, got %+v", te.ID)
	}
}
