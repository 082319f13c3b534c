package aggregator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ncecere/sieve/internal/domquery"
	"github.com/ncecere/sieve/internal/engine"
	"github.com/ncecere/sieve/internal/httpclient"
	"github.com/ncecere/sieve/internal/model"
	"github.com/ncecere/sieve/internal/refiner"
)

// fakeClient serves a canned body (or error/delay) per request URL,
// keyed by a caller-supplied matcher rather than the real network.
type fakeClient struct {
	handlers map[string]func() (*httpclient.Response, error)
}

func (f *fakeClient) Execute(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	h, ok := f.handlers[req.URL]
	if !ok {
		return &httpclient.Response{StatusCode: 200, Body: []byte("")}, nil
	}
	return h()
}

func delayedOK(ctx context.Context, delay time.Duration, body string) func() (*httpclient.Response, error) {
	return func() (*httpclient.Response, error) {
		select {
		case <-time.After(delay):
			return &httpclient.Response{StatusCode: 200, Body: []byte(body)}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// stubEngine is a minimal Engine whose URL/Parse are driven entirely by
// the test, so the aggregator can be exercised without a real scraper.
type stubEngine struct {
	name    string
	url     string
	results []model.SearchResult
	err     error
}

func (s stubEngine) Name() string     { return s.name }
func (s stubEngine) Homepage() string { return "https://example.com" }
func (s stubEngine) URL(string, model.SearchOptions) string {
	return s.url
}
func (s stubEngine) Headers() map[string]string { return nil }
func (s stubEngine) ValidateResponse(engine.Response) error {
	return nil
}
func (s stubEngine) Parse(context.Context, string, domquery.Query) ([]model.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func tagged(name string, e engine.Engine) engine.TaggedEngine {
	return engine.TaggedEngine{Engine: e, ID: model.EngineID{Name: name, ID: "test"}}
}

func TestSearch_DedupAcrossEngines(t *testing.T) {
	engineA := tagged("EngineA", stubEngine{
		name: "A", url: "https://fake/a",
		results: []model.SearchResult{model.NewSearchResult("Example", "https://a.com/x", "from A", "")},
	})
	engineB := tagged("EngineB", stubEngine{
		name: "B", url: "https://fake/b",
		results: []model.SearchResult{model.NewSearchResult("Example", "https://a.com/x", "from B, a richer summary mentioning example a lot", "")},
	})

	client := &fakeClient{handlers: map[string]func() (*httpclient.Response, error){
		"https://fake/a": func() (*httpclient.Response, error) { return &httpclient.Response{StatusCode: 200, Body: []byte("ok")}, nil },
		"https://fake/b": func() (*httpclient.Response, error) { return &httpclient.Response{StatusCode: 200, Body: []byte("ok")}, nil },
	}}

	agg := New(client, engineA, engineB)
	agg.Timeout = time.Second

	resp := agg.Search(context.Background(), "example", model.DefaultSearchOptions())

	if len(resp.Results) != 1 {
		t.Fatalf("expected exactly one merged result, got %d", len(resp.Results))
	}
	if len(resp.Results[0].Engines) != 2 {
		t.Fatalf("expected both engines attributed, got %v", resp.Results[0].Engines)
	}
}

func TestSearch_EngineTimeoutDoesNotBlockOthers(t *testing.T) {
	slow := tagged("Slow", stubEngine{
		name: "Slow", url: "https://fake/slow",
		results: []model.SearchResult{model.NewSearchResult("Slow result", "https://slow.com/x", "slow", "")},
	})
	fast := tagged("Fast", stubEngine{
		name: "Fast", url: "https://fake/fast",
		results: []model.SearchResult{model.NewSearchResult("Fast result", "https://fast.com/x", "fast", "")},
	})

	ctx := context.Background()
	client := &fakeClient{handlers: map[string]func() (*httpclient.Response, error){
		"https://fake/slow": delayedOK(ctx, 200*time.Millisecond, "ok"),
		"https://fake/fast": func() (*httpclient.Response, error) { return &httpclient.Response{StatusCode: 200, Body: []byte("ok")}, nil },
	}}

	agg := New(client, slow, fast)
	agg.Timeout = 20 * time.Millisecond

	resp := agg.Search(ctx, "result", model.DefaultSearchOptions())

	if len(resp.Results) != 1 || resp.Results[0].Title != "Fast result" {
		t.Fatalf("expected only the fast engine's result, got %+v", resp.Results)
	}

	var sawTimeout, sawOK bool
	for _, s := range resp.Statuses {
		if s.Engine.Name == "Slow" {
			sawTimeout = errors.Is(s.Err, engine.ErrTimeout)
		}
		if s.Engine.Name == "Fast" {
			sawOK = s.Err == nil
		}
	}
	if !sawTimeout {
		t.Error("expected the slow engine's status to report a timeout")
	}
	if !sawOK {
		t.Error("expected the fast engine's status to report success")
	}
}

func TestSearch_RefinerOverrideRescoresTopResults(t *testing.T) {
	e1 := tagged("E1", stubEngine{
		name: "E1", url: "https://fake/1",
		results: []model.SearchResult{model.NewSearchResult("Alpha", "https://a.com/1", "first", "")},
	})
	e2 := tagged("E2", stubEngine{
		name: "E2", url: "https://fake/2",
		results: []model.SearchResult{model.NewSearchResult("Beta", "https://b.com/1", "second", "")},
	})

	client := &fakeClient{handlers: map[string]func() (*httpclient.Response, error){
		"https://fake/1": func() (*httpclient.Response, error) { return &httpclient.Response{StatusCode: 200, Body: []byte("ok")}, nil },
		"https://fake/2": func() (*httpclient.Response, error) { return &httpclient.Response{StatusCode: 200, Body: []byte("ok")}, nil },
	}}

	agg := New(client, e1, e2)
	agg.Timeout = time.Second
	agg.Refiner = refiner.Stub{
		Max: 2,
		ScoreFor: map[string]float32{
			"Beta | second": 100,
			"Alpha | first": 1,
		},
	}

	resp := agg.Search(context.Background(), "alpha beta", model.DefaultSearchOptions())

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Title != "Beta" {
		t.Fatalf("expected the refiner's override to promote Beta to first, got %+v", resp.Results)
	}
}

func TestSearch_NoEnginesReturnsEmptyResponse(t *testing.T) {
	agg := New(&fakeClient{handlers: map[string]func() (*httpclient.Response, error){}})
	resp := agg.Search(context.Background(), "anything", model.DefaultSearchOptions())

	if len(resp.Results) != 0 || len(resp.Statuses) != 0 {
		t.Fatalf("expected an empty response with no engines configured, got %+v", resp)
	}
}
