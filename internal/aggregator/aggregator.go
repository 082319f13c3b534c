// Package aggregator fans a query out across every configured engine,
// merges same-page results keyed by their canonical fingerprint URL,
// scores them by TF-IDF relevance to the query, and optionally hands the
// top slice to a refiner for a second scoring pass.
package aggregator

import (
	"context"
	"math"
	"net/url"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ncecere/sieve/internal/domquery"
	"github.com/ncecere/sieve/internal/engine"
	"github.com/ncecere/sieve/internal/httpclient"
	"github.com/ncecere/sieve/internal/metrics"
	"github.com/ncecere/sieve/internal/model"
	"github.com/ncecere/sieve/internal/refiner"
	"github.com/ncecere/sieve/internal/tfidf"
	"github.com/ncecere/sieve/internal/urlcanon"
)

// Aggregator runs the fan-out/merge/score/rerank pipeline over a fixed
// set of engines.
type Aggregator struct {
	Client  httpclient.Client
	Engines []engine.TaggedEngine

	// Timeout bounds each engine's own leg independently; one engine
	// missing its deadline never cancels its siblings.
	Timeout time.Duration

	// Refiner optionally re-scores the top slice after TF-IDF scoring.
	// A nil Refiner behaves like refiner.Noop{}.
	Refiner refiner.ScoreRefiner

	// ParseWorkers bounds how many engine.Parse calls may run at once,
	// since parsing is CPU-bound and shouldn't be allowed to starve the
	// I/O-bound fetch goroutines. Defaults to runtime.NumCPU().
	ParseWorkers int

	refinerOnce sync.Once
}

// New builds an Aggregator with sane defaults: a 10-second per-engine
// timeout and no refiner.
func New(client httpclient.Client, engines ...engine.TaggedEngine) *Aggregator {
	return &Aggregator{
		Client:  client,
		Engines: engines,
		Timeout: 10 * time.Second,
	}
}

func (a *Aggregator) parseWorkers() int {
	if a.ParseWorkers > 0 {
		return a.ParseWorkers
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

func (a *Aggregator) refinerOrNoop() refiner.ScoreRefiner {
	if a.Refiner != nil {
		return a.Refiner
	}
	return refiner.Noop{}
}

type engineOutcome struct {
	id      model.EngineID
	results []model.SearchResult
	err     error
}

// Search runs the full pipeline for one query and returns the merged,
// scored, sorted response.
func (a *Aggregator) Search(ctx context.Context, query string, opts model.SearchOptions) model.SearchResponse {
	a.refinerOnce.Do(func() {
		_ = a.refinerOrNoop().Init(ctx)
	})

	queryTokens := tfidf.Tokenize(query, tfidf.EnglishStopwords, tfidf.DefaultPunctuation)
	parseSem := make(chan struct{}, a.parseWorkers())

	// Encode the query once, up front, so every engine's URL builder
	// receives an already-escaped string — matching engines (like
	// Mojeek) that append their own pre-escaped literals directly after
	// it and would otherwise get double-escaped or broken by a raw
	// space in the request line.
	encodedQuery := encodeQuery(query)

	outcomes := make([]engineOutcome, len(a.Engines))
	var wg sync.WaitGroup
	for i, te := range a.Engines {
		wg.Add(1)
		go func(i int, te engine.TaggedEngine) {
			defer wg.Done()
			outcomes[i] = a.runEngine(ctx, te, query, encodedQuery, opts, parseSem)
		}(i, te)
	}
	wg.Wait()

	merged := make(map[string]model.SearchResultWithMetadata)
	statuses := make([]model.EngineStatus, 0, len(outcomes))
	rawCount := 0

	for _, oc := range outcomes {
		if oc.err != nil {
			statuses = append(statuses, model.EngineStatus{Engine: oc.id, Err: oc.err})
			continue
		}

		for _, raw := range oc.results {
			su := urlcanon.New(raw.URL, nil)
			raw.URL = su.ToString()
			raw.StrictURL = su.ToStrictString()

			scored := model.NewSearchResultWithMetadata(raw, []model.EngineID{oc.id})
			scored.Score = scoreResult(raw, queryTokens)

			mergeInto(merged, scored)
		}

		rawCount += len(oc.results)
		statuses = append(statuses, model.EngineStatus{Engine: oc.id, ResultCount: len(oc.results)})
	}

	results := make([]model.SearchResultWithMetadata, 0, len(merged))
	for _, r := range merged {
		results = append(results, r)
	}
	metrics.RecordMerge(rawCount, len(results))
	sortByScoreDescending(results)

	results = a.refine(ctx, query, results)

	return model.SearchResponse{Results: results, Statuses: statuses}
}

// mergeInto folds incoming into merged, keyed by its StrictURL. When a
// key collides, the higher-scored entry becomes the incumbent; on an
// exact tie the existing incumbent is kept. Either way, every engine
// that ever contributed the URL ends up in the surviving entry's Engines
// exactly once, in first-merged order — ties don't drop an engine's
// attribution.
func mergeInto(merged map[string]model.SearchResultWithMetadata, incoming model.SearchResultWithMetadata) {
	key := incoming.StrictURL

	existing, ok := merged[key]
	if !ok {
		merged[key] = incoming
		return
	}

	engines := existing.Engines
	for _, id := range incoming.Engines {
		if !slices.Contains(engines, id) {
			engines = append(engines, id)
		}
	}

	if existing.Score >= incoming.Score {
		existing.Engines = engines
		merged[key] = existing
		return
	}

	incoming.Engines = engines
	merged[key] = incoming
}

// encodeQuery percent-encodes query exactly once, the way the original
// aggregator's urlencoding::encode call does, so every engine's URL
// builder receives an already-escaped string. Go's url.QueryEscape
// renders a space as "+"; engines here expect the percent form instead
// (Mojeek's own pre-escaped date-range literal is spelled with %20), so
// the "+" is normalized to "%20" afterward.
func encodeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

func scoreResult(r model.SearchResult, queryTokens []string) float32 {
	if len(queryTokens) == 0 {
		return 0
	}

	scorer := tfidf.UnprocessedDocuments(
		[]string{r.Title, r.URL, r.Summary},
		tfidf.EnglishStopwords, tfidf.DefaultPunctuation,
	)

	var sum float64
	for _, tok := range queryTokens {
		sum += scorer.GetScore(tok)
	}

	mean := sum / float64(len(queryTokens))
	if math.IsNaN(mean) {
		return 0
	}
	return float32(mean)
}

func sortByScoreDescending(results []model.SearchResultWithMetadata) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

// refine hands the top ref.MaxResults() entries to the configured
// refiner and re-sorts just that slice. Any refiner error leaves the
// TF-IDF ordering untouched.
func (a *Aggregator) refine(ctx context.Context, query string, results []model.SearchResultWithMetadata) []model.SearchResultWithMetadata {
	ref := a.refinerOrNoop()

	max := ref.MaxResults()
	if max <= 0 || len(results) == 0 {
		return results
	}
	if max > len(results) {
		max = len(results)
	}

	top := results[:max]
	snippets := make([]string, len(top))
	for i, r := range top {
		snippets[i] = r.Snippet()
	}

	scores, err := ref.Scores(ctx, query, snippets)
	metrics.RecordRefiner(err)
	if err != nil {
		return results
	}

	for i := range scores {
		if i >= len(top) || scores[i].Err != nil {
			continue
		}
		top[i].Score = scores[i].Value
	}

	sortByScoreDescending(top)
	return results
}

// runEngine executes one engine's full leg — build URL, fetch, validate,
// parse — under its own timeout. It never returns an error to its
// caller; failures are folded into the returned engineOutcome so one
// engine's trouble can't unwind the others.
func (a *Aggregator) runEngine(ctx context.Context, te engine.TaggedEngine, query, encodedQuery string, opts model.SearchOptions, parseSem chan struct{}) engineOutcome {
	start := time.Now()
	engCtx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	type outcome struct {
		results []model.SearchResult
		err     error
	}
	done := make(chan outcome, 1)

	go func() {
		reqURL := te.URL(encodedQuery, opts)
		headers := te.Headers()

		resp, err := a.Client.Execute(engCtx, &httpclient.Request{URL: reqURL, Headers: headers})
		if err != nil {
			done <- outcome{err: engine.ErrRequestFailed}
			return
		}

		engResp := engine.Response{StatusCode: resp.StatusCode, Body: resp.Body}
		if err := te.ValidateResponse(engResp); err != nil {
			done <- outcome{err: err}
			return
		}
		if resp.StatusCode == 429 {
			done <- outcome{err: engine.ErrBlocked}
			return
		}
		if len(resp.Body) == 0 {
			done <- outcome{err: engine.ErrNoResponseText}
			return
		}
		if !utf8.Valid(resp.Body) {
			done <- outcome{err: engine.ErrNoResponseText}
			return
		}

		select {
		case parseSem <- struct{}{}:
		case <-engCtx.Done():
			done <- outcome{err: engine.ErrTimeout}
			return
		}
		defer func() { <-parseSem }()

		doc, err := domquery.ParseComprehensive(resp.Body)
		if err != nil {
			done <- outcome{err: engine.ErrUnknown}
			return
		}

		results, err := te.Parse(engCtx, query, doc)
		if err != nil {
			done <- outcome{err: err}
			return
		}
		if len(results) == 0 {
			done <- outcome{err: engine.ErrNoResultsFound}
			return
		}

		done <- outcome{results: results}
	}()

	select {
	case res := <-done:
		latencyMs := time.Since(start).Milliseconds()
		if res.err != nil {
			metrics.RecordEngineRun(te.ID.Name, res.err.Error(), 0, latencyMs)
			return engineOutcome{id: te.ID, err: res.err}
		}
		metrics.RecordEngineRun(te.ID.Name, "ok", len(res.results), latencyMs)
		return engineOutcome{id: te.ID, results: res.results}
	case <-engCtx.Done():
		metrics.RecordEngineRun(te.ID.Name, engine.ErrTimeout.Error(), 0, time.Since(start).Milliseconds())
		return engineOutcome{id: te.ID, err: engine.ErrTimeout}
	}
}
