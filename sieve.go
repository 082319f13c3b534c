// Package sieve is a metasearch aggregation library: it fans a query out
// across a set of search-engine adapters, canonicalises and dedups the
// results they return, scores them by relevance to the query, and
// optionally hands the top results to a semantic refiner for a second
// scoring pass.
package sieve

import (
	"context"
	"time"

	"github.com/ncecere/sieve/internal/aggregator"
	"github.com/ncecere/sieve/internal/engine"
	"github.com/ncecere/sieve/internal/httpclient"
	"github.com/ncecere/sieve/internal/model"
	"github.com/ncecere/sieve/internal/refiner"
)

// Re-exported so callers outside internal/ don't need to import the
// internal packages directly to build a SearchOptions or read a
// SearchResponse.
type (
	SearchOptions            = model.SearchOptions
	SafeSearch               = model.SafeSearch
	DateTimeRange            = model.DateTimeRange
	DateTimeRangePreset      = model.DateTimeRangePreset
	SearchResult             = model.SearchResult
	SearchResultWithMetadata = model.SearchResultWithMetadata
	SearchResponse           = model.SearchResponse
	EngineID                 = model.EngineID
	EngineStatus             = model.EngineStatus

	Engine       = engine.Engine
	TaggedEngine = engine.TaggedEngine

	ScoreRefiner = refiner.ScoreRefiner

	HTTPClient = httpclient.Client
)

const (
	SafeSearchOff      = model.SafeSearchOff
	SafeSearchModerate = model.SafeSearchModerate
	SafeSearchStrict   = model.SafeSearchStrict
)

// NewTaggedEngine wraps an Engine implementation with a freshly minted
// EngineID, for callers assembling their own engine list.
func NewTaggedEngine(e Engine) TaggedEngine {
	return engine.NewTaggedEngine(e)
}

// Sieve is a configured aggregation pipeline: a set of engines, an HTTP
// client to fetch their result pages with, and optional tuning knobs.
type Sieve struct {
	agg *aggregator.Aggregator
}

// New builds a Sieve over the given HTTP client and engines, with a
// 10-second per-engine timeout and no refiner. Use WithTimeout and
// WithRefiner to change either.
func New(client HTTPClient, engines ...TaggedEngine) *Sieve {
	return &Sieve{agg: aggregator.New(client, engines...)}
}

// WithTimeout sets the per-engine fetch-and-parse deadline. It returns
// the receiver for chaining.
func (s *Sieve) WithTimeout(d time.Duration) *Sieve {
	s.agg.Timeout = d
	return s
}

// WithRefiner installs a second-pass scorer applied to the top slice of
// merged results. It returns the receiver for chaining.
func (s *Sieve) WithRefiner(r ScoreRefiner) *Sieve {
	s.agg.Refiner = r
	return s
}

// WithParseWorkers bounds how many engine.Parse calls run concurrently,
// since parsing is CPU-bound work kept off the I/O-bound fetch path. It
// returns the receiver for chaining.
func (s *Sieve) WithParseWorkers(n int) *Sieve {
	s.agg.ParseWorkers = n
	return s
}

// Search runs the aggregation pipeline for query and returns the merged,
// scored, sorted response. It never returns an error itself — per-engine
// failures surface in SearchResponse.Statuses instead.
func (s *Sieve) Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	resp := s.agg.Search(ctx, query, opts)
	return &resp, nil
}
