// Package engine defines the adapter contract every search engine scraper
// implements, plus the shared name-derivation and error-taxonomy helpers
// the aggregator relies on.
package engine

import (
	"context"
	"strings"
	"unicode"

	"github.com/ncecere/sieve/internal/domquery"
	"github.com/ncecere/sieve/internal/model"
)

// Request is the fully-built outbound request an Engine wants issued.
type Request struct {
	URL     string
	Headers map[string]string
}

// Response is what the caller-supplied HTTP client handed back, passed
// untouched into ValidateResponse and Parse.
type Response struct {
	StatusCode int
	Body       []byte
}

// Engine is the contract every search-engine adapter satisfies. The
// aggregator never knows about a concrete engine type, only this
// interface.
type Engine interface {
	// Name is the engine's human-readable display name.
	Name() string

	// Homepage is the engine's homepage URL, used for attribution and
	// diagnostics.
	Homepage() string

	// URL builds the full search-results URL for this query and options.
	URL(query string, opts model.SearchOptions) string

	// Headers returns request headers to decorate the outbound request
	// with (user agent, accept-language, cookies, etc).
	Headers() map[string]string

	// ValidateResponse inspects the raw HTTP response before parsing and
	// returns a SearchError (ErrBlocked, ErrCaptcha, ErrSafeSearchRestricted, ...)
	// if the engine detected something other than a results page.
	ValidateResponse(resp Response) error

	// Parse extracts results from a validated response body. query is
	// passed through for engines that need it to detect a "no results"
	// page.
	Parse(ctx context.Context, query string, doc domquery.Query) ([]model.SearchResult, error)
}

// TaggedEngine pairs an Engine with the EngineID the aggregator uses to
// attribute merged results back to it.
type TaggedEngine struct {
	Engine
	ID model.EngineID
}

// NewTaggedEngine wraps e with a freshly minted EngineID derived from its
// Name.
func NewTaggedEngine(e Engine) TaggedEngine {
	return TaggedEngine{Engine: e, ID: model.NewEngineID(e.Name())}
}

// DeriveName turns a Go type name like "MojeekEngine" or "DuckDuckGo"
// into the display name an Engine.Name() implementation typically
// returns, by space-separating CamelCase boundaries and dropping a
// trailing "Engine" suffix. Adapters that want a different display name
// just hardcode it instead of calling this.
func DeriveName(typeName string) string {
	typeName = strings.TrimSuffix(typeName, "Engine")

	var b strings.Builder
	runes := []rune(typeName)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			startsWord := unicode.IsLower(prev) ||
				(unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]))
			if startsWord {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
