// Package mojeek is the worked reference implementation of the Engine
// contract, scraping Mojeek's HTML search results.
package mojeek

import (
	"context"
	"fmt"

	"github.com/ncecere/sieve/internal/domquery"
	"github.com/ncecere/sieve/internal/engine"
	"github.com/ncecere/sieve/internal/model"
	"github.com/ncecere/sieve/internal/useragent"
)

var (
	resultWrapperClasses = domquery.NewClassQuery(domquery.Any, "results-standard")
	titleClasses         = domquery.NewClassQuery(domquery.Any, "title")
	summaryClasses       = domquery.NewClassQuery(domquery.Any, "s")
)

func init() {
	engine.Register("mojeek", New)
}

// Engine scrapes Mojeek's no-JS HTML results page.
type Engine struct{}

// New wraps a fresh Mojeek Engine in a TaggedEngine.
func New() engine.TaggedEngine {
	return engine.NewTaggedEngine(Engine{})
}

func (Engine) Name() string {
	return engine.DeriveName("MojeekEngine")
}

func (Engine) Homepage() string {
	return "https://www.mojeek.com"
}

// URL builds Mojeek's search URL. Page 0 omits the start-index
// parameter; page N starts at result 10*N+1. The date range, if present,
// is rendered as a pre-percent-encoded "since:YYYYMMDD before:YYYYMMDD"
// literal appended directly to q (a zero bound's half is left out), since
// Mojeek expects the %20/%3A
// escapes baked into the query text rather than escaped again by a URL
// encoder.
func (Engine) URL(query string, opts model.SearchOptions) string {
	pageParam := ""
	if opts.PageNum != 0 {
		const resultsPerPage = 10
		startIdx := resultsPerPage*opts.PageNum + 1
		pageParam = fmt.Sprintf("&s=%d", startIdx)
	}

	safeParam := ""
	if opts.SafeSearch.AsBool() {
		safeParam = "&safe=1"
	}

	dateParam := ""
	if from := opts.DateRange.From; !from.IsZero() {
		dateParam += fmt.Sprintf("%%20since%%3A%04d%02d%02d", from.Year(), from.Month(), from.Day())
	}
	if to := opts.DateRange.To; !to.IsZero() {
		dateParam += fmt.Sprintf("%%20before%%3A%04d%02d%02d", to.Year(), to.Month(), to.Day())
	}

	return fmt.Sprintf(
		"https://www.mojeek.com/search?q=%s%s%s%s",
		query, dateParam, pageParam, safeParam,
	)
}

func (Engine) Headers() map[string]string {
	return map[string]string{
		"User-Agent": useragent.RandomNoJS(),
		"Accept":     "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Referer":    "https://google.com/",
	}
}

func (Engine) ValidateResponse(resp engine.Response) error {
	if resp.StatusCode == 429 {
		return engine.ErrBlocked
	}
	if resp.StatusCode >= 400 {
		return engine.ErrRequestFailed
	}
	if len(resp.Body) == 0 {
		return engine.ErrNoResponseText
	}
	return nil
}

func (Engine) Parse(_ context.Context, _ string, doc domquery.Query) ([]model.SearchResult, error) {
	wrapper, ok := doc.FirstNodeWithClasses(resultWrapperClasses)
	if !ok {
		return nil, engine.ErrNoResultsFound
	}

	var results []model.SearchResult
	for _, child := range wrapper.ChildNodes() {
		titleOuter, ok := child.FirstChildNodeWithTag("h2")
		if !ok {
			continue
		}

		titleNode, ok := titleOuter.FirstChildNodeWithClasses(titleClasses)
		if !ok {
			continue
		}

		title, _ := titleNode.Text()
		href, _ := titleNode.GetHref()

		summary := ""
		if summaryNode, ok := child.FirstChildNodeWithClasses(summaryClasses); ok {
			summary, _ = summaryNode.Text()
		}

		results = append(results, model.NewSearchResult(title, href, summary, ""))
	}

	return results, nil
}
