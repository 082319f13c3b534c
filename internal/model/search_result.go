package model

// SearchResult is a single result as an engine parsed it from its result
// page, before aggregation merges it with same-URL hits from other
// engines and scores it.
type SearchResult struct {
	Title   string
	URL     string // display form: original protocol, extension kept
	Summary string

	// StrictURL is the canonical fingerprint used as the merge key:
	// secure-protocol-upgraded, tracker-params stripped, extension
	// stripped from the last path segment. Two SearchResults with the
	// same StrictURL are the same page.
	StrictURL string
}

// NewSearchResult builds a SearchResult from raw engine-parsed fields.
// strictURL is stored as given; engine adapters pass "" and the
// aggregator fills it in from the canonicaliser at merge time.
func NewSearchResult(title, url, summary, strictURL string) SearchResult {
	return SearchResult{
		Title:     title,
		URL:       url,
		Summary:   summary,
		StrictURL: strictURL,
	}
}

// Snippet renders the text an aggregator's refiner scores: title and
// summary joined, since either alone is too thin a signal for semantic
// reranking.
func (r SearchResult) Snippet() string {
	if r.Summary == "" {
		return r.Title
	}
	return r.Title + " | " + r.Summary
}

// SearchResultWithMetadata decorates a merged SearchResult with the set
// of engines that returned it and its final relevance score.
type SearchResultWithMetadata struct {
	SearchResult

	// Engines lists every engine that returned this URL, in the order
	// they were first merged in. An engine appears at most once even if
	// ties caused repeated merge attempts.
	Engines []EngineID

	// Score is the result's relevance score after TF-IDF scoring (and,
	// if configured, refiner re-scoring of the top slice). Higher is
	// more relevant. float32 to match the ordering the original scores
	// sort on.
	Score float32
}

// NewSearchResultWithMetadata wraps a merged result with its contributing
// engines and an initial score of zero, pending scoring.
func NewSearchResultWithMetadata(result SearchResult, engines []EngineID) SearchResultWithMetadata {
	return SearchResultWithMetadata{
		SearchResult: result,
		Engines:      engines,
		Score:        0,
	}
}
