package httpapi

import "github.com/ncecere/sieve/internal/model"

// SearchRequest is the POST /v1/search request body.
type SearchRequest struct {
	Query      string `json:"query"`
	Page       int    `json:"page,omitempty"`
	SafeSearch string `json:"safeSearch,omitempty"` // off|moderate|strict
	TimeoutMs  int    `json:"timeoutMs,omitempty"`
	DateFrom   string `json:"dateFrom,omitempty"` // RFC3339
	DateTo     string `json:"dateTo,omitempty"`
}

// ErrorResponse is the envelope returned for any 4xx/5xx.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// SearchResponse is the POST /v1/search success envelope.
type SearchResponse struct {
	Success  bool                             `json:"success"`
	Results  []model.SearchResultWithMetadata `json:"results"`
	Statuses []model.EngineStatus             `json:"statuses"`
}

func parseSafeSearch(s string) model.SafeSearch {
	switch s {
	case "strict":
		return model.SafeSearchStrict
	case "moderate":
		return model.SafeSearchModerate
	default:
		return model.SafeSearchOff
	}
}
