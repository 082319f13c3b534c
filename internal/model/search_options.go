package model

// SearchOptions carries every knob a caller can turn on a single Search
// call. Engine adapters read from this when building their outbound
// request; none of it is engine-specific.
type SearchOptions struct {
	// PageNum is zero-indexed; page 0 is an engine's first page of
	// results.
	PageNum int

	SafeSearch SafeSearch

	// DateRange restricts results to a window, when the caller wants
	// one. Zero value means unrestricted.
	DateRange DateTimeRange

	// Language is a caller-supplied BCP-47-ish hint (e.g. "en", "en-US").
	// Engines that don't support language filtering ignore it.
	Language string
}

// DefaultSearchOptions is the zero-configuration request: first page, no
// safe search, no date restriction, no language hint.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}
