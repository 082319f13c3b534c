package model

// EngineStatus reports how one engine's leg of a fan-out finished. Every
// engine queried gets exactly one entry, whether it contributed results
// or failed.
type EngineStatus struct {
	Engine EngineID

	// Err is nil on success. On failure it is the error the engine's leg
	// ended with, stored unwrapped: one of the sentinel errors in the
	// engine package (engine.ErrBlocked and friends), or whatever the
	// engine's own ValidateResponse or Parse returned.
	Err error

	// ResultCount is how many results this engine contributed before
	// merging, i.e. before any were folded into another engine's
	// incumbent entry.
	ResultCount int
}

// SearchResponse is the return value of a completed aggregation: the
// merged, scored, sorted result set plus a per-engine status report.
type SearchResponse struct {
	Results  []SearchResultWithMetadata
	Statuses []EngineStatus
}
