package engine

import (
	"time"

	"github.com/ncecere/sieve/internal/model"
)

// FallbackToPreset degrades an arbitrary DateTimeRange to the nearest
// preset the calling engine actually supports, for engines whose query
// string can only express a fixed set of lookback windows rather than an
// arbitrary from/to pair.
func FallbackToPreset(r model.DateTimeRange) model.DateTimeRangePreset {
	return r.FindClosestPreset(time.Now())
}
