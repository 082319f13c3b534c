package refiner

import "context"

// Stub is a deterministic ScoreRefiner test double: it returns scores
// from a caller-supplied lookup keyed by the exact target string, for
// exercising the aggregator's refiner-override code path without a real
// model.
type Stub struct {
	// ScoreFor maps a target snippet to the score it should receive.
	// Targets not present in the map score 0.
	ScoreFor map[string]float32

	// Max bounds how many top results the aggregator will submit.
	Max int
}

func (s Stub) Scores(_ context.Context, _ string, targets []string) ([]Score, error) {
	out := make([]Score, len(targets))
	for i, target := range targets {
		out[i] = Score{Value: s.ScoreFor[target]}
	}
	return out, nil
}

func (Stub) Init(context.Context) error {
	return nil
}

func (s Stub) MaxResults() int {
	return s.Max
}
