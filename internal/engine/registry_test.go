package engine

import (
	"testing"

	"github.com/ncecere/sieve/internal/model"
)

func TestBuild_UnknownNameIsAnError(t *testing.T) {
	if _, err := Build([]string{"not-a-real-engine"}); err == nil {
		t.Fatal("expected an error for an unregistered engine name")
	}
}

func TestRegisterAndBuild_ReturnsOneTaggedEnginePerName(t *testing.T) {
	Register("registry-test-stub", func() TaggedEngine {
		return TaggedEngine{ID: model.EngineID{Name: "stub", ID: "1"}}
	})

	got, err := Build([]string{"registry-test-stub"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one engine, got %d", len(got))
	}
}
