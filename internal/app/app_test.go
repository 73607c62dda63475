package app

import (
	"context"
	"testing"

	"github.com/finnova/finnova/internal/knowledge"
	"github.com/finnova/finnova/internal/log"
	"github.com/finnova/finnova/internal/rag"
)

// flatEmbedding is a trivial deterministic embedding for tests that only
// need the store to hold documents.
func flatEmbedding(_ context.Context, text string) ([]float32, error) {
	v := make([]float32, 8)
	for i, r := range text {
		v[i%8] += float32(r % 13)
	}
	zero := true
	for _, x := range v {
		if x != 0 {
			zero = false
			break
		}
	}
	if zero {
		v[0] = 1
	}
	return v, nil
}

func TestReady(t *testing.T) {
	store, err := knowledge.New(flatEmbedding, log.NewNop())
	if err != nil {
		t.Fatalf("knowledge.New() error = %v", err)
	}

	a := &App{Knowledge: store, Logger: log.NewNop()}

	if err := a.Ready(); err == nil {
		t.Error("Ready() = nil before indexing, want error")
	}

	if _, err := rag.Index(context.Background(), store, log.NewNop()); err != nil {
		t.Fatalf("rag.Index() error = %v", err)
	}

	if err := a.Ready(); err != nil {
		t.Errorf("Ready() = %v after indexing, want nil", err)
	}
}

func TestReadyNilKnowledge(t *testing.T) {
	a := &App{Logger: log.NewNop()}
	if err := a.Ready(); err == nil {
		t.Error("Ready() = nil with no knowledge store, want error")
	}
}
