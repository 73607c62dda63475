package knowledge

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/finnova/finnova/internal/log"
)

// stubEmbedding maps text onto a small deterministic unit vector so tests
// never touch a real embedding model. Texts sharing keywords land close
// together.
func stubEmbedding(_ context.Context, text string) ([]float32, error) {
	keywords := []string{"tax", "budget", "fund", "debt"}
	v := make([]float32, len(keywords)+1)
	v[0] = 0.1 // avoid the zero vector
	lower := strings.ToLower(text)
	for i, kw := range keywords {
		if strings.Contains(lower, kw) {
			v[i+1] = 1
		}
	}

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
	return v, nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(stubEmbedding, log.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return store
}

func TestStoreAddAndSearch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	docs := []Document{
		{ID: "d1", Content: "tax brackets and tax allowances"},
		{ID: "d2", Content: "monthly budget planning"},
		{ID: "d3", Content: "emergency fund basics"},
	}
	for _, d := range docs {
		if err := store.Add(ctx, d); err != nil {
			t.Fatalf("Add(%s) error = %v", d.ID, err)
		}
	}

	results, err := store.Search(ctx, "how do tax brackets work", WithTopK(2))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Document.ID != "d1" {
		t.Errorf("top result = %s, want d1", results[0].Document.ID)
	}
	if results[0].Similarity < results[1].Similarity {
		t.Error("results not ordered by descending similarity")
	}
}

func TestStoreSearchEmpty(t *testing.T) {
	store := newTestStore(t)

	results, err := store.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search() on empty store error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("empty store returned %d results", len(results))
	}
}

func TestStoreSearchClampsTopK(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Add(ctx, Document{ID: "only", Content: "budget advice"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Requesting more results than documents must not error.
	results, err := store.Search(ctx, "budget", WithTopK(10))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

func TestStoreAddValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Add(ctx, Document{Content: "no id"}); err == nil {
		t.Error("Add without ID should fail")
	}
	if err := store.Add(ctx, Document{ID: "x"}); err == nil {
		t.Error("Add without content should fail")
	}
}

func TestStoreMetadataFilter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Add(ctx, Document{
		ID: "a", Content: "tax facts", Metadata: map[string]string{"topic": "tax"},
	}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Add(ctx, Document{
		ID: "b", Content: "tax trivia", Metadata: map[string]string{"topic": "other"},
	}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	results, err := store.Search(ctx, "tax", WithTopK(5), WithFilter("topic", "tax"))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].Document.ID != "a" {
		t.Errorf("filtered search = %+v, want only document a", results)
	}
}
