package rag

import (
	"context"
	"fmt"

	"github.com/finnova/finnova/internal/knowledge"
)

// Retriever adapts the knowledge store to the chat engine's retrieval
// interface: a query in, the top-k passage texts out, ordered by
// descending relevance.
type Retriever struct {
	store *knowledge.Store
}

// NewRetriever creates a Retriever over the given knowledge store.
func NewRetriever(store *knowledge.Store) *Retriever {
	return &Retriever{store: store}
}

// Search returns the text of the k most relevant corpus passages for the
// query. The result has at most k entries; it may be shorter when the
// store holds fewer documents.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]string, error) {
	results, err := r.store.Search(ctx, query,
		knowledge.WithTopK(k),
		knowledge.WithFilter("source_type", SourceTypeCorpus),
	)
	if err != nil {
		return nil, fmt.Errorf("searching knowledge store: %w", err)
	}

	passages := make([]string, len(results))
	for i, res := range results {
		passages[i] = res.Document.Content
	}
	return passages, nil
}
