package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	chromem "github.com/philippgille/chromem-go"
)

// collectionName is the single chromem collection holding the corpus.
const collectionName = "financial-knowledge"

// Store manages knowledge documents with vector search.
// It wraps an in-memory chromem-go collection; embeddings are produced by
// the EmbeddingFunc supplied at construction.
//
// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	collection *chromem.Collection
	logger     *slog.Logger
}

// New creates a Store backed by a fresh in-memory collection.
//
// embedFn generates the vector for each document and query; build it from a
// Genkit embedder with NewEmbeddingFunc, or pass a deterministic function
// in tests.
func New(embedFn chromem.EmbeddingFunc, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, embedFn)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	return &Store{
		collection: collection,
		logger:     logger,
	}, nil
}

// Add indexes a document. The content is embedded via the store's
// EmbeddingFunc. Adding an existing ID replaces the previous document.
func (s *Store) Add(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document ID is required")
	}
	if doc.Content == "" {
		return fmt.Errorf("document %q has no content", doc.ID)
	}

	err := s.collection.AddDocument(ctx, chromem.Document{
		ID:       doc.ID,
		Content:  doc.Content,
		Metadata: doc.Metadata,
	})
	if err != nil {
		return fmt.Errorf("adding document %q: %w", doc.ID, err)
	}

	s.logger.Debug("added document", "id", doc.ID, "content_length", len(doc.Content))
	return nil
}

// Search performs semantic search over the store, returning the most
// similar documents to the query in descending similarity order.
//
// The requested result count is clamped to the collection size; searching
// an empty store returns no results rather than an error.
func (s *Store) Search(ctx context.Context, query string, opts ...SearchOption) ([]Result, error) {
	cfg := buildSearchConfig(opts)

	n := s.collection.Count()
	if n == 0 {
		return nil, nil
	}
	topK := cfg.topK
	if topK > n {
		topK = n
	}

	hits, err := s.collection.Query(ctx, query, topK, cfg.filter, nil)
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}

	results := make([]Result, len(hits))
	for i, hit := range hits {
		results[i] = Result{
			Document: Document{
				ID:       hit.ID,
				Content:  hit.Content,
				Metadata: hit.Metadata,
			},
			Similarity: hit.Similarity,
		}
	}
	return results, nil
}

// Count returns the number of indexed documents.
func (s *Store) Count() int {
	return s.collection.Count()
}
