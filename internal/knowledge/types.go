package knowledge

// Document represents a knowledge document.
// Metadata must be map[string]string to comply with chromem-go requirements.
type Document struct {
	ID       string            // Unique identifier
	Content  string            // Document text content
	Metadata map[string]string // Optional metadata (source, topic, etc.)
}

// Result represents a single search result with similarity score.
type Result struct {
	Document   Document
	Similarity float32 // Cosine similarity score (0-1)
}

// SearchOption configures search behavior using the functional options
// pattern.
type SearchOption func(*searchConfig)

type searchConfig struct {
	topK   int
	filter map[string]string
}

// WithTopK sets the maximum number of results to return. Default is 3.
func WithTopK(k int) SearchOption {
	return func(c *searchConfig) {
		if k > 0 {
			c.topK = k
		}
	}
}

// WithFilter adds a metadata filter to restrict search results.
// Multiple calls add additional filters (AND logic).
func WithFilter(key, value string) SearchOption {
	return func(c *searchConfig) {
		if c.filter == nil {
			c.filter = make(map[string]string)
		}
		c.filter[key] = value
	}
}

// buildSearchConfig applies search options over the defaults.
func buildSearchConfig(opts []SearchOption) *searchConfig {
	cfg := &searchConfig{topK: 3}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
