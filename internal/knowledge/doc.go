// Package knowledge provides the in-process vector store backing the RAG
// step of the chat engine.
//
// The store wraps a chromem-go collection: documents are embedded through a
// Genkit ai.Embedder (bridged by NewEmbeddingFunc) and searched by cosine
// similarity. The knowledge base is fixed at startup, so an in-memory store
// is sufficient; nothing is persisted across restarts.
//
// SplitText implements the chunking applied to the corpus before indexing:
// a recursive character splitter that prefers paragraph, then line, then
// word boundaries, with a configurable overlap between adjacent chunks.
package knowledge
