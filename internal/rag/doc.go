// Package rag wires the fixed financial knowledge corpus into the
// knowledge store and exposes a retriever for the chat engine.
//
// The corpus is built in: it is chunked and indexed once at startup with
// stable document IDs, so restarts always reproduce the same knowledge
// base. Retrieval is a plain top-k similarity search; the engine treats the
// returned passages as a bag of text to concatenate into its prompt.
package rag
