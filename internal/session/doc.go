// Package session holds per-conversation state for the chat engine.
//
// Each conversation owns an ordered, append-only transcript of turns plus a
// rolling natural-language summary of the conversation so far. State lives
// for the lifetime of the process: there is no persistence, only in-memory
// partitioning by conversation ID so that concurrent conversations cannot
// corrupt each other's memory.
package session
