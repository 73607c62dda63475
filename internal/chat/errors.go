package chat

import "errors"

// Sentinel errors for engine operations. Part of the public API; check
// with errors.Is(). The transport layer maps these to stable external
// responses without leaking internal details.
var (
	// ErrInvalidSession indicates the session ID is malformed.
	ErrInvalidSession = errors.New("invalid session")

	// ErrRetrieval indicates the knowledge retrieval call failed or
	// timed out. No turn is recorded.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration indicates the answer generation call failed or
	// timed out. No turn is recorded.
	ErrGeneration = errors.New("generation failed")
)
