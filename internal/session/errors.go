package session

import "errors"

// Sentinel errors for session operations. Part of the Store's public API;
// check with errors.Is().
var (
	// ErrNotFound indicates the requested conversation does not exist.
	ErrNotFound = errors.New("session not found")
)
