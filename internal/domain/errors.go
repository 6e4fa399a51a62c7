// Package domain defines the entities handled by the fitness-tracking client
// and the repository interfaces the storage layer implements. Errors are
// sentinel values; callers should use errors.Is to match them.
package domain

import "errors"

var (
	// Storage-level errors.

	// ErrNoConnection indicates that a request could not be transmitted or
	// no response was received. Retrying once connectivity returns is the
	// caller's decision; this layer never retries.
	ErrNoConnection = errors.New("no connection")

	// ErrNoSession indicates that no cached identity exists. The caller
	// must obtain a new session before session-scoped data can be used.
	ErrNoSession = errors.New("no session")

	// ErrNotFound indicates that a requested object is absent from a store.
	ErrNotFound = errors.New("object not found")

	// ErrConflict indicates a server-detected uniqueness violation on
	// create or replace, e.g. a duplicate date. Permanent until the caller
	// supplies a non-colliding value.
	ErrConflict = errors.New("conflict")
)
