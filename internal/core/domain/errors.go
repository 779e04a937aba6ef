package domain

import "errors"

// Domain errors represent query pipeline failures.
// These are distinct from infrastructure errors and are mapped to HTTP
// statuses at the API boundary.
var (
	// ErrInvalidRequest indicates a malformed request (empty question or
	// meeting id). Caller error, never retried.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRetrievalUnavailable indicates both retrieval backends were
	// unreachable or timed out. A single-engine failure degrades instead.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")

	// ErrGenerationUnavailable indicates the text generation capability is
	// down, timed out or over quota. When retrieval succeeded the pipeline
	// degrades to a fallback answer rather than surfacing this.
	ErrGenerationUnavailable = errors.New("generation unavailable")

	// ErrNoContent indicates a valid meeting scope with zero indexed
	// chunks. A legitimate empty state, not a system fault.
	ErrNoContent = errors.New("no content found")
)
