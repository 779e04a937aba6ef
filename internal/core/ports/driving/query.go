// Package driving provides interfaces for application entry points (primary/inbound ports).
package driving

import (
	"context"

	"github.com/quorumhq/quorum/internal/core/domain"
)

// QueryService answers natural-language questions about one meeting's
// transcript, grounding the answer in retrieved chunks.
type QueryService interface {
	// Query validates the request, retrieves and fuses candidate chunks,
	// and synthesizes a grounded answer.
	//
	// Errors: domain.ErrInvalidRequest for caller mistakes,
	// domain.ErrRetrievalUnavailable when both retrieval backends fail.
	// Partial failures degrade into the response (Degraded/Notes) instead
	// of erroring.
	Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error)
}
