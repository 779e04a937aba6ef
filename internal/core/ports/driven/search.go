package driven

import (
	"context"

	"github.com/quorumhq/quorum/internal/core/domain"
)

// SearchEngine provides ranked full-text search over transcript chunks
// (BM25-style term relevance). Written by the external indexing pipeline,
// read-only here.
type SearchEngine interface {
	// QueryRelevance returns up to limit chunks matching the query text,
	// restricted to the given meeting, ordered by relevance descending.
	// SourceScore carries the engine's rank weight.
	//
	// The meeting filter must be part of the query itself, not applied to
	// the returned page, so a small meeting is not starved by the rest of
	// the index.
	QueryRelevance(ctx context.Context, query string, meetingID string, limit int) ([]domain.ChunkRecord, error)

	// Close releases resources.
	Close() error
}
