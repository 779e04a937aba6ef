// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"

	"github.com/quorumhq/quorum/internal/core/domain"
)

// VectorIndex provides nearest-neighbour search over transcript chunk
// embeddings. The index is written by the external indexing pipeline and is
// read-only here.
type VectorIndex interface {
	// QueryNearest returns up to limit chunks whose embeddings are nearest
	// to the query vector, restricted to the given meeting, ordered by
	// similarity descending. SourceScore carries the similarity.
	//
	// An unreachable backend is an error; a meeting with zero indexed
	// vectors returns an empty slice.
	QueryNearest(ctx context.Context, embedding []float32, meetingID string, limit int) ([]domain.ChunkRecord, error)

	// Close releases resources.
	Close() error
}
