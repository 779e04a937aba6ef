package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/quorumhq/quorum/internal/core/domain"
	"github.com/quorumhq/quorum/internal/core/ports/driven"
)

// Ensure VectorIndex implements the interface.
var _ driven.VectorIndex = (*VectorIndex)(nil)

// VectorIndex performs nearest-neighbour search over the chunk embedding
// column using the pgvector cosine distance operator.
type VectorIndex struct {
	db *sql.DB
}

// NewVectorIndex creates a vector index client on the shared store.
func NewVectorIndex(store *Store) *VectorIndex {
	return &VectorIndex{db: store.DB()}
}

// QueryNearest returns the chunks in the meeting closest to the query
// vector, ordered by cosine similarity descending. The meeting filter is
// part of the query, so results are never post-filtered.
func (v *VectorIndex) QueryNearest(ctx context.Context, embedding []float32, meetingID string, limit int) ([]domain.ChunkRecord, error) {
	rows, err := v.db.QueryContext(ctx, `
		SELECT id, meeting_id, content, start_time, end_time, speaker,
		       1 - (embedding <=> $1) AS similarity
		FROM `+chunksTable+`
		WHERE meeting_id = $2
		ORDER BY embedding <=> $1
		LIMIT $3`,
		pgvector.NewVector(embedding), meetingID, limit)
	if err != nil {
		return nil, fmt.Errorf("vector query: %w", err)
	}
	defer rows.Close()

	return scanChunks(rows)
}

// Close is a no-op; the shared Store owns the connection pool.
func (v *VectorIndex) Close() error {
	return nil
}

// scanChunks reads chunk rows in the shared column order, with the relevance
// score last. Shared by both index clients.
func scanChunks(rows *sql.Rows) ([]domain.ChunkRecord, error) {
	chunks := []domain.ChunkRecord{}
	for rows.Next() {
		var (
			c       domain.ChunkRecord
			speaker sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.MeetingID, &c.Content, &c.StartTime, &c.EndTime, &speaker, &c.SourceScore); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		if speaker.Valid {
			c.Speaker = speaker.String
		}
		chunks = append(chunks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return chunks, nil
}
