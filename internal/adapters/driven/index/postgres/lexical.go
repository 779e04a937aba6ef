package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quorumhq/quorum/internal/core/domain"
	"github.com/quorumhq/quorum/internal/core/ports/driven"
)

// Ensure SearchEngine implements the interface.
var _ driven.SearchEngine = (*SearchEngine)(nil)

// SearchEngine performs ranked full-text search over the chunk tsvector
// column, scored with ts_rank_cd.
type SearchEngine struct {
	db *sql.DB
}

// NewSearchEngine creates a lexical index client on the shared store.
func NewSearchEngine(store *Store) *SearchEngine {
	return &SearchEngine{db: store.DB()}
}

// QueryRelevance returns the best term-relevance matches in the meeting,
// ordered by rank descending. The meeting filter sits in the WHERE clause
// next to the tsquery match, so a small meeting is never starved by the
// rest of the index.
func (e *SearchEngine) QueryRelevance(ctx context.Context, query, meetingID string, limit int) ([]domain.ChunkRecord, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT id, meeting_id, content, start_time, end_time, speaker,
		       ts_rank_cd(content_tsv, q) AS rank
		FROM `+chunksTable+`, websearch_to_tsquery('english', $1) q
		WHERE meeting_id = $2 AND content_tsv @@ q
		ORDER BY rank DESC
		LIMIT $3`,
		query, meetingID, limit)
	if err != nil {
		return nil, fmt.Errorf("lexical query: %w", err)
	}
	defer rows.Close()

	return scanChunks(rows)
}

// Close is a no-op; the shared Store owns the connection pool.
func (e *SearchEngine) Close() error {
	return nil
}
