package services

import (
	"context"
	"fmt"

	"github.com/quorumhq/quorum/internal/core/domain"
	"github.com/quorumhq/quorum/internal/core/ports/driven"
	"github.com/quorumhq/quorum/internal/logger"
)

// Retriever fetches ranked transcript chunks for a question within one
// meeting. Both engines implement it; fusion depends only on this interface.
type Retriever interface {
	// Retrieve returns up to limit chunks ordered by the engine's own
	// relevance, all belonging to meetingID. An empty slice means the
	// meeting has no matching content and is not an error.
	Retrieve(ctx context.Context, question, meetingID string, limit int) ([]domain.ChunkRecord, error)

	// Name identifies the engine in logs and degradation notes.
	Name() string
}

// Ensure both engines implement the interface.
var (
	_ Retriever = (*SemanticRetriever)(nil)
	_ Retriever = (*LexicalRetriever)(nil)
)

// SemanticRetriever embeds the question and runs nearest-neighbour search
// over the vector index.
type SemanticRetriever struct {
	embedder driven.EmbeddingService
	index    driven.VectorIndex
}

// NewSemanticRetriever creates a semantic retriever.
func NewSemanticRetriever(embedder driven.EmbeddingService, index driven.VectorIndex) *SemanticRetriever {
	return &SemanticRetriever{embedder: embedder, index: index}
}

// Name identifies the engine.
func (r *SemanticRetriever) Name() string { return "semantic" }

// Retrieve embeds the question and returns the nearest chunks in the meeting.
func (r *SemanticRetriever) Retrieve(ctx context.Context, question, meetingID string, limit int) ([]domain.ChunkRecord, error) {
	embedding, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	logger.Debug("Semantic retrieval: %d-dim query, meeting=%s, limit=%d", len(embedding), meetingID, limit)

	chunks, err := r.index.QueryNearest(ctx, embedding, meetingID, limit)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	logger.Debug("Semantic retrieval: %d hits", len(chunks))
	return chunks, nil
}

// LexicalRetriever runs ranked keyword search over the text index.
type LexicalRetriever struct {
	engine driven.SearchEngine
}

// NewLexicalRetriever creates a lexical retriever.
func NewLexicalRetriever(engine driven.SearchEngine) *LexicalRetriever {
	return &LexicalRetriever{engine: engine}
}

// Name identifies the engine.
func (r *LexicalRetriever) Name() string { return "lexical" }

// Retrieve returns the best term-relevance matches in the meeting.
func (r *LexicalRetriever) Retrieve(ctx context.Context, question, meetingID string, limit int) ([]domain.ChunkRecord, error) {
	logger.Debug("Lexical retrieval: query=%q, meeting=%s, limit=%d", question, meetingID, limit)

	chunks, err := r.engine.QueryRelevance(ctx, question, meetingID, limit)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	logger.Debug("Lexical retrieval: %d hits", len(chunks))
	return chunks, nil
}
