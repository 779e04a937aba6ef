// Package domain holds the core types for the quorum transcript query service.
package domain

// Provenance identifies which retrieval engine surfaced a chunk.
type Provenance string

const (
	// ProvenanceSemantic marks a chunk found only by vector search.
	ProvenanceSemantic Provenance = "semantic"

	// ProvenanceLexical marks a chunk found only by keyword search.
	ProvenanceLexical Provenance = "lexical"

	// ProvenanceBoth marks a dual-hit: the chunk appeared in both ranked
	// lists. Exposed for observability; the rank boost dual-hits receive
	// comes from summed fusion weights, not from this flag.
	ProvenanceBoth Provenance = "both"
)

// ChunkRecord is one retrievable transcript fragment. Records are written by
// the indexing pipeline and are read-only here.
type ChunkRecord struct {
	// ID is the unique identifier for the chunk, stable across re-indexing.
	ID string

	// MeetingID scopes the chunk to a single meeting. Retrieval always
	// filters on exact equality of this field.
	MeetingID string

	// Content is the contextualised fragment text. The indexing pipeline
	// may bake surrounding-sentence context into it.
	Content string

	// StartTime and EndTime are offsets into the meeting, in seconds.
	// StartTime <= EndTime.
	StartTime float64
	EndTime   float64

	// Speaker is the diarised speaker name. Empty when diarisation failed.
	Speaker string

	// SourceScore is the raw relevance score from the engine that produced
	// the record. Semantic similarity and lexical rank weights live on
	// incomparable scales, so this is never compared across engines.
	SourceScore float64
}

// FusedResult is a ChunkRecord after rank fusion, carrying a score that is
// comparable across results regardless of which engine produced them.
type FusedResult struct {
	ChunkRecord

	// FusedScore is the summed reciprocal-rank weight. Higher ranks first.
	FusedScore float64

	// Provenance records which engine(s) surfaced the chunk.
	Provenance Provenance
}
