package domain

import (
	"fmt"
	"strings"
)

// K bounds for a query. The clamp keeps a single request from dragging an
// unbounded number of chunks through fusion and context assembly.
const (
	DefaultK = 5
	MaxK     = 100
)

// QueryRequest is a question about one meeting's transcript.
type QueryRequest struct {
	// Question is the natural-language question. Required, non-empty.
	Question string `json:"question"`

	// MeetingID scopes retrieval to a single meeting. Required.
	MeetingID string `json:"meeting_id"`

	// K is the number of source chunks to return. Defaults to DefaultK,
	// clamped to [1, MaxK].
	K int `json:"k,omitempty"`
}

// Normalize applies the K default and clamp. Call after Validate.
func (r *QueryRequest) Normalize() {
	if r.K == 0 {
		r.K = DefaultK
	}
	if r.K < 1 {
		r.K = 1
	}
	if r.K > MaxK {
		r.K = MaxK
	}
}

// Validate checks required fields.
func (r *QueryRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("%w: question is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.MeetingID) == "" {
		return fmt.Errorf("%w: meeting_id is required", ErrInvalidRequest)
	}
	return nil
}

// Source is the provenance projection of a FusedResult returned to callers.
type Source struct {
	// ChunkID identifies the source chunk.
	ChunkID string `json:"chunk_id"`

	// Content is the fragment text the answer was grounded on.
	Content string `json:"content"`

	// StartTime and EndTime are offsets into the meeting, in seconds.
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`

	// Speaker is the diarised speaker name, omitted when unknown.
	Speaker string `json:"speaker,omitempty"`

	// Score is the fused relevance score.
	Score float64 `json:"score"`

	// Provenance is "semantic", "lexical" or "both".
	Provenance Provenance `json:"provenance"`
}

// NewSource projects a FusedResult into its response shape.
func NewSource(r FusedResult) Source {
	return Source{
		ChunkID:    r.ID,
		Content:    r.Content,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Speaker:    r.Speaker,
		Score:      r.FusedScore,
		Provenance: r.Provenance,
	}
}

// QueryResponse is the grounded answer with its provenance.
type QueryResponse struct {
	// Answer is the generated text.
	Answer string `json:"answer"`

	// MeetingID echoes the request scope.
	MeetingID string `json:"meeting_id"`

	// Sources lists the chunks the answer was grounded on, ordered by
	// descending fused score.
	Sources []Source `json:"sources"`

	// TotalSources is len(Sources), computed from the actual result set,
	// never from the requested K.
	TotalSources int `json:"total_sources"`

	// Degraded is true when part of the pipeline failed but the response
	// still carries useful data (one retriever down, or generation down
	// with sources intact).
	Degraded bool `json:"degraded,omitempty"`

	// Notes describe what degraded, for callers and logs.
	Notes []string `json:"notes,omitempty"`
}
