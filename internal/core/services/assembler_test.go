package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumhq/quorum/internal/core/domain"
)

func fused(id string, start float64, score float64, content string) domain.FusedResult {
	return domain.FusedResult{
		ChunkRecord: domain.ChunkRecord{
			ID:        id,
			MeetingID: "m-1",
			Content:   content,
			StartTime: start,
			EndTime:   start + 10,
			Speaker:   "Alex",
		},
		FusedScore: score,
		Provenance: domain.ProvenanceSemantic,
	}
}

func TestAssembleOrdersChronologically(t *testing.T) {
	a := NewAssembler(0)

	// Score order: late chunk first. Rendered order must follow time.
	results := []domain.FusedResult{
		fused("late", 600, 0.03, "closing remarks"),
		fused("early", 30, 0.02, "opening agenda"),
		fused("middle", 300, 0.01, "budget discussion"),
	}

	ctx := a.Assemble(results)
	require.False(t, ctx.IsEmpty())

	early := strings.Index(ctx.Text, "opening agenda")
	middle := strings.Index(ctx.Text, "budget discussion")
	late := strings.Index(ctx.Text, "closing remarks")
	assert.Less(t, early, middle)
	assert.Less(t, middle, late)

	// Included keeps fused-score order for the response's sources.
	require.Len(t, ctx.Included, 3)
	assert.Equal(t, "late", ctx.Included[0].ID)
	assert.Equal(t, "early", ctx.Included[1].ID)
	assert.Equal(t, "middle", ctx.Included[2].ID)
}

func TestAssembleRendersPreambles(t *testing.T) {
	a := NewAssembler(0)

	ctx := a.Assemble([]domain.FusedResult{fused("c1", 75, 0.5, "we should ship friday")})
	assert.Contains(t, ctx.Text, "[01:15 - 01:25] Alex: we should ship friday")
}

func TestAssembleUnknownSpeaker(t *testing.T) {
	a := NewAssembler(0)

	r := fused("c1", 0, 0.5, "hello")
	r.Speaker = ""
	ctx := a.Assemble([]domain.FusedResult{r})
	assert.Contains(t, ctx.Text, "Unknown speaker: hello")
}

func TestAssembleSeparatesChunks(t *testing.T) {
	a := NewAssembler(0)

	ctx := a.Assemble([]domain.FusedResult{
		fused("c1", 0, 0.5, "first"),
		fused("c2", 60, 0.4, "second"),
	})
	assert.Equal(t, 1, strings.Count(ctx.Text, "\n---\n"))
}

func TestAssembleDropsLowestScoreToFitBudget(t *testing.T) {
	big := strings.Repeat("x", 120)
	results := []domain.FusedResult{
		fused("best", 200, 0.9, big),
		fused("mid", 100, 0.5, big),
		fused("worst", 0, 0.1, big),
	}

	// Budget fits roughly two rendered chunks.
	a := NewAssembler(300)
	ctx := a.Assemble(results)

	require.Len(t, ctx.Included, 2)
	assert.Equal(t, "best", ctx.Included[0].ID)
	assert.Equal(t, "mid", ctx.Included[1].ID)
	assert.NotContains(t, ctx.Text, "[00:00")

	// Chunks are dropped whole, never truncated mid-text.
	assert.Equal(t, 2, strings.Count(ctx.Text, big))
}

func TestAssembleBudgetSmallerThanEveryChunk(t *testing.T) {
	a := NewAssembler(10)
	ctx := a.Assemble([]domain.FusedResult{fused("c1", 0, 0.5, strings.Repeat("y", 500))})
	assert.True(t, ctx.IsEmpty())
	assert.Empty(t, ctx.Text)
}

func TestAssembleEmptyInput(t *testing.T) {
	a := NewAssembler(0)
	ctx := a.Assemble(nil)
	assert.True(t, ctx.IsEmpty())
	assert.Empty(t, ctx.Text)
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{75, "01:15"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{7325, "2:02:05"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatTimestamp(tt.seconds))
	}
}
