package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quorumhq/quorum/internal/core/domain"
	"github.com/quorumhq/quorum/internal/logger"
)

// DefaultContextBudget is the maximum rendered context size in characters.
const DefaultContextBudget = 8000

// chunkSeparator delimits chunks in the rendered context so the generation
// step can attribute claims to individual fragments.
const chunkSeparator = "\n---\n"

// AssembledContext is the rendered, chronologically ordered context window
// handed to answer synthesis.
type AssembledContext struct {
	// Text is the rendered context. Empty when no chunks survived.
	Text string

	// Included lists the chunks that fit the budget, in fused-score order.
	// These are the sources the response reports.
	Included []domain.FusedResult
}

// IsEmpty reports whether there is no context to ground an answer on.
func (c AssembledContext) IsEmpty() bool {
	return len(c.Included) == 0
}

// Assembler renders top fused results into a bounded text context. Chunks
// that would blow the budget are dropped whole, lowest fused score first;
// chunk text is never cut mid-sentence.
type Assembler struct {
	budget int
}

// NewAssembler creates an assembler with the given character budget.
// Values below 1 fall back to DefaultContextBudget.
func NewAssembler(budget int) *Assembler {
	if budget < 1 {
		budget = DefaultContextBudget
	}
	return &Assembler{budget: budget}
}

// Assemble selects the chunks that fit the budget and renders them in
// chronological order. The input must already be ordered by fused score
// descending; which chunks survive is decided by that order, while the
// rendered text follows the meeting's timeline for narrative coherence.
func (a *Assembler) Assemble(results []domain.FusedResult) AssembledContext {
	if len(results) == 0 {
		return AssembledContext{}
	}

	included := make([]domain.FusedResult, len(results))
	copy(included, results)

	// Drop lowest-scored chunks until the rendered total fits the budget.
	total := renderedSize(included)
	for len(included) > 0 && total > a.budget {
		dropped := included[len(included)-1]
		included = included[:len(included)-1]
		total = renderedSize(included)
		logger.Debug("Context assembly: dropped chunk %s (score %.4f) to fit budget", dropped.ID, dropped.FusedScore)
	}

	if len(included) == 0 {
		return AssembledContext{}
	}

	// Render in meeting order, independent of which chunks survived.
	chronological := make([]domain.FusedResult, len(included))
	copy(chronological, included)
	sort.SliceStable(chronological, func(i, j int) bool {
		return chronological[i].StartTime < chronological[j].StartTime
	})

	blocks := make([]string, len(chronological))
	for i, r := range chronological {
		blocks[i] = renderChunk(r)
	}

	logger.Debug("Context assembly: %d/%d chunks, %d chars", len(included), len(results), total)

	return AssembledContext{
		Text:     strings.Join(blocks, chunkSeparator),
		Included: included,
	}
}

// renderedSize computes the rendered length of a chunk set including
// separators, without building the string.
func renderedSize(results []domain.FusedResult) int {
	total := 0
	for i, r := range results {
		if i > 0 {
			total += len(chunkSeparator)
		}
		total += len(renderChunk(r))
	}
	return total
}

// renderChunk formats one chunk with its timestamp and speaker preamble.
func renderChunk(r domain.FusedResult) string {
	speaker := r.Speaker
	if speaker == "" {
		speaker = "Unknown speaker"
	}
	return fmt.Sprintf("[%s - %s] %s: %s",
		formatTimestamp(r.StartTime), formatTimestamp(r.EndTime), speaker, r.Content)
}

// formatTimestamp renders a second offset as mm:ss, or h:mm:ss past an hour.
func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
